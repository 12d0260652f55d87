package bootstrap

import (
	"lumera-client/internal/config"
	"lumera-client/internal/controller"
	"lumera-client/internal/pkg/logger"
	"lumera-client/internal/repository/contract"
	"lumera-client/internal/repository/implementation"
	"lumera-client/internal/repository/memory"
	"lumera-client/internal/service"
	"lumera-client/pkg/api"
	"lumera-client/pkg/chatbot"
)

type Container struct {
	// Controllers
	PageController     controller.IPageController
	AuthController     controller.IAuthController
	AnalysisController controller.IAnalysisController
	ChatbotController  controller.IChatbotController

	// Shared infrastructure
	GuardService service.IGuardService
	Logger       logger.ILogger
}

// sessionTokens feeds the stored credential to the request client.
type sessionTokens struct {
	sessions contract.SessionRepository
}

func (t sessionTokens) Token() string {
	return t.sessions.Get().Token
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var sessions contract.SessionRepository
	if cfg.App.EphemeralSession {
		sessions = memory.NewSessionRepository()
	} else {
		sessions = implementation.NewFileSessionRepository(cfg.App.SessionFilePath)
	}

	// 2. Remote API client
	client := api.NewClient(cfg.API.BaseURL, sessionTokens{sessions}, sysLogger)

	// 3. Services
	nav := controller.NewRedirectRecorder()
	authService := service.NewAuthService(client, sessions, sysLogger)
	guardService := service.NewGuardService(sessions, sysLogger)
	submissions := service.NewSubmissionManager(client, sessions, nav, sysLogger)
	progressService := service.NewProgressService(client, sysLogger)
	recordService := service.NewRecordService(client, sysLogger)
	chatbotService := service.NewChatbotService(chatbot.NewStubConsultant())

	// 4. Controllers
	return &Container{
		PageController:     controller.NewPageController(authService),
		AuthController:     controller.NewAuthController(authService),
		AnalysisController: controller.NewAnalysisController(authService, submissions, progressService, recordService, nav),
		ChatbotController:  controller.NewChatbotController(chatbotService),
		GuardService:       guardService,
		Logger:             sysLogger,
	}
}
