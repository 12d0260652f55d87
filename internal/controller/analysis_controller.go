package controller

import (
	"fmt"
	"strconv"

	"lumera-client/internal/service"
	"lumera-client/internal/view"
	"lumera-client/pkg/api"
	"lumera-client/pkg/progress"

	"github.com/gofiber/fiber/v2"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	UploadPage(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Results(ctx *fiber.Ctx) error
	Progress(ctx *fiber.Ctx) error
	UploadedImage(ctx *fiber.Ctx) error
}

type analysisController struct {
	auth        service.IAuthService
	submissions *service.SubmissionManager
	progress    service.IProgressService
	records     service.IRecordService
	nav         *RedirectRecorder
}

func NewAnalysisController(
	auth service.IAuthService,
	submissions *service.SubmissionManager,
	progress service.IProgressService,
	records service.IRecordService,
	nav *RedirectRecorder,
) IAnalysisController {
	return &analysisController{
		auth:        auth,
		submissions: submissions,
		progress:    progress,
		records:     records,
		nav:         nav,
	}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard", c.Dashboard)
	r.Get("/upload", c.UploadPage)
	r.Post("/upload", c.Upload)
	r.Get("/results/:id", c.Results)
	r.Get("/progress", c.Progress)
	r.Get("/uploads/:filename", c.UploadedImage)
}

func (c *analysisController) Dashboard(ctx *fiber.Ctx) error {
	session := c.auth.Session()
	username := ""
	if session.User != nil {
		username = session.User.Username
	}

	return renderPage(ctx, "dashboard", view.Page{
		LoggedIn: true,
		Data: fiber.Map{
			"Username": username,
			"Analyses": c.progress.History(ctx.Context()),
		},
	})
}

// UploadPage opens the submission view: a fresh workflow instance supersedes
// any previous one, so a response still in flight for the old run can no
// longer navigate or mutate anything.
func (c *analysisController) UploadPage(ctx *fiber.Ctx) error {
	c.submissions.NewInstance()
	return renderPage(ctx, "upload", view.Page{
		LoggedIn: true,
		Data:     fiber.Map{"Preview": "", "Uploading": false},
	})
}

// Upload drives the whole machine for one submit action: file choice,
// validation, transfer, outcome.
func (c *analysisController) Upload(ctx *fiber.Ctx) error {
	workflow := c.submissions.Current()

	header, err := ctx.FormFile("image")
	if err != nil {
		// No file in the form; let the machine produce NoFileSelected
		submitErr := workflow.Submit(ctx.Context(), nil)
		return c.renderUploadFailure(ctx, workflow, submitErr)
	}

	if err := workflow.Select(header.Filename, header.Header.Get("Content-Type"), header.Size); err != nil {
		return c.renderUploadFailure(ctx, workflow, err)
	}

	file, err := header.Open()
	if err != nil {
		return c.renderUploadFailure(ctx, workflow, api.AsError(err))
	}
	defer file.Close()

	submitErr := workflow.Submit(ctx.Context(), file)

	if workflow.State() == service.StateSucceeded {
		if to, ok := c.nav.Consume(); ok {
			return ctx.Redirect(to, fiber.StatusFound)
		}
		return ctx.Redirect(fmt.Sprintf("/results/%d", workflow.RecordId()), fiber.StatusFound)
	}
	return c.renderUploadFailure(ctx, workflow, submitErr)
}

func (c *analysisController) renderUploadFailure(ctx *fiber.Ctx, workflow *service.SubmissionWorkflow, err error) error {
	page := view.Page{
		LoggedIn: true,
		Data:     fiber.Map{"Preview": "", "Uploading": false},
	}
	if err != nil {
		classified := api.AsError(err)
		page.Error = classified.Message
		if classified.Kind == api.KindSessionExpired {
			// Message first; the browser follows once the machine's
			// delay elapses and the stale session has been cleared
			page.Refresh = "2;url=/login"
		}
	}
	if selected := workflow.File(); selected != nil {
		page.Data = fiber.Map{"Preview": selected.Preview, "Uploading": false}
	}
	return renderPage(ctx, "upload", page)
}

func (c *analysisController) Results(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return renderPage(ctx, "message", view.Page{LoggedIn: true, Data: "Analysis not found"})
	}

	record, err := c.records.Fetch(ctx.Context(), id)
	if err != nil {
		classified := api.AsError(err)
		switch classified.Kind {
		case api.KindNotFound:
			return renderPage(ctx, "message", view.Page{LoggedIn: true, Data: "Analysis not found"})
		case api.KindDecodeFailure:
			return renderPage(ctx, "message", view.Page{LoggedIn: true, Data: "Record unavailable"})
		default:
			return renderPage(ctx, "message", view.Page{LoggedIn: true, Error: classified.Message, Data: "Something went wrong"})
		}
	}

	return renderPage(ctx, "results", view.Page{LoggedIn: true, Data: record})
}

func (c *analysisController) Progress(ctx *fiber.Ctx) error {
	// One fetch; every statistic on the page derives from the same sequence
	analyses := c.progress.History(ctx.Context())
	return renderPage(ctx, "progress", view.Page{
		LoggedIn: true,
		Data: fiber.Map{
			"Snapshot": progress.BuildSnapshot(analyses),
			"Analyses": analyses,
		},
	})
}

// UploadedImage proxies stored image bytes from the remote static sub-route.
// Broken references degrade to a placeholder, never a broken rendering.
func (c *analysisController) UploadedImage(ctx *fiber.Ctx) error {
	data, contentType := c.records.Image(ctx.Context(), ctx.Params("filename"))
	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Send(data)
}
