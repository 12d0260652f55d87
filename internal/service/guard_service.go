package service

import (
	"net/url"
	"time"

	"lumera-client/internal/pkg/logger"
	"lumera-client/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

// GuardGracePeriod delays the auth check so a protected view never flashes
// while the session store is being read.
const GuardGracePeriod = 100 * time.Millisecond

// Decision is the guard's verdict for one route activation.
type Decision struct {
	Allow      bool
	RedirectTo string
	From       string
}

type IGuardService interface {
	Evaluate(route string) Decision
	Middleware() fiber.Handler
}

type guardService struct {
	sessions contract.SessionRepository
	logger   logger.ILogger
	sleep    func(time.Duration)
}

func NewGuardService(sessions contract.SessionRepository, log logger.ILogger) IGuardService {
	return &guardService{
		sessions: sessions,
		logger:   log,
		sleep:    time.Sleep,
	}
}

// Evaluate waits out the grace period, then reads the session once. A stored
// token is trusted as-is: expiry is detected reactively when a request using
// it is bounced, never checked here.
func (g *guardService) Evaluate(route string) Decision {
	g.sleep(GuardGracePeriod)

	session := g.sessions.Get()
	if !session.Authenticated() {
		g.logger.Info("guard", "no token found, redirecting to login", map[string]interface{}{
			"from": route,
		})
		return Decision{
			Allow:      false,
			RedirectTo: "/login?from=" + url.QueryEscape(route),
			From:       route,
		}
	}
	return Decision{Allow: true}
}

// Middleware wraps a protected route group. It runs on every request so a
// login state change underneath a long-lived view is picked up on the next
// navigation.
func (g *guardService) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		decision := g.Evaluate(ctx.Path())
		if !decision.Allow {
			return ctx.Redirect(decision.RedirectTo, fiber.StatusFound)
		}
		return ctx.Next()
	}
}
