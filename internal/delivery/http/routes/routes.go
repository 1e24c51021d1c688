package routes

import (
	"upfreelance/internal/delivery/http/handler"
	"upfreelance/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	auth     *handler.AuthHandler
	user     *handler.UserHandler
	skill    *handler.SkillHandler
	profile  *handler.ProfileHandler
	job      *handler.JobHandler
	proposal *handler.ProposalHandler
	ocr      *handler.OCRHandler

	authMW *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	user *handler.UserHandler,
	skill *handler.SkillHandler,
	profile *handler.ProfileHandler,
	job *handler.JobHandler,
	proposal *handler.ProposalHandler,
	ocr *handler.OCRHandler,
	authMW *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:   health,
		auth:     auth,
		user:     user,
		skill:    skill,
		profile:  profile,
		job:      job,
		proposal: proposal,
		ocr:      ocr,
		authMW:   authMW,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.auth.RegisterRoutes(api.Group("/auth"))
	r.user.RegisterRoutes(api)
	r.skill.RegisterRoutes(api)
	r.profile.RegisterRoutes(api)
	r.job.RegisterRoutes(api)
	r.proposal.RegisterRoutes(api)
	r.ocr.RegisterRoutes(api)

	// Only the current-user route requires a bearer token.
	r.user.RegisterMe(api, r.authMW.Middleware())
}
