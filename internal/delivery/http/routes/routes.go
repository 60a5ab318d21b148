package routes

import (
	"placement-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health      *handler.HealthHandler
	Match       *handler.MatchHandler
	Candidate   *handler.CandidateHandler
	Requirement *handler.RequirementHandler
}

type Registry struct {
	handlers Handlers
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{handlers: h}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.handlers.Health == nil {
		return
	}
	r.handlers.Health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.handlers)
}
