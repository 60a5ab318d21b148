package v1

import (
	"placement-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, match *handler.MatchHandler, candidates *handler.CandidateHandler, requirements *handler.RequirementHandler) {
	if r == nil {
		return
	}

	if match != nil {
		match.RegisterRoutes(r)
	}
	if candidates != nil {
		candidates.RegisterRoutes(r)
	}
	if requirements != nil {
		requirements.RegisterRoutes(r)
	}
}
