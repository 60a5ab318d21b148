package handler

import (
	"errors"
	"strconv"

	"placement-match/internal/delivery/http/dto"
	"placement-match/internal/delivery/http/middleware"
	"placement-match/internal/delivery/http/response"
	"placement-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.ScoreSets)
	r.Get("/candidates/:candidate_id/requirements/:requirement_id/match", h.GetPairMatch)
}

func (h *MatchHandler) ScoreSets(c fiber.Ctx) error {
	var req dto.ScoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	res := h.uc.ScoreSets(req.CandidateSkills, req.CandidateCourses, req.RequiredSkills, req.RequiredCourses)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponse(res))
}

func (h *MatchHandler) GetPairMatch(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidate_id")
	if err != nil {
		return err
	}
	requirementID, err := parseUUIDParam(c, "requirement_id")
	if err != nil {
		return err
	}

	pair, err := h.uc.ScorePair(c.Context(), candidateID, requirementID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PairMatchResponse{
		CandidateID:   pair.Candidate.ID,
		RequirementID: pair.Requirement.ID,
		Result:        dto.NewMatchResultResponse(pair.Result),
	})
}

func parseUUIDParam(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return id, nil
}

// parseRankParams reads min_match and qualifier_filter. The qualifier filter
// is on unless explicitly disabled.
func parseRankParams(c fiber.Ctx) (usecase.RankParams, error) {
	params := usecase.RankParams{QualifierFilter: true}

	if s := c.Query("min_match"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return usecase.RankParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_match", nil, err)
		}
		params.MinMatch = &v
	}
	if s := c.Query("qualifier_filter"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return usecase.RankParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid qualifier_filter", nil, err)
		}
		params.QualifierFilter = v
	}
	return params, nil
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrRequirementNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Requirement not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
