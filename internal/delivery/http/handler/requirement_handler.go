package handler

import (
	"placement-match/internal/delivery/http/dto"
	"placement-match/internal/delivery/http/response"
	"placement-match/internal/domain/matching"
	"placement-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RequirementHandler struct {
	uc usecase.MatchingUsecase
}

func NewRequirementHandler(uc usecase.MatchingUsecase) *RequirementHandler {
	return &RequirementHandler{uc: uc}
}

func (h *RequirementHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/requirements")
	grp.Get("/:requirement_id/candidates", h.RankCandidates)
	grp.Get("/:requirement_id/analysis", h.Analysis)
}

func (h *RequirementHandler) RankCandidates(c fiber.Ctx) error {
	requirementID, err := parseUUIDParam(c, "requirement_id")
	if err != nil {
		return err
	}
	params, err := parseRankParams(c)
	if err != nil {
		return err
	}

	ranking, err := h.uc.RankCandidates(c.Context(), requirementID, params)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CandidateRankingResponse{
		Requirement: dto.NewRequirementResponse(ranking.Requirement),
		Candidates:  candidateItems(ranking.Matches),
	})
}

func (h *RequirementHandler) Analysis(c fiber.Ctx) error {
	requirementID, err := parseUUIDParam(c, "requirement_id")
	if err != nil {
		return err
	}

	a, err := h.uc.CandidateAnalysis(c.Context(), requirementID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CandidateAnalysisResponse{
		Requirement: dto.NewRequirementResponse(a.Requirement),
		Candidates:  candidateItems(a.Matches),
		Stats: dto.StatisticsResponse{
			TotalCandidates:    a.Stats.Count,
			EligibleCandidates: a.Stats.EligibleCount,
			AverageMatch:       a.Stats.AverageMatchPercentage,
		},
		SkillDistribution: skillDistribution(a.SkillDistribution),
	})
}

func skillDistribution(d map[string]int) map[string]int {
	if d == nil {
		return map[string]int{}
	}
	return d
}

func candidateItems(matches []matching.CandidateMatch) []dto.CandidateMatchItem {
	out := make([]dto.CandidateMatchItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.CandidateMatchItem{
			Candidate: dto.NewCandidateResponse(m.Candidate),
			Result:    dto.NewMatchResultResponse(m.Result),
		})
	}
	return out
}
