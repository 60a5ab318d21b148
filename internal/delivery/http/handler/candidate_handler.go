package handler

import (
	"placement-match/internal/delivery/http/dto"
	"placement-match/internal/delivery/http/response"
	"placement-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.MatchingUsecase
}

func NewCandidateHandler(uc usecase.MatchingUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/candidates")
	grp.Get("/:candidate_id/requirements", h.RankRequirements)
	grp.Get("/:candidate_id/course-recommendations", h.CourseRecommendations)
	grp.Get("/:candidate_id/summary", h.Summary)
}

func (h *CandidateHandler) RankRequirements(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidate_id")
	if err != nil {
		return err
	}
	params, err := parseRankParams(c)
	if err != nil {
		return err
	}

	ranking, err := h.uc.RankRequirements(c.Context(), candidateID, params)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.RequirementRankingResponse{
		CandidateID:  ranking.Candidate.ID,
		Requirements: make([]dto.RequirementMatchItem, 0, len(ranking.Matches)),
	}
	for _, m := range ranking.Matches {
		out.Requirements = append(out.Requirements, dto.RequirementMatchItem{
			Requirement: dto.NewRequirementResponse(m.Requirement),
			Result:      dto.NewMatchResultResponse(m.Result),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CandidateHandler) CourseRecommendations(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidate_id")
	if err != nil {
		return err
	}

	recs, err := h.uc.RecommendCourses(c.Context(), candidateID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.CourseRecommendationsResponse{
		CandidateID:   recs.Candidate.ID,
		MissingSkills: recs.MissingSkills.Sorted(),
		Courses:       make([]dto.CourseRecommendationItem, 0, len(recs.Items)),
	}
	for _, it := range recs.Items {
		out.Courses = append(out.Courses, dto.CourseRecommendationItem{
			ID:            it.Offering.ID,
			Name:          it.Offering.Name,
			Platform:      it.Offering.Platform,
			URL:           it.Offering.URL,
			SkillsCovered: it.Offering.SkillsCovered.Sorted(),
			Covers:        it.Covers.Sorted(),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CandidateHandler) Summary(c fiber.Ctx) error {
	candidateID, err := parseUUIDParam(c, "candidate_id")
	if err != nil {
		return err
	}

	s, err := h.uc.Summary(c.Context(), candidateID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SummaryResponse{
		CandidateID: s.Candidate.ID,
		Name:        s.Candidate.Name,
		Summary:     s.Summary,
	})
}
