package dto

import (
	"placement-match/internal/domain/matching"

	"github.com/google/uuid"
)

type MatchResultResponse struct {
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchedCourses  []string `json:"matched_courses"`
	MissingCourses  []string `json:"missing_courses"`
	SkillsScore     float64  `json:"skills_score"`
	CoursesScore    float64  `json:"courses_score"`
	IsEligible      bool     `json:"is_eligible"`
}

func NewMatchResultResponse(res matching.Result) MatchResultResponse {
	return MatchResultResponse{
		MatchPercentage: res.MatchPercentage,
		MatchedSkills:   res.MatchedSkills.Sorted(),
		MissingSkills:   res.MissingSkills.Sorted(),
		MatchedCourses:  res.MatchedCourses.Sorted(),
		MissingCourses:  res.MissingCourses.Sorted(),
		SkillsScore:     res.SkillsScore,
		CoursesScore:    res.CoursesScore,
		IsEligible:      res.IsEligible,
	}
}

type CandidateResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Skills    []string  `json:"skills"`
	Courses   []string  `json:"courses"`
	Qualifier float64   `json:"qualifier"`
}

func NewCandidateResponse(c matching.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:        c.ID,
		Name:      c.Name,
		Skills:    c.Skills.Sorted(),
		Courses:   c.Courses.Sorted(),
		Qualifier: c.Qualifier,
	}
}

type RequirementResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	GroupID         *uuid.UUID `json:"group_id"`
	GroupName       string     `json:"group_name,omitempty"`
	RequiredSkills  []string   `json:"required_skills"`
	RequiredCourses []string   `json:"required_courses"`
	MinQualifier    *float64   `json:"min_qualifier"`
}

func NewRequirementResponse(r matching.Requirement) RequirementResponse {
	out := RequirementResponse{
		ID:              r.ID,
		Title:           r.Title,
		GroupName:       r.GroupName,
		RequiredSkills:  r.RequiredSkills.Sorted(),
		RequiredCourses: r.RequiredCourses.Sorted(),
		MinQualifier:    r.EffectiveMinQualifier(),
	}
	if r.GroupID != uuid.Nil {
		id := r.GroupID
		out.GroupID = &id
	}
	return out
}

type PairMatchResponse struct {
	CandidateID   uuid.UUID           `json:"candidate_id"`
	RequirementID uuid.UUID           `json:"requirement_id"`
	Result        MatchResultResponse `json:"result"`
}

type CandidateMatchItem struct {
	Candidate CandidateResponse   `json:"candidate"`
	Result    MatchResultResponse `json:"result"`
}

type CandidateRankingResponse struct {
	Requirement RequirementResponse  `json:"requirement"`
	Candidates  []CandidateMatchItem `json:"candidates"`
}

type StatisticsResponse struct {
	TotalCandidates    int     `json:"total_candidates"`
	EligibleCandidates int     `json:"eligible_candidates"`
	AverageMatch       float64 `json:"average_match"`
}

type CandidateAnalysisResponse struct {
	Requirement       RequirementResponse  `json:"requirement"`
	Candidates        []CandidateMatchItem `json:"candidates"`
	Stats             StatisticsResponse   `json:"stats"`
	SkillDistribution map[string]int       `json:"skill_distribution"`
}

type RequirementMatchItem struct {
	Requirement RequirementResponse `json:"requirement"`
	Result      MatchResultResponse `json:"result"`
}

type RequirementRankingResponse struct {
	CandidateID  uuid.UUID              `json:"candidate_id"`
	Requirements []RequirementMatchItem `json:"requirements"`
}

type CourseRecommendationItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Platform      string    `json:"platform"`
	URL           string    `json:"url"`
	SkillsCovered []string  `json:"skills_covered"`
	Covers        []string  `json:"covers"`
}

type CourseRecommendationsResponse struct {
	CandidateID   uuid.UUID                  `json:"candidate_id"`
	MissingSkills []string                   `json:"missing_skills"`
	Courses       []CourseRecommendationItem `json:"courses"`
}

type SummaryResponse struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Name        string    `json:"name"`
	Summary     string    `json:"summary"`
}
