package usecase

import (
	"context"
	"errors"

	"placement-match/internal/domain/matching"
	"placement-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RankParams struct {
	MinMatch        *float64
	QualifierFilter bool
}

func (p RankParams) validate() error {
	if p.MinMatch != nil && !matching.InPercentRange(*p.MinMatch) {
		return ErrInvalidInput
	}
	return nil
}

func (p RankParams) options() matching.RankOptions {
	return matching.RankOptions{ApplyQualifierFilter: p.QualifierFilter, MinMatch: p.MinMatch}
}

type PairMatch struct {
	Candidate   matching.Candidate
	Requirement matching.Requirement
	Result      matching.Result
}

type CandidateRanking struct {
	Requirement matching.Requirement
	Matches     []matching.CandidateMatch
}

type RequirementRanking struct {
	Candidate matching.Candidate
	Matches   []matching.RequirementMatch
}

type CandidateAnalysis struct {
	Requirement       matching.Requirement
	Matches           []matching.CandidateMatch
	Stats             matching.Statistics
	SkillDistribution map[string]int
}

type CourseRecommendation struct {
	Offering matching.CourseOffering
	Covers   matching.TokenSet
}

type CourseRecommendations struct {
	Candidate     matching.Candidate
	MissingSkills matching.TokenSet
	Items         []CourseRecommendation
}

type CandidateSummary struct {
	Candidate matching.Candidate
	Summary   string
}

type MatchingUsecase interface {
	ScoreSets(skills, courses, requiredSkills, requiredCourses []string) matching.Result
	ScorePair(ctx context.Context, candidateID, requirementID uuid.UUID) (PairMatch, error)
	RankCandidates(ctx context.Context, requirementID uuid.UUID, params RankParams) (CandidateRanking, error)
	CandidateAnalysis(ctx context.Context, requirementID uuid.UUID) (CandidateAnalysis, error)
	RankRequirements(ctx context.Context, candidateID uuid.UUID, params RankParams) (RequirementRanking, error)
	RecommendCourses(ctx context.Context, candidateID uuid.UUID) (CourseRecommendations, error)
	Summary(ctx context.Context, candidateID uuid.UUID) (CandidateSummary, error)
}

type Matching struct {
	candidates   repository.CandidateRepository
	requirements repository.RequirementRepository
	catalog      repository.CatalogRepository
	aggregator   *matching.Aggregator
	logger       *zap.Logger
}

func NewMatchingUsecase(
	candidates repository.CandidateRepository,
	requirements repository.RequirementRepository,
	catalog repository.CatalogRepository,
	aggregator *matching.Aggregator,
	logger *zap.Logger,
) *Matching {
	if aggregator == nil {
		aggregator = matching.NewAggregator(nil, matching.DefaultThresholds())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{
		candidates:   candidates,
		requirements: requirements,
		catalog:      catalog,
		aggregator:   aggregator,
		logger:       logger,
	}
}

func (u *Matching) ScoreSets(skills, courses, requiredSkills, requiredCourses []string) matching.Result {
	r := matching.Requirement{
		RequiredSkills:  matching.TokenSetFromInput(requiredSkills),
		RequiredCourses: matching.TokenSetFromInput(requiredCourses),
	}
	return u.aggregator.Scorer().ScoreSets(matching.TokenSetFromInput(skills), matching.TokenSetFromInput(courses), r)
}

func (u *Matching) ScorePair(ctx context.Context, candidateID, requirementID uuid.UUID) (PairMatch, error) {
	c, err := u.loadCandidate(ctx, candidateID)
	if err != nil {
		return PairMatch{}, err
	}
	r, err := u.loadRequirement(ctx, requirementID)
	if err != nil {
		return PairMatch{}, err
	}
	return PairMatch{Candidate: c, Requirement: r, Result: u.aggregator.Scorer().Score(c, r)}, nil
}

func (u *Matching) RankCandidates(ctx context.Context, requirementID uuid.UUID, params RankParams) (CandidateRanking, error) {
	if err := params.validate(); err != nil {
		return CandidateRanking{}, err
	}
	r, err := u.loadRequirement(ctx, requirementID)
	if err != nil {
		return CandidateRanking{}, err
	}
	all, err := u.listCandidates(ctx)
	if err != nil {
		return CandidateRanking{}, err
	}
	return CandidateRanking{
		Requirement: r,
		Matches:     u.aggregator.RankCandidatesForRequirement(r, all, params.options()),
	}, nil
}

func (u *Matching) CandidateAnalysis(ctx context.Context, requirementID uuid.UUID) (CandidateAnalysis, error) {
	r, err := u.loadRequirement(ctx, requirementID)
	if err != nil {
		return CandidateAnalysis{}, err
	}
	all, err := u.listCandidates(ctx)
	if err != nil {
		return CandidateAnalysis{}, err
	}
	ranked := u.aggregator.RankCandidatesForRequirement(r, all, matching.Unfiltered())
	return CandidateAnalysis{
		Requirement:       r,
		Matches:           ranked,
		Stats:             matching.AggregateStatistics(ranked),
		SkillDistribution: matching.SkillDistribution(all),
	}, nil
}

func (u *Matching) RankRequirements(ctx context.Context, candidateID uuid.UUID, params RankParams) (RequirementRanking, error) {
	if err := params.validate(); err != nil {
		return RequirementRanking{}, err
	}
	c, err := u.loadCandidate(ctx, candidateID)
	if err != nil {
		return RequirementRanking{}, err
	}
	reqs, err := u.listRequirements(ctx)
	if err != nil {
		return RequirementRanking{}, err
	}
	return RequirementRanking{
		Candidate: c,
		Matches:   u.aggregator.RankRequirementsForCandidate(c, reqs, params.options()),
	}, nil
}

// RecommendCourses suggests catalog offerings for the skills the candidate
// lacks across every requirement they qualify for and clear the requirement
// display threshold on.
func (u *Matching) RecommendCourses(ctx context.Context, candidateID uuid.UUID) (CourseRecommendations, error) {
	c, err := u.loadCandidate(ctx, candidateID)
	if err != nil {
		return CourseRecommendations{}, err
	}
	reqs, err := u.listRequirements(ctx)
	if err != nil {
		return CourseRecommendations{}, err
	}

	ranked := u.aggregator.RankRequirementsForCandidate(c, reqs, matching.RankOptions{ApplyQualifierFilter: true})
	missing := matching.MissingAcross(ranked)

	out := CourseRecommendations{Candidate: c, MissingSkills: missing, Items: make([]CourseRecommendation, 0)}
	if missing.IsEmpty() {
		return out, nil
	}

	catalog, err := u.catalog.ListOfferings(ctx)
	if err != nil {
		u.logger.Error("list course offerings failed", zap.Error(err))
		return CourseRecommendations{}, ErrInternal
	}

	for _, o := range matching.RecommendForGaps(missing, catalog) {
		out.Items = append(out.Items, CourseRecommendation{Offering: o, Covers: matching.GapCoverage(o, missing)})
	}
	return out, nil
}

func (u *Matching) Summary(ctx context.Context, candidateID uuid.UUID) (CandidateSummary, error) {
	c, err := u.loadCandidate(ctx, candidateID)
	if err != nil {
		return CandidateSummary{}, err
	}
	return CandidateSummary{Candidate: c, Summary: matching.SummarizeCandidate(c)}, nil
}

func (u *Matching) loadCandidate(ctx context.Context, id uuid.UUID) (matching.Candidate, error) {
	if id == uuid.Nil {
		return matching.Candidate{}, ErrCandidateNotFound
	}
	c, err := u.candidates.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			u.logger.Error("load candidate failed", zap.String("candidate_id", id.String()), zap.Error(err))
		}
		return matching.Candidate{}, notFoundOr(ErrCandidateNotFound, err)
	}
	return c, nil
}

func (u *Matching) loadRequirement(ctx context.Context, id uuid.UUID) (matching.Requirement, error) {
	if id == uuid.Nil {
		return matching.Requirement{}, ErrRequirementNotFound
	}
	r, err := u.requirements.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			u.logger.Error("load requirement failed", zap.String("requirement_id", id.String()), zap.Error(err))
		}
		return matching.Requirement{}, notFoundOr(ErrRequirementNotFound, err)
	}
	return r, nil
}

func (u *Matching) listCandidates(ctx context.Context) ([]matching.Candidate, error) {
	all, err := u.candidates.List(ctx)
	if err != nil {
		u.logger.Error("list candidates failed", zap.Error(err))
		return nil, ErrInternal
	}
	return all, nil
}

func (u *Matching) listRequirements(ctx context.Context) ([]matching.Requirement, error) {
	reqs, err := u.requirements.ListActive(ctx)
	if err != nil {
		u.logger.Error("list requirements failed", zap.Error(err))
		return nil, ErrInternal
	}
	return reqs, nil
}
