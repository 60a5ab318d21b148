package matching

import "sort"

type CandidateMatch struct {
	Candidate Candidate
	Result    Result
}

func (m CandidateMatch) MatchResult() Result { return m.Result }

type RequirementMatch struct {
	Requirement Requirement
	Result      Result
}

func (m RequirementMatch) MatchResult() Result { return m.Result }

// Ranked is implemented by every entry of a ranked sequence.
type Ranked interface {
	MatchResult() Result
}

type RankOptions struct {
	// ApplyQualifierFilter drops entities failing the requirement's
	// effective minimum qualifier before scoring.
	ApplyQualifierFilter bool
	// MinMatch overrides the configured display threshold when set.
	MinMatch *float64
}

// Unfiltered ranks every entity: no qualifier filter, no display threshold.
func Unfiltered() RankOptions {
	zero := 0.0
	return RankOptions{MinMatch: &zero}
}

type Statistics struct {
	Count                  int
	EligibleCount          int
	AverageMatchPercentage float64
}

type Aggregator struct {
	scorer     *Scorer
	thresholds Thresholds
}

func NewAggregator(scorer *Scorer, thresholds Thresholds) *Aggregator {
	if scorer == nil {
		scorer = NewScorer(DefaultPolicy())
	}
	return &Aggregator{scorer: scorer, thresholds: thresholds}
}

func (a *Aggregator) Scorer() *Scorer {
	return a.scorer
}

func (a *Aggregator) Thresholds() Thresholds {
	return a.thresholds
}

// RankCandidatesForRequirement scores candidates against r and returns the
// entries at or above the display threshold, best first. Equal scores are
// ordered by candidate ID.
func (a *Aggregator) RankCandidatesForRequirement(r Requirement, candidates []Candidate, opts RankOptions) []CandidateMatch {
	minMatch := a.thresholds.CandidateDisplay
	if opts.MinMatch != nil {
		minMatch = *opts.MinMatch
	}

	out := make([]CandidateMatch, 0, len(candidates))
	for _, c := range candidates {
		if opts.ApplyQualifierFilter && !r.Admits(c) {
			continue
		}
		res := a.scorer.Score(c, r)
		if res.MatchPercentage < minMatch {
			continue
		}
		out = append(out, CandidateMatch{Candidate: c, Result: res})
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Result.MatchPercentage, out[j].Result.MatchPercentage
		if pi != pj {
			return pi > pj
		}
		return out[i].Candidate.ID.String() < out[j].Candidate.ID.String()
	})
	return out
}

// RankRequirementsForCandidate is the mirror of RankCandidatesForRequirement.
// Each requirement's qualifier threshold falls back to its group default.
func (a *Aggregator) RankRequirementsForCandidate(c Candidate, requirements []Requirement, opts RankOptions) []RequirementMatch {
	minMatch := a.thresholds.RequirementDisplay
	if opts.MinMatch != nil {
		minMatch = *opts.MinMatch
	}

	out := make([]RequirementMatch, 0, len(requirements))
	for _, r := range requirements {
		if opts.ApplyQualifierFilter && !r.Admits(c) {
			continue
		}
		res := a.scorer.Score(c, r)
		if res.MatchPercentage < minMatch {
			continue
		}
		out = append(out, RequirementMatch{Requirement: r, Result: res})
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Result.MatchPercentage, out[j].Result.MatchPercentage
		if pi != pj {
			return pi > pj
		}
		return out[i].Requirement.ID.String() < out[j].Requirement.ID.String()
	})
	return out
}

// AggregateStatistics reduces a ranked sequence. The average is rounded to
// one decimal and is 0 for an empty sequence.
func AggregateStatistics[T Ranked](entries []T) Statistics {
	st := Statistics{Count: len(entries)}
	if len(entries) == 0 {
		return st
	}

	var sum float64
	for _, e := range entries {
		res := e.MatchResult()
		sum += res.MatchPercentage
		if res.IsEligible {
			st.EligibleCount++
		}
	}
	st.AverageMatchPercentage = round1(sum / float64(len(entries)))
	return st
}

// SkillDistribution counts, for each skill, how many candidates list it.
func SkillDistribution(candidates []Candidate) map[string]int {
	out := make(map[string]int)
	for _, c := range candidates {
		for _, s := range c.Skills.Sorted() {
			out[s]++
		}
	}
	return out
}

// RecommendForGaps returns, in catalog order, every offering that covers at
// least one missing skill.
func RecommendForGaps(missing TokenSet, catalog []CourseOffering) []CourseOffering {
	out := make([]CourseOffering, 0)
	if missing.IsEmpty() {
		return out
	}
	for _, o := range catalog {
		if o.SkillsCovered.Intersects(missing) {
			out = append(out, o)
		}
	}
	return out
}

// GapCoverage returns the missing skills that o covers.
func GapCoverage(o CourseOffering, missing TokenSet) TokenSet {
	return o.SkillsCovered.Intersect(missing)
}

// MissingAcross unions the missing skills of every entry.
func MissingAcross(matches []RequirementMatch) TokenSet {
	out := NewTokenSet()
	for _, m := range matches {
		out = out.Union(m.Result.MissingSkills)
	}
	return out
}
