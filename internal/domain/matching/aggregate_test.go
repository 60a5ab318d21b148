package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func fixedID(s string) uuid.UUID { return uuid.MustParse(s) }

func newTestAggregator() *Aggregator {
	return NewAggregator(NewScorer(DefaultPolicy()), DefaultThresholds())
}

func TestRankCandidates_SupersetRanksFirst(t *testing.T) {
	r := Requirement{ID: uuid.New(), RequiredSkills: NewTokenSet("Python", "SQL", "Java")}
	subset := Candidate{ID: uuid.New(), Name: "subset", Skills: NewTokenSet("Python", "SQL")}
	superset := Candidate{ID: uuid.New(), Name: "superset", Skills: NewTokenSet("Python", "SQL", "Java")}

	got := newTestAggregator().RankCandidatesForRequirement(r, []Candidate{subset, superset}, RankOptions{})

	require.Len(t, got, 2)
	assert.Equal(t, "superset", got[0].Candidate.Name)
	assert.Equal(t, 100.0, got[0].Result.MatchPercentage)
	assert.Equal(t, 73.3, got[1].Result.MatchPercentage)
}

func TestRankCandidates_DisplayThresholdAndQualifier(t *testing.T) {
	r := Requirement{
		ID:             uuid.New(),
		RequiredSkills: NewTokenSet("Go", "SQL", "Docker", "AWS", "React"),
		MinQualifier:   ptr(7.5),
	}
	strong := Candidate{ID: uuid.New(), Name: "strong", Qualifier: 8, Skills: NewTokenSet("Go", "SQL", "Docker", "AWS")}
	lowGPA := Candidate{ID: uuid.New(), Name: "low-gpa", Qualifier: 6.9, Skills: NewTokenSet("Go", "SQL", "Docker", "AWS", "React")}
	weak := Candidate{ID: uuid.New(), Name: "weak", Qualifier: 9, Skills: NewTokenSet("Go")}

	agg := newTestAggregator()

	got := agg.RankCandidatesForRequirement(r, []Candidate{strong, lowGPA, weak}, RankOptions{ApplyQualifierFilter: true})
	require.Len(t, got, 1)
	assert.Equal(t, "strong", got[0].Candidate.Name)

	got = agg.RankCandidatesForRequirement(r, []Candidate{strong, lowGPA, weak}, RankOptions{})
	require.Len(t, got, 2)
	assert.Equal(t, "low-gpa", got[0].Candidate.Name)

	got = agg.RankCandidatesForRequirement(r, []Candidate{strong, lowGPA, weak}, Unfiltered())
	require.Len(t, got, 3)
	assert.Equal(t, "weak", got[2].Candidate.Name)
	// 0.8 * 1/5 + 0.2
	assert.Equal(t, 36.0, got[2].Result.MatchPercentage)
}

func TestRankCandidates_TiesOrderedByID(t *testing.T) {
	r := Requirement{ID: uuid.New(), RequiredSkills: NewTokenSet("Go")}
	a := Candidate{ID: fixedID("00000000-0000-0000-0000-00000000000a"), Skills: NewTokenSet("Go")}
	b := Candidate{ID: fixedID("00000000-0000-0000-0000-00000000000b"), Skills: NewTokenSet("Go")}
	c := Candidate{ID: fixedID("00000000-0000-0000-0000-00000000000c"), Skills: NewTokenSet("Go")}

	got := newTestAggregator().RankCandidatesForRequirement(r, []Candidate{c, a, b}, RankOptions{})

	require.Len(t, got, 3)
	assert.Equal(t, a.ID, got[0].Candidate.ID)
	assert.Equal(t, b.ID, got[1].Candidate.ID)
	assert.Equal(t, c.ID, got[2].Candidate.ID)
}

func TestRankCandidates_SortedDescending(t *testing.T) {
	r := Requirement{ID: uuid.New(), RequiredSkills: NewTokenSet(vocabulary...), RequiredCourses: NewTokenSet("OS", "DBMS")}
	candidates := make([]Candidate, 0, len(vocabulary))
	for i := range vocabulary {
		candidates = append(candidates, Candidate{ID: uuid.New(), Skills: NewTokenSet(vocabulary[:i+1]...), Courses: NewTokenSet("OS")})
	}

	got := newTestAggregator().RankCandidatesForRequirement(r, candidates, Unfiltered())

	require.Len(t, got, len(candidates))
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Result.MatchPercentage, got[i].Result.MatchPercentage)
	}
}

func TestRankRequirements_GroupFallbackQualifier(t *testing.T) {
	c := Candidate{ID: uuid.New(), Qualifier: 7.0, Skills: NewTokenSet("Python", "SQL")}
	ownOverridesGroup := Requirement{
		ID: uuid.New(), Title: "own-threshold",
		RequiredSkills:    NewTokenSet("Python"),
		MinQualifier:      ptr(6.5),
		GroupMinQualifier: ptr(9.0),
	}
	groupOnly := Requirement{
		ID: uuid.New(), Title: "group-threshold",
		RequiredSkills:    NewTokenSet("Python"),
		GroupMinQualifier: ptr(8.0),
	}
	open := Requirement{
		ID: uuid.New(), Title: "no-threshold",
		RequiredSkills: NewTokenSet("Python", "SQL", "Java"),
	}
	poor := Requirement{
		ID: uuid.New(), Title: "poor-fit",
		RequiredSkills:  NewTokenSet("Java", "C++", "Rust", "Go"),
		RequiredCourses: NewTokenSet("Compilers"),
	}

	got := newTestAggregator().RankRequirementsForCandidate(c, []Requirement{poor, open, groupOnly, ownOverridesGroup}, RankOptions{ApplyQualifierFilter: true})

	require.Len(t, got, 2)
	assert.Equal(t, "own-threshold", got[0].Requirement.Title)
	assert.Equal(t, "no-threshold", got[1].Requirement.Title)
}

func TestRankRequirements_UsesRequirementThreshold(t *testing.T) {
	c := Candidate{ID: uuid.New(), Skills: NewTokenSet("Go")}
	// 0.8 * 1/3 = 26.7, plus 0 for courses
	r := Requirement{ID: uuid.New(), RequiredSkills: NewTokenSet("Go", "SQL", "AWS"), RequiredCourses: NewTokenSet("OS")}

	agg := NewAggregator(nil, Thresholds{CandidateDisplay: 0, RequirementDisplay: 30})
	assert.Empty(t, agg.RankRequirementsForCandidate(c, []Requirement{r}, RankOptions{}))
	assert.Len(t, agg.RankRequirementsForCandidate(c, []Requirement{r}, RankOptions{MinMatch: ptr(25)}), 1)
}

func TestAggregateStatistics(t *testing.T) {
	st := AggregateStatistics([]CandidateMatch{})
	assert.Equal(t, Statistics{}, st)

	st = AggregateStatistics([]CandidateMatch{
		{Result: Result{MatchPercentage: 100, IsEligible: true}},
		{Result: Result{MatchPercentage: 73.3}},
		{Result: Result{MatchPercentage: 20}},
	})
	assert.Equal(t, 3, st.Count)
	assert.Equal(t, 1, st.EligibleCount)
	assert.InDelta(t, 64.4, st.AverageMatchPercentage, 1e-9)
}

func TestSkillDistribution(t *testing.T) {
	assert.Equal(t, map[string]int{}, SkillDistribution(nil))

	got := SkillDistribution([]Candidate{
		{Skills: NewTokenSet("Python", "SQL")},
		{Skills: NewTokenSet("Python")},
		{},
	})
	assert.Equal(t, map[string]int{"Python": 2, "SQL": 1}, got)
}

func TestRecommendForGaps(t *testing.T) {
	web := CourseOffering{Name: "Web Development Bootcamp", SkillsCovered: NewTokenSet("HTML", "CSS", "JavaScript", "React")}
	java := CourseOffering{Name: "Java Programming Masterclass", SkillsCovered: NewTokenSet("Java")}
	undecodable := CourseOffering{Name: "broken", SkillsCovered: DecodeTokenSet([]byte("nope"))}

	got := RecommendForGaps(NewTokenSet("React"), []CourseOffering{java, undecodable, web})
	require.Len(t, got, 1)
	assert.Equal(t, "Web Development Bootcamp", got[0].Name)
	assert.Equal(t, []string{"React"}, GapCoverage(got[0], NewTokenSet("React", "Go")).Sorted())

	assert.Empty(t, RecommendForGaps(NewTokenSet(), []CourseOffering{web, java}))
}

func TestMissingAcross(t *testing.T) {
	got := MissingAcross([]RequirementMatch{
		{Result: Result{MissingSkills: NewTokenSet("Java")}},
		{Result: Result{MissingSkills: NewTokenSet("React", "Java")}},
	})
	assert.Equal(t, []string{"Java", "React"}, got.Sorted())
}

func TestDataset_RankByID(t *testing.T) {
	r := Requirement{ID: uuid.New(), RequiredSkills: NewTokenSet("Go")}
	c := Candidate{ID: uuid.New(), Skills: NewTokenSet("Go")}
	d := Dataset{Candidates: []Candidate{c}, Requirements: []Requirement{r}}
	agg := newTestAggregator()

	cm, err := agg.RankCandidatesByID(d, r.ID, RankOptions{})
	require.NoError(t, err)
	require.Len(t, cm, 1)

	rm, err := agg.RankRequirementsByID(d, c.ID, RankOptions{})
	require.NoError(t, err)
	require.Len(t, rm, 1)

	_, err = agg.RankCandidatesByID(d, uuid.New(), RankOptions{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = agg.RankRequirementsByID(d, uuid.New(), RankOptions{})
	assert.ErrorIs(t, err, ErrNotFound)
}
