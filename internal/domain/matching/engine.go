package matching

import "math"

type Result struct {
	MatchPercentage float64
	MatchedSkills   TokenSet
	MissingSkills   TokenSet
	MatchedCourses  TokenSet
	MissingCourses  TokenSet
	// SkillsScore and CoursesScore are the category ratios as percentages
	// rounded to one decimal.
	SkillsScore  float64
	CoursesScore float64
	SkillsRatio  float64
	CoursesRatio float64
	IsEligible   bool
}

type Scorer struct {
	policy Policy
}

// NewScorer returns a scorer for p. Callers are expected to have validated
// p; an invalid policy still scores but may break the [0, 100] bound, which
// is enforced by clamping.
func NewScorer(p Policy) *Scorer {
	return &Scorer{policy: p}
}

func (s *Scorer) Policy() Policy {
	if s == nil {
		return DefaultPolicy()
	}
	return s.policy
}

func (s *Scorer) Score(c Candidate, r Requirement) Result {
	return s.ScoreSets(c.Skills, c.Courses, r)
}

func (s *Scorer) ScoreSets(skills, courses TokenSet, r Requirement) Result {
	p := s.Policy()

	matchedSkills := skills.Intersect(r.RequiredSkills)
	missingSkills := r.RequiredSkills.Difference(skills)
	matchedCourses := courses.Intersect(r.RequiredCourses)
	missingCourses := r.RequiredCourses.Difference(courses)

	skillsRatio := coverage(matchedSkills.Len(), r.RequiredSkills.Len())
	coursesRatio := coverage(matchedCourses.Len(), r.RequiredCourses.Len())

	overall := p.SkillWeight*skillsRatio + p.CourseWeight*coursesRatio
	pct := clampFloat(round1(overall*100), 0, 100)

	return Result{
		MatchPercentage: pct,
		MatchedSkills:   matchedSkills,
		MissingSkills:   missingSkills,
		MatchedCourses:  matchedCourses,
		MissingCourses:  missingCourses,
		SkillsScore:     round1(skillsRatio * 100),
		CoursesScore:    round1(coursesRatio * 100),
		SkillsRatio:     skillsRatio,
		CoursesRatio:    coursesRatio,
		IsEligible:      pct >= EligibleMatchPercentage,
	}
}

// coverage is matched/required, or 1 when nothing is required.
func coverage(matched, required int) float64 {
	if required <= 0 {
		return 1
	}
	return float64(matched) / float64(required)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
