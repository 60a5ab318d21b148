package matching

import "github.com/google/uuid"

type Candidate struct {
	ID       uuid.UUID
	Name     string
	Skills   TokenSet
	Courses  TokenSet
	Projects []string
	// Qualifier is a GPA-like scalar used only for pre-filtering.
	Qualifier float64
}

type Requirement struct {
	ID              uuid.UUID
	Title           string
	GroupID         uuid.UUID
	GroupName       string
	RequiredSkills  TokenSet
	RequiredCourses TokenSet
	MinQualifier    *float64
	// GroupMinQualifier is the owning group's default, used when
	// MinQualifier is unset.
	GroupMinQualifier *float64
}

// EffectiveMinQualifier returns the first non-nil of the requirement's own
// threshold and its group's threshold.
func (r Requirement) EffectiveMinQualifier() *float64 {
	if r.MinQualifier != nil {
		return r.MinQualifier
	}
	return r.GroupMinQualifier
}

// Admits reports whether c passes the requirement's qualifier threshold.
// Requirements without a threshold admit everyone.
func (r Requirement) Admits(c Candidate) bool {
	threshold := r.EffectiveMinQualifier()
	if threshold == nil {
		return true
	}
	return c.Qualifier >= *threshold
}

type CourseOffering struct {
	ID            uuid.UUID
	Name          string
	Platform      string
	URL           string
	SkillsCovered TokenSet
}
