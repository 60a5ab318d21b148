package matching

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultSkillWeight  = 0.80
	DefaultCourseWeight = 0.20

	DefaultCandidateDisplayThreshold   = 50.0
	DefaultRequirementDisplayThreshold = 30.0

	// EligibleMatchPercentage is the score a pair must reach to be eligible.
	// Only a perfect weighted score qualifies.
	EligibleMatchPercentage = 100.0

	weightSumTolerance = 1e-9
)

var ErrInvalidPolicy = errors.New("invalid matching policy")

// Policy holds the category weights of the weighted match score.
type Policy struct {
	SkillWeight  float64
	CourseWeight float64
}

func DefaultPolicy() Policy {
	return Policy{SkillWeight: DefaultSkillWeight, CourseWeight: DefaultCourseWeight}
}

func (p Policy) Validate() error {
	if !finite(p.SkillWeight) || !finite(p.CourseWeight) {
		return fmt.Errorf("%w: weights must be finite (skill=%v course=%v)", ErrInvalidPolicy, p.SkillWeight, p.CourseWeight)
	}
	if p.SkillWeight < 0 || p.CourseWeight < 0 {
		return fmt.Errorf("%w: weights must be non-negative (skill=%v course=%v)", ErrInvalidPolicy, p.SkillWeight, p.CourseWeight)
	}
	if math.Abs(p.SkillWeight+p.CourseWeight-1) > weightSumTolerance {
		return fmt.Errorf("%w: weights must sum to 1 (skill=%v course=%v)", ErrInvalidPolicy, p.SkillWeight, p.CourseWeight)
	}
	return nil
}

// Thresholds are the display cut-offs applied when ranking. They are
// presentation policy and do not affect scores or eligibility.
type Thresholds struct {
	CandidateDisplay   float64
	RequirementDisplay float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CandidateDisplay:   DefaultCandidateDisplayThreshold,
		RequirementDisplay: DefaultRequirementDisplayThreshold,
	}
}

func (t Thresholds) Validate() error {
	if !InPercentRange(t.CandidateDisplay) {
		return fmt.Errorf("%w: candidate display threshold out of range: %v", ErrInvalidPolicy, t.CandidateDisplay)
	}
	if !InPercentRange(t.RequirementDisplay) {
		return fmt.Errorf("%w: requirement display threshold out of range: %v", ErrInvalidPolicy, t.RequirementDisplay)
	}
	return nil
}

// InPercentRange reports whether v is a finite value in [0,100].
func InPercentRange(v float64) bool {
	return finite(v) && v >= 0 && v <= 100
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
