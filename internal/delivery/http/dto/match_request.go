package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type ScoreRequest struct {
	CandidateSkills  []string `json:"candidate_skills" validate:"max=500,dive,max=100"`
	CandidateCourses []string `json:"candidate_courses" validate:"max=500,dive,max=100"`
	RequiredSkills   []string `json:"required_skills" validate:"max=500,dive,max=100"`
	RequiredCourses  []string `json:"required_courses" validate:"max=500,dive,max=100"`
}

func (r *ScoreRequest) Validate() error {
	return validate.Struct(r)
}
