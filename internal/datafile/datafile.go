// Package datafile reads candidates, requirements and whole datasets from
// JSON documents for offline scoring.
package datafile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"placement-match/internal/domain/matching"

	"github.com/google/uuid"
)

type Candidate struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Skills    matching.TokenSet `json:"skills"`
	Courses   matching.TokenSet `json:"courses"`
	Projects  []string          `json:"projects"`
	Qualifier float64           `json:"qualifier"`
}

func (c Candidate) Domain() matching.Candidate {
	return matching.Candidate(c)
}

type Requirement struct {
	ID                uuid.UUID         `json:"id"`
	Title             string            `json:"title"`
	GroupID           uuid.UUID         `json:"group_id"`
	GroupName         string            `json:"group_name"`
	RequiredSkills    matching.TokenSet `json:"required_skills"`
	RequiredCourses   matching.TokenSet `json:"required_courses"`
	MinQualifier      *float64          `json:"min_qualifier"`
	GroupMinQualifier *float64          `json:"group_min_qualifier"`
}

func (r Requirement) Domain() matching.Requirement {
	return matching.Requirement(r)
}

type CourseOffering struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Platform      string            `json:"platform"`
	URL           string            `json:"url"`
	SkillsCovered matching.TokenSet `json:"skills_covered"`
}

type Dataset struct {
	Candidates   []Candidate      `json:"candidates"`
	Requirements []Requirement    `json:"requirements"`
	Catalog      []CourseOffering `json:"catalog"`
}

// Domain converts d, rejecting entries without an id since dataset lookups
// are by id.
func (d Dataset) Domain() (matching.Dataset, error) {
	out := matching.Dataset{
		Candidates:   make([]matching.Candidate, 0, len(d.Candidates)),
		Requirements: make([]matching.Requirement, 0, len(d.Requirements)),
		Catalog:      make([]matching.CourseOffering, 0, len(d.Catalog)),
	}
	for i, c := range d.Candidates {
		if c.ID == uuid.Nil {
			return matching.Dataset{}, fmt.Errorf("candidates[%d]: missing id", i)
		}
		out.Candidates = append(out.Candidates, c.Domain())
	}
	for i, r := range d.Requirements {
		if r.ID == uuid.Nil {
			return matching.Dataset{}, fmt.Errorf("requirements[%d]: missing id", i)
		}
		out.Requirements = append(out.Requirements, r.Domain())
	}
	for _, o := range d.Catalog {
		out.Catalog = append(out.Catalog, matching.CourseOffering(o))
	}
	return out, nil
}

func decode(r io.Reader, out any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func decodeFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := decode(f, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func ReadCandidate(r io.Reader) (matching.Candidate, error) {
	var c Candidate
	if err := decode(r, &c); err != nil {
		return matching.Candidate{}, err
	}
	return c.Domain(), nil
}

func LoadCandidate(path string) (matching.Candidate, error) {
	var c Candidate
	if err := decodeFile(path, &c); err != nil {
		return matching.Candidate{}, err
	}
	return c.Domain(), nil
}

func ReadRequirement(r io.Reader) (matching.Requirement, error) {
	var req Requirement
	if err := decode(r, &req); err != nil {
		return matching.Requirement{}, err
	}
	return req.Domain(), nil
}

func LoadRequirement(path string) (matching.Requirement, error) {
	var req Requirement
	if err := decodeFile(path, &req); err != nil {
		return matching.Requirement{}, err
	}
	return req.Domain(), nil
}

func ReadDataset(r io.Reader) (matching.Dataset, error) {
	var d Dataset
	if err := decode(r, &d); err != nil {
		return matching.Dataset{}, err
	}
	return d.Domain()
}

func LoadDataset(path string) (matching.Dataset, error) {
	var d Dataset
	if err := decodeFile(path, &d); err != nil {
		return matching.Dataset{}, err
	}
	out, err := d.Domain()
	if err != nil {
		return matching.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
