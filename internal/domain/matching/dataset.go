package matching

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// Dataset is an in-memory snapshot of profiles and catalog entries, used
// when ranking without a profile store.
type Dataset struct {
	Candidates   []Candidate
	Requirements []Requirement
	Catalog      []CourseOffering
}

func (d Dataset) Candidate(id uuid.UUID) (Candidate, error) {
	for _, c := range d.Candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return Candidate{}, ErrNotFound
}

func (d Dataset) Requirement(id uuid.UUID) (Requirement, error) {
	for _, r := range d.Requirements {
		if r.ID == id {
			return r, nil
		}
	}
	return Requirement{}, ErrNotFound
}

func (a *Aggregator) RankCandidatesByID(d Dataset, requirementID uuid.UUID, opts RankOptions) ([]CandidateMatch, error) {
	r, err := d.Requirement(requirementID)
	if err != nil {
		return nil, err
	}
	return a.RankCandidatesForRequirement(r, d.Candidates, opts), nil
}

func (a *Aggregator) RankRequirementsByID(d Dataset, candidateID uuid.UUID, opts RankOptions) ([]RequirementMatch, error) {
	c, err := d.Candidate(candidateID)
	if err != nil {
		return nil, err
	}
	return a.RankRequirementsForCandidate(c, d.Requirements, opts), nil
}
