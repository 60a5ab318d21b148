package usecase

import (
	"errors"
	"fmt"

	"placement-match/internal/repository"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrCandidateNotFound   = errors.New("Candidate not found")
	ErrRequirementNotFound = errors.New("Requirement not found")
)

// notFoundOr maps repository.ErrNotFound onto sentinel, keeping the cause in
// the chain. Any other error becomes ErrInternal.
func notFoundOr(sentinel, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return ErrInternal
}
