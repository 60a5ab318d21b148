package repository

import (
	"context"

	"placement-match/internal/database"
	"placement-match/internal/domain/matching"

	"github.com/google/uuid"
)

type CandidateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (matching.Candidate, error)
	List(ctx context.Context) ([]matching.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, name, skills, courses, projects, qualifier`

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (matching.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if isNoRows(err) {
			return matching.Candidate{}, ErrNotFound
		}
		return matching.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) List(ctx context.Context) ([]matching.Candidate, error) {
	rows, err := r.db.Query(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCandidate(row database.Row) (matching.Candidate, error) {
	var c matching.Candidate
	var projects *string
	if err := row.Scan(&c.ID, &c.Name, &c.Skills, &c.Courses, &projects, &c.Qualifier); err != nil {
		return matching.Candidate{}, err
	}
	c.Projects = decodeList(projects)
	return c, nil
}
