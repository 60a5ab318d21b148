package repository

import (
	"context"

	"placement-match/internal/database"
	"placement-match/internal/domain/matching"

	"github.com/google/uuid"
)

type RequirementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (matching.Requirement, error)
	ListActive(ctx context.Context) ([]matching.Requirement, error)
}

type PostgresRequirementRepository struct {
	db database.DB
}

func NewPostgresRequirementRepository(db database.DB) *PostgresRequirementRepository {
	return &PostgresRequirementRepository{db: db}
}

const requirementSelect = `SELECT r.id, r.title, r.group_id, COALESCE(g.name, ''),
	r.required_skills, r.required_courses, r.min_qualifier, g.min_qualifier
	FROM requirements r
	LEFT JOIN requirement_groups g ON g.id = r.group_id`

func (r *PostgresRequirementRepository) FindByID(ctx context.Context, id uuid.UUID) (matching.Requirement, error) {
	row := r.db.QueryRow(ctx, requirementSelect+` WHERE r.id = $1`, id)
	req, err := scanRequirement(row)
	if err != nil {
		if isNoRows(err) {
			return matching.Requirement{}, ErrNotFound
		}
		return matching.Requirement{}, err
	}
	return req, nil
}

func (r *PostgresRequirementRepository) ListActive(ctx context.Context) ([]matching.Requirement, error) {
	rows, err := r.db.Query(ctx, requirementSelect+` WHERE r.status = 'active' ORDER BY r.created_at ASC, r.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Requirement, 0)
	for rows.Next() {
		req, err := scanRequirement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRequirement(row database.Row) (matching.Requirement, error) {
	var req matching.Requirement
	var groupID uuid.NullUUID
	if err := row.Scan(
		&req.ID, &req.Title, &groupID, &req.GroupName,
		&req.RequiredSkills, &req.RequiredCourses, &req.MinQualifier, &req.GroupMinQualifier,
	); err != nil {
		return matching.Requirement{}, err
	}
	if groupID.Valid {
		req.GroupID = groupID.UUID
	}
	return req, nil
}
