package repository

import (
	"context"

	"placement-match/internal/database"
	"placement-match/internal/domain/matching"
)

type CatalogRepository interface {
	ListOfferings(ctx context.Context) ([]matching.CourseOffering, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListOfferings(ctx context.Context) ([]matching.CourseOffering, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(platform, ''), COALESCE(url, ''), skills_covered
		 FROM course_offerings
		 ORDER BY created_at ASC, name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.CourseOffering, 0)
	for rows.Next() {
		var o matching.CourseOffering
		if err := rows.Scan(&o.ID, &o.Name, &o.Platform, &o.URL, &o.SkillsCovered); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
