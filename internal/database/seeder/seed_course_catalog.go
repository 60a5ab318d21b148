package seeder

import (
	"context"
	"fmt"

	"placement-match/internal/database"
	"placement-match/internal/domain/matching"

	"github.com/google/uuid"
)

type CourseCatalogSeeder struct {
	Offerings []matching.CourseOffering
}

func (CourseCatalogSeeder) Name() string { return "course_catalog" }

func (s CourseCatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "course_offerings", "id", "name", "platform", "url", "skills_covered"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, o := range s.Offerings {
		id := o.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO course_offerings (id, name, platform, url, skills_covered)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (name) DO NOTHING`,
			id, o.Name, o.Platform, o.URL, o.SkillsCovered,
		); err != nil {
			return fmt.Errorf("insert %q: %w", o.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func DefaultCatalog() []matching.CourseOffering {
	return []matching.CourseOffering{
		{
			Name:          "Python for Data Science",
			Platform:      "Coursera",
			URL:           "https://www.coursera.org/learn/python-data-science",
			SkillsCovered: matching.NewTokenSet("Python", "Data Analysis", "Pandas"),
		},
		{
			Name:          "Machine Learning A-Z",
			Platform:      "Udemy",
			URL:           "https://www.udemy.com/course/machinelearning/",
			SkillsCovered: matching.NewTokenSet("Machine Learning", "Python", "Data Science"),
		},
		{
			Name:          "Web Development Bootcamp",
			Platform:      "Udemy",
			URL:           "https://www.udemy.com/course/web-developer-bootcamp/",
			SkillsCovered: matching.NewTokenSet("HTML", "CSS", "JavaScript", "React"),
		},
		{
			Name:          "Java Programming Masterclass",
			Platform:      "Udemy",
			URL:           "https://www.udemy.com/course/java-the-complete-java-developer-course/",
			SkillsCovered: matching.NewTokenSet("Java", "OOP", "Software Development"),
		},
	}
}
