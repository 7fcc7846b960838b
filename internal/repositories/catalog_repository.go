package repositories

import (
	"database/sql"
	"fmt"

	"jobport/internal/models"
)

// CatalogRepository serves the small name/slug reference tables: job
// categories, company fields and skills.
type CatalogRepository interface {
	ListCategories() ([]*models.Category, error)
	CreateCategory(c *models.Category) error
	ListFields() ([]*models.Field, error)
	CreateField(f *models.Field) error
	ListSkills() ([]*models.Skill, error)
	CreateSkill(s *models.Skill) error
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

func (r *catalogRepository) ListCategories() ([]*models.Category, error) {
	rows, err := r.DB.Query(`SELECT id, name, slug FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("category list: %w", err)
	}
	defer rows.Close()

	var out []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("category scan: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *catalogRepository) CreateCategory(c *models.Category) error {
	const q = `INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`
	if err := r.DB.QueryRow(q, c.Name, c.Slug).Scan(&c.ID); err != nil {
		return fmt.Errorf("category create: %w", err)
	}
	return nil
}

func (r *catalogRepository) ListFields() ([]*models.Field, error) {
	rows, err := r.DB.Query(`SELECT id, name, slug FROM company_fields ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("field list: %w", err)
	}
	defer rows.Close()

	var out []*models.Field
	for rows.Next() {
		var f models.Field
		if err := rows.Scan(&f.ID, &f.Name, &f.Slug); err != nil {
			return nil, fmt.Errorf("field scan: %w", err)
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *catalogRepository) CreateField(f *models.Field) error {
	const q = `INSERT INTO company_fields (name, slug) VALUES ($1, $2) RETURNING id`
	if err := r.DB.QueryRow(q, f.Name, f.Slug).Scan(&f.ID); err != nil {
		return fmt.Errorf("field create: %w", err)
	}
	return nil
}

func (r *catalogRepository) ListSkills() ([]*models.Skill, error) {
	rows, err := r.DB.Query(`SELECT id, name, slug FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("skill list: %w", err)
	}
	defer rows.Close()

	var out []*models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug); err != nil {
			return nil, fmt.Errorf("skill scan: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *catalogRepository) CreateSkill(s *models.Skill) error {
	const q = `INSERT INTO skills (name, slug) VALUES ($1, $2) RETURNING id`
	if err := r.DB.QueryRow(q, s.Name, s.Slug).Scan(&s.ID); err != nil {
		return fmt.Errorf("skill create: %w", err)
	}
	return nil
}
