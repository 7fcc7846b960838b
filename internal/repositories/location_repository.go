package repositories

import (
	"database/sql"
	"fmt"

	"jobport/internal/models"
)

type LocationRepository interface {
	ListProvinces() ([]*models.Province, error)
	GetProvince(id int) (*models.Province, error)
	CreateProvince(p *models.Province) error
	ListDistricts(provinceID int) ([]*models.District, error)
	GetDistrict(id int) (*models.District, error)
	CreateDistrict(d *models.District) error
}

type locationRepository struct {
	DB *sql.DB
}

func NewLocationRepository(db *sql.DB) LocationRepository {
	return &locationRepository{DB: db}
}

func (r *locationRepository) ListProvinces() ([]*models.Province, error) {
	const q = `SELECT id, name, code, name_with_type, slug, type FROM provinces ORDER BY name`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("province list: %w", err)
	}
	defer rows.Close()

	var out []*models.Province
	for rows.Next() {
		var p models.Province
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.NameWithType, &p.Slug, &p.Type); err != nil {
			return nil, fmt.Errorf("province scan: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *locationRepository) GetProvince(id int) (*models.Province, error) {
	const q = `SELECT id, name, code, name_with_type, slug, type FROM provinces WHERE id = $1`
	var p models.Province
	if err := r.DB.QueryRow(q, id).Scan(&p.ID, &p.Name, &p.Code, &p.NameWithType, &p.Slug, &p.Type); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("province get: %w", err)
	}
	return &p, nil
}

func (r *locationRepository) CreateProvince(p *models.Province) error {
	const q = `
		INSERT INTO provinces (name, code, name_with_type, slug, type)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	if err := r.DB.QueryRow(q, p.Name, p.Code, p.NameWithType, p.Slug, p.Type).Scan(&p.ID); err != nil {
		return fmt.Errorf("province create: %w", err)
	}
	return nil
}

func (r *locationRepository) ListDistricts(provinceID int) ([]*models.District, error) {
	const q = `
		SELECT id, province_id, name, code, name_with_type, slug, type
		FROM districts
		WHERE ($1 = 0 OR province_id = $1)
		ORDER BY name
	`
	rows, err := r.DB.Query(q, provinceID)
	if err != nil {
		return nil, fmt.Errorf("district list: %w", err)
	}
	defer rows.Close()

	var out []*models.District
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.ProvinceID, &d.Name, &d.Code, &d.NameWithType, &d.Slug, &d.Type); err != nil {
			return nil, fmt.Errorf("district scan: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *locationRepository) GetDistrict(id int) (*models.District, error) {
	const q = `SELECT id, province_id, name, code, name_with_type, slug, type FROM districts WHERE id = $1`
	var d models.District
	if err := r.DB.QueryRow(q, id).Scan(&d.ID, &d.ProvinceID, &d.Name, &d.Code, &d.NameWithType, &d.Slug, &d.Type); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("district get: %w", err)
	}
	return &d, nil
}

func (r *locationRepository) CreateDistrict(d *models.District) error {
	const q = `
		INSERT INTO districts (province_id, name, code, name_with_type, slug, type)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`
	if err := r.DB.QueryRow(q, d.ProvinceID, d.Name, d.Code, d.NameWithType, d.Slug, d.Type).Scan(&d.ID); err != nil {
		return fmt.Errorf("district create: %w", err)
	}
	return nil
}
