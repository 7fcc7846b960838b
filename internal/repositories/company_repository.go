package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"jobport/internal/models"
)

type CompanyRepository interface {
	Create(c *models.Company) error
	GetByID(id int) (*models.Company, error)
	GetByBusinessID(businessID int) (*models.Company, error)
	Update(c *models.Company) error
	Delete(id int) error
	List(limit, offset int) ([]*models.Company, error)
}

type companyRepository struct {
	DB *sql.DB
}

func NewCompanyRepository(db *sql.DB) CompanyRepository {
	return &companyRepository{DB: db}
}

const companyColumns = `id, business_id, name, email, phone_number, type, website, address, scale, tax_code, field_ids, created_at, updated_at`

func scanCompany(scan func(dest ...any) error) (*models.Company, error) {
	var c models.Company
	var website, address, scale, taxCode sql.NullString
	var fieldIDs pq.Int64Array
	err := scan(&c.ID, &c.BusinessID, &c.Name, &c.Email, &c.PhoneNumber, &c.Type,
		&website, &address, &scale, &taxCode, &fieldIDs, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Website = website.String
	c.Address = address.String
	c.Scale = scale.String
	c.TaxCode = taxCode.String
	for _, id := range fieldIDs {
		c.FieldIDs = append(c.FieldIDs, int(id))
	}
	return &c, nil
}

func toInt64Array(ids []int) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}

func (r *companyRepository) Create(c *models.Company) error {
	const q = `
		INSERT INTO companies (business_id, name, email, phone_number, type, website, address, scale, tax_code, field_ids)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(q, c.BusinessID, c.Name, c.Email, c.PhoneNumber, c.Type,
		nullIfEmpty(c.Website), nullIfEmpty(c.Address), nullIfEmpty(c.Scale), nullIfEmpty(c.TaxCode),
		toInt64Array(c.FieldIDs)).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("company create: %w", err)
	}
	return nil
}

func (r *companyRepository) GetByID(id int) (*models.Company, error) {
	const q = `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.DB.QueryRow(q, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("company get by id: %w", err)
	}
	return c, nil
}

func (r *companyRepository) GetByBusinessID(businessID int) (*models.Company, error) {
	const q = `SELECT ` + companyColumns + ` FROM companies WHERE business_id = $1`
	c, err := scanCompany(r.DB.QueryRow(q, businessID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("company get by business: %w", err)
	}
	return c, nil
}

func (r *companyRepository) Update(c *models.Company) error {
	const q = `
		UPDATE companies
		SET name=$1, email=$2, phone_number=$3, type=$4, website=$5,
		    address=$6, scale=$7, tax_code=$8, field_ids=$9, updated_at=NOW()
		WHERE id=$10
	`
	_, err := r.DB.Exec(q, c.Name, c.Email, c.PhoneNumber, c.Type, nullIfEmpty(c.Website),
		nullIfEmpty(c.Address), nullIfEmpty(c.Scale), nullIfEmpty(c.TaxCode),
		toInt64Array(c.FieldIDs), c.ID)
	if err != nil {
		return fmt.Errorf("company update: %w", err)
	}
	return nil
}

func (r *companyRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM companies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("company delete: %w", err)
	}
	return nil
}

func (r *companyRepository) List(limit, offset int) ([]*models.Company, error) {
	const q = `SELECT ` + companyColumns + ` FROM companies ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("company list: %w", err)
	}
	defer rows.Close()

	var out []*models.Company
	for rows.Next() {
		c, err := scanCompany(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("company list scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
