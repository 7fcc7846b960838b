package repositories

import (
	"database/sql"
	"fmt"

	"jobport/internal/models"
)

type BusinessRepository interface {
	Create(b *models.Business) error
	GetByID(id int) (*models.Business, error)
	GetByEmail(email string) (*models.Business, error)
	Update(b *models.Business) error
	Delete(id int) error
	List(limit, offset int) ([]*models.Business, error)
	GetCount() (int, error)
	SetVerifiedEmail(id int, verified bool) error
	SetVerifiedCompany(id int, verified bool) error
	TouchLastLogin(id int) error
}

type businessRepository struct {
	DB *sql.DB
}

func NewBusinessRepository(db *sql.DB) BusinessRepository {
	return &businessRepository{DB: db}
}

const businessColumns = `id, full_name, email, password_hash, phone_number, gender,
	company_name, work_position, work_location, province_id, district_id,
	role, is_active, is_verified_email, is_verified_phone, is_verified_company,
	last_login, created_at, updated_at`

func scanBusiness(scan func(dest ...any) error) (*models.Business, error) {
	var b models.Business
	var workLocation sql.NullString
	var districtID sql.NullInt64
	var lastLogin sql.NullTime
	err := scan(&b.ID, &b.FullName, &b.Email, &b.PasswordHash, &b.PhoneNumber, &b.Gender,
		&b.CompanyName, &b.WorkPosition, &workLocation, &b.ProvinceID, &districtID,
		&b.Role, &b.IsActive, &b.IsVerifiedEmail, &b.IsVerifiedPhone, &b.IsVerifiedCompany,
		&lastLogin, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if workLocation.Valid {
		b.WorkLocation = workLocation.String
	}
	if districtID.Valid {
		d := int(districtID.Int64)
		b.DistrictID = &d
	}
	if lastLogin.Valid {
		b.LastLogin = &lastLogin.Time
	}
	return &b, nil
}

func (r *businessRepository) Create(b *models.Business) error {
	const q = `
		INSERT INTO businesses (
			full_name, email, password_hash, phone_number, gender,
			company_name, work_position, work_location, province_id, district_id,
			role, is_active
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(q,
		b.FullName, b.Email, b.PasswordHash, b.PhoneNumber, b.Gender,
		b.CompanyName, b.WorkPosition, nullIfEmpty(b.WorkLocation), b.ProvinceID, b.DistrictID,
		b.Role, b.IsActive,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("business create: %w", err)
	}
	return nil
}

func (r *businessRepository) GetByID(id int) (*models.Business, error) {
	const q = `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	b, err := scanBusiness(r.DB.QueryRow(q, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("business get by id: %w", err)
	}
	return b, nil
}

func (r *businessRepository) GetByEmail(email string) (*models.Business, error) {
	const q = `SELECT ` + businessColumns + ` FROM businesses WHERE email = $1`
	b, err := scanBusiness(r.DB.QueryRow(q, email).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("business get by email: %w", err)
	}
	return b, nil
}

func (r *businessRepository) Update(b *models.Business) error {
	const q = `
		UPDATE businesses
		SET full_name=$1, phone_number=$2, gender=$3, company_name=$4,
		    work_position=$5, work_location=$6, province_id=$7, district_id=$8,
		    updated_at=NOW()
		WHERE id=$9
	`
	_, err := r.DB.Exec(q, b.FullName, b.PhoneNumber, b.Gender, b.CompanyName,
		b.WorkPosition, nullIfEmpty(b.WorkLocation), b.ProvinceID, b.DistrictID, b.ID)
	if err != nil {
		return fmt.Errorf("business update: %w", err)
	}
	return nil
}

func (r *businessRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM businesses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("business delete: %w", err)
	}
	return nil
}

func (r *businessRepository) List(limit, offset int) ([]*models.Business, error) {
	const q = `SELECT ` + businessColumns + ` FROM businesses ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("business list: %w", err)
	}
	defer rows.Close()

	var out []*models.Business
	for rows.Next() {
		b, err := scanBusiness(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("business list scan: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *businessRepository) GetCount() (int, error) {
	var c int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM businesses`).Scan(&c); err != nil {
		return 0, fmt.Errorf("business count: %w", err)
	}
	return c, nil
}

// SetVerifiedEmail is the single writer of the verified-email flag; only the
// verify service calls it.
func (r *businessRepository) SetVerifiedEmail(id int, verified bool) error {
	const q = `UPDATE businesses SET is_verified_email=$1, updated_at=NOW() WHERE id=$2`
	if _, err := r.DB.Exec(q, verified, id); err != nil {
		return fmt.Errorf("business set verified email: %w", err)
	}
	return nil
}

// SetVerifiedCompany records the admin approval decision.
func (r *businessRepository) SetVerifiedCompany(id int, verified bool) error {
	const q = `UPDATE businesses SET is_verified_company=$1, updated_at=NOW() WHERE id=$2`
	if _, err := r.DB.Exec(q, verified, id); err != nil {
		return fmt.Errorf("business set verified company: %w", err)
	}
	return nil
}

func (r *businessRepository) TouchLastLogin(id int) error {
	_, err := r.DB.Exec(`UPDATE businesses SET last_login = NOW() WHERE id = $1`, id)
	return err
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
