package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"jobport/internal/models"
)

type JobRepository interface {
	Create(j *models.Job) error
	GetByID(id int) (*models.Job, error)
	GetByCampaignID(campaignID int) (*models.Job, error)
	Update(j *models.Job) error
	UpdateStatus(id int, status string) error
	Delete(id int) error
	List(filter models.JobFilter) ([]*models.Job, error)
}

type jobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) JobRepository {
	return &jobRepository{DB: db}
}

const jobColumns = `id, business_id, campaign_id, title, job_description, job_requirement,
	job_benefit, job_location, min_salary, max_salary, salary_type, quantity,
	full_name_contact, phone_number_contact, email_contact, employment_type,
	gender_requirement, deadline, status, category_ids, skill_ids, created_at, updated_at`

func scanJob(scan func(dest ...any) error) (*models.Job, error) {
	var j models.Job
	var categoryIDs, skillIDs pq.Int64Array
	err := scan(&j.ID, &j.BusinessID, &j.CampaignID, &j.Title, &j.Description, &j.Requirement,
		&j.Benefit, &j.Location, &j.MinSalary, &j.MaxSalary, &j.SalaryType, &j.Quantity,
		&j.FullNameContact, &j.PhoneNumberContact, &j.EmailContact, &j.EmploymentType,
		&j.GenderRequirement, &j.Deadline, &j.Status, &categoryIDs, &skillIDs,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	for _, id := range categoryIDs {
		j.CategoryIDs = append(j.CategoryIDs, int(id))
	}
	for _, id := range skillIDs {
		j.SkillIDs = append(j.SkillIDs, int(id))
	}
	return &j, nil
}

func (r *jobRepository) Create(j *models.Job) error {
	const q = `
		INSERT INTO jobs (
			business_id, campaign_id, title, job_description, job_requirement,
			job_benefit, job_location, min_salary, max_salary, salary_type, quantity,
			full_name_contact, phone_number_contact, email_contact, employment_type,
			gender_requirement, deadline, status, category_ids, skill_ids
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		RETURNING id, created_at, updated_at
	`
	err := r.DB.QueryRow(q,
		j.BusinessID, j.CampaignID, j.Title, j.Description, j.Requirement,
		j.Benefit, j.Location, j.MinSalary, j.MaxSalary, j.SalaryType, j.Quantity,
		j.FullNameContact, j.PhoneNumberContact, j.EmailContact, j.EmploymentType,
		j.GenderRequirement, j.Deadline, j.Status, toInt64Array(j.CategoryIDs), toInt64Array(j.SkillIDs),
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("job create: %w", err)
	}
	return nil
}

func (r *jobRepository) GetByID(id int) (*models.Job, error) {
	const q = `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	j, err := scanJob(r.DB.QueryRow(q, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("job get by id: %w", err)
	}
	return j, nil
}

// GetByCampaignID: a campaign carries at most one job (unique column).
func (r *jobRepository) GetByCampaignID(campaignID int) (*models.Job, error) {
	const q = `SELECT ` + jobColumns + ` FROM jobs WHERE campaign_id = $1`
	j, err := scanJob(r.DB.QueryRow(q, campaignID).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("job get by campaign: %w", err)
	}
	return j, nil
}

func (r *jobRepository) Update(j *models.Job) error {
	const q = `
		UPDATE jobs
		SET title=$1, job_description=$2, job_requirement=$3, job_benefit=$4,
		    job_location=$5, min_salary=$6, max_salary=$7, quantity=$8,
		    deadline=$9, updated_at=NOW()
		WHERE id=$10
	`
	_, err := r.DB.Exec(q, j.Title, j.Description, j.Requirement, j.Benefit,
		j.Location, j.MinSalary, j.MaxSalary, j.Quantity, j.Deadline, j.ID)
	if err != nil {
		return fmt.Errorf("job update: %w", err)
	}
	return nil
}

func (r *jobRepository) UpdateStatus(id int, status string) error {
	const q = `UPDATE jobs SET status=$1, updated_at=NOW() WHERE id=$2`
	if _, err := r.DB.Exec(q, status, id); err != nil {
		return fmt.Errorf("job update status: %w", err)
	}
	return nil
}

func (r *jobRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("job delete: %w", err)
	}
	return nil
}

func (r *jobRepository) List(filter models.JobFilter) ([]*models.Job, error) {
	const q = `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE ($1 = 0 OR business_id = $1)
		  AND ($2 = 0 OR campaign_id = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY id DESC
		LIMIT $4 OFFSET $5
	`
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.DB.Query(q, filter.BusinessID, filter.CampaignID, filter.Status, limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("job list: %w", err)
	}
	defer rows.Close()

	var out []*models.Job
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("job list scan: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
