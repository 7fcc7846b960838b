package services

import (
	"errors"
	"time"

	"jobport/internal/models"
)

// In-memory repositories used across the service tests.

type memCodeRepo struct {
	nextID  int64
	records map[string]*models.VerifyCode // keyed by session id
}

func newMemCodeRepo() *memCodeRepo {
	return &memCodeRepo{records: map[string]*models.VerifyCode{}}
}

func (r *memCodeRepo) Create(businessID int, email, code, sessionID string) (*models.VerifyCode, error) {
	r.nextID++
	v := &models.VerifyCode{
		ID:         r.nextID,
		BusinessID: businessID,
		Email:      email,
		Code:       code,
		SessionID:  sessionID,
		CreatedAt:  time.Now(),
	}
	r.records[sessionID] = v
	return v, nil
}

func (r *memCodeRepo) GetValid(sessionID, email string, freshness time.Duration) (*models.VerifyCode, error) {
	v, ok := r.records[sessionID]
	if !ok || v.Email != email {
		return nil, nil
	}
	if v.CreatedAt.Before(time.Now().Add(-freshness)) {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *memCodeRepo) IncrementFailedAttempts(id int64) (int, error) {
	for _, v := range r.records {
		if v.ID == id {
			v.FailedAttempts++
			return v.FailedAttempts, nil
		}
	}
	return 0, errors.New("not found")
}

func (r *memCodeRepo) Delete(id int64) error {
	for sid, v := range r.records {
		if v.ID == id {
			delete(r.records, sid)
			return nil
		}
	}
	return nil
}

type memBlockRepo struct {
	blocks []*models.VerifyBlock
}

func (r *memBlockRepo) FindActive(email string, window time.Duration) (*models.VerifyBlock, error) {
	cutoff := time.Now().Add(-window)
	for i := len(r.blocks) - 1; i >= 0; i-- {
		b := r.blocks[i]
		if b.Email == email && !b.CreatedAt.Before(cutoff) {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBlockRepo) Create(email string, windowMinutes int) error {
	r.blocks = append(r.blocks, &models.VerifyBlock{
		ID:            int64(len(r.blocks) + 1),
		Email:         email,
		WindowMinutes: windowMinutes,
		CreatedAt:     time.Now(),
	})
	return nil
}

type memBusinessRepo struct {
	nextID     int
	businesses map[int]*models.Business
}

func newMemBusinessRepo() *memBusinessRepo {
	return &memBusinessRepo{businesses: map[int]*models.Business{}}
}

func (r *memBusinessRepo) Create(b *models.Business) error {
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now()
	r.businesses[b.ID] = b
	return nil
}

func (r *memBusinessRepo) GetByID(id int) (*models.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBusinessRepo) GetByEmail(email string) (*models.Business, error) {
	for _, b := range r.businesses {
		if b.Email == email {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memBusinessRepo) Update(b *models.Business) error {
	r.businesses[b.ID] = b
	return nil
}

func (r *memBusinessRepo) Delete(id int) error {
	delete(r.businesses, id)
	return nil
}

func (r *memBusinessRepo) List(limit, offset int) ([]*models.Business, error) {
	var out []*models.Business
	for _, b := range r.businesses {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBusinessRepo) GetCount() (int, error) { return len(r.businesses), nil }

func (r *memBusinessRepo) SetVerifiedEmail(id int, verified bool) error {
	b, ok := r.businesses[id]
	if !ok {
		return errors.New("not found")
	}
	b.IsVerifiedEmail = verified
	return nil
}

func (r *memBusinessRepo) SetVerifiedCompany(id int, verified bool) error {
	b, ok := r.businesses[id]
	if !ok {
		return errors.New("not found")
	}
	b.IsVerifiedCompany = verified
	return nil
}

func (r *memBusinessRepo) TouchLastLogin(id int) error {
	if b, ok := r.businesses[id]; ok {
		now := time.Now()
		b.LastLogin = &now
	}
	return nil
}

type memUserRepo struct {
	nextID int
	users  map[int]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int]*models.User{}}
}

func (r *memUserRepo) Create(u *models.User) error {
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id int) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) UpdatePassword(id int, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *memUserRepo) Delete(id int) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(limit, offset int) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) GetCount() (int, error) { return len(r.users), nil }

func (r *memUserRepo) TouchLastLogin(id int) error {
	if u, ok := r.users[id]; ok {
		now := time.Now()
		u.LastLogin = &now
	}
	return nil
}

type memLocationRepo struct {
	provinces map[int]*models.Province
	districts map[int]*models.District
}

func newMemLocationRepo() *memLocationRepo {
	return &memLocationRepo{
		provinces: map[int]*models.Province{},
		districts: map[int]*models.District{},
	}
}

func (r *memLocationRepo) ListProvinces() ([]*models.Province, error) {
	var out []*models.Province
	for _, p := range r.provinces {
		out = append(out, p)
	}
	return out, nil
}

func (r *memLocationRepo) GetProvince(id int) (*models.Province, error) {
	return r.provinces[id], nil
}

func (r *memLocationRepo) CreateProvince(p *models.Province) error {
	r.provinces[p.ID] = p
	return nil
}

func (r *memLocationRepo) ListDistricts(provinceID int) ([]*models.District, error) {
	var out []*models.District
	for _, d := range r.districts {
		if d.ProvinceID == provinceID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memLocationRepo) GetDistrict(id int) (*models.District, error) {
	return r.districts[id], nil
}

func (r *memLocationRepo) CreateDistrict(d *models.District) error {
	r.districts[d.ID] = d
	return nil
}

type memPasswordResetRepo struct {
	nextID  int
	records map[string]*models.PasswordReset // keyed by token
}

func newMemPasswordResetRepo() *memPasswordResetRepo {
	return &memPasswordResetRepo{records: map[string]*models.PasswordReset{}}
}

func (r *memPasswordResetRepo) Create(userID int, token string, expiresAt time.Time) (*models.PasswordReset, error) {
	r.nextID++
	pr := &models.PasswordReset{
		ID:        r.nextID,
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	r.records[token] = pr
	return pr, nil
}

func (r *memPasswordResetRepo) GetByToken(token string) (*models.PasswordReset, error) {
	pr, ok := r.records[token]
	if !ok {
		return nil, nil
	}
	cp := *pr
	return &cp, nil
}

func (r *memPasswordResetRepo) MarkUsed(id int) error {
	for _, pr := range r.records {
		if pr.ID == id {
			now := time.Now()
			pr.UsedAt = &now
			return nil
		}
	}
	return errors.New("not found")
}

type memBlacklist struct {
	tokens map[string]time.Time
}

func newMemBlacklist() *memBlacklist {
	return &memBlacklist{tokens: map[string]time.Time{}}
}

func (r *memBlacklist) Create(token string, expiresAt time.Time) error {
	if _, ok := r.tokens[token]; ok {
		return nil // same token twice is a no-op
	}
	r.tokens[token] = expiresAt
	return nil
}

func (r *memBlacklist) Exists(token string) (bool, error) {
	_, ok := r.tokens[token]
	return ok, nil
}

func (r *memBlacklist) DeleteExpired(now time.Time) (int64, error) {
	var n int64
	for t, exp := range r.tokens {
		if exp.Before(now) {
			delete(r.tokens, t)
			n++
		}
	}
	return n, nil
}

// fakeEmailService records outgoing mail; failing flips every send to error.
type fakeEmailService struct {
	failing bool
	sent    []string // codes or tokens handed to the mailer
}

func (s *fakeEmailService) SendVerifyEmail(email, fullName, code string) error {
	if s.failing {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, code)
	return nil
}

func (s *fakeEmailService) SendPasswordResetEmail(email, token string) error {
	if s.failing {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, token)
	return nil
}
