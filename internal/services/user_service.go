package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"jobport/internal/authz"
	"jobport/internal/models"
	"jobport/internal/repositories"
)

var ErrEmailTaken = errors.New("email already registered")

type UserService interface {
	Register(req models.RegisterUserRequest) (*models.User, error)
	GetByID(id int) (*models.User, error)
	Update(id int, req models.UpdateUserRequest) (*models.User, error)
	Delete(id int) error
	List(limit, offset int) ([]*models.User, error)
	GetCount() (int, error)
}

type userService struct {
	repo repositories.UserRepository
	auth AuthService
}

func NewUserService(repo repositories.UserRepository, auth AuthService) UserService {
	return &userService{repo: repo, auth: auth}
}

// validatePassword enforces the account password policy: 8-50 chars with at
// least one letter, one digit and one special character.
func validatePassword(pw string) error {
	if len(pw) < 8 || len(pw) > 50 {
		return fmt.Errorf("password must be between 8 and 50 characters")
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasLetter || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must contain at least one letter, one digit and one special character")
	}
	return nil
}

func (s *userService) Register(req models.RegisterUserRequest) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Role:         authz.RoleUser,
		IsActive:     true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(id int) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Update(id int, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *userService) List(limit, offset int) ([]*models.User, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.List(limit, offset)
}

func (s *userService) GetCount() (int, error) {
	return s.repo.GetCount()
}
