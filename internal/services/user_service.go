package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartwealth/internal/database"
	apperrors "smartwealth/internal/errors"
	"smartwealth/internal/logger"
	"smartwealth/internal/models"
)

const minPasswordLength = 6

// userService handles user-related business logic.
type userService struct {
	db           *gorm.DB
	seedDemoData bool
}

// NewUserService creates a new UserServicer. When seedDemoData is true,
// newly registered users receive sample accounts and transactions in
// addition to the default categories.
func NewUserService(db *gorm.DB, seedDemoData bool) UserServicer {
	return &userService{db: db, seedDemoData: seedDemoData}
}

// CreateUser registers a new user, seeding the default category set and,
// when enabled, the demo ledger.
func (s *userService) CreateUser(email, password, name string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "display name is required")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.ErrWeakPassword
	}

	// Check if user with email exists
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    strings.ToLower(email),
		Password: string(hashedPassword),
		Name:     strings.TrimSpace(name),
		IsActive: true,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := database.SeedDefaultCategories(s.db, user.ID); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if s.seedDemoData {
		// Demo seeding is best-effort; a failure must not block registration.
		if err := database.SeedDemoData(s.db, user.ID); err != nil {
			logger.Get().Warnw("demo data seeding failed", "user_id", user.ID, "error", err)
		}
	}

	return user, nil
}

// GetUserByEmail retrieves an active user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(email), true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// AttemptLogin verifies the email/password pair and returns the user.
// Failures are classified: unknown email and wrong password are distinct
// errors so the client can surface the reason inline.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	user, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrWrongPassword
	}
	return user, nil
}
