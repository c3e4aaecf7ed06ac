package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/myapp/bookstore/internal/apperror"
	"github.com/myapp/bookstore/internal/config"
	"github.com/myapp/bookstore/internal/entities"
)

// UserStore defines the user data access the service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *entities.User) error
	SaveUser(ctx context.Context, user *entities.User) error
	GetUserByID(ctx context.Context, id uint) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUserByVerificationToken(ctx context.Context, token string) (*entities.User, error)
}

// Mailer delivers verification tokens. Both mail.Sender and the task queue
// dispatcher satisfy it.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, token string) error
}

// RegisterInput carries the fields accepted at registration. Role is not part
// of it; every new account gets the default role.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	MiddleName string
	Phone      string
	BirthDate  string
}

// ProfileInput replaces the editable profile fields of a user.
type ProfileInput struct {
	FirstName  string
	LastName   string
	MiddleName string
	Phone      string
	Email      string
	BirthDate  string
}

// Service handles registration, e-mail verification and authentication.
type Service struct {
	users  UserStore
	mailer Mailer
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(users UserStore, mailer Mailer, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		mailer: mailer,
		config: cfg,
	}
}

// Register creates an unverified user and sends the verification token by mail.
// A mail failure is logged and does not undo the registration.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entities.User, error) {
	if _, err := s.users.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, apperror.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.users.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, apperror.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	password, err := s.storedPassword(in.Password)
	if err != nil {
		return nil, err
	}

	token, err := GenerateVerificationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &entities.User{
		Username:          in.Username,
		Email:             in.Email,
		Password:          password,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		MiddleName:        in.MiddleName,
		Phone:             in.Phone,
		BirthDate:         birthDate,
		IsVerified:        false,
		VerificationToken: &token,
		Role:              entities.DefaultUserRole,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicateCause(ctx, user)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.mailer.SendVerificationEmail(ctx, user.Email, token); err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("Verification email not delivered")
	}

	return user, nil
}

// duplicateCause tells which unique field lost a concurrent registration race.
func (s *Service) duplicateCause(ctx context.Context, user *entities.User) error {
	if _, err := s.users.GetUserByUsername(ctx, user.Username); err == nil {
		return apperror.ErrDuplicateUsername
	}
	return apperror.ErrDuplicateEmail
}

func (s *Service) storedPassword(password string) (string, error) {
	if s.config.PlaintextPasswords {
		return password, nil
	}
	hash, err := HashPassword(password, s.config.BcryptCost)
	if errors.Is(err, ErrPasswordTooLong) {
		return "", apperror.Validation(err.Error())
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// Confirm verifies the user holding token and clears the token, so a second
// confirmation with the same token fails.
func (s *Service) Confirm(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.users.GetUserByVerificationToken(ctx, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find token: %w", err)
	}

	user.IsVerified = true
	user.VerificationToken = nil
	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	log.Info().Uint("user_id", user.ID).Msg("User verified")
	return user, nil
}

// Authenticate validates credentials and returns the user. The username lookup
// ignores case.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.Password); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to check password: %w", err)
	}

	if s.config.RequireVerified && !user.IsVerified {
		return nil, apperror.ErrNotVerified
	}

	return user, nil
}

// GetProfile retrieves a user by ID.
func (s *Service) GetProfile(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

// UpdateProfile overwrites the profile fields of a user; omitted fields become empty.
func (s *Service) UpdateProfile(ctx context.Context, id uint, in ProfileInput) (*entities.User, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.MiddleName = in.MiddleName
	user.Phone = in.Phone
	user.Email = in.Email
	user.BirthDate = birthDate

	if err := s.users.SaveUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return user, nil
}

// parseBirthDate accepts "YYYY-MM-DD" or a longer timestamp whose first ten
// characters are a date. Empty input means no birth date.
func parseBirthDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if len(raw) > len(entities.DateLayout) {
		raw = raw[:len(entities.DateLayout)]
	}
	t, err := time.Parse(entities.DateLayout, raw)
	if err != nil {
		return nil, apperror.Validation("birthDate must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}
