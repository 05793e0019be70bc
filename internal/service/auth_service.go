package service

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"cohort-tools-be/internal/apperrors"
	"cohort-tools-be/internal/jwt"
	"cohort-tools-be/internal/models"
	"cohort-tools-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(req *models.SignupRequest) (*models.SignupResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// passwordMeetsPolicy requires at least 6 characters including a digit, a
// lowercase, and an uppercase letter. Checked with rune scans because Go's
// regexp has no lookahead; length counts runes, not bytes.
func passwordMeetsPolicy(password string) bool {
	if utf8.RuneCountInString(password) < 6 {
		return false
	}
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper
}

// Signup validates the input, creates the user, and returns the sanitized
// user with a fresh token. Validation short-circuits in a fixed order so
// clients see one message at a time.
func (s *authService) Signup(req *models.SignupRequest) (*models.SignupResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "Provide email, password, and name")
	}

	if !emailRegex.MatchString(req.Email) {
		return nil, apperrors.New(apperrors.ErrValidation, "Provide a valid email address")
	}

	if !passwordMeetsPolicy(req.Password) {
		return nil, apperrors.New(apperrors.ErrValidation,
			"Password must have at least 6 characters, including uppercase, lowercase, and a number.")
	}

	// Advisory pre-check; the unique index is the real guard under
	// concurrent signups with the same email.
	existingUser, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existingUser != nil {
		return nil, apperrors.New(apperrors.ErrConflict, "User already exists.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Email, string(hashedPassword), req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// The pre-check missed a concurrent signup; report it the
			// same way.
			return nil, apperrors.New(apperrors.ErrConflict, "User already exists.")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.SignupResponse{
		User: models.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
		AuthToken: token,
	}, nil
}

// Login verifies credentials and returns a fresh token. The response carries
// the token only; user details are not echoed on login.
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "Provide email and password.")
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.ErrUnauthorized, "User not found.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.New(apperrors.ErrUnauthorized, "Unable to authenticate the user")
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{AuthToken: token}, nil
}
