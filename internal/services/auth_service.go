package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	errAuthFailed         = apperrors.Upstream("An unexpected error occurred.", nil)
	errInvalidCredentials = apperrors.Unauthorized("Invalid email or password.")
	errInvalidToken       = apperrors.Unauthorized("Invalid or expired refresh token.")

	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>_\-+=]`)
)

// UserRepository defines methods for user data access
type UserRepository interface {
	// Create creates a new user
	//
	// "ctx" is the context for the request.
	// "user" is the user to create.
	//
	// Returns a conflict error if the username or email is taken and an error if any.
	Create(ctx context.Context, user *models.User) error
	// GetByEmail retrieves a user by email
	//
	// "ctx" is the context for the request.
	// "email" is the email of the user.
	//
	// Returns the user and an error if any.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID retrieves a user by ID
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the user and an error if any.
	GetByID(ctx context.Context, userID int) (*models.User, error)
}

// TokenIssuer defines the token operations of the auth service
type TokenIssuer interface {
	GenerateTokens(userID int, role int) (string, string, error)
	ValidateRefreshToken(tokenString string) (int, error)
}

type authService struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokens TokenIssuer, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a user account; the role defaults to USER
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	if err := checkPassword(req.Password); err != nil {
		return nil, err
	}

	role := models.RoleUser
	if req.Role != "" {
		r, ok := models.RoleNames[req.Role]
		if !ok {
			return nil, apperrors.Newf(apperrors.KindValidation, "Invalid role: %s", req.Role)
		}
		role = r
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, errAuthFailed.Wrap(err)
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, s.fail("failed to create user", err)
	}

	s.logger.Info("user registered", zap.Int("user_id", user.ID), zap.String("role", role.String()))
	return toUserResponse(user), nil
}

// Login checks credentials and issues an access and a refresh token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, s.fail("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	return s.issue(user)
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, errInvalidToken
		}
		return nil, s.fail("failed to get user", err)
	}

	return s.issue(user)
}

// GetUser returns the public profile of a user
func (s *authService) GetUser(ctx context.Context, userID int) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, s.fail("failed to get user", err)
	}
	return toUserResponse(user), nil
}

func (s *authService) issue(user *models.User) (*models.TokenResponse, error) {
	access, refresh, err := s.tokens.GenerateTokens(user.ID, int(user.Role))
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Int("user_id", user.ID), zap.Error(err))
		return nil, errAuthFailed.Wrap(err)
	}
	return &models.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) fail(msg string, err error) error {
	typed := typedOr(err, errAuthFailed)
	if apperrors.KindOf(typed) == apperrors.KindUpstream {
		s.logger.Error(msg, zap.Error(err))
	}
	return typed
}

// checkPassword enforces length, an uppercase letter, a digit and a special character
func checkPassword(password string) error {
	switch {
	case len(password) < 8:
		return apperrors.Validation("Password must be at least 8 characters long.")
	case !upperRe.MatchString(password):
		return apperrors.Validation("Password must contain at least one uppercase letter.")
	case !digitRe.MatchString(password):
		return apperrors.Validation("Password must contain at least one digit.")
	case !specialRe.MatchString(password):
		return apperrors.Validation("Password must contain at least one special character.")
	}
	return nil
}

func toUserResponse(user *models.User) *models.UserResponse {
	return &models.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role.String(),
	}
}
