package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication
type AuthService interface {
	// Register creates a user account
	//
	// "ctx" is the context for the request.
	// "req" is the registration request.
	//
	// Returns the created user and an error if any.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	// Login checks credentials and issues tokens
	//
	// "ctx" is the context for the request.
	// "req" is the login request.
	//
	// Returns the token pair and an error if any.
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
	// Refresh exchanges a refresh token for a new token pair
	//
	// "ctx" is the context for the request.
	// "refreshToken" is the refresh token.
	//
	// Returns the token pair and an error if any.
	Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error)
	// GetUser retrieves the profile of a user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the user and an error if any.
	GetUser(ctx context.Context, userID int) (*models.UserResponse, error)
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	BaseHandler
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RefreshRequest is the body of POST /auth/refresh
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RegisterRoutes registers auth routes; GET /auth/user requires authentication
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
		r.With(authMiddleware).Get("/user", h.GetUser)
	})
}

// Register handles POST /auth/register
// @Summary Register a user
// @Description Create an account; role is USER, TEACHER or ADMIN (USER by default)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Username or email taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Exchange email and password for an access and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	tokens, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, tokens)
}

// Refresh handles POST /auth/refresh
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} models.TokenResponse
// @Failure 403 {object} ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	tokens, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, tokens)
}

// GetUser handles GET /auth/user
// @Summary Current user
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /auth/user [get]
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}
