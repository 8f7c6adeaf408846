package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/learnhowtocode/backend/internal/apperrors"
	authMiddleware "github.com/learnhowtocode/backend/internal/auth/middleware"
	"go.uber.org/zap"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON field names in validation messages
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Kind    apperrors.Kind `json:"kind"`
	Message string         `json:"message"`
}

// MessageResponse is the body of requests that only report an outcome
type MessageResponse struct {
	Message string `json:"message"`
}

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, kind apperrors.Kind, message string) {
	h.RespondJSON(w, apperrors.HTTPStatus(kind), ErrorResponse{Kind: kind, Message: message})
}

// RespondServiceError maps a service error to its status code; causes never reach the client
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error) {
	h.RespondError(w, apperrors.KindOf(err), apperrors.MessageOf(err))
}

// RespondMessage sends a {"message": ...} response
func (h *BaseHandler) RespondMessage(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, MessageResponse{Message: message})
}

// userAndPathID resolves the caller and a path ID, responding with the error when either is missing
func (h *BaseHandler) userAndPathID(w http.ResponseWriter, r *http.Request, name string) (int, int, bool) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return 0, 0, false
	}
	id, err := pathID(r, name)
	if err != nil {
		h.RespondServiceError(w, err)
		return 0, 0, false
	}
	return userID, id, true
}

// decode reads a JSON body into dst and validates it
func (h *BaseHandler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.Validation("Invalid request body.")
	}
	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// decodeList reads a JSON array body and validates every element
func decodeList[T any](r *http.Request) ([]T, error) {
	var items []T
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		return nil, apperrors.Validation("Invalid request body.")
	}
	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return nil, validationError(err)
		}
	}
	return items, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Param() != "" {
			return apperrors.Newf(apperrors.KindValidation, "Field '%s' failed on '%s=%s'.", fe.Field(), fe.Tag(), fe.Param())
		}
		return apperrors.Newf(apperrors.KindValidation, "Field '%s' failed on '%s'.", fe.Field(), fe.Tag())
	}
	return apperrors.Validation("Invalid request body.")
}

// currentUser returns the authenticated user ID and role set by the auth middleware
func currentUser(r *http.Request) (int, int, error) {
	userID, ok := authMiddleware.GetUserID(r.Context())
	if !ok {
		return 0, 0, apperrors.Unauthorized("Authentication required.")
	}
	role, _ := authMiddleware.GetRole(r.Context())
	return userID, role, nil
}

// pathID parses a positive integer URL parameter
func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, apperrors.Validation(fmt.Sprintf("Invalid %s.", name))
	}
	return id, nil
}

// generateParam reads the generate query flag; anything but a true value is false
func generateParam(r *http.Request) bool {
	generate, _ := strconv.ParseBool(r.URL.Query().Get("generate"))
	return generate
}

// limitParam parses the optional limit query parameter; absent means 0, no limit
func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, apperrors.Validation("Limit must be a positive integer.")
	}
	return limit, nil
}
