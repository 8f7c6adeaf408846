package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

// ModuleService is the interface that wraps methods for module operations
type ModuleService interface {
	// CreateModule appends a module to a course authored by the user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	// "req" is the request to create a module.
	//
	// Returns the created module and an error if any.
	CreateModule(ctx context.Context, userID, courseID int, req *models.CreateModuleRequest) (*models.Module, error)
	// GenerateModules appends generated modules to a course authored by the user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns the created modules and an error if any.
	GenerateModules(ctx context.Context, userID, courseID int) ([]models.Module, error)
	// ListByCourse retrieves the modules of a course with their lessons
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns the modules and an error if any.
	ListByCourse(ctx context.Context, userID, courseID int) ([]models.ModuleWithLessons, error)
}

// ModuleHandler handles module requests
type ModuleHandler struct {
	BaseHandler
	service ModuleService
}

// NewModuleHandler creates a new module handler
func NewModuleHandler(svc ModuleService, logger *zap.Logger) *ModuleHandler {
	return &ModuleHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers module routes
func (h *ModuleHandler) RegisterRoutes(r chi.Router) {
	r.Post("/courses/{courseID}/modules", h.CreateModule)
	r.Get("/courses/{courseID}/modules", h.ListByCourse)
}

// CreateModule handles POST /courses/{courseID}/modules
// @Summary Create a module
// @Description Appends a module to the end of the course. With generate=true the body is ignored
// @Description and three generated modules are appended instead, returned as a list.
// @Tags modules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Param generate query bool false "Generate the module outline"
// @Param request body models.CreateModuleRequest false "Module"
// @Success 201 {object} models.Module
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 500 {object} ErrorResponse "Generation failed"
// @Router /courses/{courseID}/modules [post]
func (h *ModuleHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	courseID, err := pathID(r, "courseID")
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if generateParam(r) {
		modules, err := h.service.GenerateModules(r.Context(), userID, courseID)
		if err != nil {
			h.RespondServiceError(w, err)
			return
		}
		h.RespondJSON(w, http.StatusCreated, modules)
		return
	}

	var req models.CreateModuleRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	module, err := h.service.CreateModule(r.Context(), userID, courseID, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, module)
}

// ListByCourse handles GET /courses/{courseID}/modules
// @Summary List modules of a course
// @Tags modules
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {array} models.ModuleWithLessons
// @Failure 403 {object} ErrorResponse "Private course"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Router /courses/{courseID}/modules [get]
func (h *ModuleHandler) ListByCourse(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	courseID, err := pathID(r, "courseID")
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	modules, err := h.service.ListByCourse(r.Context(), userID, courseID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, modules)
}
