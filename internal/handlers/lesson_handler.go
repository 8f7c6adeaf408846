package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for lesson operations
type LessonService interface {
	// AddLessons appends lessons to a module of a course authored by the user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "moduleID" is the ID of the module.
	// "reqs" are the lessons to add, in order.
	// "generate" queues content generation for every added lesson.
	//
	// Returns the created lessons and an error if any.
	AddLessons(ctx context.Context, userID, moduleID int, reqs []models.CreateLessonRequest, generate bool) ([]models.Lesson, error)
	// ListByModule retrieves the lessons of a module with their content
	ListByModule(ctx context.Context, userID, moduleID int) ([]models.LessonDetail, error)
	// GetLesson retrieves a lesson with its content
	GetLesson(ctx context.Context, userID, lessonID int) (*models.LessonDetail, error)
	// UpdateLesson updates the topic or order of a lesson
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "lessonID" is the ID of the lesson.
	// "req" is the partial update.
	//
	// Returns the updated lesson and an error if any.
	UpdateLesson(ctx context.Context, userID, lessonID int, req *models.UpdateLessonRequest) (*models.Lesson, error)
	// DeleteLesson deletes a lesson and its content
	DeleteLesson(ctx context.Context, userID, lessonID int) error
}

// LessonHandler handles lesson requests
type LessonHandler struct {
	BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers lesson routes
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Post("/modules/{moduleID}/lessons", h.AddLessons)
	r.Get("/modules/{moduleID}/lessons", h.ListByModule)
	r.Get("/lessons/{lessonID}", h.GetLesson)
	r.Patch("/lessons/{lessonID}", h.UpdateLesson)
	r.Delete("/lessons/{lessonID}", h.DeleteLesson)
}

// AddLessons handles POST /modules/{moduleID}/lessons
// @Summary Add lessons to a module
// @Description Appends lessons after the last lesson of the module. With generate=true their content is generated in the background.
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleID path int true "Module ID"
// @Param generate query bool false "Generate lesson content"
// @Param request body []models.CreateLessonRequest true "Lessons"
// @Success 201 {array} models.Lesson
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Module not found"
// @Router /modules/{moduleID}/lessons [post]
func (h *LessonHandler) AddLessons(w http.ResponseWriter, r *http.Request) {
	userID, moduleID, ok := h.userAndPathID(w, r, "moduleID")
	if !ok {
		return
	}

	reqs, err := decodeList[models.CreateLessonRequest](r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	lessons, err := h.service.AddLessons(r.Context(), userID, moduleID, reqs, generateParam(r))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, lessons)
}

// ListByModule handles GET /modules/{moduleID}/lessons
// @Summary List lessons of a module
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param moduleID path int true "Module ID"
// @Success 200 {array} models.LessonDetail
// @Failure 403 {object} ErrorResponse "Private course"
// @Failure 404 {object} ErrorResponse "Module not found"
// @Router /modules/{moduleID}/lessons [get]
func (h *LessonHandler) ListByModule(w http.ResponseWriter, r *http.Request) {
	userID, moduleID, ok := h.userAndPathID(w, r, "moduleID")
	if !ok {
		return
	}

	lessons, err := h.service.ListByModule(r.Context(), userID, moduleID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, lessons)
}

// GetLesson handles GET /lessons/{lessonID}
// @Summary Get a lesson
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param lessonID path int true "Lesson ID"
// @Success 200 {object} models.LessonDetail
// @Failure 403 {object} ErrorResponse "Private course"
// @Failure 404 {object} ErrorResponse "Lesson not found"
// @Router /lessons/{lessonID} [get]
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := h.userAndPathID(w, r, "lessonID")
	if !ok {
		return
	}

	lesson, err := h.service.GetLesson(r.Context(), userID, lessonID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, lesson)
}

// UpdateLesson handles PATCH /lessons/{lessonID}
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonID path int true "Lesson ID"
// @Param request body models.UpdateLessonRequest true "Partial update"
// @Success 200 {object} models.Lesson
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Lesson not found"
// @Router /lessons/{lessonID} [patch]
func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := h.userAndPathID(w, r, "lessonID")
	if !ok {
		return
	}

	var req models.UpdateLessonRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	lesson, err := h.service.UpdateLesson(r.Context(), userID, lessonID, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, lesson)
}

// DeleteLesson handles DELETE /lessons/{lessonID}
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param lessonID path int true "Lesson ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Lesson not found"
// @Router /lessons/{lessonID} [delete]
func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := h.userAndPathID(w, r, "lessonID")
	if !ok {
		return
	}

	if err := h.service.DeleteLesson(r.Context(), userID, lessonID); err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondMessage(w, http.StatusOK, "Lesson deleted successfully.")
}
