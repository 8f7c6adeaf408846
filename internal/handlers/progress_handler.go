package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for student progress
type ProgressService interface {
	// Submit applies a progress update of a student to a lesson
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the student.
	// "lessonID" is the ID of the lesson.
	// "update" is the partial update.
	//
	// Returns whether the row was created or updated and an error if any.
	Submit(ctx context.Context, studentID, lessonID int, update models.ProgressUpdate) (*models.SubmitResult, error)
	// ListByCourse retrieves the progress rows of a student in a course
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the student.
	// "courseID" is the ID of the course.
	//
	// Returns the progress rows and an error if any.
	ListByCourse(ctx context.Context, studentID, courseID int) ([]models.Progress, error)
}

// ProgressHandler handles student progress requests
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// ProgressResponse is the body of a successful progress submission
type ProgressResponse struct {
	Message  string          `json:"message"`
	Progress models.Progress `json:"progress"`
}

// RegisterRoutes registers progress routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Post("/student-progress", h.Submit)
	r.Get("/student-progress/{courseID}", h.ListByCourse)
}

// Submit handles POST /student-progress
// @Summary Submit lesson progress
// @Description Records introduction, quiz and assignment results. A lesson that becomes completed opens the next lesson of the course.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.SubmitProgressRequest true "Progress"
// @Success 200 {object} ProgressResponse "Progress updated"
// @Success 201 {object} ProgressResponse "Progress created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Lesson not found"
// @Failure 500 {object} ErrorResponse "Progress could not be saved"
// @Router /student-progress [post]
func (h *ProgressHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	var req models.SubmitProgressRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, req.LessonID, req.ProgressUpdate)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	status := http.StatusOK
	if result.Status == models.SubmitStatusCreated {
		status = http.StatusCreated
	}
	h.RespondJSON(w, status, ProgressResponse{
		Message:  "Progress added or updated successfully.",
		Progress: result.Progress,
	})
}

// ListByCourse handles GET /student-progress/{courseID}
// @Summary List progress in a course
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {array} models.Progress
// @Failure 404 {object} ErrorResponse "No progress found"
// @Router /student-progress/{courseID} [get]
func (h *ProgressHandler) ListByCourse(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.userAndPathID(w, r, "courseID")
	if !ok {
		return
	}

	progress, err := h.service.ListByCourse(r.Context(), userID, courseID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, progress)
}
