package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for course operations
type CourseService interface {
	// CreateCourse creates a course authored by the user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the author.
	// "role" is the role of the author.
	// "req" is the request to create a course.
	//
	// Returns the created course and an error if any.
	CreateCourse(ctx context.Context, userID int, role models.Role, req *models.CreateCourseRequest) (*models.Course, error)
	// GetCourse retrieves a course with student and lesson counts
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	//
	// Returns the course and an error if any.
	GetCourse(ctx context.Context, userID, courseID int) (*models.CourseDetailResponse, error)
	// ListCourses lists public courses in the requested order, or the user's own courses
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "q" holds sortBy and limit.
	//
	// Returns the courses and an error if any.
	ListCourses(ctx context.Context, userID int, q models.CourseListQuery) ([]models.Course, error)
	// ListAuthored retrieves the courses authored by the user
	ListAuthored(ctx context.Context, userID int) ([]models.Course, error)
	// ListEnrolled retrieves the courses the user is enrolled in
	ListEnrolled(ctx context.Context, userID int) ([]models.Course, error)
	// UpdateCourse updates a course authored by the user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	// "req" is the partial update.
	//
	// Returns the updated course and an error if any.
	UpdateCourse(ctx context.Context, userID, courseID int, req *models.UpdateCourseRequest) (*models.Course, error)
	// DeleteCourse deletes a course authored by the user
	DeleteCourse(ctx context.Context, userID, courseID int) error
	// RateCourse stores the rating of an enrolled user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "courseID" is the ID of the course.
	// "score" is the rating from 1 to 5.
	//
	// Returns the new average rating and an error if any.
	RateCourse(ctx context.Context, userID, courseID, score int) (float64, error)
	// GetProgressStats retrieves aggregate student progress of a course authored by the user
	GetProgressStats(ctx context.Context, userID, courseID int) (*models.CourseProgressStats, error)
	// GetPlatformStats retrieves the catalogue summary
	GetPlatformStats(ctx context.Context) (*models.PlatformStats, error)
	// GetLeaderboard ranks users by completed lessons
	GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	// ListEnrolledProgress retrieves the completion of the user's enrolled courses
	ListEnrolledProgress(ctx context.Context, userID int) ([]models.EnrolledCourseProgress, error)
	// ListAuthoredProgress retrieves the student progress of the user's authored courses
	ListAuthoredProgress(ctx context.Context, userID int) ([]models.AuthoredCourseProgress, error)
	// ListStudentProgress retrieves per-student progress of a course authored by the user
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the author.
	// "courseID" is the ID of the course.
	//
	// Returns the progress of each student and an error if any.
	ListStudentProgress(ctx context.Context, userID, courseID int) ([]models.StudentCourseProgress, error)
}

// EnrollmentService is the interface that wraps methods for enrollment
type EnrollmentService interface {
	// Enroll adds the student to the roster of a course and opens its first lesson
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the student.
	// "courseID" is the ID of the course.
	//
	// Returns the enrollment result and an error if any.
	Enroll(ctx context.Context, studentID, courseID int) (*models.EnrollResult, error)
	// IsEnrolled checks whether the student is on the roster of a course
	IsEnrolled(ctx context.Context, studentID, courseID int) (bool, error)
}

// CourseHandler handles course requests
type CourseHandler struct {
	BaseHandler
	service    CourseService
	enrollment EnrollmentService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, enrollment EnrollmentService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		enrollment:  enrollment,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// EnrollResponse is the body of a successful enrollment
type EnrollResponse struct {
	Message             string `json:"message"`
	ProgressInitialized bool   `json:"progressInitialized"`
}

// EnrolledResponse reports roster membership
type EnrolledResponse struct {
	Enrolled bool `json:"enrolled"`
}

// RatingResponse reports the average rating of a course
type RatingResponse struct {
	Rating float64 `json:"rating"`
}

// RegisterRoutes registers course routes; callers wrap r with the auth middleware
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Post("/courses", h.CreateCourse)
	r.Get("/courses", h.ListCourses)
	r.Get("/courses/mine", h.ListAuthored)
	r.Get("/courses/enrolled", h.ListEnrolled)
	r.Get("/courses/stats", h.GetPlatformStats)
	r.Get("/courses/progress/general", h.GetLeaderboard)
	r.Get("/courses/progress/enrolled", h.ListEnrolledProgress)
	r.Get("/courses/teacher/progress", h.ListAuthoredProgress)
	r.Get("/courses/{courseID}", h.GetCourse)
	r.Patch("/courses/{courseID}", h.UpdateCourse)
	r.Delete("/courses/{courseID}", h.DeleteCourse)
	r.Post("/courses/{courseID}/enroll", h.Enroll)
	r.Get("/courses/{courseID}/is-enrolled", h.IsEnrolled)
	r.Post("/courses/{courseID}/rate", h.RateCourse)
	r.Get("/courses/{courseID}/stats", h.GetProgressStats)
	r.Get("/courses/{courseID}/progress", h.ListStudentProgress)
}

// CreateCourse handles POST /courses
// @Summary Create a course
// @Description Teachers create courses; the caller becomes the author
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateCourseRequest true "Course"
// @Success 201 {object} models.Course
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Only teachers can create courses"
// @Failure 409 {object} ErrorResponse "Name taken"
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	userID, role, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	var req models.CreateCourseRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	course, err := h.service.CreateCourse(r.Context(), userID, models.Role(role), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, course)
}

// ListCourses handles GET /courses
// @Summary List courses
// @Description Public courses by id, or ordered with sortBy=latest|highest-rated; sortBy=my lists the caller's own courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param sortBy query string false "my, latest or highest-rated"
// @Param limit query int false "Maximum number of courses"
// @Success 200 {array} models.Course
// @Failure 400 {object} ErrorResponse "Invalid sortBy or limit"
// @Router /courses [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	limit, err := limitParam(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	q := models.CourseListQuery{
		SortBy: models.CourseSort(r.URL.Query().Get("sortBy")),
		Limit:  limit,
	}
	courses, err := h.service.ListCourses(r.Context(), userID, q)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, courses)
}

// ListAuthored handles GET /courses/mine
// @Summary List authored courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Course
// @Router /courses/mine [get]
func (h *CourseHandler) ListAuthored(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	courses, err := h.service.ListAuthored(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, courses)
}

// ListEnrolled handles GET /courses/enrolled
// @Summary List enrolled courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Course
// @Router /courses/enrolled [get]
func (h *CourseHandler) ListEnrolled(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	courses, err := h.service.ListEnrolled(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /courses/{courseID}
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {object} models.CourseDetailResponse
// @Failure 403 {object} ErrorResponse "Private course"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Router /courses/{courseID} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.userAndPathID(w, r, "courseID")
	if !ok {
		return
	}

	course, err := h.service.GetCourse(r.Context(), userID, courseID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, course)
}

// UpdateCourse handles PATCH /courses/{courseID}
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Param request body models.UpdateCourseRequest true "Partial update"
// @Success 200 {object} models.Course
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Router /courses/{courseID} [patch]
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.userAndPathID(w, r, "courseID")
	if !ok {
		return
	}

	var req models.UpdateCourseRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	course, err := h.service.UpdateCourse(r.Context(), userID, courseID, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, course)
}

// DeleteCourse handles DELETE /courses/{courseID}
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Router /courses/{courseID} [delete]
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.userAndPathID(w, r, "courseID")
	if !ok {
		return
	}

	if err := h.service.DeleteCourse(r.Context(), userID, courseID); err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondMessage(w, http.StatusOK, "Course deleted successfully.")
}

// Enroll handles POST /courses/{courseID}/enroll
// @Summary Enroll in a course
// @Description Adds the caller to the roster and opens the first lesson of the course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {object} EnrollResponse
// @Failure 400 {object} ErrorResponse "Course has no lessons to start with"
// @Failure 403 {object} ErrorResponse "Private course"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Failure 409 {object} ErrorResponse "Already enrolled"
// @Router /courses/{courseID}/enroll [post]
func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.userAndPathID(w, r, "courseID")
	if !ok {
		return
	}

	result, err := h.enrollment.Enroll(r.Context(), userID, courseID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, EnrollResponse{
		Message:             "Successfully enrolled in the course and progress initialized for the first lesson.",
		ProgressInitialized: result.ProgressInitialized,
	})
}

// IsEnrolled handles GET /courses/{courseID}/is-enrolled
// @Summary Check enrollment
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {object} EnrolledResponse
// @Failure 404 {object} ErrorResponse "Course not found"
// @Router /courses/{courseID}/is-enrolled [get]
func (h *CourseHandler) IsEnrolled(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.userAndPathID(w, r, "courseID")
	if !ok {
		return
	}

	enrolled, err := h.enrollment.IsEnrolled(r.Context(), userID, courseID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, EnrolledResponse{Enrolled: enrolled})
}

// RateCourse handles POST /courses/{courseID}/rate
// @Summary Rate a course
// @Description Enrolled users rate from 1 to 5; rating again replaces the previous score
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Param request body models.RateCourseRequest true "Score"
// @Success 200 {object} RatingResponse
// @Failure 400 {object} ErrorResponse "Invalid score"
// @Failure 403 {object} ErrorResponse "Not enrolled"
// @Router /courses/{courseID}/rate [post]
func (h *CourseHandler) RateCourse(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.userAndPathID(w, r, "courseID")
	if !ok {
		return
	}

	var req models.RateCourseRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	rating, err := h.service.RateCourse(r.Context(), userID, courseID, req.Score)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, RatingResponse{Rating: rating})
}

// GetProgressStats handles GET /courses/{courseID}/stats
// @Summary Course progress statistics
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {object} models.CourseProgressStats
// @Failure 403 {object} ErrorResponse "Not the author"
// @Router /courses/{courseID}/stats [get]
func (h *CourseHandler) GetProgressStats(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.userAndPathID(w, r, "courseID")
	if !ok {
		return
	}

	stats, err := h.service.GetProgressStats(r.Context(), userID, courseID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, stats)
}

// GetPlatformStats handles GET /courses/stats
// @Summary Catalogue summary
// @Description Counts public courses, student accounts and completed lessons
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.PlatformStats
// @Router /courses/stats [get]
func (h *CourseHandler) GetPlatformStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetPlatformStats(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, stats)
}

// GetLeaderboard handles GET /courses/progress/general
// @Summary Leaderboard
// @Description Users ranked by lessons completed across all courses
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} models.LeaderboardEntry
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Router /courses/progress/general [get]
func (h *CourseHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	entries, err := h.service.GetLeaderboard(r.Context(), limit)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, entries)
}

// ListEnrolledProgress handles GET /courses/progress/enrolled
// @Summary Progress in enrolled courses
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.EnrolledCourseProgress
// @Router /courses/progress/enrolled [get]
func (h *CourseHandler) ListEnrolledProgress(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	progress, err := h.service.ListEnrolledProgress(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, progress)
}

// ListAuthoredProgress handles GET /courses/teacher/progress
// @Summary Student progress in authored courses
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.AuthoredCourseProgress
// @Router /courses/teacher/progress [get]
func (h *CourseHandler) ListAuthoredProgress(w http.ResponseWriter, r *http.Request) {
	userID, _, err := currentUser(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	progress, err := h.service.ListAuthoredProgress(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, progress)
}

// ListStudentProgress handles GET /courses/{courseID}/progress
// @Summary Per-student progress of a course
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param courseID path int true "Course ID"
// @Success 200 {array} models.StudentCourseProgress
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Course not found or has no lessons"
// @Router /courses/{courseID}/progress [get]
func (h *CourseHandler) ListStudentProgress(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.userAndPathID(w, r, "courseID")
	if !ok {
		return
	}

	progress, err := h.service.ListStudentProgress(r.Context(), userID, courseID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, progress)
}
