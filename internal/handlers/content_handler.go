package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

// ContentService is the interface that wraps methods for lesson content
type ContentService interface {
	// CreateIntroduction stores the introduction of a lesson, written or generated
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "lessonID" is the ID of the lesson.
	// "generate" asks the content generator for the introduction; req is ignored.
	// "req" is the manually written introduction.
	//
	// Returns the introduction and an error if any.
	CreateIntroduction(ctx context.Context, userID, lessonID int, generate bool, req *models.CreateIntroductionRequest) (*models.Introduction, error)
	// AddQuizQuestions adds one written question or a generated set to the lesson quiz
	AddQuizQuestions(ctx context.Context, userID, lessonID int, generate bool, req *models.CreateQuizQuestionRequest) ([]models.QuizQuestion, error)
	// CreateAssignment stores the assignment of a lesson, written or generated
	CreateAssignment(ctx context.Context, userID, lessonID int, generate bool, req *models.CreateAssignmentRequest) (*models.Assignment, error)
	// EvaluateAssignment grades submitted code and records the score as progress
	//
	// "ctx" is the context for the request.
	// "studentID" is the ID of the student.
	// "lessonID" is the ID of the lesson.
	// "userCode" is the submitted code.
	//
	// Returns the evaluation and an error if any.
	EvaluateAssignment(ctx context.Context, studentID, lessonID int, userCode string) (*models.AssignmentEvaluation, error)
}

// ContentHandler handles lesson content requests
type ContentHandler struct {
	BaseHandler
	service ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(svc ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers lesson content routes
func (h *ContentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/lessons/{lessonID}/introduction", h.CreateIntroduction)
	r.Post("/lessons/{lessonID}/quiz", h.AddQuizQuestions)
	r.Post("/lessons/{lessonID}/assignment", h.CreateAssignment)
	r.Post("/lessons/{lessonID}/assignment/evaluate", h.EvaluateAssignment)
}

// CreateIntroduction handles POST /lessons/{lessonID}/introduction
// @Summary Create a lesson introduction
// @Description The body is required unless generate=true
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonID path int true "Lesson ID"
// @Param generate query bool false "Generate the introduction"
// @Param request body models.CreateIntroductionRequest false "Introduction"
// @Success 201 {object} models.Introduction
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 409 {object} ErrorResponse "Introduction already exists"
// @Failure 502 {object} ErrorResponse "Generation failed"
// @Router /lessons/{lessonID}/introduction [post]
func (h *ContentHandler) CreateIntroduction(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := h.userAndPathID(w, r, "lessonID")
	if !ok {
		return
	}

	generate := generateParam(r)
	var req *models.CreateIntroductionRequest
	if !generate {
		req = &models.CreateIntroductionRequest{}
		if err := h.decode(r, req); err != nil {
			h.RespondServiceError(w, err)
			return
		}
	}

	intro, err := h.service.CreateIntroduction(r.Context(), userID, lessonID, generate, req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, intro)
}

// AddQuizQuestions handles POST /lessons/{lessonID}/quiz
// @Summary Add quiz questions
// @Description Adds one written question, or a generated set when generate=true
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonID path int true "Lesson ID"
// @Param generate query bool false "Generate the quiz"
// @Param request body models.CreateQuizQuestionRequest false "Question"
// @Success 201 {array} models.QuizQuestion
// @Failure 400 {object} ErrorResponse "Invalid question"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 502 {object} ErrorResponse "Generation failed"
// @Router /lessons/{lessonID}/quiz [post]
func (h *ContentHandler) AddQuizQuestions(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := h.userAndPathID(w, r, "lessonID")
	if !ok {
		return
	}

	generate := generateParam(r)
	var req *models.CreateQuizQuestionRequest
	if !generate {
		req = &models.CreateQuizQuestionRequest{}
		if err := h.decode(r, req); err != nil {
			h.RespondServiceError(w, err)
			return
		}
	}

	quiz, err := h.service.AddQuizQuestions(r.Context(), userID, lessonID, generate, req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, quiz)
}

// CreateAssignment handles POST /lessons/{lessonID}/assignment
// @Summary Create a lesson assignment
// @Description The body is required unless generate=true
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonID path int true "Lesson ID"
// @Param generate query bool false "Generate the assignment"
// @Param request body models.CreateAssignmentRequest false "Assignment"
// @Success 201 {object} models.Assignment
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 409 {object} ErrorResponse "Assignment already exists"
// @Failure 502 {object} ErrorResponse "Generation failed"
// @Router /lessons/{lessonID}/assignment [post]
func (h *ContentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := h.userAndPathID(w, r, "lessonID")
	if !ok {
		return
	}

	generate := generateParam(r)
	var req *models.CreateAssignmentRequest
	if !generate {
		req = &models.CreateAssignmentRequest{}
		if err := h.decode(r, req); err != nil {
			h.RespondServiceError(w, err)
			return
		}
	}

	assignment, err := h.service.CreateAssignment(r.Context(), userID, lessonID, generate, req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, assignment)
}

// EvaluateAssignment handles POST /lessons/{lessonID}/assignment/evaluate
// @Summary Evaluate assignment code
// @Description Grades the submitted code and records the score in the caller's progress
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lessonID path int true "Lesson ID"
// @Param request body models.EvaluateAssignmentRequest true "Code"
// @Success 200 {object} models.AssignmentEvaluation
// @Failure 400 {object} ErrorResponse "Code is required"
// @Failure 404 {object} ErrorResponse "No assignment"
// @Failure 502 {object} ErrorResponse "Evaluation failed"
// @Router /lessons/{lessonID}/assignment/evaluate [post]
func (h *ContentHandler) EvaluateAssignment(w http.ResponseWriter, r *http.Request) {
	userID, lessonID, ok := h.userAndPathID(w, r, "lessonID")
	if !ok {
		return
	}

	var req models.EvaluateAssignmentRequest
	if err := h.decode(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	result, err := h.service.EvaluateAssignment(r.Context(), userID, lessonID, req.UserCode)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, result)
}
