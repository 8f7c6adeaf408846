package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContentHandler_CreateIntroduction(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		svcErr         error
		expectedStatus int
		expectPayload  bool
	}{
		{name: "written", path: "/lessons/5/introduction", body: `{"description":"Loops repeat code."}`, expectedStatus: http.StatusCreated, expectPayload: true},
		{name: "generated without body", path: "/lessons/5/introduction?generate=true", expectedStatus: http.StatusCreated},
		{name: "written without body", path: "/lessons/5/introduction", body: `{}`, expectedStatus: http.StatusBadRequest},
		{
			name:           "already exists",
			path:           "/lessons/5/introduction",
			body:           `{"description":"Loops repeat code."}`,
			svcErr:         apperrors.Conflict("Introduction already exists for this lesson."),
			expectedStatus: http.StatusConflict,
			expectPayload:  true,
		},
		{
			name:           "generator down",
			path:           "/lessons/5/introduction?generate=1",
			svcErr:         apperrors.Upstream("Failed to generate lesson content.", errors.New("502")),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContentService{intro: &models.Introduction{ID: 1, LessonID: 5, Description: "Loops repeat code."}, err: tt.svcErr}
			h := NewContentHandler(svc, zap.NewNop())

			w := serve(h.RegisterRoutes, authedRequest(http.MethodPost, tt.path, tt.body, int(models.RoleTeacher)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusBadRequest {
				return
			}
			assert.Equal(t, !tt.expectPayload, svc.gotGenerate)
			assert.Equal(t, tt.expectPayload, svc.gotIntro != nil)
		})
	}
}

func TestContentHandler_AddQuizQuestions(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "two options",
			body:           `{"question":"What repeats?","options":[{"option":"for","isCorrect":true},{"option":"if"}]}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "single option",
			body:           `{"question":"What repeats?","options":[{"option":"for","isCorrect":true}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty option text",
			body:           `{"question":"What repeats?","options":[{"option":"for","isCorrect":true},{"option":""}]}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContentService{quiz: []models.QuizQuestion{{ID: 1, LessonID: 5, Question: "What repeats?"}}}
			h := NewContentHandler(svc, zap.NewNop())

			w := serve(h.RegisterRoutes, authedRequest(http.MethodPost, "/lessons/5/quiz", tt.body, int(models.RoleTeacher)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				require.NotNil(t, svc.gotQuiz)
				assert.Len(t, svc.gotQuiz.Options, 2)
			}
		})
	}
}

func TestContentHandler_CreateAssignment(t *testing.T) {
	svc := &mockContentService{assignment: &models.Assignment{ID: 1, LessonID: 5, Instructions: "Sum a slice."}}
	h := NewContentHandler(svc, zap.NewNop())

	w := serve(h.RegisterRoutes, authedRequest(http.MethodPost, "/lessons/5/assignment?generate=true", "", int(models.RoleTeacher)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.gotGenerate)
}

func TestContentHandler_EvaluateAssignment(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svcErr         error
		expectedStatus int
	}{
		{name: "graded", body: `{"userCode":"func sum() {}"}`, expectedStatus: http.StatusOK},
		{name: "missing code", body: `{"userCode":""}`, expectedStatus: http.StatusBadRequest},
		{name: "no assignment", body: `{"userCode":"x"}`, svcErr: apperrors.NotFound("No assignment found for this lesson."), expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContentService{
				evaluation: &models.AssignmentEvaluation{AssignmentScore: 90, Message: "Good."},
				err:        tt.svcErr,
			}
			h := NewContentHandler(svc, zap.NewNop())

			w := serve(h.RegisterRoutes, authedRequest(http.MethodPost, "/lessons/5/assignment/evaluate", tt.body, int(models.RoleUser)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "func sum() {}", svc.gotCode)
				assert.JSONEq(t, `{"assignmentScore":90,"message":"Good."}`, w.Body.String())
			}
		})
	}
}
