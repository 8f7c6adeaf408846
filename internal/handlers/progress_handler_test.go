package handlers

import (
	"net/http"
	"testing"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProgressHandler_Submit(t *testing.T) {
	quiz := 85.0

	tests := []struct {
		name           string
		body           string
		result         *models.SubmitResult
		svcErr         error
		expectedStatus int
	}{
		{
			name:           "created",
			body:           `{"lessonId":5,"introductionCompleted":true}`,
			result:         &models.SubmitResult{Status: models.SubmitStatusCreated, Progress: models.Progress{LessonID: 5, IntroductionCompleted: true}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "updated",
			body:           `{"lessonId":5,"quizScore":85}`,
			result:         &models.SubmitResult{Status: models.SubmitStatusUpdated, Progress: models.Progress{LessonID: 5, QuizScore: &quiz}},
			expectedStatus: http.StatusOK,
		},
		{name: "missing lesson", body: `{"quizScore":85}`, expectedStatus: http.StatusBadRequest},
		{name: "score out of range", body: `{"lessonId":5,"quizScore":120}`, expectedStatus: http.StatusBadRequest},
		{name: "store failure", body: `{"lessonId":5,"quizScore":85}`, svcErr: apperrors.ErrProgressUpdateFailed, expectedStatus: http.StatusInternalServerError},
		{name: "lesson not found", body: `{"lessonId":99}`, svcErr: apperrors.ErrLessonNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockProgressService{result: tt.result, err: tt.svcErr}
			h := NewProgressHandler(svc, zap.NewNop())

			w := serve(h.RegisterRoutes, authedRequest(http.MethodPost, "/student-progress", tt.body, int(models.RoleUser)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.result != nil && tt.svcErr == nil {
				var body ProgressResponse
				decodeBody(t, w, &body)
				assert.Equal(t, "Progress added or updated successfully.", body.Message)
				assert.Equal(t, 5, body.Progress.LessonID)
				assert.Equal(t, 5, svc.gotLesson)
			}
		})
	}
}

func TestProgressHandler_SubmitPassesPartialUpdate(t *testing.T) {
	svc := &mockProgressService{result: &models.SubmitResult{Status: models.SubmitStatusUpdated}}
	h := NewProgressHandler(svc, zap.NewNop())

	w := serve(h.RegisterRoutes, authedRequest(http.MethodPost, "/student-progress", `{"lessonId":5,"assignmentScore":70}`, int(models.RoleUser)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.gotUpdate.IntroductionCompleted)
	assert.Nil(t, svc.gotUpdate.QuizScore)
	require.NotNil(t, svc.gotUpdate.AssignmentScore)
	assert.Equal(t, 70.0, *svc.gotUpdate.AssignmentScore)
}

func TestProgressHandler_ListByCourse(t *testing.T) {
	tests := []struct {
		name           string
		progress       []models.Progress
		svcErr         error
		expectedStatus int
	}{
		{name: "rows found", progress: []models.Progress{{LessonID: 5}, {LessonID: 6}}, expectedStatus: http.StatusOK},
		{name: "no progress", svcErr: apperrors.ErrNoProgressFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProgressHandler(&mockProgressService{progress: tt.progress, err: tt.svcErr}, zap.NewNop())

			w := serve(h.RegisterRoutes, authedRequest(http.MethodGet, "/student-progress/1", "", int(models.RoleUser)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.svcErr == nil {
				var rows []models.Progress
				decodeBody(t, w, &rows)
				assert.Len(t, rows, 2)
			}
		})
	}
}
