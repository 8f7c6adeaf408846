package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsAndAs(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("submit: %w", ErrProgressUpdateFailed.Wrap(cause))

	assert.True(t, errors.Is(err, ErrProgressUpdateFailed))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrLessonNotFound))

	var appErr *Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, KindUpstream, appErr.Kind)
	assert.Equal(t, "Failed to update progress.: connection reset", appErr.Error())
}

func TestKindOfAndMessageOf(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedKind    Kind
		expectedMessage string
	}{
		{"not found", ErrCourseNotFound, KindNotFound, "Course not found."},
		{"conflict", ErrAlreadyEnrolled, KindConflict, "Already enrolled in this course."},
		{"formatted", Newf(KindNotFound, "No public course found with id %d.", 4), KindNotFound, "No public course found with id 4."},
		{"plain error", errors.New("boom"), KindUpstream, "An unexpected error occurred."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKind, KindOf(tt.err))
			assert.Equal(t, tt.expectedMessage, MessageOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindConflict))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(KindUnauthorized))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindValidation))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindUpstream))
}

func TestCourseEmptyDistinctFromNoLessons(t *testing.T) {
	assert.False(t, errors.Is(ErrCourseEmpty, ErrNoLessonsInFirstModule))
	assert.Equal(t, KindValidation, KindOf(ErrCourseEmpty))
	assert.Equal(t, KindValidation, KindOf(ErrNoLessonsInFirstModule))
}
