package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLessonTestRepository creates a lesson repository with a mock database
func setupLessonTestRepository(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLessonRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestLessonRepository_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "module_id", "topic", "order", "name", "id", "name", "description", "author_id", "is_public"}).
					AddRow(5, 2, "Loops", 1, "Basics", 1, "Python", "Intro course", 9, true)
				mock.ExpectQuery(`SELECT .* FROM lessons l JOIN modules m .* WHERE l.id = \?`).
					WithArgs(5).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM lessons l`).
					WithArgs(5).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: apperrors.ErrLessonNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM lessons l`).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			lesson, err := repo.GetByID(context.Background(), 5)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, lesson)
				if errors.Is(tt.expectedError, apperrors.ErrLessonNotFound) {
					assert.ErrorIs(t, err, apperrors.ErrLessonNotFound)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, 5, lesson.ID)
				assert.Equal(t, 1, lesson.CourseID)
				assert.Equal(t, 9, lesson.CourseAuthorID)
				assert.True(t, lesson.CourseIsPublic)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_GetNextOrder(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(` + "`order`" + `\), 0\) \+ 1 FROM lessons WHERE module_id = \?`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(4))

	next, err := repo.GetNextOrder(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 4, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO lessons`).
		WithArgs(2, "Loops", 3).
		WillReturnResult(sqlmock.NewResult(11, 1))

	lesson := &models.Lesson{ModuleID: 2, Topic: "Loops", Order: 3}
	require.NoError(t, repo.Create(context.Background(), lesson))
	assert.Equal(t, 11, lesson.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		result        sql.Result
		expectedError error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "not found", result: sqlmock.NewResult(0, 0), expectedError: apperrors.ErrLessonNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			mock.ExpectExec(`DELETE FROM lessons WHERE id = \?`).WithArgs(5).WillReturnResult(tt.result)

			err := repo.Delete(context.Background(), 5)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLessonRepository_ListByModules(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "module_id", "topic", "order"}).
		AddRow(1, 1, "A", 1).
		AddRow(2, 2, "B", 1)
	mock.ExpectQuery(`SELECT id, module_id, topic, .* FROM lessons WHERE module_id IN \(\?,\?\)`).
		WithArgs(1, 2).
		WillReturnRows(rows)

	lessons, err := repo.ListByModules(context.Background(), []int{1, 2})
	require.NoError(t, err)
	assert.Len(t, lessons, 2)

	empty, err := repo.ListByModules(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_GetOutline(t *testing.T) {
	repo, mock, cleanup := setupLessonTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"m.id", "m.order", "l.id", "l.order"}).
		AddRow(1, 1, 10, 1).
		AddRow(1, 1, 11, 2).
		AddRow(2, 2, nil, nil).
		AddRow(3, 3, 30, 1)
	mock.ExpectQuery(`SELECT m.id, .* FROM modules m LEFT JOIN lessons l ON l.module_id = m.id WHERE m.course_id = \?`).
		WithArgs(7).
		WillReturnRows(rows)

	outline, err := repo.GetOutline(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, outline.CourseID)
	require.Len(t, outline.Modules, 3)
	assert.Equal(t, []models.LessonRef{{ID: 10, ModuleID: 1, Order: 1}, {ID: 11, ModuleID: 1, Order: 2}}, outline.Modules[0].Lessons)
	assert.Empty(t, outline.Modules[1].Lessons)
	assert.Equal(t, 30, outline.Modules[2].Lessons[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
