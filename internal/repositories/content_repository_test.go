package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContentTestRepository(t *testing.T) (*contentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewContentRepository(db), mock, func() { db.Close() }
}

func TestContentRepository_GetIntroduction(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		repo, mock, cleanup := setupContentTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT id, lesson_id, description FROM lesson_introductions WHERE lesson_id = \?`).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"id", "lesson_id", "description"}).AddRow(1, 3, "<p>Hi</p>"))

		intro, err := repo.GetIntroduction(context.Background(), 3)
		require.NoError(t, err)
		require.NotNil(t, intro)
		assert.Equal(t, "<p>Hi</p>", intro.Description)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock, cleanup := setupContentTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT id, lesson_id, description FROM lesson_introductions`).
			WithArgs(3).
			WillReturnError(sql.ErrNoRows)

		intro, err := repo.GetIntroduction(context.Background(), 3)
		assert.NoError(t, err)
		assert.Nil(t, intro)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContentRepository_CreateAssignmentDuplicate(t *testing.T) {
	repo, mock, cleanup := setupContentTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO lesson_assignments`).
		WithArgs(3, "Write a loop").
		WillReturnError(&mysql.MySQLError{Number: 1062})

	err := repo.CreateAssignment(context.Background(), &models.Assignment{LessonID: 3, Instructions: "Write a loop"})
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_ListQuiz(t *testing.T) {
	repo, mock, cleanup := setupContentTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"q.id", "q.lesson_id", "q.question", "o.id", "o.question_id", "o.option_text", "o.is_correct"}).
		AddRow(1, 3, "2+2?", 10, 1, "4", true).
		AddRow(1, 3, "2+2?", 11, 1, "5", false).
		AddRow(2, 3, "Empty?", nil, nil, nil, nil)
	mock.ExpectQuery(`SELECT q.id, .* FROM lesson_quiz_questions q LEFT JOIN quiz_options o`).
		WithArgs(3).
		WillReturnRows(rows)

	quiz, err := repo.ListQuiz(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, quiz, 2)
	assert.Len(t, quiz[0].Options, 2)
	assert.True(t, quiz[0].Options[0].IsCorrect)
	assert.Empty(t, quiz[1].Options)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_CreateQuizQuestion(t *testing.T) {
	repo, mock, cleanup := setupContentTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO lesson_quiz_questions`).WithArgs(3, "2+2?").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec(`INSERT INTO quiz_options`).WithArgs(5, "4", true).WillReturnResult(sqlmock.NewResult(20, 1))
	mock.ExpectExec(`INSERT INTO quiz_options`).WithArgs(5, "5", false).WillReturnResult(sqlmock.NewResult(21, 1))

	question := &models.QuizQuestion{
		LessonID: 3,
		Question: "2+2?",
		Options:  []models.QuizOption{{Option: "4", IsCorrect: true}, {Option: "5"}},
	}
	require.NoError(t, repo.CreateQuizQuestion(context.Background(), question))

	assert.Equal(t, 5, question.ID)
	assert.Equal(t, 20, question.Options[0].ID)
	assert.Equal(t, 5, question.Options[1].QuestionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
