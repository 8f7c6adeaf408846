package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
)

var (
	errIntroductionExists = apperrors.Conflict("An introduction for this lesson already exists.")
	errAssignmentExists   = apperrors.Conflict("An assignment for this lesson already exists.")
)

type contentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a repository for lesson introductions, quizzes and assignments
func NewContentRepository(db *sql.DB) *contentRepository {
	return &contentRepository{
		db: db,
	}
}

// GetIntroduction returns the introduction of a lesson, nil when there is none
func (r *contentRepository) GetIntroduction(ctx context.Context, lessonID int) (*models.Introduction, error) {
	query := `SELECT id, lesson_id, description FROM lesson_introductions WHERE lesson_id = ?`

	var intro models.Introduction
	err := conn(ctx, r.db).QueryRowContext(ctx, query, lessonID).Scan(&intro.ID, &intro.LessonID, &intro.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get introduction: %w", err)
	}
	return &intro, nil
}

// CreateIntroduction creates the introduction of a lesson; a lesson has at most one
func (r *contentRepository) CreateIntroduction(ctx context.Context, intro *models.Introduction) error {
	query := `INSERT INTO lesson_introductions (lesson_id, description) VALUES (?, ?)`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, intro.LessonID, intro.Description)
	if err != nil {
		return fmt.Errorf("failed to create introduction: %w", duplicateOr(err, errIntroductionExists))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	intro.ID = int(id)
	return nil
}

// GetAssignment returns the assignment of a lesson, nil when there is none
func (r *contentRepository) GetAssignment(ctx context.Context, lessonID int) (*models.Assignment, error) {
	query := `SELECT id, lesson_id, instructions FROM lesson_assignments WHERE lesson_id = ?`

	var assignment models.Assignment
	err := conn(ctx, r.db).QueryRowContext(ctx, query, lessonID).Scan(&assignment.ID, &assignment.LessonID, &assignment.Instructions)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &assignment, nil
}

// CreateAssignment creates the assignment of a lesson; a lesson has at most one
func (r *contentRepository) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	query := `INSERT INTO lesson_assignments (lesson_id, instructions) VALUES (?, ?)`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, assignment.LessonID, assignment.Instructions)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", duplicateOr(err, errAssignmentExists))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	assignment.ID = int(id)
	return nil
}

// ListQuiz returns the quiz questions of a lesson with their options
func (r *contentRepository) ListQuiz(ctx context.Context, lessonID int) ([]models.QuizQuestion, error) {
	query := `
		SELECT q.id, q.lesson_id, q.question, o.id, o.question_id, o.option_text, o.is_correct
		FROM lesson_quiz_questions q
		LEFT JOIN quiz_options o ON o.question_id = q.id
		WHERE q.lesson_id = ?
		ORDER BY q.id, o.id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz: %w", err)
	}
	defer rows.Close()

	questions := make([]models.QuizQuestion, 0)
	index := make(map[int]int)
	for rows.Next() {
		var (
			question   models.QuizQuestion
			optionID   sql.NullInt64
			questionID sql.NullInt64
			optionText sql.NullString
			isCorrect  sql.NullBool
		)
		if err := rows.Scan(&question.ID, &question.LessonID, &question.Question, &optionID, &questionID, &optionText, &isCorrect); err != nil {
			return nil, fmt.Errorf("failed to scan quiz question: %w", err)
		}

		i, ok := index[question.ID]
		if !ok {
			i = len(questions)
			index[question.ID] = i
			question.Options = make([]models.QuizOption, 0)
			questions = append(questions, question)
		}
		if optionID.Valid {
			questions[i].Options = append(questions[i].Options, models.QuizOption{
				ID:         int(optionID.Int64),
				QuestionID: int(questionID.Int64),
				Option:     optionText.String,
				IsCorrect:  isCorrect.Bool,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quiz: %w", err)
	}

	return questions, nil
}

// CreateQuizQuestion creates a quiz question and its options.
// Callers run it inside a transaction so a question is never stored without its options.
func (r *contentRepository) CreateQuizQuestion(ctx context.Context, question *models.QuizQuestion) error {
	db := conn(ctx, r.db)

	result, err := db.ExecContext(ctx, `INSERT INTO lesson_quiz_questions (lesson_id, question) VALUES (?, ?)`, question.LessonID, question.Question)
	if err != nil {
		return fmt.Errorf("failed to create quiz question: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	question.ID = int(id)

	for i := range question.Options {
		option := &question.Options[i]
		option.QuestionID = question.ID

		result, err := db.ExecContext(ctx, `INSERT INTO quiz_options (question_id, option_text, is_correct) VALUES (?, ?, ?)`,
			option.QuestionID, option.Option, option.IsCorrect)
		if err != nil {
			return fmt.Errorf("failed to create quiz option: %w", err)
		}
		optionID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		option.ID = int(optionID)
	}

	return nil
}
