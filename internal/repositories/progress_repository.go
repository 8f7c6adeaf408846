package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhowtocode/backend/internal/models"
)

const progressColumns = `id, user_id, lesson_id, introduction_completed, quiz_score, assignment_score, lesson_completed`

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new student progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// CreateIfAbsent inserts progress unless a row for (user, lesson) already exists.
// It reports whether the row was created; an existing row is left untouched.
func (r *progressRepository) CreateIfAbsent(ctx context.Context, progress *models.Progress) (bool, error) {
	query := `
		INSERT INTO student_progress (user_id, lesson_id, introduction_completed, quiz_score, assignment_score, lesson_completed)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query,
		progress.UserID,
		progress.LessonID,
		progress.IntroductionCompleted,
		nullFloat(progress.QuizScore),
		nullFloat(progress.AssignmentScore),
		progress.LessonCompleted,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create progress: %w", err)
	}

	// 1 for an inserted row, 0 when the existing row was kept as is
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected != 1 {
		return false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to get last insert id: %w", err)
	}
	progress.ID = int(id)
	return true, nil
}

// GetForUpdate reads progress for (user, lesson) and locks the row until the transaction ends
func (r *progressRepository) GetForUpdate(ctx context.Context, userID, lessonID int) (*models.Progress, error) {
	query := `SELECT ` + progressColumns + ` FROM student_progress WHERE user_id = ? AND lesson_id = ? FOR UPDATE`

	progress, err := scanProgress(conn(ctx, r.db).QueryRowContext(ctx, query, userID, lessonID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("progress not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return progress, nil
}

// Save writes the merged fields and the completion flag of a progress row
func (r *progressRepository) Save(ctx context.Context, progress *models.Progress) error {
	query := `
		UPDATE student_progress
		SET introduction_completed = ?, quiz_score = ?, assignment_score = ?, lesson_completed = ?
		WHERE id = ?
	`

	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		progress.IntroductionCompleted,
		nullFloat(progress.QuizScore),
		nullFloat(progress.AssignmentScore),
		progress.LessonCompleted,
		progress.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// ListByCourse returns the progress rows of a user for every lesson of a course
func (r *progressRepository) ListByCourse(ctx context.Context, userID, courseID int) ([]models.Progress, error) {
	query := `
		SELECT sp.id, sp.user_id, sp.lesson_id, sp.introduction_completed, sp.quiz_score, sp.assignment_score, sp.lesson_completed
		FROM student_progress sp
		JOIN lessons l ON l.id = sp.lesson_id
		JOIN modules m ON m.id = l.module_id
		WHERE sp.user_id = ? AND m.course_id = ?
		ORDER BY m.` + "`order`" + `, l.` + "`order`" + `
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	progressList := make([]models.Progress, 0)
	for rows.Next() {
		progress, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		progressList = append(progressList, *progress)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress: %w", err)
	}

	return progressList, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(s scanner) (*models.Progress, error) {
	var (
		progress        models.Progress
		quizScore       sql.NullFloat64
		assignmentScore sql.NullFloat64
	)
	err := s.Scan(
		&progress.ID,
		&progress.UserID,
		&progress.LessonID,
		&progress.IntroductionCompleted,
		&quizScore,
		&assignmentScore,
		&progress.LessonCompleted,
	)
	if err != nil {
		return nil, err
	}
	progress.QuizScore = floatPtr(quizScore)
	progress.AssignmentScore = floatPtr(assignmentScore)
	return &progress, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
