package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByID returns a lesson together with its module and course attributes
func (r *lessonRepository) GetByID(ctx context.Context, lessonID int) (*models.LessonInfo, error) {
	query := `
		SELECT l.id, l.module_id, l.topic, l.` + "`order`" + `, m.name, c.id, c.name, c.description, c.author_id, c.is_public
		FROM lessons l
		JOIN modules m ON m.id = l.module_id
		JOIN courses c ON c.id = m.course_id
		WHERE l.id = ?
	`

	var lesson models.LessonInfo
	err := conn(ctx, r.db).QueryRowContext(ctx, query, lessonID).Scan(
		&lesson.ID,
		&lesson.ModuleID,
		&lesson.Topic,
		&lesson.Order,
		&lesson.ModuleName,
		&lesson.CourseID,
		&lesson.CourseName,
		&lesson.CourseDescription,
		&lesson.CourseAuthorID,
		&lesson.CourseIsPublic,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return &lesson, nil
}

// GetNextOrder returns max(order)+1 of the lessons in a module, 1 for an empty module
func (r *lessonRepository) GetNextOrder(ctx context.Context, moduleID int) (int, error) {
	query := `SELECT COALESCE(MAX(` + "`order`" + `), 0) + 1 FROM lessons WHERE module_id = ?`

	var next int
	if err := conn(ctx, r.db).QueryRowContext(ctx, query, moduleID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to get next lesson order: %w", err)
	}
	return next, nil
}

// Create creates a new lesson
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	query := `INSERT INTO lessons (module_id, topic, ` + "`order`" + `) VALUES (?, ?, ?)`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, lesson.ModuleID, lesson.Topic, lesson.Order)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	lesson.ID = int(id)
	return nil
}

// ListByModules returns the lessons of the given modules ordered by module and order
func (r *lessonRepository) ListByModules(ctx context.Context, moduleIDs []int) ([]models.Lesson, error) {
	lessons := make([]models.Lesson, 0)
	if len(moduleIDs) == 0 {
		return lessons, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(moduleIDs)), ",")
	query := `
		SELECT id, module_id, topic, ` + "`order`" + `
		FROM lessons
		WHERE module_id IN (` + placeholders + `)
		ORDER BY module_id, ` + "`order`" + `, id
	`
	args := make([]any, len(moduleIDs))
	for i, id := range moduleIDs {
		args[i] = id
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(&lesson.ID, &lesson.ModuleID, &lesson.Topic, &lesson.Order); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lessons: %w", err)
	}

	return lessons, nil
}

// Update updates the topic and order of a lesson
func (r *lessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	query := `UPDATE lessons SET topic = ?, ` + "`order`" + ` = ? WHERE id = ?`

	// rows affected is 0 for an unchanged row, so existence is checked by the caller
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, lesson.Topic, lesson.Order, lesson.ID); err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	return nil
}

// Delete deletes a lesson; content and progress rows cascade
func (r *lessonRepository) Delete(ctx context.Context, lessonID int) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM lessons WHERE id = ?`, lessonID)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	return checkAffected(result, apperrors.ErrLessonNotFound)
}

// GetOutline returns the module and lesson ordering of a course.
// Modules without lessons are included with an empty lesson list.
func (r *lessonRepository) GetOutline(ctx context.Context, courseID int) (*models.CourseOutline, error) {
	query := `
		SELECT m.id, m.` + "`order`" + `, l.id, l.` + "`order`" + `
		FROM modules m
		LEFT JOIN lessons l ON l.module_id = m.id
		WHERE m.course_id = ?
		ORDER BY m.` + "`order`" + `, m.id, l.` + "`order`" + `, l.id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query course outline: %w", err)
	}
	defer rows.Close()

	outline := &models.CourseOutline{CourseID: courseID, Modules: make([]models.ModuleOutline, 0)}
	index := make(map[int]int)
	for rows.Next() {
		var (
			moduleID, moduleOrder int
			lessonID, lessonOrder sql.NullInt64
		)
		if err := rows.Scan(&moduleID, &moduleOrder, &lessonID, &lessonOrder); err != nil {
			return nil, fmt.Errorf("failed to scan course outline: %w", err)
		}

		i, ok := index[moduleID]
		if !ok {
			i = len(outline.Modules)
			index[moduleID] = i
			outline.Modules = append(outline.Modules, models.ModuleOutline{
				ID:      moduleID,
				Order:   moduleOrder,
				Lessons: make([]models.LessonRef, 0),
			})
		}
		if lessonID.Valid {
			outline.Modules[i].Lessons = append(outline.Modules[i].Lessons, models.LessonRef{
				ID:       int(lessonID.Int64),
				ModuleID: moduleID,
				Order:    int(lessonOrder.Int64),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course outline: %w", err)
	}

	return outline, nil
}

func checkAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
