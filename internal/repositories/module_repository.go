package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
)

type moduleRepository struct {
	db *sql.DB
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(db *sql.DB) *moduleRepository {
	return &moduleRepository{
		db: db,
	}
}

// GetNextOrder returns max(order)+1 of the modules in a course, 1 for a course without modules
func (r *moduleRepository) GetNextOrder(ctx context.Context, courseID int) (int, error) {
	query := `SELECT COALESCE(MAX(` + "`order`" + `), 0) + 1 FROM modules WHERE course_id = ?`

	var next int
	if err := conn(ctx, r.db).QueryRowContext(ctx, query, courseID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to get next module order: %w", err)
	}
	return next, nil
}

// Create creates a new module
func (r *moduleRepository) Create(ctx context.Context, module *models.Module) error {
	query := `INSERT INTO modules (course_id, name, ` + "`order`" + `, is_visible) VALUES (?, ?, ?, ?)`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, module.CourseID, module.Name, module.Order, module.IsVisible)
	if err != nil {
		return fmt.Errorf("failed to create module: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	module.ID = int(id)
	return nil
}

// GetByID returns a module by id
func (r *moduleRepository) GetByID(ctx context.Context, moduleID int) (*models.Module, error) {
	query := `SELECT id, course_id, name, ` + "`order`" + `, is_visible FROM modules WHERE id = ?`

	var module models.Module
	err := conn(ctx, r.db).QueryRowContext(ctx, query, moduleID).Scan(
		&module.ID,
		&module.CourseID,
		&module.Name,
		&module.Order,
		&module.IsVisible,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrModuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	return &module, nil
}

// ListByCourse returns the modules of a course in curriculum order
func (r *moduleRepository) ListByCourse(ctx context.Context, courseID int) ([]models.Module, error) {
	query := `
		SELECT id, course_id, name, ` + "`order`" + `, is_visible
		FROM modules
		WHERE course_id = ?
		ORDER BY ` + "`order`" + `, id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	modules := make([]models.Module, 0)
	for rows.Next() {
		var module models.Module
		if err := rows.Scan(&module.ID, &module.CourseID, &module.Name, &module.Order, &module.IsVisible); err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		modules = append(modules, module)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating modules: %w", err)
	}

	return modules, nil
}
