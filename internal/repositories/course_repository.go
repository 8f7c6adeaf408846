package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
)

const courseColumns = `c.id, c.name, c.description, c.author_id, c.is_public, c.rating, c.last_updated`

var errCourseNameTaken = apperrors.Conflict("Course with this name already exists.")

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// Create creates a new course; the name must be unique
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `INSERT INTO courses (name, description, author_id, is_public) VALUES (?, ?, ?, ?)`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, course.Name, course.Description, course.AuthorID, course.IsPublic)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", duplicateOr(err, errCourseNameTaken))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	course.ID = int(id)
	return nil
}

// GetByID returns a course by id
func (r *courseRepository) GetByID(ctx context.Context, courseID int) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c WHERE c.id = ?`

	course, err := scanCourse(conn(ctx, r.db).QueryRowContext(ctx, query, courseID))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

// GetCounts returns the number of enrolled students and lessons of a course
func (r *courseRepository) GetCounts(ctx context.Context, courseID int) (int, int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM course_students WHERE course_id = ?),
			(SELECT COUNT(*) FROM lessons l JOIN modules m ON m.id = l.module_id WHERE m.course_id = ?)
	`

	var students, lessons int
	if err := conn(ctx, r.db).QueryRowContext(ctx, query, courseID, courseID).Scan(&students, &lessons); err != nil {
		return 0, 0, fmt.Errorf("failed to count course members: %w", err)
	}
	return students, lessons, nil
}

// publicCourseOrder maps listing sorts to ORDER BY clauses; "my" is served by ListByAuthor
var publicCourseOrder = map[models.CourseSort]string{
	models.CourseSortDefault:      "c.id",
	models.CourseSortLatest:       "c.last_updated DESC, c.id DESC",
	models.CourseSortHighestRated: "c.rating DESC, c.id",
}

// ListPublic returns public courses in the given order; limit 0 returns all of them
func (r *courseRepository) ListPublic(ctx context.Context, sort models.CourseSort, limit int) ([]models.Course, error) {
	order, ok := publicCourseOrder[sort]
	if !ok {
		return nil, fmt.Errorf("unsupported course order %q", sort)
	}

	query := `SELECT ` + courseColumns + ` FROM courses c WHERE c.is_public = TRUE ORDER BY ` + order
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

// ListByAuthor returns the courses authored by a user
func (r *courseRepository) ListByAuthor(ctx context.Context, authorID int) ([]models.Course, error) {
	return r.list(ctx, `SELECT `+courseColumns+` FROM courses c WHERE c.author_id = ? ORDER BY c.id`, authorID)
}

// ListEnrolled returns the courses a user is enrolled in
func (r *courseRepository) ListEnrolled(ctx context.Context, userID int) ([]models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses c
		JOIN course_students cs ON cs.course_id = c.id
		WHERE cs.user_id = ?
		ORDER BY c.id
	`
	return r.list(ctx, query, userID)
}

func (r *courseRepository) list(ctx context.Context, query string, args ...any) ([]models.Course, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// Update updates name, description and visibility of a course
func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `UPDATE courses SET name = ?, description = ?, is_public = ? WHERE id = ?`

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, course.Name, course.Description, course.IsPublic, course.ID); err != nil {
		return fmt.Errorf("failed to update course: %w", duplicateOr(err, errCourseNameTaken))
	}
	return nil
}

// Delete deletes a course; modules, lessons, roster, ratings and progress cascade
func (r *courseRepository) Delete(ctx context.Context, courseID int) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, courseID)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return checkAffected(result, apperrors.ErrCourseNotFound)
}

// AddStudent adds a user to the roster of a course
func (r *courseRepository) AddStudent(ctx context.Context, courseID, userID int) error {
	query := `INSERT INTO course_students (course_id, user_id) VALUES (?, ?)`

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, courseID, userID); err != nil {
		return fmt.Errorf("failed to add student: %w", duplicateOr(err, apperrors.ErrAlreadyEnrolled))
	}
	return nil
}

// IsEnrolled checks whether a user is on the roster of a course
func (r *courseRepository) IsEnrolled(ctx context.Context, courseID, userID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM course_students WHERE course_id = ? AND user_id = ?)`

	var exists bool
	if err := conn(ctx, r.db).QueryRowContext(ctx, query, courseID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}
	return exists, nil
}

// UpsertRating stores the rating of a user for a course, replacing a previous one
func (r *courseRepository) UpsertRating(ctx context.Context, courseID, userID, score int) error {
	query := `
		INSERT INTO course_ratings (course_id, user_id, score)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE score = VALUES(score)
	`

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, courseID, userID, score); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}
	return nil
}

// RefreshRating recomputes the average rating of a course and returns it
func (r *courseRepository) RefreshRating(ctx context.Context, courseID int) (float64, error) {
	query := `
		UPDATE courses
		SET rating = (SELECT COALESCE(AVG(score), 0) FROM course_ratings WHERE course_id = ?)
		WHERE id = ?
	`
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, courseID, courseID); err != nil {
		return 0, fmt.Errorf("failed to update course rating: %w", err)
	}

	var rating float64
	if err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT rating FROM courses WHERE id = ?`, courseID).Scan(&rating); err != nil {
		return 0, fmt.Errorf("failed to read course rating: %w", err)
	}
	return rating, nil
}

// GetProgressStats aggregates the progress rows of all students of a course
func (r *courseRepository) GetProgressStats(ctx context.Context, courseID int) (*models.CourseProgressStats, error) {
	query := `
		SELECT
			COUNT(sp.id),
			COALESCE(SUM(sp.lesson_completed), 0),
			COALESCE(AVG(sp.quiz_score), 0),
			COALESCE(AVG(sp.assignment_score), 0)
		FROM student_progress sp
		JOIN lessons l ON l.id = sp.lesson_id
		JOIN modules m ON m.id = l.module_id
		WHERE m.course_id = ?
	`

	stats := &models.CourseProgressStats{CourseID: courseID}
	err := conn(ctx, r.db).QueryRowContext(ctx, query, courseID).Scan(
		&stats.StartedLessons,
		&stats.CompletedLessons,
		&stats.AverageQuiz,
		&stats.AverageAssign,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress stats: %w", err)
	}

	stats.StudentCount, stats.LessonCount, err = r.GetCounts(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetPlatformStats counts public courses, student accounts and completed lessons
func (r *courseRepository) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM courses WHERE is_public = TRUE),
			(SELECT COUNT(*) FROM users WHERE role = ?),
			(SELECT COUNT(*) FROM student_progress WHERE lesson_completed = TRUE)
	`

	var stats models.PlatformStats
	err := conn(ctx, r.db).QueryRowContext(ctx, query, int(models.RoleUser)).Scan(
		&stats.CoursesCount,
		&stats.StudentsCount,
		&stats.CompletedLessons,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}
	return &stats, nil
}

// ListLeaderboard ranks users by completed lessons across all courses.
// Users without a completed lesson are left out; limit 0 returns everyone.
func (r *courseRepository) ListLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT u.id, u.username, COUNT(*) AS completed
		FROM student_progress sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.lesson_completed = TRUE
		GROUP BY u.id, u.username
		ORDER BY completed DESC, u.id
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]models.LeaderboardEntry, 0)
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.CompletedLessons); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard: %w", err)
	}
	return entries, nil
}

// ListEnrolledProgress counts total and completed lessons of every course a user is enrolled in
func (r *courseRepository) ListEnrolledProgress(ctx context.Context, userID int) ([]models.EnrolledCourseProgress, error) {
	query := `
		SELECT
			c.id,
			c.name,
			(SELECT COUNT(*) FROM lessons l JOIN modules m ON m.id = l.module_id WHERE m.course_id = c.id),
			(SELECT COUNT(*)
				FROM student_progress sp
				JOIN lessons l ON l.id = sp.lesson_id
				JOIN modules m ON m.id = l.module_id
				WHERE m.course_id = c.id AND sp.user_id = cs.user_id AND sp.lesson_completed = TRUE)
		FROM course_students cs
		JOIN courses c ON c.id = cs.course_id
		WHERE cs.user_id = ?
		ORDER BY c.id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrolled progress: %w", err)
	}
	defer rows.Close()

	result := make([]models.EnrolledCourseProgress, 0)
	for rows.Next() {
		var p models.EnrolledCourseProgress
		if err := rows.Scan(&p.CourseID, &p.CourseName, &p.TotalLessons, &p.CompletedLessons); err != nil {
			return nil, fmt.Errorf("failed to scan enrolled progress: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrolled progress: %w", err)
	}
	return result, nil
}

// ListAuthoredProgress counts students, lessons and completed lessons of every course of an author
func (r *courseRepository) ListAuthoredProgress(ctx context.Context, authorID int) ([]models.AuthoredCourseProgress, error) {
	query := `
		SELECT
			c.id,
			c.name,
			(SELECT COUNT(*) FROM course_students cs WHERE cs.course_id = c.id),
			(SELECT COUNT(*) FROM lessons l JOIN modules m ON m.id = l.module_id WHERE m.course_id = c.id),
			(SELECT COUNT(*)
				FROM student_progress sp
				JOIN lessons l ON l.id = sp.lesson_id
				JOIN modules m ON m.id = l.module_id
				WHERE m.course_id = c.id AND sp.lesson_completed = TRUE)
		FROM courses c
		WHERE c.author_id = ?
		ORDER BY c.id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query authored progress: %w", err)
	}
	defer rows.Close()

	result := make([]models.AuthoredCourseProgress, 0)
	for rows.Next() {
		var p models.AuthoredCourseProgress
		if err := rows.Scan(&p.CourseID, &p.CourseName, &p.StudentCount, &p.TotalLessons, &p.CompletedLessons); err != nil {
			return nil, fmt.Errorf("failed to scan authored progress: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authored progress: %w", err)
	}
	return result, nil
}

// ListStudentProgress aggregates the progress rows of a course per student
func (r *courseRepository) ListStudentProgress(ctx context.Context, courseID int) ([]models.StudentCourseProgress, error) {
	query := `
		SELECT
			u.id,
			u.username,
			COUNT(sp.id),
			COALESCE(SUM(sp.lesson_completed), 0),
			COALESCE(AVG(sp.quiz_score), 0),
			COALESCE(AVG(sp.assignment_score), 0)
		FROM student_progress sp
		JOIN users u ON u.id = sp.user_id
		JOIN lessons l ON l.id = sp.lesson_id
		JOIN modules m ON m.id = l.module_id
		WHERE m.course_id = ?
		GROUP BY u.id, u.username
		ORDER BY u.username
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query student progress: %w", err)
	}
	defer rows.Close()

	result := make([]models.StudentCourseProgress, 0)
	for rows.Next() {
		var p models.StudentCourseProgress
		err := rows.Scan(&p.UserID, &p.Username, &p.StartedLessons, &p.CompletedLessons, &p.AverageQuiz, &p.AverageAssign)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student progress: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student progress: %w", err)
	}
	return result, nil
}

func scanCourse(s scanner) (*models.Course, error) {
	var course models.Course
	err := s.Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.AuthorID,
		&course.IsPublic,
		&course.Rating,
		&course.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}
