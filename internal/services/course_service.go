package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

var (
	errCourseFailed    = apperrors.Upstream("An unexpected error occurred while handling the course.", nil)
	errTeachersOnly    = apperrors.Unauthorized("Only teachers can create courses.")
	errInvalidRating   = apperrors.Validation("Score must be between 1 and 5.")
	errEmptyCourseName = apperrors.Validation("Course name cannot be empty.")
	errInvalidSortBy   = apperrors.Validation("Invalid sortBy parameter. Use one of: my, latest, highest-rated.")
	errInvalidLimit    = apperrors.Validation("Limit must be a positive integer.")
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// Create creates a new course
	//
	// "ctx" is the context for the request.
	// "course" is the course to create.
	//
	// Returns a conflict error if the name is taken and an error if any.
	Create(ctx context.Context, course *models.Course) error
	// GetByID retrieves a course by ID
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the course and an error if any.
	GetByID(ctx context.Context, courseID int) (*models.Course, error)
	// GetCounts counts the students and lessons of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the student count, the lesson count and an error if any.
	GetCounts(ctx context.Context, courseID int) (int, int, error)
	// ListPublic retrieves public courses
	//
	// "ctx" is the context for the request.
	// "sort" is the order of the listing; CourseSortMy is not supported.
	// "limit" caps the number of courses, 0 for all.
	//
	// Returns a list of courses and an error if any.
	ListPublic(ctx context.Context, sort models.CourseSort, limit int) ([]models.Course, error)
	// ListByAuthor retrieves the courses of an author
	//
	// "ctx" is the context for the request.
	// "authorID" is the ID of the author.
	//
	// Returns a list of courses and an error if any.
	ListByAuthor(ctx context.Context, authorID int) ([]models.Course, error)
	// ListEnrolled retrieves the courses a user is enrolled in
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns a list of courses and an error if any.
	ListEnrolled(ctx context.Context, userID int) ([]models.Course, error)
	// Update updates a course
	//
	// "ctx" is the context for the request.
	// "course" is the course to update.
	//
	// Returns a conflict error if the name is taken and an error if any.
	Update(ctx context.Context, course *models.Course) error
	// Delete deletes a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns an error if any.
	Delete(ctx context.Context, courseID int) error
	// IsEnrolled checks whether a user is on the roster of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" is the ID of the user.
	//
	// Returns true if the user is enrolled and an error if any.
	IsEnrolled(ctx context.Context, courseID, userID int) (bool, error)
	// UpsertRating stores the rating of a user, replacing a previous one
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" is the ID of the user.
	// "score" is the rating from 1 to 5.
	//
	// Returns an error if any.
	UpsertRating(ctx context.Context, courseID, userID, score int) error
	// RefreshRating recomputes the average rating of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the new average and an error if any.
	RefreshRating(ctx context.Context, courseID int) (float64, error)
	// GetProgressStats aggregates the progress of all students of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the statistics and an error if any.
	GetProgressStats(ctx context.Context, courseID int) (*models.CourseProgressStats, error)
	// GetPlatformStats counts public courses, student accounts and completed lessons
	GetPlatformStats(ctx context.Context) (*models.PlatformStats, error)
	// ListLeaderboard ranks users by completed lessons
	//
	// "ctx" is the context for the request.
	// "limit" caps the number of entries, 0 for all.
	//
	// Returns the ranking and an error if any.
	ListLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	// ListEnrolledProgress counts lessons and completed lessons of the courses a user is enrolled in
	ListEnrolledProgress(ctx context.Context, userID int) ([]models.EnrolledCourseProgress, error)
	// ListAuthoredProgress summarizes the students of every course of an author
	ListAuthoredProgress(ctx context.Context, authorID int) ([]models.AuthoredCourseProgress, error)
	// ListStudentProgress aggregates the progress of a course per student
	ListStudentProgress(ctx context.Context, courseID int) ([]models.StudentCourseProgress, error)
}

type courseService struct {
	courseRepo CourseRepository
	tx         Transactor
	logger     *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo CourseRepository, tx Transactor, logger *zap.Logger) *courseService {
	return &courseService{
		courseRepo: courseRepo,
		tx:         tx,
		logger:     logger,
	}
}

// CreateCourse creates a course authored by userID; only teachers and admins may author courses
func (s *courseService) CreateCourse(ctx context.Context, userID int, role models.Role, req *models.CreateCourseRequest) (*models.Course, error) {
	if role < models.RoleTeacher {
		return nil, errTeachersOnly
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, errEmptyCourseName
	}

	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		AuthorID:    userID,
		IsPublic:    req.IsPublic,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, s.fail("failed to create course", 0, err)
	}

	s.logger.Info("course created", zap.Int("course_id", course.ID), zap.Int("author_id", userID))
	return course, nil
}

// GetCourse returns a course with its student and lesson counts if it is public or authored by userID
func (s *courseService) GetCourse(ctx context.Context, userID, courseID int) (*models.CourseDetailResponse, error) {
	course, err := s.readable(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	students, lessons, err := s.courseRepo.GetCounts(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to count course members", courseID, err)
	}

	return &models.CourseDetailResponse{
		Course:       *course,
		StudentCount: students,
		LessonCount:  lessons,
	}, nil
}

// ListCourses lists public courses ordered by q.SortBy, or the courses authored by
// userID when q.SortBy is CourseSortMy. A positive q.Limit caps the result.
func (s *courseService) ListCourses(ctx context.Context, userID int, q models.CourseListQuery) ([]models.Course, error) {
	if q.Limit < 0 {
		return nil, errInvalidLimit
	}

	switch q.SortBy {
	case models.CourseSortMy:
		courses, err := s.ListAuthored(ctx, userID)
		if err != nil {
			return nil, err
		}
		if q.Limit > 0 && len(courses) > q.Limit {
			courses = courses[:q.Limit]
		}
		return courses, nil
	case models.CourseSortDefault, models.CourseSortLatest, models.CourseSortHighestRated:
		courses, err := s.courseRepo.ListPublic(ctx, q.SortBy, q.Limit)
		if err != nil {
			return nil, s.fail("failed to list public courses", 0, err)
		}
		return courses, nil
	default:
		return nil, errInvalidSortBy
	}
}

// ListAuthored returns the courses authored by userID
func (s *courseService) ListAuthored(ctx context.Context, userID int) ([]models.Course, error) {
	courses, err := s.courseRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, s.fail("failed to list authored courses", 0, err)
	}
	return courses, nil
}

// ListEnrolled returns the courses userID is enrolled in
func (s *courseService) ListEnrolled(ctx context.Context, userID int) ([]models.Course, error) {
	courses, err := s.courseRepo.ListEnrolled(ctx, userID)
	if err != nil {
		return nil, s.fail("failed to list enrolled courses", 0, err)
	}
	return courses, nil
}

// UpdateCourse applies the set fields of req to a course authored by userID
func (s *courseService) UpdateCourse(ctx context.Context, userID, courseID int, req *models.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.authored(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, errEmptyCourseName
		}
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.IsPublic != nil {
		course.IsPublic = *req.IsPublic
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, s.fail("failed to update course", courseID, err)
	}
	return course, nil
}

// DeleteCourse removes a course authored by userID together with its curriculum
func (s *courseService) DeleteCourse(ctx context.Context, userID, courseID int) error {
	if _, err := s.authored(ctx, userID, courseID); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		return s.fail("failed to delete course", courseID, err)
	}

	s.logger.Info("course deleted", zap.Int("course_id", courseID))
	return nil
}

// RateCourse stores the rating of an enrolled user and returns the new course average.
// Rating again replaces the previous score of the user.
func (s *courseService) RateCourse(ctx context.Context, userID, courseID, score int) (float64, error) {
	if score < 1 || score > 5 {
		return 0, errInvalidRating
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return 0, s.fail("failed to get course", courseID, err)
	}
	enrolled, err := s.courseRepo.IsEnrolled(ctx, courseID, userID)
	if err != nil {
		return 0, s.fail("failed to check enrollment", courseID, err)
	}
	if !enrolled {
		return 0, apperrors.ErrNotEnrolled
	}

	var rating float64
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.courseRepo.UpsertRating(ctx, courseID, userID, score); err != nil {
			return err
		}
		rating, err = s.courseRepo.RefreshRating(ctx, courseID)
		return err
	})
	if err != nil {
		return 0, s.fail("failed to rate course", courseID, err)
	}
	return rating, nil
}

// GetProgressStats returns aggregate progress of the students of a course authored by userID
func (s *courseService) GetProgressStats(ctx context.Context, userID, courseID int) (*models.CourseProgressStats, error) {
	if _, err := s.authored(ctx, userID, courseID); err != nil {
		return nil, err
	}

	stats, err := s.courseRepo.GetProgressStats(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to get progress stats", courseID, err)
	}
	return stats, nil
}

// GetPlatformStats returns the catalogue summary
func (s *courseService) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	stats, err := s.courseRepo.GetPlatformStats(ctx)
	if err != nil {
		return nil, s.fail("failed to get platform stats", 0, err)
	}
	return stats, nil
}

// GetLeaderboard ranks users by lessons completed across all courses
func (s *courseService) GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit < 0 {
		return nil, errInvalidLimit
	}
	entries, err := s.courseRepo.ListLeaderboard(ctx, limit)
	if err != nil {
		return nil, s.fail("failed to get leaderboard", 0, err)
	}
	return entries, nil
}

// ListEnrolledProgress returns the completion of every course userID is enrolled in
func (s *courseService) ListEnrolledProgress(ctx context.Context, userID int) ([]models.EnrolledCourseProgress, error) {
	progress, err := s.courseRepo.ListEnrolledProgress(ctx, userID)
	if err != nil {
		return nil, s.fail("failed to list enrolled progress", 0, err)
	}
	for i := range progress {
		p := &progress[i]
		p.CompletionPercent = completionPercent(p.CompletedLessons, p.TotalLessons)
	}
	return progress, nil
}

// ListAuthoredProgress returns how the students of every course authored by userID progress
func (s *courseService) ListAuthoredProgress(ctx context.Context, userID int) ([]models.AuthoredCourseProgress, error) {
	progress, err := s.courseRepo.ListAuthoredProgress(ctx, userID)
	if err != nil {
		return nil, s.fail("failed to list authored progress", 0, err)
	}
	for i := range progress {
		p := &progress[i]
		p.CompletionPercent = completionPercent(p.CompletedLessons, p.StudentCount*p.TotalLessons)
	}
	return progress, nil
}

// ListStudentProgress returns the progress of every student of a course authored by userID
func (s *courseService) ListStudentProgress(ctx context.Context, userID, courseID int) ([]models.StudentCourseProgress, error) {
	if _, err := s.authored(ctx, userID, courseID); err != nil {
		return nil, err
	}

	_, lessons, err := s.courseRepo.GetCounts(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to count course lessons", courseID, err)
	}
	if lessons == 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("No lessons found for course %d.", courseID))
	}

	progress, err := s.courseRepo.ListStudentProgress(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to list student progress", courseID, err)
	}
	for i := range progress {
		p := &progress[i]
		p.TotalLessons = lessons
		p.CompletionPercent = completionPercent(p.CompletedLessons, lessons)
	}
	return progress, nil
}

// completionPercent is done/total as a percentage rounded to one decimal; 0 for an empty total
func completionPercent(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(done)*1000/float64(total)) / 10
}

func (s *courseService) readable(ctx context.Context, userID, courseID int) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to get course", courseID, err)
	}
	if !course.IsPublic && course.AuthorID != userID {
		return nil, apperrors.ErrNotAuthorized
	}
	return course, nil
}

func (s *courseService) authored(ctx context.Context, userID, courseID int) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to get course", courseID, err)
	}
	if course.AuthorID != userID {
		return nil, apperrors.ErrNotCourseAuthor
	}
	return course, nil
}

func (s *courseService) fail(msg string, courseID int, err error) error {
	typed := typedOr(err, errCourseFailed)
	if apperrors.KindOf(typed) == apperrors.KindUpstream {
		s.logger.Error(msg, zap.Int("course_id", courseID), zap.Error(err))
	}
	return typed
}
