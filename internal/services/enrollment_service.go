package services

import (
	"context"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

// RosterRepository defines the course lookups and roster writes of enrollment
type RosterRepository interface {
	// GetByID retrieves a course by ID
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the course and an error if any.
	GetByID(ctx context.Context, courseID int) (*models.Course, error)
	// IsEnrolled checks whether a user is on the roster of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" is the ID of the user.
	//
	// Returns true if the user is enrolled and an error if any.
	IsEnrolled(ctx context.Context, courseID, userID int) (bool, error)
	// AddStudent adds a user to the roster of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "userID" is the ID of the user.
	//
	// Returns apperrors.ErrAlreadyEnrolled on a duplicate entry and an error if any.
	AddStudent(ctx context.Context, courseID, userID int) error
}

type enrollmentService struct {
	courseRepo   RosterRepository
	lessonRepo   CurriculumRepository
	progressRepo ProgressRepository
	tx           Transactor
	logger       *zap.Logger
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(courseRepo RosterRepository, lessonRepo CurriculumRepository, progressRepo ProgressRepository, tx Transactor, logger *zap.Logger) *enrollmentService {
	return &enrollmentService{
		courseRepo:   courseRepo,
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		tx:           tx,
		logger:       logger,
	}
}

// Enroll adds a student to the roster of a course and opens the first lesson.
// The roster entry and the first progress row are written in one transaction.
func (s *enrollmentService) Enroll(ctx context.Context, studentID, courseID int) (*models.EnrollResult, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to get course", courseID, err)
	}

	// a private course is reachable only by its author
	if !course.IsPublic && course.AuthorID != studentID {
		return nil, apperrors.ErrNotAuthorized
	}

	enrolled, err := s.courseRepo.IsEnrolled(ctx, courseID, studentID)
	if err != nil {
		return nil, s.fail("failed to check enrollment", courseID, err)
	}
	if enrolled {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	outline, err := s.lessonRepo.GetOutline(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to get course outline", courseID, err)
	}
	first, err := FirstLessonOf(outline)
	if err != nil {
		return nil, err
	}

	result := &models.EnrollResult{}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.courseRepo.AddStudent(ctx, courseID, studentID); err != nil {
			return err
		}

		created, err := s.progressRepo.CreateIfAbsent(ctx, &models.Progress{UserID: studentID, LessonID: first.ID})
		if err != nil {
			return err
		}
		result.ProgressInitialized = created
		return nil
	})
	if err != nil {
		return nil, s.fail("failed to enroll", courseID, err)
	}

	s.logger.Info("student enrolled",
		zap.Int("user_id", studentID),
		zap.Int("course_id", courseID),
		zap.Int("first_lesson_id", first.ID),
		zap.Bool("progress_initialized", result.ProgressInitialized),
	)
	return result, nil
}

// IsEnrolled reports whether a student is on the roster of a course
func (s *enrollmentService) IsEnrolled(ctx context.Context, studentID, courseID int) (bool, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return false, s.fail("failed to get course", courseID, err)
	}
	enrolled, err := s.courseRepo.IsEnrolled(ctx, courseID, studentID)
	if err != nil {
		return false, s.fail("failed to check enrollment", courseID, err)
	}
	return enrolled, nil
}

func (s *enrollmentService) fail(msg string, courseID int, err error) error {
	typed := typedOr(err, apperrors.Upstream("Failed to enroll in the course.", nil))
	if apperrors.KindOf(typed) == apperrors.KindUpstream {
		s.logger.Error(msg, zap.Int("course_id", courseID), zap.Error(err))
	}
	return typed
}
