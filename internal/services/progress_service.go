package services

import (
	"context"
	"errors"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressRepository defines methods for student progress data access
type ProgressRepository interface {
	// CreateIfAbsent inserts a progress row unless one exists for (user, lesson)
	//
	// "ctx" is the context for the request.
	// "progress" is the row to insert; its ID is set when it is created.
	//
	// Returns true if the row was created, false if an existing row was left untouched, and an error if any.
	CreateIfAbsent(ctx context.Context, progress *models.Progress) (bool, error)
	// GetForUpdate retrieves the progress row of (user, lesson) and locks it for the rest of the transaction
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the progress and an error if any.
	GetForUpdate(ctx context.Context, userID, lessonID int) (*models.Progress, error)
	// Save persists the fields and the completion flag of a progress row
	//
	// "ctx" is the context for the request.
	// "progress" is the row to save.
	//
	// Returns an error if any.
	Save(ctx context.Context, progress *models.Progress) error
	// ListByCourse retrieves the progress rows of a student in a course
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the student.
	// "courseID" is the ID of the course.
	//
	// Returns the progress rows and an error if any.
	ListByCourse(ctx context.Context, userID, courseID int) ([]models.Progress, error)
}

// CurriculumRepository defines the lesson lookups used for sequencing
type CurriculumRepository interface {
	// GetByID retrieves a lesson with its module and course attributes
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the lesson and an error if any.
	GetByID(ctx context.Context, lessonID int) (*models.LessonInfo, error)
	// GetOutline retrieves the module and lesson ordering of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the outline and an error if any.
	GetOutline(ctx context.Context, courseID int) (*models.CourseOutline, error)
}

type progressService struct {
	progressRepo ProgressRepository
	lessonRepo   CurriculumRepository
	tx           Transactor
	logger       *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo ProgressRepository, lessonRepo CurriculumRepository, tx Transactor, logger *zap.Logger) *progressService {
	return &progressService{
		progressRepo: progressRepo,
		lessonRepo:   lessonRepo,
		tx:           tx,
		logger:       logger,
	}
}

// Submit records a partial progress update of a student in a lesson.
//
// The first submission for (student, lesson) creates the row from the update and
// reports SubmitStatusCreated without evaluating completion. Later submissions
// merge into the locked row, mark the lesson completed once the completion
// predicate holds and open the next lesson of the curriculum.
func (s *progressService) Submit(ctx context.Context, studentID, lessonID int, update models.ProgressUpdate) (*models.SubmitResult, error) {
	if err := validateProgressUpdate(update); err != nil {
		return nil, err
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrLessonNotFound) {
			return nil, apperrors.ErrLessonNotFound
		}
		s.logger.Error("failed to get lesson", zap.Int("lesson_id", lessonID), zap.Error(err))
		return nil, apperrors.ErrProgressUpdateFailed.Wrap(err)
	}

	result, err := s.submit(ctx, studentID, lesson, update)
	if err != nil {
		s.logger.Error("failed to submit progress",
			zap.Int("user_id", studentID),
			zap.Int("lesson_id", lessonID),
			zap.Error(err),
		)
		return nil, apperrors.ErrProgressUpdateFailed.Wrap(err)
	}

	return result, nil
}

func (s *progressService) submit(ctx context.Context, studentID int, lesson *models.LessonInfo, update models.ProgressUpdate) (*models.SubmitResult, error) {
	var result *models.SubmitResult

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// a concurrent first submission that loses the insert sees created == false
		// and merges into the winner's row below
		seeded := seedProgress(studentID, lesson.ID, update)
		created, err := s.progressRepo.CreateIfAbsent(ctx, seeded)
		if err != nil {
			return err
		}
		if created {
			result = &models.SubmitResult{Status: models.SubmitStatusCreated, Progress: *seeded}
			return nil
		}

		existing, err := s.progressRepo.GetForUpdate(ctx, studentID, lesson.ID)
		if err != nil {
			return err
		}

		merged := mergeProgress(*existing, update)
		if !existing.LessonCompleted && isLessonComplete(merged) {
			merged.LessonCompleted = true
			if err := s.openNextLesson(ctx, studentID, lesson); err != nil {
				return err
			}
		}

		if err := s.progressRepo.Save(ctx, &merged); err != nil {
			return err
		}

		result = &models.SubmitResult{Status: models.SubmitStatusUpdated, Progress: merged}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// openNextLesson creates a default progress row for the lesson after lesson, if any
func (s *progressService) openNextLesson(ctx context.Context, studentID int, lesson *models.LessonInfo) error {
	outline, err := s.lessonRepo.GetOutline(ctx, lesson.CourseID)
	if err != nil {
		return err
	}

	next, ok := NextLessonAfter(outline, lesson.ID)
	if !ok {
		s.logger.Debug("completed last lesson of course",
			zap.Int("user_id", studentID),
			zap.Int("course_id", lesson.CourseID),
		)
		return nil
	}

	_, err = s.progressRepo.CreateIfAbsent(ctx, &models.Progress{UserID: studentID, LessonID: next.ID})
	return err
}

// ListByCourse returns the progress of a student in every started lesson of a course
func (s *progressService) ListByCourse(ctx context.Context, studentID, courseID int) ([]models.Progress, error) {
	progressList, err := s.progressRepo.ListByCourse(ctx, studentID, courseID)
	if err != nil {
		s.logger.Error("failed to list progress", zap.Int("course_id", courseID), zap.Error(err))
		return nil, apperrors.Upstream("Failed to load progress.", err)
	}
	if len(progressList) == 0 {
		return nil, apperrors.ErrNoProgressFound
	}
	return progressList, nil
}

func validateProgressUpdate(update models.ProgressUpdate) error {
	if !validScore(update.QuizScore) {
		return apperrors.Validation("Quiz score must be between 0 and 100.")
	}
	if !validScore(update.AssignmentScore) {
		return apperrors.Validation("Assignment score must be between 0 and 100.")
	}
	return nil
}

func validScore(score *float64) bool {
	return score == nil || (*score >= 0 && *score <= 100)
}

// seedProgress builds the row created by a first submission; absent fields take defaults
func seedProgress(studentID, lessonID int, update models.ProgressUpdate) *models.Progress {
	progress := &models.Progress{
		UserID:          studentID,
		LessonID:        lessonID,
		QuizScore:       copyScore(update.QuizScore),
		AssignmentScore: copyScore(update.AssignmentScore),
	}
	if update.IntroductionCompleted != nil {
		progress.IntroductionCompleted = *update.IntroductionCompleted
	}
	return progress
}

// mergeProgress applies update to existing:
// introduction_completed is OR-ed, scores keep the best attempt.
// lesson_completed is never touched here.
func mergeProgress(existing models.Progress, update models.ProgressUpdate) models.Progress {
	merged := existing
	if update.IntroductionCompleted != nil {
		merged.IntroductionCompleted = existing.IntroductionCompleted || *update.IntroductionCompleted
	}
	if update.QuizScore != nil {
		merged.QuizScore = maxScore(existing.QuizScore, *update.QuizScore)
	}
	if update.AssignmentScore != nil {
		merged.AssignmentScore = maxScore(existing.AssignmentScore, *update.AssignmentScore)
	}
	return merged
}

// isLessonComplete is the completion predicate; a missing score counts as 0
func isLessonComplete(p models.Progress) bool {
	return p.IntroductionCompleted &&
		scoreOrZero(p.QuizScore) >= models.PassingScore &&
		scoreOrZero(p.AssignmentScore) >= models.PassingScore
}

func maxScore(existing *float64, incoming float64) *float64 {
	best := max(scoreOrZero(existing), incoming)
	return &best
}

func scoreOrZero(score *float64) float64 {
	if score == nil {
		return 0
	}
	return *score
}

func copyScore(score *float64) *float64 {
	if score == nil {
		return nil
	}
	v := *score
	return &v
}
