package services

import (
	"context"
	"strings"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

var (
	errLessonFailed     = apperrors.Upstream("An unexpected error occurred while handling the lesson.", nil)
	errLessonForbidden  = apperrors.Unauthorized("You do not have permission to view this lesson.")
	errNoLessonsToAdd   = apperrors.Validation("At least one lesson is required.")
	errEmptyLessonTopic = apperrors.Validation("Lesson topic cannot be empty.")
)

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByID retrieves a lesson with its module and course attributes
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the lesson and an error if any.
	GetByID(ctx context.Context, lessonID int) (*models.LessonInfo, error)
	// GetNextOrder returns the order a new lesson of a module gets
	//
	// "ctx" is the context for the request.
	// "moduleID" is the ID of the module.
	//
	// Returns max(order)+1 and an error if any.
	GetNextOrder(ctx context.Context, moduleID int) (int, error)
	// Create creates a new lesson
	//
	// "ctx" is the context for the request.
	// "lesson" is the lesson to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, lesson *models.Lesson) error
	// ListByModules retrieves the lessons of several modules
	//
	// "ctx" is the context for the request.
	// "moduleIDs" are the IDs of the modules.
	//
	// Returns the lessons and an error if any.
	ListByModules(ctx context.Context, moduleIDs []int) ([]models.Lesson, error)
	// Update updates topic and order of a lesson
	//
	// "ctx" is the context for the request.
	// "lesson" is the lesson to update.
	//
	// Returns an error if any.
	Update(ctx context.Context, lesson *models.Lesson) error
	// Delete deletes a lesson
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns an error if any.
	Delete(ctx context.Context, lessonID int) error
}

// ModuleReader defines the module lookup of the lesson service
type ModuleReader interface {
	GetByID(ctx context.Context, moduleID int) (*models.Module, error)
}

// LessonDetailLoader attaches introduction, quiz and assignment to a lesson
type LessonDetailLoader interface {
	LoadDetail(ctx context.Context, lesson models.Lesson) (*models.LessonDetail, error)
}

// ContentQueue schedules background generation of lesson content
type ContentQueue interface {
	// EnqueueLessonContent schedules content generation for a lesson
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns an error if any.
	EnqueueLessonContent(ctx context.Context, lessonID int) error
}

type lessonService struct {
	courseRepo CourseReader
	moduleRepo ModuleReader
	lessonRepo LessonRepository
	content    LessonDetailLoader
	queue      ContentQueue
	tx         Transactor
	logger     *zap.Logger
}

// NewLessonService creates a new lesson service
func NewLessonService(
	courseRepo CourseReader,
	moduleRepo ModuleReader,
	lessonRepo LessonRepository,
	content LessonDetailLoader,
	queue ContentQueue,
	tx Transactor,
	logger *zap.Logger,
) *lessonService {
	return &lessonService{
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
		lessonRepo: lessonRepo,
		content:    content,
		queue:      queue,
		tx:         tx,
		logger:     logger,
	}
}

// AddLessons appends lessons to a module of a course authored by userID.
// With generate set, content generation is queued for every new lesson.
func (s *lessonService) AddLessons(ctx context.Context, userID, moduleID int, reqs []models.CreateLessonRequest, generate bool) ([]models.Lesson, error) {
	if len(reqs) == 0 {
		return nil, errNoLessonsToAdd
	}
	for _, req := range reqs {
		if strings.TrimSpace(req.Topic) == "" {
			return nil, errEmptyLessonTopic
		}
	}

	module, err := s.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return nil, s.fail("failed to get module", moduleID, err)
	}
	course, err := s.courseRepo.GetByID(ctx, module.CourseID)
	if err != nil {
		return nil, s.fail("failed to get course", moduleID, err)
	}
	if course.AuthorID != userID {
		return nil, apperrors.ErrNotCourseAuthor
	}

	lessons := make([]models.Lesson, 0, len(reqs))
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.lessonRepo.GetNextOrder(ctx, moduleID)
		if err != nil {
			return err
		}
		for i, req := range reqs {
			lesson := models.Lesson{ModuleID: moduleID, Topic: req.Topic, Order: order + i}
			if err := s.lessonRepo.Create(ctx, &lesson); err != nil {
				return err
			}
			lessons = append(lessons, lesson)
		}
		return nil
	})
	if err != nil {
		return nil, s.fail("failed to add lessons", moduleID, err)
	}

	if generate {
		for _, lesson := range lessons {
			// lessons are already stored, a queue outage only loses the generation
			if err := s.queue.EnqueueLessonContent(ctx, lesson.ID); err != nil {
				s.logger.Error("failed to enqueue content generation", zap.Int("lesson_id", lesson.ID), zap.Error(err))
			}
		}
	}

	s.logger.Info("lessons added",
		zap.Int("module_id", moduleID),
		zap.Int("count", len(lessons)),
		zap.Bool("generate", generate),
	)
	return lessons, nil
}

// ListByModule returns the lessons of a module with their content
func (s *lessonService) ListByModule(ctx context.Context, userID, moduleID int) ([]models.LessonDetail, error) {
	module, err := s.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return nil, s.fail("failed to get module", moduleID, err)
	}
	course, err := s.courseRepo.GetByID(ctx, module.CourseID)
	if err != nil {
		return nil, s.fail("failed to get course", moduleID, err)
	}

	isAuthor := course.AuthorID == userID
	if !course.IsPublic && !isAuthor {
		return nil, apperrors.ErrNotAuthorized
	}
	if !module.IsVisible && !isAuthor {
		return nil, apperrors.ErrModuleNotFound
	}

	lessons, err := s.lessonRepo.ListByModules(ctx, []int{moduleID})
	if err != nil {
		return nil, s.fail("failed to list lessons", moduleID, err)
	}

	details := make([]models.LessonDetail, 0, len(lessons))
	for _, lesson := range lessons {
		detail, err := s.content.LoadDetail(ctx, lesson)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// GetLesson returns a lesson with its content if the course is public or userID authored it
func (s *lessonService) GetLesson(ctx context.Context, userID, lessonID int) (*models.LessonDetail, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, s.fail("failed to get lesson", lessonID, err)
	}
	if !lesson.CourseIsPublic && lesson.CourseAuthorID != userID {
		return nil, errLessonForbidden
	}

	return s.content.LoadDetail(ctx, lesson.Lesson)
}

// UpdateLesson changes topic and order of a lesson of a course authored by userID
func (s *lessonService) UpdateLesson(ctx context.Context, userID, lessonID int, req *models.UpdateLessonRequest) (*models.Lesson, error) {
	info, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, s.fail("failed to get lesson", lessonID, err)
	}
	if info.CourseAuthorID != userID {
		return nil, apperrors.ErrNotCourseAuthor
	}

	lesson := info.Lesson
	if req.Topic != nil {
		if strings.TrimSpace(*req.Topic) == "" {
			return nil, errEmptyLessonTopic
		}
		lesson.Topic = *req.Topic
	}
	if req.Order != nil {
		if *req.Order < 1 {
			return nil, apperrors.Validation("Lesson order must be positive.")
		}
		lesson.Order = *req.Order
	}

	if err := s.lessonRepo.Update(ctx, &lesson); err != nil {
		return nil, s.fail("failed to update lesson", lessonID, err)
	}
	return &lesson, nil
}

// DeleteLesson removes a lesson of a course authored by userID
func (s *lessonService) DeleteLesson(ctx context.Context, userID, lessonID int) error {
	info, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return s.fail("failed to get lesson", lessonID, err)
	}
	if info.CourseAuthorID != userID {
		return apperrors.ErrNotCourseAuthor
	}

	if err := s.lessonRepo.Delete(ctx, lessonID); err != nil {
		return s.fail("failed to delete lesson", lessonID, err)
	}
	s.logger.Info("lesson deleted", zap.Int("lesson_id", lessonID), zap.Int("module_id", info.ModuleID))
	return nil
}

func (s *lessonService) fail(msg string, id int, err error) error {
	typed := typedOr(err, errLessonFailed)
	if apperrors.KindOf(typed) == apperrors.KindUpstream {
		s.logger.Error(msg, zap.Int("id", id), zap.Error(err))
	}
	return typed
}
