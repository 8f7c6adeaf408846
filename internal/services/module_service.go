package services

import (
	"context"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

var (
	errModuleFailed  = apperrors.Upstream("An unexpected error occurred while handling the module.", nil)
	errOutlineFailed = apperrors.Upstream("Failed to generate course modules.", nil)
)

// CourseReader defines the course lookup shared by curriculum services
type CourseReader interface {
	// GetByID retrieves a course by ID
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the course and an error if any.
	GetByID(ctx context.Context, courseID int) (*models.Course, error)
}

// ModuleRepository defines methods for module data access
type ModuleRepository interface {
	// GetNextOrder returns the order a new module of a course gets
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns max(order)+1 and an error if any.
	GetNextOrder(ctx context.Context, courseID int) (int, error)
	// Create creates a new module
	//
	// "ctx" is the context for the request.
	// "module" is the module to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, module *models.Module) error
	// GetByID retrieves a module by ID
	//
	// "ctx" is the context for the request.
	// "moduleID" is the ID of the module.
	//
	// Returns the module and an error if any.
	GetByID(ctx context.Context, moduleID int) (*models.Module, error)
	// ListByCourse retrieves the modules of a course ordered by order
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns the modules and an error if any.
	ListByCourse(ctx context.Context, courseID int) ([]models.Module, error)
}

// LessonLister defines the lesson listing used to nest lessons under modules
type LessonLister interface {
	// ListByModules retrieves the lessons of several modules
	//
	// "ctx" is the context for the request.
	// "moduleIDs" are the IDs of the modules.
	//
	// Returns the lessons ordered by module and order and an error if any.
	ListByModules(ctx context.Context, moduleIDs []int) ([]models.Lesson, error)
}

// ModuleGenerator drafts the module outline of a course
type ModuleGenerator interface {
	// GenerateModules returns module names for a course
	//
	// "ctx" is the context for the request.
	// "courseName" is the name of the course.
	// "description" is the description of the course.
	//
	// Returns the module names in teaching order and an error if any.
	GenerateModules(ctx context.Context, courseName, description string) ([]string, error)
}

type moduleService struct {
	courseRepo CourseReader
	moduleRepo ModuleRepository
	lessonRepo LessonLister
	generator  ModuleGenerator
	tx         Transactor
	logger     *zap.Logger
}

// NewModuleService creates a new module service
func NewModuleService(courseRepo CourseReader, moduleRepo ModuleRepository, lessonRepo LessonLister, generator ModuleGenerator, tx Transactor, logger *zap.Logger) *moduleService {
	return &moduleService{
		courseRepo: courseRepo,
		moduleRepo: moduleRepo,
		lessonRepo: lessonRepo,
		generator:  generator,
		tx:         tx,
		logger:     logger,
	}
}

// CreateModule appends a module to a course authored by userID
func (s *moduleService) CreateModule(ctx context.Context, userID, courseID int, req *models.CreateModuleRequest) (*models.Module, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to get course", courseID, err)
	}
	if course.AuthorID != userID {
		return nil, apperrors.ErrNotCourseAuthor
	}

	module := &models.Module{CourseID: courseID, Name: req.Name, IsVisible: true}
	if req.IsVisible != nil {
		module.IsVisible = *req.IsVisible
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.moduleRepo.GetNextOrder(ctx, courseID)
		if err != nil {
			return err
		}
		module.Order = order
		return s.moduleRepo.Create(ctx, module)
	})
	if err != nil {
		return nil, s.fail("failed to create module", courseID, err)
	}

	s.logger.Info("module created",
		zap.Int("course_id", courseID),
		zap.Int("module_id", module.ID),
		zap.Int("order", module.Order),
	)
	return module, nil
}

// GenerateModules appends generated modules to a course authored by userID.
// All modules are created in one transaction after the generator answers.
func (s *moduleService) GenerateModules(ctx context.Context, userID, courseID int) ([]models.Module, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to get course", courseID, err)
	}
	if course.AuthorID != userID {
		return nil, apperrors.ErrNotCourseAuthor
	}

	names, err := s.generator.GenerateModules(ctx, course.Name, course.Description)
	if err != nil {
		s.logger.Error("module generation failed", zap.Int("course_id", courseID), zap.Error(err))
		return nil, errOutlineFailed.Wrap(err)
	}

	modules := make([]models.Module, 0, len(names))
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.moduleRepo.GetNextOrder(ctx, courseID)
		if err != nil {
			return err
		}
		for i, name := range names {
			module := models.Module{CourseID: courseID, Name: name, Order: order + i, IsVisible: true}
			if err := s.moduleRepo.Create(ctx, &module); err != nil {
				return err
			}
			modules = append(modules, module)
		}
		return nil
	})
	if err != nil {
		return nil, s.fail("failed to create generated modules", courseID, err)
	}

	s.logger.Info("modules generated", zap.Int("course_id", courseID), zap.Int("count", len(modules)))
	return modules, nil
}

// ListByCourse returns the modules of a course with their lessons.
// Hidden modules are listed for the author only.
func (s *moduleService) ListByCourse(ctx context.Context, userID, courseID int) ([]models.ModuleWithLessons, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to get course", courseID, err)
	}
	isAuthor := course.AuthorID == userID
	if !course.IsPublic && !isAuthor {
		return nil, apperrors.ErrNotAuthorized
	}

	modules, err := s.moduleRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, s.fail("failed to list modules", courseID, err)
	}

	visible := make([]models.Module, 0, len(modules))
	ids := make([]int, 0, len(modules))
	for _, m := range modules {
		if m.IsVisible || isAuthor {
			visible = append(visible, m)
			ids = append(ids, m.ID)
		}
	}

	lessons, err := s.lessonRepo.ListByModules(ctx, ids)
	if err != nil {
		return nil, s.fail("failed to list lessons", courseID, err)
	}
	byModule := make(map[int][]models.Lesson, len(ids))
	for _, l := range lessons {
		byModule[l.ModuleID] = append(byModule[l.ModuleID], l)
	}

	result := make([]models.ModuleWithLessons, 0, len(visible))
	for _, m := range visible {
		moduleLessons := byModule[m.ID]
		if moduleLessons == nil {
			moduleLessons = []models.Lesson{}
		}
		result = append(result, models.ModuleWithLessons{
			Module:      m,
			LessonCount: len(moduleLessons),
			Lessons:     moduleLessons,
		})
	}
	return result, nil
}

func (s *moduleService) fail(msg string, courseID int, err error) error {
	typed := typedOr(err, errModuleFailed)
	if apperrors.KindOf(typed) == apperrors.KindUpstream {
		s.logger.Error(msg, zap.Int("course_id", courseID), zap.Error(err))
	}
	return typed
}
