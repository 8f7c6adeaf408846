package services

import (
	"context"
	"strings"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/generator"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

var (
	errGenerationFailed = apperrors.Upstream("Failed to generate lesson content.", nil)
	errContentFailed    = apperrors.Upstream("An error occurred while handling the lesson content.", nil)
	errEvaluationFailed = apperrors.Upstream("Failed to evaluate the assignment.", nil)
	errNoAssignment     = apperrors.NotFound("No assignment found for this lesson.")
	errNoCorrectOption  = apperrors.Validation("At least one option must be correct.")
)

// ContentRepository defines methods for lesson content data access
type ContentRepository interface {
	// GetIntroduction retrieves the introduction of a lesson
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the introduction (nil if the lesson has none) and an error if any.
	GetIntroduction(ctx context.Context, lessonID int) (*models.Introduction, error)
	// CreateIntroduction creates the introduction of a lesson
	//
	// "ctx" is the context for the request.
	// "intro" is the introduction to create.
	//
	// Returns a conflict error if the lesson already has one and an error if any.
	CreateIntroduction(ctx context.Context, intro *models.Introduction) error
	// ListQuiz retrieves the quiz questions of a lesson with their options
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the questions and an error if any.
	ListQuiz(ctx context.Context, lessonID int) ([]models.QuizQuestion, error)
	// CreateQuizQuestion creates a quiz question together with its options
	//
	// "ctx" is the context for the request.
	// "question" is the question to create.
	//
	// Returns an error if any.
	CreateQuizQuestion(ctx context.Context, question *models.QuizQuestion) error
	// GetAssignment retrieves the assignment of a lesson
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns the assignment (nil if the lesson has none) and an error if any.
	GetAssignment(ctx context.Context, lessonID int) (*models.Assignment, error)
	// CreateAssignment creates the assignment of a lesson
	//
	// "ctx" is the context for the request.
	// "assignment" is the assignment to create.
	//
	// Returns a conflict error if the lesson already has one and an error if any.
	CreateAssignment(ctx context.Context, assignment *models.Assignment) error
}

// ContentGenerator defines the lesson content generator
type ContentGenerator interface {
	GenerateIntroduction(ctx context.Context, topic string) (string, error)
	GenerateQuiz(ctx context.Context, topic string) ([]models.QuizQuestion, error)
	GenerateAssignment(ctx context.Context, topic string) (string, error)
	GenerateLessonContent(ctx context.Context, lesson generator.LessonContext) (*models.GeneratedContent, error)
	EvaluateAssignment(ctx context.Context, instructions, userCode string) (*models.AssignmentEvaluation, error)
}

// ProgressSubmitter records progress updates of a student
type ProgressSubmitter interface {
	Submit(ctx context.Context, studentID, lessonID int, update models.ProgressUpdate) (*models.SubmitResult, error)
}

type contentService struct {
	contentRepo ContentRepository
	lessonRepo  CurriculumRepository
	generator   ContentGenerator
	progress    ProgressSubmitter
	tx          Transactor
	logger      *zap.Logger
}

// NewContentService creates a new lesson content service
func NewContentService(contentRepo ContentRepository, lessonRepo CurriculumRepository, generator ContentGenerator, progress ProgressSubmitter, tx Transactor, logger *zap.Logger) *contentService {
	return &contentService{
		contentRepo: contentRepo,
		lessonRepo:  lessonRepo,
		generator:   generator,
		progress:    progress,
		tx:          tx,
		logger:      logger,
	}
}

// CreateIntroduction stores the introduction of a lesson, written by the author or generated when generate is set
func (s *contentService) CreateIntroduction(ctx context.Context, userID, lessonID int, generate bool, req *models.CreateIntroductionRequest) (*models.Introduction, error) {
	lesson, err := s.authoredLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}

	var description string
	if generate {
		description, err = s.generator.GenerateIntroduction(ctx, lesson.Topic)
		if err != nil {
			return nil, s.generationFailed(lessonID, err)
		}
	} else {
		if req == nil || strings.TrimSpace(req.Description) == "" {
			return nil, apperrors.Validation("Payload is required when not generating the introduction.")
		}
		description = req.Description
	}

	intro := &models.Introduction{LessonID: lessonID, Description: description}
	if err := s.contentRepo.CreateIntroduction(ctx, intro); err != nil {
		return nil, s.fail("failed to create introduction", lessonID, err)
	}
	return intro, nil
}

// AddQuizQuestions stores one authored question, or the generated quiz when generate is set
func (s *contentService) AddQuizQuestions(ctx context.Context, userID, lessonID int, generate bool, req *models.CreateQuizQuestionRequest) ([]models.QuizQuestion, error) {
	lesson, err := s.authoredLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}

	var questions []models.QuizQuestion
	if generate {
		questions, err = s.generator.GenerateQuiz(ctx, lesson.Topic)
		if err != nil {
			return nil, s.generationFailed(lessonID, err)
		}
	} else {
		if req == nil {
			return nil, apperrors.Validation("Payload is required when not generating the quiz.")
		}
		question, err := quizQuestionFromRequest(req)
		if err != nil {
			return nil, err
		}
		questions = []models.QuizQuestion{question}
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.createQuiz(ctx, lessonID, questions)
	})
	if err != nil {
		return nil, s.fail("failed to create quiz", lessonID, err)
	}
	return questions, nil
}

// CreateAssignment stores the assignment of a lesson, written by the author or generated when generate is set
func (s *contentService) CreateAssignment(ctx context.Context, userID, lessonID int, generate bool, req *models.CreateAssignmentRequest) (*models.Assignment, error) {
	lesson, err := s.authoredLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}

	var instructions string
	if generate {
		instructions, err = s.generator.GenerateAssignment(ctx, lesson.Topic)
		if err != nil {
			return nil, s.generationFailed(lessonID, err)
		}
	} else {
		if req == nil || strings.TrimSpace(req.Instructions) == "" {
			return nil, apperrors.Validation("Payload is required when not generating the assignment.")
		}
		instructions = req.Instructions
	}

	assignment := &models.Assignment{LessonID: lessonID, Instructions: instructions}
	if err := s.contentRepo.CreateAssignment(ctx, assignment); err != nil {
		return nil, s.fail("failed to create assignment", lessonID, err)
	}
	return assignment, nil
}

// FillLessonContent generates the missing parts of a lesson's content in one generator call.
// Parts that already exist are left untouched.
func (s *contentService) FillLessonContent(ctx context.Context, lessonID int) error {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return typedOr(err, errContentFailed)
	}

	intro, err := s.contentRepo.GetIntroduction(ctx, lessonID)
	if err != nil {
		return s.fail("failed to get introduction", lessonID, err)
	}
	quiz, err := s.contentRepo.ListQuiz(ctx, lessonID)
	if err != nil {
		return s.fail("failed to list quiz", lessonID, err)
	}
	assignment, err := s.contentRepo.GetAssignment(ctx, lessonID)
	if err != nil {
		return s.fail("failed to get assignment", lessonID, err)
	}
	if intro != nil && len(quiz) > 0 && assignment != nil {
		s.logger.Info("lesson content already complete", zap.Int("lesson_id", lessonID))
		return nil
	}

	generated, err := s.generator.GenerateLessonContent(ctx, generator.LessonContext{
		Topic:             lesson.Topic,
		ModuleName:        lesson.ModuleName,
		CourseName:        lesson.CourseName,
		CourseDescription: lesson.CourseDescription,
	})
	if err != nil {
		return s.generationFailed(lessonID, err)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if intro == nil && generated.Description != "" {
			if err := s.contentRepo.CreateIntroduction(ctx, &models.Introduction{LessonID: lessonID, Description: generated.Description}); err != nil {
				return err
			}
		}
		if len(quiz) == 0 {
			if err := s.createQuiz(ctx, lessonID, generated.Quiz); err != nil {
				return err
			}
		}
		if assignment == nil && generated.Assignment != "" {
			if err := s.contentRepo.CreateAssignment(ctx, &models.Assignment{LessonID: lessonID, Instructions: generated.Assignment}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return s.fail("failed to store generated content", lessonID, err)
	}

	s.logger.Info("lesson content generated",
		zap.Int("lesson_id", lessonID),
		zap.Int("quiz_questions", len(generated.Quiz)),
	)
	return nil
}

// EvaluateAssignment grades a student's solution and records the score as assignment progress
func (s *contentService) EvaluateAssignment(ctx context.Context, studentID, lessonID int, userCode string) (*models.AssignmentEvaluation, error) {
	if strings.TrimSpace(userCode) == "" {
		return nil, apperrors.Validation("Code is required.")
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, s.fail("failed to get lesson", lessonID, err)
	}
	if !lesson.CourseIsPublic && lesson.CourseAuthorID != studentID {
		return nil, apperrors.ErrNotAuthorized
	}

	assignment, err := s.contentRepo.GetAssignment(ctx, lessonID)
	if err != nil {
		return nil, s.fail("failed to get assignment", lessonID, err)
	}
	if assignment == nil {
		return nil, errNoAssignment
	}

	evaluation, err := s.generator.EvaluateAssignment(ctx, assignment.Instructions, userCode)
	if err != nil {
		s.logger.Error("failed to evaluate assignment", zap.Int("lesson_id", lessonID), zap.Error(err))
		return nil, errEvaluationFailed.Wrap(err)
	}

	score := evaluation.AssignmentScore
	if _, err := s.progress.Submit(ctx, studentID, lessonID, models.ProgressUpdate{AssignmentScore: &score}); err != nil {
		return nil, err
	}

	return evaluation, nil
}

// LoadDetail returns a lesson with its introduction, quiz and assignment
func (s *contentService) LoadDetail(ctx context.Context, lesson models.Lesson) (*models.LessonDetail, error) {
	detail := &models.LessonDetail{Lesson: lesson, Quiz: []models.QuizQuestion{}}

	intro, err := s.contentRepo.GetIntroduction(ctx, lesson.ID)
	if err != nil {
		return nil, s.fail("failed to get introduction", lesson.ID, err)
	}
	detail.Introduction = intro

	quiz, err := s.contentRepo.ListQuiz(ctx, lesson.ID)
	if err != nil {
		return nil, s.fail("failed to list quiz", lesson.ID, err)
	}
	if quiz != nil {
		detail.Quiz = quiz
	}

	assignment, err := s.contentRepo.GetAssignment(ctx, lesson.ID)
	if err != nil {
		return nil, s.fail("failed to get assignment", lesson.ID, err)
	}
	detail.Assignment = assignment

	return detail, nil
}

func (s *contentService) createQuiz(ctx context.Context, lessonID int, questions []models.QuizQuestion) error {
	for i := range questions {
		questions[i].LessonID = lessonID
		if err := s.contentRepo.CreateQuizQuestion(ctx, &questions[i]); err != nil {
			return err
		}
	}
	return nil
}

// authoredLesson loads a lesson and checks that userID authored its course
func (s *contentService) authoredLesson(ctx context.Context, userID, lessonID int) (*models.LessonInfo, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return nil, s.fail("failed to get lesson", lessonID, err)
	}
	if lesson.CourseAuthorID != userID {
		return nil, apperrors.ErrNotCourseAuthor
	}
	return lesson, nil
}

func (s *contentService) generationFailed(lessonID int, err error) error {
	s.logger.Error("content generation failed", zap.Int("lesson_id", lessonID), zap.Error(err))
	return errGenerationFailed.Wrap(err)
}

func (s *contentService) fail(msg string, lessonID int, err error) error {
	typed := typedOr(err, errContentFailed)
	if apperrors.KindOf(typed) == apperrors.KindUpstream {
		s.logger.Error(msg, zap.Int("lesson_id", lessonID), zap.Error(err))
	}
	return typed
}

func quizQuestionFromRequest(req *models.CreateQuizQuestionRequest) (models.QuizQuestion, error) {
	question := models.QuizQuestion{
		Question: req.Question,
		Options:  make([]models.QuizOption, 0, len(req.Options)),
	}
	correct := false
	for _, o := range req.Options {
		correct = correct || o.IsCorrect
		question.Options = append(question.Options, models.QuizOption{Option: o.Option, IsCorrect: o.IsCorrect})
	}
	if !correct {
		return models.QuizQuestion{}, errNoCorrectOption
	}
	return question, nil
}
