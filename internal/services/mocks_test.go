package services

import (
	"context"
	"errors"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/generator"
	"github.com/learnhowtocode/backend/internal/models"
)

// authorID authors every course built by the service fixtures
const authorID = 2

// mockTx runs fn directly and counts the transactions it was asked for
type mockTx struct {
	calls int
}

func (m *mockTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// mockCourseRepository is a mock implementation of CourseRepository
type mockCourseRepository struct {
	course       *models.Course
	courses      []models.Course
	students     int
	lessons      int
	enrolled     bool
	rating       float64
	stats        *models.CourseProgressStats
	platform     *models.PlatformStats
	leaderboard  []models.LeaderboardEntry
	enrolledProg []models.EnrolledCourseProgress
	authoredProg []models.AuthoredCourseProgress
	studentProg  []models.StudentCourseProgress
	err          error
	reportErr    error
	createErr    error
	updateErr    error
	deleteErr    error
	upsertErr    error
	created      *models.Course
	updated      *models.Course
	deletedID    int
	upsertScores []int
	gotSort      models.CourseSort
	gotLimit     int
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if m.createErr != nil {
		return m.createErr
	}
	course.ID = 1
	m.created = course
	return nil
}

func (m *mockCourseRepository) GetByID(ctx context.Context, courseID int) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	c := *m.course
	return &c, nil
}

func (m *mockCourseRepository) GetCounts(ctx context.Context, courseID int) (int, int, error) {
	return m.students, m.lessons, nil
}

func (m *mockCourseRepository) ListPublic(ctx context.Context, sort models.CourseSort, limit int) ([]models.Course, error) {
	m.gotSort = sort
	m.gotLimit = limit
	return m.courses, m.err
}

func (m *mockCourseRepository) ListByAuthor(ctx context.Context, authorID int) ([]models.Course, error) {
	return m.courses, m.err
}

func (m *mockCourseRepository) ListEnrolled(ctx context.Context, userID int) ([]models.Course, error) {
	return m.courses, m.err
}

func (m *mockCourseRepository) Update(ctx context.Context, course *models.Course) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = course
	return nil
}

func (m *mockCourseRepository) Delete(ctx context.Context, courseID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = courseID
	return nil
}

func (m *mockCourseRepository) IsEnrolled(ctx context.Context, courseID, userID int) (bool, error) {
	return m.enrolled, nil
}

func (m *mockCourseRepository) UpsertRating(ctx context.Context, courseID, userID, score int) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upsertScores = append(m.upsertScores, score)
	return nil
}

func (m *mockCourseRepository) RefreshRating(ctx context.Context, courseID int) (float64, error) {
	return m.rating, nil
}

func (m *mockCourseRepository) GetProgressStats(ctx context.Context, courseID int) (*models.CourseProgressStats, error) {
	return m.stats, nil
}

func (m *mockCourseRepository) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	return m.platform, m.reportErr
}

func (m *mockCourseRepository) ListLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	m.gotLimit = limit
	return m.leaderboard, m.reportErr
}

func (m *mockCourseRepository) ListEnrolledProgress(ctx context.Context, userID int) ([]models.EnrolledCourseProgress, error) {
	return m.enrolledProg, m.reportErr
}

func (m *mockCourseRepository) ListAuthoredProgress(ctx context.Context, authorID int) ([]models.AuthoredCourseProgress, error) {
	return m.authoredProg, m.reportErr
}

func (m *mockCourseRepository) ListStudentProgress(ctx context.Context, courseID int) ([]models.StudentCourseProgress, error) {
	return m.studentProg, m.reportErr
}

// mockModuleRepository is a mock implementation of ModuleRepository
type mockModuleRepository struct {
	module    *models.Module
	modules   []models.Module
	nextOrder int
	err       error
	createErr error
	created   *models.Module
	orders    []int
}

func (m *mockModuleRepository) GetNextOrder(ctx context.Context, courseID int) (int, error) {
	return m.nextOrder, nil
}

func (m *mockModuleRepository) Create(ctx context.Context, module *models.Module) error {
	if m.createErr != nil {
		return m.createErr
	}
	module.ID = 10 + len(m.orders)
	m.created = module
	m.orders = append(m.orders, module.Order)
	return nil
}

func (m *mockModuleRepository) GetByID(ctx context.Context, moduleID int) (*models.Module, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.module == nil {
		return nil, apperrors.ErrModuleNotFound
	}
	return m.module, nil
}

func (m *mockModuleRepository) ListByCourse(ctx context.Context, courseID int) ([]models.Module, error) {
	return m.modules, m.err
}

// mockLessonRepository is a mock implementation of LessonRepository and CurriculumRepository
type mockLessonRepository struct {
	lesson    *models.LessonInfo
	lessons   []models.Lesson
	nextOrder int
	err       error
	createErr error
	deleteErr error
	created   []models.Lesson
	updated   *models.Lesson
	deletedID int
	listedFor []int
}

func (m *mockLessonRepository) GetByID(ctx context.Context, lessonID int) (*models.LessonInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.lesson == nil {
		return nil, apperrors.ErrLessonNotFound
	}
	l := *m.lesson
	return &l, nil
}

func (m *mockLessonRepository) GetOutline(ctx context.Context, courseID int) (*models.CourseOutline, error) {
	return &models.CourseOutline{CourseID: courseID}, nil
}

func (m *mockLessonRepository) GetNextOrder(ctx context.Context, moduleID int) (int, error) {
	return m.nextOrder, nil
}

func (m *mockLessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	if m.createErr != nil {
		return m.createErr
	}
	lesson.ID = 100 + len(m.created)
	m.created = append(m.created, *lesson)
	return nil
}

func (m *mockLessonRepository) ListByModules(ctx context.Context, moduleIDs []int) ([]models.Lesson, error) {
	m.listedFor = moduleIDs
	if m.err != nil {
		return nil, m.err
	}
	return m.lessons, nil
}

func (m *mockLessonRepository) Update(ctx context.Context, lesson *models.Lesson) error {
	m.updated = lesson
	return nil
}

func (m *mockLessonRepository) Delete(ctx context.Context, lessonID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = lessonID
	return nil
}

// mockContentRepository is a mock implementation of ContentRepository
type mockContentRepository struct {
	intro        *models.Introduction
	quiz         []models.QuizQuestion
	assignment   *models.Assignment
	err          error
	createErr    error
	quizErrAfter int
	createdIntro *models.Introduction
	createdQuiz  []models.QuizQuestion
	createdAssig *models.Assignment
}

func (m *mockContentRepository) GetIntroduction(ctx context.Context, lessonID int) (*models.Introduction, error) {
	return m.intro, m.err
}

func (m *mockContentRepository) CreateIntroduction(ctx context.Context, intro *models.Introduction) error {
	if m.createErr != nil {
		return m.createErr
	}
	intro.ID = 1
	m.createdIntro = intro
	return nil
}

func (m *mockContentRepository) ListQuiz(ctx context.Context, lessonID int) ([]models.QuizQuestion, error) {
	return m.quiz, m.err
}

func (m *mockContentRepository) CreateQuizQuestion(ctx context.Context, question *models.QuizQuestion) error {
	if m.quizErrAfter > 0 && len(m.createdQuiz) >= m.quizErrAfter {
		return errors.New("failed to create quiz question")
	}
	question.ID = len(m.createdQuiz) + 1
	m.createdQuiz = append(m.createdQuiz, *question)
	return nil
}

func (m *mockContentRepository) GetAssignment(ctx context.Context, lessonID int) (*models.Assignment, error) {
	return m.assignment, m.err
}

func (m *mockContentRepository) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	if m.createErr != nil {
		return m.createErr
	}
	assignment.ID = 1
	m.createdAssig = assignment
	return nil
}

// mockGenerator is a mock implementation of ContentGenerator
type mockGenerator struct {
	text       string
	quiz       []models.QuizQuestion
	content    *models.GeneratedContent
	evaluation *models.AssignmentEvaluation
	modules    []string
	err        error
	calls      int
	lastLesson generator.LessonContext
}

func (m *mockGenerator) GenerateIntroduction(ctx context.Context, topic string) (string, error) {
	m.calls++
	return m.text, m.err
}

func (m *mockGenerator) GenerateQuiz(ctx context.Context, topic string) ([]models.QuizQuestion, error) {
	m.calls++
	return m.quiz, m.err
}

func (m *mockGenerator) GenerateAssignment(ctx context.Context, topic string) (string, error) {
	m.calls++
	return m.text, m.err
}

func (m *mockGenerator) GenerateLessonContent(ctx context.Context, lesson generator.LessonContext) (*models.GeneratedContent, error) {
	m.calls++
	m.lastLesson = lesson
	return m.content, m.err
}

func (m *mockGenerator) GenerateModules(ctx context.Context, courseName, description string) ([]string, error) {
	m.calls++
	return m.modules, m.err
}

func (m *mockGenerator) EvaluateAssignment(ctx context.Context, instructions, userCode string) (*models.AssignmentEvaluation, error) {
	m.calls++
	return m.evaluation, m.err
}

// mockSubmitter is a mock implementation of ProgressSubmitter
type mockSubmitter struct {
	updates []models.ProgressUpdate
	err     error
}

func (m *mockSubmitter) Submit(ctx context.Context, studentID, lessonID int, update models.ProgressUpdate) (*models.SubmitResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.updates = append(m.updates, update)
	return &models.SubmitResult{Status: models.SubmitStatusUpdated}, nil
}

// mockQueue is a mock implementation of ContentQueue
type mockQueue struct {
	lessonIDs []int
	err       error
}

func (m *mockQueue) EnqueueLessonContent(ctx context.Context, lessonID int) error {
	if m.err != nil {
		return m.err
	}
	m.lessonIDs = append(m.lessonIDs, lessonID)
	return nil
}

// mockDetailLoader is a mock implementation of LessonDetailLoader
type mockDetailLoader struct {
	err error
}

func (m *mockDetailLoader) LoadDetail(ctx context.Context, lesson models.Lesson) (*models.LessonDetail, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.LessonDetail{Lesson: lesson, Quiz: []models.QuizQuestion{}}, nil
}

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user      *models.User
	err       error
	createErr error
	created   *models.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = 1
	m.created = user
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || m.user.Email != email {
		return nil, apperrors.ErrUserNotFound
	}
	return m.user, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || m.user.ID != userID {
		return nil, apperrors.ErrUserNotFound
	}
	return m.user, nil
}

// mockTokenIssuer is a mock implementation of TokenIssuer
type mockTokenIssuer struct {
	userID   int
	validErr error
}

func (m *mockTokenIssuer) GenerateTokens(userID int, role int) (string, string, error) {
	return "access", "refresh", nil
}

func (m *mockTokenIssuer) ValidateRefreshToken(tokenString string) (int, error) {
	if m.validErr != nil {
		return 0, m.validErr
	}
	return m.userID, nil
}
