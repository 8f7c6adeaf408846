package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	authMiddleware "github.com/learnhowtocode/backend/internal/auth/middleware"
	"github.com/learnhowtocode/backend/internal/models"
	"github.com/stretchr/testify/require"
)

const testUserID = 7

// serve routes req through a router with the given routes registered
func serve(register func(chi.Router), req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// authedRequest builds a request carrying an authenticated user
func authedRequest(method, target, body string, role int) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(authMiddleware.WithUser(req.Context(), testUserID, role))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(dst))
}

type mockAuthService struct {
	user       *models.UserResponse
	tokens     *models.TokenResponse
	err        error
	registered *models.RegisterRequest
	refreshed  string
}

func (m *mockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	m.registered = req
	return m.user, m.err
}

func (m *mockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	return m.tokens, m.err
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	m.refreshed = refreshToken
	return m.tokens, m.err
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int) (*models.UserResponse, error) {
	return m.user, m.err
}

type mockCourseService struct {
	course      *models.Course
	detail      *models.CourseDetailResponse
	courses     []models.Course
	stats       *models.CourseProgressStats
	platform    *models.PlatformStats
	leaderboard []models.LeaderboardEntry
	enrolled    []models.EnrolledCourseProgress
	authored    []models.AuthoredCourseProgress
	students    []models.StudentCourseProgress
	rating      float64
	err         error
	gotRole     models.Role
	gotScore    int
	gotQuery    models.CourseListQuery
	gotLimit    int
	deleted     int
}

func (m *mockCourseService) CreateCourse(ctx context.Context, userID int, role models.Role, req *models.CreateCourseRequest) (*models.Course, error) {
	m.gotRole = role
	return m.course, m.err
}

func (m *mockCourseService) GetCourse(ctx context.Context, userID, courseID int) (*models.CourseDetailResponse, error) {
	return m.detail, m.err
}

func (m *mockCourseService) ListCourses(ctx context.Context, userID int, q models.CourseListQuery) ([]models.Course, error) {
	m.gotQuery = q
	return m.courses, m.err
}

func (m *mockCourseService) ListAuthored(ctx context.Context, userID int) ([]models.Course, error) {
	return m.courses, m.err
}

func (m *mockCourseService) ListEnrolled(ctx context.Context, userID int) ([]models.Course, error) {
	return m.courses, m.err
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, userID, courseID int, req *models.UpdateCourseRequest) (*models.Course, error) {
	return m.course, m.err
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, userID, courseID int) error {
	m.deleted = courseID
	return m.err
}

func (m *mockCourseService) RateCourse(ctx context.Context, userID, courseID, score int) (float64, error) {
	m.gotScore = score
	return m.rating, m.err
}

func (m *mockCourseService) GetProgressStats(ctx context.Context, userID, courseID int) (*models.CourseProgressStats, error) {
	return m.stats, m.err
}

func (m *mockCourseService) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	return m.platform, m.err
}

func (m *mockCourseService) GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	m.gotLimit = limit
	return m.leaderboard, m.err
}

func (m *mockCourseService) ListEnrolledProgress(ctx context.Context, userID int) ([]models.EnrolledCourseProgress, error) {
	return m.enrolled, m.err
}

func (m *mockCourseService) ListAuthoredProgress(ctx context.Context, userID int) ([]models.AuthoredCourseProgress, error) {
	return m.authored, m.err
}

func (m *mockCourseService) ListStudentProgress(ctx context.Context, userID, courseID int) ([]models.StudentCourseProgress, error) {
	return m.students, m.err
}

type mockEnrollmentService struct {
	result   *models.EnrollResult
	enrolled bool
	err      error
}

func (m *mockEnrollmentService) Enroll(ctx context.Context, studentID, courseID int) (*models.EnrollResult, error) {
	return m.result, m.err
}

func (m *mockEnrollmentService) IsEnrolled(ctx context.Context, studentID, courseID int) (bool, error) {
	return m.enrolled, m.err
}

type mockModuleService struct {
	module    *models.Module
	modules   []models.ModuleWithLessons
	generated []models.Module
	err       error
	req       *models.CreateModuleRequest
}

func (m *mockModuleService) CreateModule(ctx context.Context, userID, courseID int, req *models.CreateModuleRequest) (*models.Module, error) {
	m.req = req
	return m.module, m.err
}

func (m *mockModuleService) GenerateModules(ctx context.Context, userID, courseID int) ([]models.Module, error) {
	return m.generated, m.err
}

func (m *mockModuleService) ListByCourse(ctx context.Context, userID, courseID int) ([]models.ModuleWithLessons, error) {
	return m.modules, m.err
}

type mockLessonService struct {
	lessons     []models.Lesson
	details     []models.LessonDetail
	detail      *models.LessonDetail
	lesson      *models.Lesson
	err         error
	gotReqs     []models.CreateLessonRequest
	gotGenerate bool
	deleted     int
}

func (m *mockLessonService) AddLessons(ctx context.Context, userID, moduleID int, reqs []models.CreateLessonRequest, generate bool) ([]models.Lesson, error) {
	m.gotReqs = reqs
	m.gotGenerate = generate
	return m.lessons, m.err
}

func (m *mockLessonService) ListByModule(ctx context.Context, userID, moduleID int) ([]models.LessonDetail, error) {
	return m.details, m.err
}

func (m *mockLessonService) GetLesson(ctx context.Context, userID, lessonID int) (*models.LessonDetail, error) {
	return m.detail, m.err
}

func (m *mockLessonService) UpdateLesson(ctx context.Context, userID, lessonID int, req *models.UpdateLessonRequest) (*models.Lesson, error) {
	return m.lesson, m.err
}

func (m *mockLessonService) DeleteLesson(ctx context.Context, userID, lessonID int) error {
	m.deleted = lessonID
	return m.err
}

type mockContentService struct {
	intro       *models.Introduction
	quiz        []models.QuizQuestion
	assignment  *models.Assignment
	evaluation  *models.AssignmentEvaluation
	err         error
	gotGenerate bool
	gotIntro    *models.CreateIntroductionRequest
	gotQuiz     *models.CreateQuizQuestionRequest
	gotCode     string
}

func (m *mockContentService) CreateIntroduction(ctx context.Context, userID, lessonID int, generate bool, req *models.CreateIntroductionRequest) (*models.Introduction, error) {
	m.gotGenerate = generate
	m.gotIntro = req
	return m.intro, m.err
}

func (m *mockContentService) AddQuizQuestions(ctx context.Context, userID, lessonID int, generate bool, req *models.CreateQuizQuestionRequest) ([]models.QuizQuestion, error) {
	m.gotGenerate = generate
	m.gotQuiz = req
	return m.quiz, m.err
}

func (m *mockContentService) CreateAssignment(ctx context.Context, userID, lessonID int, generate bool, req *models.CreateAssignmentRequest) (*models.Assignment, error) {
	m.gotGenerate = generate
	return m.assignment, m.err
}

func (m *mockContentService) EvaluateAssignment(ctx context.Context, studentID, lessonID int, userCode string) (*models.AssignmentEvaluation, error) {
	m.gotCode = userCode
	return m.evaluation, m.err
}

type mockProgressService struct {
	result    *models.SubmitResult
	progress  []models.Progress
	err       error
	gotLesson int
	gotUpdate models.ProgressUpdate
}

func (m *mockProgressService) Submit(ctx context.Context, studentID, lessonID int, update models.ProgressUpdate) (*models.SubmitResult, error) {
	m.gotLesson = lessonID
	m.gotUpdate = update
	return m.result, m.err
}

func (m *mockProgressService) ListByCourse(ctx context.Context, studentID, courseID int) ([]models.Progress, error) {
	return m.progress, m.err
}
