package services

import (
	"context"
	"sync"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
)

type progressKey struct {
	userID   int
	lessonID int
}

type inTxKey struct{}

// memStore is an in-memory store that serializes transactions and restores
// its state when a transaction fails. It implements Transactor,
// ProgressRepository, CurriculumRepository and RosterRepository.
type memStore struct {
	mu sync.Mutex

	courses  map[int]*models.Course
	lessons  map[int]*models.LessonInfo
	outlines map[int]*models.CourseOutline
	roster   map[[2]int]bool
	progress map[progressKey]models.Progress
	nextID   int

	// failure injection
	saveErr         error
	createErrOnce   error
	outlineErr      error
	addStudentErr   error
	createCalls     int
	saveCalls       int
	getForUpdateCnt int
}

func newMemStore() *memStore {
	return &memStore{
		courses:  make(map[int]*models.Course),
		lessons:  make(map[int]*models.LessonInfo),
		outlines: make(map[int]*models.CourseOutline),
		roster:   make(map[[2]int]bool),
		progress: make(map[progressKey]models.Progress),
	}
}

// addCourse registers a course whose modules are given as lists of lesson IDs.
// Module i gets order i+1 and lesson j of a module gets order j+1.
func (s *memStore) addCourse(course models.Course, modules ...[]int) {
	s.courses[course.ID] = &course
	outline := &models.CourseOutline{CourseID: course.ID}
	for i, lessonIDs := range modules {
		moduleID := course.ID*100 + i + 1
		module := models.ModuleOutline{ID: moduleID, Order: i + 1}
		for j, lessonID := range lessonIDs {
			module.Lessons = append(module.Lessons, models.LessonRef{ID: lessonID, ModuleID: moduleID, Order: j + 1})
			s.lessons[lessonID] = &models.LessonInfo{
				Lesson:         models.Lesson{ID: lessonID, ModuleID: moduleID, Order: j + 1},
				CourseID:       course.ID,
				CourseAuthorID: course.AuthorID,
				CourseIsPublic: course.IsPublic,
			}
		}
		outline.Modules = append(outline.Modules, module)
	}
	s.outlines[course.ID] = outline
}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	progress := make(map[progressKey]models.Progress, len(s.progress))
	for k, v := range s.progress {
		progress[k] = v
	}
	roster := make(map[[2]int]bool, len(s.roster))
	for k, v := range s.roster {
		roster[k] = v
	}

	if err := fn(context.WithValue(ctx, inTxKey{}, true)); err != nil {
		s.progress = progress
		s.roster = roster
		return err
	}
	return nil
}

func (s *memStore) CreateIfAbsent(ctx context.Context, p *models.Progress) (bool, error) {
	s.createCalls++
	if s.createErrOnce != nil {
		err := s.createErrOnce
		s.createErrOnce = nil
		return false, err
	}

	key := progressKey{p.UserID, p.LessonID}
	if _, ok := s.progress[key]; ok {
		return false, nil
	}
	s.nextID++
	p.ID = s.nextID
	s.progress[key] = *p
	return true, nil
}

func (s *memStore) GetForUpdate(ctx context.Context, userID, lessonID int) (*models.Progress, error) {
	s.getForUpdateCnt++
	p, ok := s.progress[progressKey{userID, lessonID}]
	if !ok {
		return nil, apperrors.NotFound("progress not found")
	}
	return &p, nil
}

func (s *memStore) Save(ctx context.Context, p *models.Progress) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.progress[progressKey{p.UserID, p.LessonID}] = *p
	return nil
}

func (s *memStore) ListByCourse(ctx context.Context, userID, courseID int) ([]models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]models.Progress, 0)
	for key, p := range s.progress {
		if lesson, ok := s.lessons[key.lessonID]; ok && key.userID == userID && lesson.CourseID == courseID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (s *memStore) GetByID(ctx context.Context, lessonID int) (*models.LessonInfo, error) {
	lesson, ok := s.lessons[lessonID]
	if !ok {
		return nil, apperrors.ErrLessonNotFound
	}
	return lesson, nil
}

func (s *memStore) GetOutline(ctx context.Context, courseID int) (*models.CourseOutline, error) {
	if s.outlineErr != nil {
		return nil, s.outlineErr
	}
	outline, ok := s.outlines[courseID]
	if !ok {
		return &models.CourseOutline{CourseID: courseID}, nil
	}
	return outline, nil
}

// courseStore exposes the course side of memStore, whose GetByID is taken by lessons
type courseStore struct {
	*memStore
}

func (c courseStore) GetByID(ctx context.Context, courseID int) (*models.Course, error) {
	course, ok := c.courses[courseID]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (c courseStore) IsEnrolled(ctx context.Context, courseID, userID int) (bool, error) {
	return c.roster[[2]int{courseID, userID}], nil
}

func (c courseStore) AddStudent(ctx context.Context, courseID, userID int) error {
	if c.addStudentErr != nil {
		return c.addStudentErr
	}
	key := [2]int{courseID, userID}
	if c.roster[key] {
		return apperrors.ErrAlreadyEnrolled
	}
	c.roster[key] = true
	return nil
}

func (s *memStore) get(userID, lessonID int) (models.Progress, bool) {
	p, ok := s.progress[progressKey{userID, lessonID}]
	return p, ok
}

func (s *memStore) rowCount(userID int) int {
	n := 0
	for key := range s.progress {
		if key.userID == userID {
			n++
		}
	}
	return n
}

func boolPtr(b bool) *bool {
	return &b
}

func scorePtr(f float64) *float64 {
	return &f
}
