package services

import (
	"sort"

	"github.com/learnhowtocode/backend/internal/apperrors"
	"github.com/learnhowtocode/backend/internal/models"
)

// Curriculum order is ascending `order`; equal orders fall back to ascending id.

// FirstLessonOf returns the first lesson of the first module of a course.
// It fails with ErrCourseEmpty when the course has no modules and with
// ErrNoLessonsInFirstModule when its first module has no lessons.
func FirstLessonOf(outline *models.CourseOutline) (models.LessonRef, error) {
	modules := sortedModules(outline)
	if len(modules) == 0 {
		return models.LessonRef{}, apperrors.ErrCourseEmpty
	}

	lessons := sortedLessons(modules[0])
	if len(lessons) == 0 {
		return models.LessonRef{}, apperrors.ErrNoLessonsInFirstModule
	}
	return lessons[0], nil
}

// NextLessonAfter returns the lesson that follows lessonID in curriculum order.
// When lessonID is the last lesson of its module, the first lesson of the next
// module is returned. An empty next module ends the sequence; later modules are not searched.
func NextLessonAfter(outline *models.CourseOutline, lessonID int) (models.LessonRef, bool) {
	modules := sortedModules(outline)

	for m, module := range modules {
		lessons := sortedLessons(module)
		for l, lesson := range lessons {
			if lesson.ID != lessonID {
				continue
			}
			if l+1 < len(lessons) {
				return lessons[l+1], true
			}
			if m+1 == len(modules) {
				return models.LessonRef{}, false
			}
			next := sortedLessons(modules[m+1])
			if len(next) == 0 {
				return models.LessonRef{}, false
			}
			return next[0], true
		}
	}

	return models.LessonRef{}, false
}

func sortedModules(outline *models.CourseOutline) []models.ModuleOutline {
	if outline == nil {
		return nil
	}
	modules := make([]models.ModuleOutline, len(outline.Modules))
	copy(modules, outline.Modules)
	sort.SliceStable(modules, func(i, j int) bool {
		if modules[i].Order != modules[j].Order {
			return modules[i].Order < modules[j].Order
		}
		return modules[i].ID < modules[j].ID
	})
	return modules
}

func sortedLessons(module models.ModuleOutline) []models.LessonRef {
	lessons := make([]models.LessonRef, len(module.Lessons))
	copy(lessons, module.Lessons)
	sort.SliceStable(lessons, func(i, j int) bool {
		if lessons[i].Order != lessons[j].Order {
			return lessons[i].Order < lessons[j].Order
		}
		return lessons[i].ID < lessons[j].ID
	})
	return lessons
}
