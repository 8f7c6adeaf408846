package models

// Module represents an ordered section of a course
type Module struct {
	ID        int    `json:"id"`
	CourseID  int    `json:"courseId"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
	IsVisible bool   `json:"isVisible"`
}

// ModuleWithLessons is a module together with its ordered lessons
type ModuleWithLessons struct {
	Module
	LessonCount int      `json:"lessonCount"`
	Lessons     []Lesson `json:"lessons"`
}

// CreateModuleRequest represents a request to create a module
type CreateModuleRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	IsVisible *bool  `json:"isVisible,omitempty"`
}
