package models

// Lesson represents an ordered lesson of a module
type Lesson struct {
	ID       int    `json:"id"`
	ModuleID int    `json:"moduleId"`
	Topic    string `json:"topic"`
	Order    int    `json:"order"`
}

// LessonInfo is a lesson with the course and module it belongs to
type LessonInfo struct {
	Lesson
	ModuleName        string `json:"-"`
	CourseID          int    `json:"-"`
	CourseName        string `json:"-"`
	CourseDescription string `json:"-"`
	CourseAuthorID    int    `json:"-"`
	CourseIsPublic    bool   `json:"-"`
}

// Introduction is the reading part of a lesson
type Introduction struct {
	ID          int    `json:"id"`
	LessonID    int    `json:"lessonId"`
	Description string `json:"description"`
}

// QuizOption is one answer of a quiz question
type QuizOption struct {
	ID         int    `json:"id"`
	QuestionID int    `json:"-"`
	Option     string `json:"option"`
	IsCorrect  bool   `json:"isCorrect"`
}

// QuizQuestion is a single-choice question of a lesson quiz
type QuizQuestion struct {
	ID       int          `json:"id"`
	LessonID int          `json:"lessonId"`
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
}

// Assignment is the coding task of a lesson
type Assignment struct {
	ID           int    `json:"id"`
	LessonID     int    `json:"lessonId"`
	Instructions string `json:"instructions"`
}

// LessonDetail is a lesson with its optional content parts
type LessonDetail struct {
	Lesson
	Introduction *Introduction  `json:"introduction"`
	Quiz         []QuizQuestion `json:"quiz"`
	Assignment   *Assignment    `json:"assignment"`
}

// CreateLessonRequest represents one lesson to add to a module
type CreateLessonRequest struct {
	Topic string `json:"topic" validate:"required,max=255"`
}

// UpdateLessonRequest represents a request to update a lesson (partial update)
type UpdateLessonRequest struct {
	Topic *string `json:"topic,omitempty" validate:"omitempty,min=1,max=255"`
	Order *int    `json:"order,omitempty" validate:"omitempty,min=1"`
}

// CreateIntroductionRequest represents a manually written introduction
type CreateIntroductionRequest struct {
	Description string `json:"description" validate:"required"`
}

// QuizOptionRequest is one answer of a manually written quiz question
type QuizOptionRequest struct {
	Option    string `json:"option" validate:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

// CreateQuizQuestionRequest represents a manually written quiz question
type CreateQuizQuestionRequest struct {
	Question string              `json:"question" validate:"required"`
	Options  []QuizOptionRequest `json:"options" validate:"required,min=2,dive"`
}

// CreateAssignmentRequest represents manually written assignment instructions
type CreateAssignmentRequest struct {
	Instructions string `json:"instructions" validate:"required"`
}

// EvaluateAssignmentRequest carries the code a student submits for an assignment
type EvaluateAssignmentRequest struct {
	UserCode string `json:"userCode" validate:"required"`
}

// AssignmentEvaluation is the graded result of a submitted assignment
type AssignmentEvaluation struct {
	AssignmentScore float64 `json:"assignmentScore"`
	Message         string  `json:"message"`
}

// GeneratedContent is the full content produced for one lesson
type GeneratedContent struct {
	Description string         `json:"description"`
	Quiz        []QuizQuestion `json:"quiz"`
	Assignment  string         `json:"assignment"`
}
