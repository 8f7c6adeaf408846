package models

// PassingScore is the minimum quiz and assignment score of a completed lesson
const PassingScore = 70.0

// Progress is the state of one student in one lesson
type Progress struct {
	ID                    int      `json:"id"`
	UserID                int      `json:"userId"`
	LessonID              int      `json:"lessonId"`
	IntroductionCompleted bool     `json:"introductionCompleted"`
	QuizScore             *float64 `json:"quizScore"`
	AssignmentScore       *float64 `json:"assignmentScore"`
	LessonCompleted       bool     `json:"lessonCompleted"`
}

// ProgressUpdate is a partial update; nil fields are absent
type ProgressUpdate struct {
	IntroductionCompleted *bool    `json:"introductionCompleted,omitempty"`
	QuizScore             *float64 `json:"quizScore,omitempty" validate:"omitempty,min=0,max=100"`
	AssignmentScore       *float64 `json:"assignmentScore,omitempty" validate:"omitempty,min=0,max=100"`
}

// SubmitProgressRequest is the body of a progress submission
type SubmitProgressRequest struct {
	LessonID int `json:"lessonId" validate:"required,min=1"`
	ProgressUpdate
}

// SubmitStatus tells whether a submission created the progress row or updated it
type SubmitStatus string

const (
	SubmitStatusCreated SubmitStatus = "created"
	SubmitStatusUpdated SubmitStatus = "updated"
)

// SubmitResult is the outcome of a progress submission
type SubmitResult struct {
	Status   SubmitStatus `json:"status"`
	Progress Progress     `json:"progress"`
}

// EnrollResult is the outcome of an enrollment
type EnrollResult struct {
	ProgressInitialized bool `json:"progressInitialized"`
}

// LessonRef identifies a lesson by its position in the curriculum
type LessonRef struct {
	ID       int
	ModuleID int
	Order    int
}

// ModuleOutline is a module with its lessons, as used for sequencing
type ModuleOutline struct {
	ID      int
	Order   int
	Lessons []LessonRef
}

// CourseOutline is the module and lesson ordering of one course
type CourseOutline struct {
	CourseID int
	Modules  []ModuleOutline
}
