package models

import "time"

// Course represents a course in the learning system
type Course struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AuthorID    int       `json:"authorId"`
	IsPublic    bool      `json:"isPublic"`
	Rating      float64   `json:"rating"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// CourseDetailResponse is a course with roster and lesson counts
type CourseDetailResponse struct {
	Course
	StudentCount int `json:"studentCount"`
	LessonCount  int `json:"lessonCount"`
}

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// UpdateCourseRequest represents a request to update a course (partial update)
type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

// RateCourseRequest represents a rating submitted by an enrolled user
type RateCourseRequest struct {
	Score int `json:"score" validate:"required,min=1,max=5"`
}

// CourseProgressStats summarizes how the students of a course progress
type CourseProgressStats struct {
	CourseID         int     `json:"courseId"`
	StudentCount     int     `json:"studentCount"`
	LessonCount      int     `json:"lessonCount"`
	StartedLessons   int     `json:"startedLessons"`
	CompletedLessons int     `json:"completedLessons"`
	AverageQuiz      float64 `json:"averageQuizScore"`
	AverageAssign    float64 `json:"averageAssignmentScore"`
}

// CourseSort selects which courses a listing returns and how they are ordered
type CourseSort string

const (
	// CourseSortDefault lists public courses by id
	CourseSortDefault CourseSort = ""
	// CourseSortMy lists the courses authored by the caller, private ones included
	CourseSortMy CourseSort = "my"
	// CourseSortLatest lists public courses, most recently updated first
	CourseSortLatest CourseSort = "latest"
	// CourseSortHighestRated lists public courses, best rated first
	CourseSortHighestRated CourseSort = "highest-rated"
)

// CourseListQuery holds the sortBy and limit parameters of a course listing
type CourseListQuery struct {
	SortBy CourseSort
	Limit  int // 0 lists everything
}

// PlatformStats is the summary shown on the course catalogue
type PlatformStats struct {
	CoursesCount     int `json:"coursesCount"`
	StudentsCount    int `json:"studentsCount"`
	CompletedLessons int `json:"completedLessons"`
}

// LeaderboardEntry counts the lessons a user completed across all courses
type LeaderboardEntry struct {
	UserID           int    `json:"userId"`
	Username         string `json:"username"`
	CompletedLessons int    `json:"completedLessons"`
}

// EnrolledCourseProgress is the progress of a student in one enrolled course
type EnrolledCourseProgress struct {
	CourseID          int     `json:"courseId"`
	CourseName        string  `json:"courseName"`
	CompletedLessons  int     `json:"completedLessons"`
	TotalLessons      int     `json:"totalLessons"`
	CompletionPercent float64 `json:"completionPercent"`
}

// AuthoredCourseProgress summarizes the students of one course for its author
type AuthoredCourseProgress struct {
	CourseID          int     `json:"courseId"`
	CourseName        string  `json:"courseName"`
	StudentCount      int     `json:"studentCount"`
	TotalLessons      int     `json:"totalLessons"`
	CompletedLessons  int     `json:"completedLessons"`
	CompletionPercent float64 `json:"completionPercent"` // of students x lessons
}

// StudentCourseProgress is the progress of one student in a course
type StudentCourseProgress struct {
	UserID            int     `json:"userId"`
	Username          string  `json:"username"`
	StartedLessons    int     `json:"startedLessons"`
	CompletedLessons  int     `json:"completedLessons"`
	TotalLessons      int     `json:"totalLessons"`
	AverageQuiz       float64 `json:"averageQuizScore"`
	AverageAssign     float64 `json:"averageAssignmentScore"`
	CompletionPercent float64 `json:"completionPercent"`
}
