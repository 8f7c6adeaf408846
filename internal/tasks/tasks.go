// Package tasks defines the background jobs run by the worker and the client that queues them.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/learnhowtocode/backend/internal/apperrors"
	"go.uber.org/zap"
)

const (
	// TypeGenerateLessonContent generates introduction, quiz and assignment of a lesson
	TypeGenerateLessonContent = "lesson:generate_content"
	// QueueContent is the queue of content generation tasks
	QueueContent = "content"

	maxRetry       = 3
	processTimeout = 3 * time.Minute
	// outlives every retry of one task, so an archived task stops blocking new ones
	uniqueTTL = 30 * time.Minute
)

// GenerateLessonContentPayload is the payload of TypeGenerateLessonContent
type GenerateLessonContentPayload struct {
	LessonID int `json:"lessonId"`
}

// NewGenerateLessonContentTask builds a content generation task for a lesson
func NewGenerateLessonContentTask(lessonID int) (*asynq.Task, error) {
	payload, err := json.Marshal(GenerateLessonContentPayload{LessonID: lessonID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeGenerateLessonContent, payload), nil
}

// TaskClient defines the asynq client methods used to queue tasks
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer queues content generation tasks
type Enqueuer struct {
	client TaskClient
	logger *zap.Logger
}

// NewEnqueuer creates a new enqueuer
func NewEnqueuer(client TaskClient, logger *zap.Logger) *Enqueuer {
	return &Enqueuer{
		client: client,
		logger: logger,
	}
}

// EnqueueLessonContent queues content generation for a lesson.
// A lesson whose task is still pending or retrying within uniqueTTL is not queued twice.
func (e *Enqueuer) EnqueueLessonContent(ctx context.Context, lessonID int) error {
	task, err := NewGenerateLessonContentTask(lessonID)
	if err != nil {
		return err
	}

	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueContent),
		asynq.MaxRetry(maxRetry),
		asynq.Timeout(processTimeout),
		asynq.Unique(uniqueTTL),
	)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		e.logger.Warn("content generation skipped, a task for the lesson is still locked",
			zap.Int("lesson_id", lessonID),
			zap.Duration("lock_ttl", uniqueTTL),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue content generation: %w", err)
	}

	e.logger.Info("content generation queued", zap.Int("lesson_id", lessonID), zap.String("task_id", info.ID))
	return nil
}

// ContentFiller generates the missing content of a lesson
type ContentFiller interface {
	// FillLessonContent generates and stores the missing content of a lesson
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns an error if any.
	FillLessonContent(ctx context.Context, lessonID int) error
}

// Handler processes content generation tasks
type Handler struct {
	content ContentFiller
	logger  *zap.Logger
}

// NewHandler creates a new task handler
func NewHandler(content ContentFiller, logger *zap.Logger) *Handler {
	return &Handler{
		content: content,
		logger:  logger,
	}
}

// Register adds the task handlers to mux
func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeGenerateLessonContent, h.HandleGenerateLessonContent)
}

// HandleGenerateLessonContent handles TypeGenerateLessonContent
func (h *Handler) HandleGenerateLessonContent(ctx context.Context, t *asynq.Task) error {
	var payload GenerateLessonContentPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to parse payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.LessonID <= 0 {
		return fmt.Errorf("invalid lesson id %d: %w", payload.LessonID, asynq.SkipRetry)
	}

	err := h.content.FillLessonContent(ctx, payload.LessonID)
	if errors.Is(err, apperrors.ErrLessonNotFound) {
		// lesson was deleted before the task ran
		h.logger.Warn("lesson not found, skipping content generation", zap.Int("lesson_id", payload.LessonID))
		return nil
	}
	if err != nil {
		h.logger.Error("content generation failed", zap.Int("lesson_id", payload.LessonID), zap.Error(err))
		return err
	}
	return nil
}
