// Package generator calls an OpenAI-compatible chat completions API to produce
// course outlines and lesson content and to grade assignment submissions.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/learnhowtocode/backend/internal/config"
	"github.com/learnhowtocode/backend/internal/models"
	"go.uber.org/zap"
)

// LessonContext describes the lesson content is generated for
type LessonContext struct {
	Topic             string
	ModuleName        string
	CourseName        string
	CourseDescription string
}

// Client is the content generator client
type Client struct {
	http     *resty.Client
	model    string
	language string
	logger   *zap.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type generatedQuestion struct {
	Question string `json:"question"`
	Options  []struct {
		Option    string `json:"option"`
		IsCorrect bool   `json:"is_correct"`
	} `json:"options"`
}

// New creates a generator client from configuration
func New(cfg config.GeneratorConfig, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:     httpClient,
		model:    cfg.Model,
		language: cfg.Language,
		logger:   logger,
	}
}

// GenerateIntroduction returns an HTML introduction for a lesson topic
func (c *Client) GenerateIntroduction(ctx context.Context, topic string) (string, error) {
	var out struct {
		Description string `json:"description"`
	}
	err := c.complete(ctx,
		"You are an educational content creator. Respond with a JSON object with a single key 'description' holding HTML content.",
		fmt.Sprintf("Write a structured introduction for a programming lesson on '%s'.", topic),
		&out,
	)
	if err != nil {
		return "", err
	}
	if out.Description == "" {
		return "", fmt.Errorf("generator returned an empty description")
	}
	return out.Description, nil
}

// GenerateQuiz returns single-choice questions for a lesson topic
func (c *Client) GenerateQuiz(ctx context.Context, topic string) ([]models.QuizQuestion, error) {
	var out struct {
		Questions []generatedQuestion `json:"questions"`
	}
	err := c.complete(ctx,
		"You are a quiz generator. Respond with a JSON object with key 'questions', a list of objects with 'question' and 'options'; each option has 'option' and 'is_correct'.",
		fmt.Sprintf("Generate a single-choice quiz with exactly 3 questions for a lesson on '%s'.", topic),
		&out,
	)
	if err != nil {
		return nil, err
	}
	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("generator returned no quiz questions")
	}
	return toQuizQuestions(out.Questions), nil
}

// GenerateAssignment returns HTML assignment instructions for a lesson topic
func (c *Client) GenerateAssignment(ctx context.Context, topic string) (string, error) {
	var out struct {
		Instruction string `json:"instruction"`
	}
	err := c.complete(ctx,
		"You are an educational content creator. Respond with a JSON object with a single key 'instruction' holding HTML assignment instructions without sample solutions.",
		fmt.Sprintf("Write a coding assignment for a lesson on '%s'.", topic),
		&out,
	)
	if err != nil {
		return "", err
	}
	if out.Instruction == "" {
		return "", fmt.Errorf("generator returned empty instructions")
	}
	return out.Instruction, nil
}

// GenerateLessonContent returns introduction, quiz and assignment of a lesson in one call
func (c *Client) GenerateLessonContent(ctx context.Context, lesson LessonContext) (*models.GeneratedContent, error) {
	var out struct {
		Description string              `json:"description"`
		Quiz        []generatedQuestion `json:"quiz"`
		Assignment  string              `json:"assignment"`
	}
	err := c.complete(ctx,
		"You are an educational content generator. Respond with a JSON object with keys 'description' (HTML), "+
			"'quiz' (3 questions, each with 'question' and 'options' of 'option' and 'is_correct') and 'assignment' (task text without code).",
		fmt.Sprintf("Generate content for the lesson '%s' in module '%s' of the course '%s' described as: '%s'.",
			lesson.Topic, lesson.ModuleName, lesson.CourseName, lesson.CourseDescription),
		&out,
	)
	if err != nil {
		return nil, err
	}

	return &models.GeneratedContent{
		Description: out.Description,
		Quiz:        toQuizQuestions(out.Quiz),
		Assignment:  out.Assignment,
	}, nil
}

// GenerateModules returns the names of three modules outlining a course
func (c *Client) GenerateModules(ctx context.Context, courseName, description string) ([]string, error) {
	var out struct {
		Modules []struct {
			Name string `json:"name"`
		} `json:"modules"`
	}
	err := c.complete(ctx,
		"You are a curriculum designer. Respond with a JSON object with key 'modules', a list of objects with a single key 'name'.",
		fmt.Sprintf("Split the course '%s' described as '%s' into exactly 3 modules ordered from basic to advanced.", courseName, description),
		&out,
	)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(out.Modules))
	for _, m := range out.Modules {
		if name := strings.TrimSpace(m.Name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("generator returned no modules")
	}
	return names, nil
}

// EvaluateAssignment grades submitted code against assignment instructions on a 0-100 scale
func (c *Client) EvaluateAssignment(ctx context.Context, instructions, userCode string) (*models.AssignmentEvaluation, error) {
	var out struct {
		Score   float64 `json:"assignment_score"`
		Message string  `json:"message"`
	}
	err := c.complete(ctx,
		"You are a programming teacher grading a student's solution. Respond with a JSON object with keys "+
			"'assignment_score' (number from 0 to 100) and 'message' (short feedback). Invalid code scores below 50.",
		fmt.Sprintf("Assignment:\n%s\n\nStudent code:\n%s", instructions, userCode),
		&out,
	)
	if err != nil {
		return nil, err
	}

	score := min(max(out.Score, 0), 100)
	return &models.AssignmentEvaluation{AssignmentScore: score, Message: out.Message}, nil
}

// complete sends one chat completion and decodes the JSON content of the first choice into out
func (c *Client) complete(ctx context.Context, system, user string, out any) error {
	var (
		result chatResponse
		failed apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: c.model,
			Messages: []chatMessage{
				{Role: "system", Content: system + " Use " + c.language + " for the response."},
				{Role: "user", Content: user},
			},
			ResponseFormat: map[string]string{"type": "json_object"},
		}).
		SetResult(&result).
		SetError(&failed).
		Post("/chat/completions")
	if err != nil {
		return fmt.Errorf("failed to call content generator: %w", err)
	}
	if resp.IsError() {
		c.logger.Warn("content generator rejected request",
			zap.Int("status", resp.StatusCode()),
			zap.String("error", failed.Error.Message),
		)
		return fmt.Errorf("content generator returned status %d: %s", resp.StatusCode(), failed.Error.Message)
	}
	if len(result.Choices) == 0 {
		return fmt.Errorf("content generator returned no choices")
	}

	content := result.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("content generator returned invalid JSON: %w", err)
	}
	return nil
}

func toQuizQuestions(generated []generatedQuestion) []models.QuizQuestion {
	questions := make([]models.QuizQuestion, 0, len(generated))
	for _, g := range generated {
		question := models.QuizQuestion{Question: g.Question, Options: make([]models.QuizOption, 0, len(g.Options))}
		for _, o := range g.Options {
			question.Options = append(question.Options, models.QuizOption{Option: o.Option, IsCorrect: o.IsCorrect})
		}
		questions = append(questions, question)
	}
	return questions
}
