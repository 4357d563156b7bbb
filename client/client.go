// Package client is the form-side collaborator of the task intake API. It
// runs the same rule set the server enforces before making any network
// call. That pre-check only shortens feedback latency: the server remains
// the trust boundary and re-validates everything, so a locally accepted
// input can still come back rejected (a due date can go stale in transit).
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	task "github.com/example/task-intake-demo/domain/task"
	"github.com/gofiber/fiber/v2"
)

const createPath = "/api/v1/internal/task"

// FormInput carries the fields a user typed into the creation form. Nil
// pointers mean the field was left empty.
type FormInput struct {
	Title       string
	Description *string
	DueDate     *string
	Priority    string
}

// Client submits task creation requests to the intake API.
type Client struct {
	BaseURL string
	Timeout time.Duration
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}

type createBody struct {
	Title       string  `json:"titulo"`
	Description *string `json:"descricao"`
	DueDate     *string `json:"data_vencimento"`
	Priority    string  `json:"prioridade"`
}

type successEnvelope struct {
	Success bool       `json:"success"`
	Data    *task.Task `json:"data"`
}

type errorEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Errors  []task.FieldError `json:"errors"`
}

// Create validates the input locally, submits it, and returns the created
// task. Rejections - local or authoritative - come back as
// *task.ValidationError; when the server rejects, its message and code win
// over anything the local pre-check produced.
func (c *Client) Create(ctx context.Context, in FormInput) (*task.Task, error) {
	if _, verr := task.ValidateCreate(task.CreateInput{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
	}); verr != nil {
		// Rejected before any network call.
		return nil, verr
	}

	agent := fiber.Post(c.BaseURL + createPath)
	agent.JSON(createBody{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
	})

	timeout := c.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("task creation request failed: %w", errs[0])
	}

	switch code {
	case fiber.StatusCreated:
		var env successEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("malformed success response: %w", err)
		}
		if env.Data == nil {
			return nil, fmt.Errorf("success response carried no task")
		}
		return env.Data, nil

	case fiber.StatusBadRequest:
		var env errorEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("malformed error response: %w", err)
		}
		verr := &task.ValidationError{
			Message: env.Message,
			Code:    env.Code,
			Fields:  env.Errors,
		}
		if len(env.Errors) > 0 {
			verr.Field = env.Errors[0].Field
		}
		return nil, verr

	default:
		return nil, fmt.Errorf("unexpected status %d from server", code)
	}
}
