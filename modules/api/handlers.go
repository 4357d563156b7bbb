package api

import (
	"errors"
	"fmt"

	domain "github.com/example/task-intake-demo/domain/task"
	"github.com/example/task-intake-demo/modules/task"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)

	internal := app.Group("/api/v1/internal")
	internal.Post("/task", m.createTask)
	internal.Get("/tasks", m.listTasks)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// createTask handles POST /api/v1/internal/task. Field-level validation
// belongs to the task module; this handler only rejects bodies that fail to
// parse and maps outcomes onto the wire envelopes.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var body CreateTaskBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Message: "Corpo da requisição inválido",
			Code:    domain.CodeValidation,
		})
	}

	ownerID, err := m.ownerPort.ResolveOwner(c.Context())
	if err != nil {
		return fmt.Errorf("failed to resolve owner: %w", err)
	}

	created, err := m.taskPort.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
		Priority:    body.Priority,
		OwnerID:     ownerID,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Success: false,
				Message: verr.Message,
				Code:    verr.Code,
				Errors:  verr.Fields,
			})
		}
		// Anything else is unexpected; let the error handler answer 5xx.
		return fmt.Errorf("create task failed: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Success: true,
		Data:    created,
	})
}

// listTasks handles GET /api/v1/internal/tasks. Diagnostic listing in
// insertion order; not part of the user-facing contract.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	tasks, err := m.taskPort.ListTasks(c.Context())
	if err != nil {
		return fmt.Errorf("list tasks failed: %w", err)
	}

	return c.JSON(ListTasksResponse{
		Tasks: tasks,
		Total: len(tasks),
	})
}
