package task

import (
	"context"
	"fmt"
	"log"

	domain "github.com/example/task-intake-demo/domain/task"
	"github.com/example/task-intake-demo/events"
	"github.com/go-monolith/mono"
)

// createTask handles the create-task service request. It is the single
// authoritative mutation path: validate first, mutate only on accept.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (CreateTaskResponse, error) {
	// The owner comes from the caller; the user module only confirms it
	// exists. An unknown owner is an internal fault, not a validation
	// outcome the submitter can fix.
	valid, err := m.ownerPort.ValidateOwner(ctx, req.OwnerID)
	if err != nil {
		return CreateTaskResponse{}, fmt.Errorf("failed to validate owner: %w", err)
	}
	if !valid {
		return CreateTaskResponse{}, fmt.Errorf("unknown owner: %d", req.OwnerID)
	}

	params, verr := domain.ValidateCreate(domain.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	})
	if verr != nil {
		// Rejected inputs never touch the store, so the identifier
		// counter is not consumed.
		return CreateTaskResponse{Rejection: verr}, nil
	}

	created := m.store.Create(params, req.OwnerID)

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    created.ID,
			OwnerID:   created.OwnerID,
			Title:     created.Title,
			Priority:  string(created.Priority),
			CreatedAt: created.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %d: %v", created.ID, err)
		}
	}

	return CreateTaskResponse{Task: created}, nil
}

// listTasks handles the list-tasks service request. Diagnostic only.
func (m *TaskModule) listTasks(_ context.Context, _ ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks := m.store.ListAll()
	return ListTasksResponse{
		Tasks: tasks,
		Total: len(tasks),
	}, nil
}
