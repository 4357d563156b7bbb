package task

import (
	"context"

	domain "github.com/example/task-intake-demo/domain/task"
)

// CreateTaskRequest carries the raw candidate fields exactly as submitted,
// plus the acting owner's identifier supplied by the caller. Validation
// happens in the service handler, never here.
type CreateTaskRequest struct {
	Title       string  `json:"titulo"`
	Description *string `json:"descricao"`
	DueDate     *string `json:"data_vencimento"`
	Priority    string  `json:"prioridade"`
	OwnerID     int64   `json:"id_usuario"`
}

// CreateTaskResponse carries either the created entity or the rejection.
// Rejections travel as response data, not as service errors, so their
// structure (field, code, message list) survives the request-reply boundary
// intact.
type CreateTaskResponse struct {
	Task      *domain.Task            `json:"task,omitempty"`
	Rejection *domain.ValidationError `json:"rejection,omitempty"`
}

// ListTasksRequest is the request for listing all tasks.
type ListTasksRequest struct{}

// ListTasksResponse is the response for listing all tasks, in insertion
// order.
type ListTasksResponse struct {
	Tasks []*domain.Task `json:"tasks"`
	Total int            `json:"total"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// Driving adapters use it to reach the core domain. CreateTask returns
// *domain.ValidationError for rejected inputs; any other error is
// unexpected and should propagate to the generic error layer.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
}
