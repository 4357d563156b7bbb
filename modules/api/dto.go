package api

import domain "github.com/example/task-intake-demo/domain/task"

// CreateTaskBody is the wire payload for task creation. The owner never
// comes from the wire; the API resolves it through the user module.
type CreateTaskBody struct {
	Title       string  `json:"titulo"`
	Description *string `json:"descricao"`
	DueDate     *string `json:"data_vencimento"`
	Priority    string  `json:"prioridade"`
}

// SuccessResponse is the envelope for successful operations.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the envelope for failed operations. Errors lists every
// violated rule when the failure is a rejection.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// ListTasksResponse is the HTTP response for the diagnostic task listing.
type ListTasksResponse struct {
	Tasks []*domain.Task `json:"tasks"`
	Total int            `json:"total"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
