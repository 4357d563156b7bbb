package task

import "time"

// TaskStatus represents the lifecycle state of a task. Values are the wire
// literals the intake API has always used.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pendente"
	StatusCompleted TaskStatus = "concluída"
)

// Priority is the closed set of accepted priority levels. Matching is
// exact: no case folding, no aliases.
type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "média"
	PriorityLow    Priority = "baixa"
)

// Valid reports whether p is one of the three accepted values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task is the authoritative entity owned by the Store. ID, CreatedAt,
// Status and CompletedAt are assigned at creation and never accepted from
// a caller. Nullable columns serialize as explicit nulls, so no omitempty.
type Task struct {
	ID          int64      `json:"id_tarefa"`
	OwnerID     int64      `json:"id_usuario"`
	Title       string     `json:"titulo"`
	Description *string    `json:"descricao"`
	DueDate     *Date      `json:"data_vencimento"`
	Priority    Priority   `json:"prioridade"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"data_criacao"`
	CompletedAt *time.Time `json:"data_conclusao"`
}
