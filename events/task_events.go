package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskCreatedEvent is emitted after a task passes authoritative validation
// and is appended to the store.
type TaskCreatedEvent struct {
	TaskID    int64     `json:"id_tarefa"`
	OwnerID   int64     `json:"id_usuario"`
	Title     string    `json:"titulo"`
	Priority  string    `json:"prioridade"`
	CreatedAt time.Time `json:"data_criacao"`
}

// TaskCreatedV1 is the typed event definition for task creation.
// Subject: events.task.v1.task-created
var TaskCreatedV1 = helper.EventDefinition[TaskCreatedEvent](
	"task", "TaskCreated", "v1",
)
