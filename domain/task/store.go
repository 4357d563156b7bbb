package task

import (
	"sync"
	"time"
)

// Store holds the authoritative collection of created tasks and mints
// identifiers. The identifier counter starts at 1 and is consumed only
// inside a successful Create, so a rejected attempt never burns a value.
// Both the counter increment and the append happen under one lock: no
// caller can observe a task with an assigned ID that is not yet in the
// collection.
type Store struct {
	mu     sync.Mutex
	tasks  []*Task
	nextID int64
}

// NewStore creates an empty store. State lives for the process lifetime;
// there is no persistence across restarts.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Create assigns identity and lifecycle fields to a validated input and
// appends the task to the collection. It has no failure mode of its own:
// every rejectable condition is caught by ValidateCreate before the
// counter is touched.
func (s *Store) Create(params *CreateParams, ownerID int64) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Task{
		ID:          s.nextID,
		OwnerID:     ownerID,
		Title:       params.Title,
		Description: params.Description,
		DueDate:     params.DueDate,
		Priority:    params.Priority,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
		CompletedAt: nil,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// ListAll returns the full collection in insertion order. Diagnostic aid
// for verification and testing, not part of the user-facing contract.
func (s *Store) ListAll() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len reports the number of stored tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
