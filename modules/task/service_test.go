package task

import (
	"context"
	"testing"
	"time"

	domain "github.com/example/task-intake-demo/domain/task"
)

// mockOwnerPort is a mock implementation of the user module's port.
type mockOwnerPort struct {
	ownerID     int64
	validOwners map[int64]bool
}

func (m *mockOwnerPort) ResolveOwner(_ context.Context) (int64, error) {
	return m.ownerID, nil
}

func (m *mockOwnerPort) ValidateOwner(_ context.Context, ownerID int64) (bool, error) {
	return m.validOwners[ownerID], nil
}

func newTestModule() *TaskModule {
	return &TaskModule{
		store:     domain.NewStore(),
		ownerPort: &mockOwnerPort{ownerID: 1, validOwners: map[int64]bool{1: true}},
	}
}

func strPtr(s string) *string {
	return &s
}

func TestCreateTask_Success(t *testing.T) {
	m := newTestModule()

	// End-to-end example: minimal valid submission.
	resp, err := m.createTask(context.Background(), CreateTaskRequest{
		Title:    "Buy milk",
		Priority: "alta",
		OwnerID:  1,
	}, nil)
	if err != nil {
		t.Fatalf("createTask: %v", err)
	}
	if resp.Rejection != nil {
		t.Fatalf("unexpected rejection: %v", resp.Rejection)
	}

	created := resp.Task
	if created == nil {
		t.Fatal("no task in response")
	}
	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}
	if created.Status != domain.StatusPending {
		t.Errorf("status = %q, want %q", created.Status, domain.StatusPending)
	}
	if created.Description != nil {
		t.Errorf("description = %v, want nil", created.Description)
	}
	if created.CompletedAt != nil {
		t.Errorf("completedAt = %v, want nil", created.CompletedAt)
	}
	if created.Priority != domain.PriorityHigh {
		t.Errorf("priority = %q, want alta", created.Priority)
	}
	if m.store.Len() != 1 {
		t.Errorf("store size = %d, want 1", m.store.Len())
	}
}

func TestCreateTask_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateTaskRequest
		wantField string
		wantCode  string
	}{
		{
			name:      "title below minimum length",
			req:       CreateTaskRequest{Title: "ok", Priority: "alta", OwnerID: 1},
			wantField: "titulo",
			wantCode:  domain.CodeValidation,
		},
		{
			name:      "due date in the past",
			req:       CreateTaskRequest{Title: "Valid Title", DueDate: strPtr("2000-01-01"), Priority: "baixa", OwnerID: 1},
			wantField: "data_vencimento",
			wantCode:  domain.CodeInvalidDueDate,
		},
		{
			name:      "priority outside the closed set",
			req:       CreateTaskRequest{Title: "Valid Title", Priority: "urgente", OwnerID: 1},
			wantField: "prioridade",
			wantCode:  domain.CodeValidation,
		},
		{
			name:      "malformed due date",
			req:       CreateTaskRequest{Title: "Valid Title", DueDate: strPtr("31/12/2030"), Priority: "média", OwnerID: 1},
			wantField: "data_vencimento",
			wantCode:  domain.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModule()

			resp, err := m.createTask(context.Background(), tt.req, nil)
			if err != nil {
				t.Fatalf("createTask returned service error: %v", err)
			}
			if resp.Rejection == nil {
				t.Fatal("accepted, want rejection")
			}
			if resp.Task != nil {
				t.Error("rejection response carries a task")
			}
			if resp.Rejection.Field != tt.wantField {
				t.Errorf("field = %q, want %q", resp.Rejection.Field, tt.wantField)
			}
			if resp.Rejection.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Rejection.Code, tt.wantCode)
			}
			if m.store.Len() != 0 {
				t.Errorf("store size = %d after rejection, want 0", m.store.Len())
			}
		})
	}
}

func TestCreateTask_FailedAttemptDoesNotConsumeIdentifier(t *testing.T) {
	m := newTestModule()
	ctx := context.Background()

	first, err := m.createTask(ctx, CreateTaskRequest{Title: "First task", Priority: "alta", OwnerID: 1}, nil)
	if err != nil || first.Task == nil {
		t.Fatalf("first create failed: resp=%+v err=%v", first, err)
	}

	rejected, err := m.createTask(ctx, CreateTaskRequest{Title: "ok", Priority: "alta", OwnerID: 1}, nil)
	if err != nil {
		t.Fatalf("rejected create returned service error: %v", err)
	}
	if rejected.Rejection == nil {
		t.Fatal("expected rejection between the two successful creations")
	}

	second, err := m.createTask(ctx, CreateTaskRequest{Title: "Second task", Priority: "alta", OwnerID: 1}, nil)
	if err != nil || second.Task == nil {
		t.Fatalf("second create failed: resp=%+v err=%v", second, err)
	}

	if second.Task.ID != first.Task.ID+1 {
		t.Errorf("IDs = %d then %d, want consecutive", first.Task.ID, second.Task.ID)
	}
}

func TestCreateTask_NormalizesInput(t *testing.T) {
	m := newTestModule()
	due := time.Now().AddDate(0, 0, 7).Format(domain.DateLayout)

	resp, err := m.createTask(context.Background(), CreateTaskRequest{
		Title:       "  Plan sprint  ",
		Description: strPtr("   "),
		DueDate:     strPtr(due),
		Priority:    "média",
		OwnerID:     1,
	}, nil)
	if err != nil {
		t.Fatalf("createTask: %v", err)
	}
	if resp.Rejection != nil {
		t.Fatalf("unexpected rejection: %v", resp.Rejection)
	}

	created := resp.Task
	if created.Title != "Plan sprint" {
		t.Errorf("title = %q, want trimmed", created.Title)
	}
	if created.Description != nil {
		t.Errorf("whitespace description = %v, want nil", created.Description)
	}
	if created.DueDate == nil || created.DueDate.String() != due {
		t.Errorf("dueDate = %v, want %q", created.DueDate, due)
	}
}

func TestCreateTask_UnknownOwner(t *testing.T) {
	m := newTestModule()

	_, err := m.createTask(context.Background(), CreateTaskRequest{
		Title:    "Valid Title",
		Priority: "alta",
		OwnerID:  42,
	}, nil)
	if err == nil {
		t.Fatal("expected error for unknown owner")
	}
	if m.store.Len() != 0 {
		t.Errorf("store size = %d, want 0", m.store.Len())
	}
}

func TestListTasks_InsertionOrder(t *testing.T) {
	m := newTestModule()
	ctx := context.Background()

	titles := []string{"First task", "Second task", "Third task"}
	for _, title := range titles {
		if resp, err := m.createTask(ctx, CreateTaskRequest{Title: title, Priority: "baixa", OwnerID: 1}, nil); err != nil || resp.Task == nil {
			t.Fatalf("create %q failed: resp=%+v err=%v", title, resp, err)
		}
	}

	resp, err := m.listTasks(ctx, ListTasksRequest{}, nil)
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if resp.Total != len(titles) {
		t.Fatalf("total = %d, want %d", resp.Total, len(titles))
	}
	for i, task := range resp.Tasks {
		if task.Title != titles[i] {
			t.Errorf("position %d: title = %q, want %q", i, task.Title, titles[i])
		}
	}
}
