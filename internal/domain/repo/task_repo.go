package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/taleom/taskboard/internal/domain/model"
)

// TaskFilter scopes every query to one owner. Completed is a tri-state:
// nil applies no completion filter.
type TaskFilter struct {
	UserID    uuid.UUID
	Completed *bool
	Search    string
	Offset    int
	Limit     int
}

type TaskRepo interface {
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)

	// GetTaskForUser returns ErrNotFound both for absent tasks and for
	// tasks owned by someone else.
	GetTaskForUser(ctx context.Context, id, userID uuid.UUID) (model.Task, error)

	SaveTask(ctx context.Context, t model.Task) (model.Task, error)

	// DeleteTaskForUser removes the task in a single owner-scoped
	// statement; ErrNotFound when nothing matched.
	DeleteTaskForUser(ctx context.Context, id, userID uuid.UUID) error

	// ListTasks returns the requested page newest-first plus the total
	// match count.
	ListTasks(ctx context.Context, f TaskFilter) ([]model.Task, int64, error)
}
