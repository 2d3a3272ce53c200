package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/taleom/taskboard/internal/domain/model"
	"github.com/taleom/taskboard/internal/transport/rest/dto"
)

// Service scopes every operation to the authenticated owner. A task that
// exists but belongs to someone else is reported as not found.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, q dto.ListTasksQuery) (dto.TaskPage, error)

	Create(ctx context.Context, userID uuid.UUID, in dto.CreateTaskDTO) (model.Task, error)

	Update(ctx context.Context, userID, taskID uuid.UUID, in dto.UpdateTaskDTO) (model.Task, error)

	Toggle(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error)

	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}
