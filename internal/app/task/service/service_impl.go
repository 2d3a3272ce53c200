package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	customErrors "github.com/taleom/taskboard/internal/domain/errors"
	"github.com/taleom/taskboard/internal/domain/model"
	"github.com/taleom/taskboard/internal/domain/repo"
	"github.com/taleom/taskboard/internal/transport/rest/dto"
)

const (
	defaultPageSize = 5
	maxPageSize     = 50
)

type taskService struct {
	taskRepo repo.TaskRepo
	v        *validator.Validate
}

func New(tr repo.TaskRepo, v *validator.Validate) Service {
	return &taskService{taskRepo: tr, v: v}
}

func (s *taskService) List(ctx context.Context, userID uuid.UUID, q dto.ListTasksQuery) (dto.TaskPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	filter := repo.TaskFilter{
		UserID: userID,
		Search: q.Search,
		Offset: (page - 1) * size,
		Limit:  size,
	}
	// any status other than completed/pending means no completion filter
	switch q.Status {
	case "completed":
		completed := true
		filter.Completed = &completed
	case "pending":
		completed := false
		filter.Completed = &completed
	}

	tasks, total, err := s.taskRepo.ListTasks(ctx, filter)
	if err != nil {
		return dto.TaskPage{}, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	return dto.TaskPage{
		Meta: dto.TaskPageMeta{
			TotalTasks:  total,
			CurrentPage: page,
			PageSize:    size,
			TotalPages:  totalPages,
		},
		Data: tasks,
	}, nil
}

func (s *taskService) Create(ctx context.Context, userID uuid.UUID, in dto.CreateTaskDTO) (model.Task, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Task{}, customErrors.NewInvalidArgument(dto.FirstValidationMessage(err))
	}

	task := model.Task{
		ID:        uuid.New(),
		Title:     in.Title,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return s.taskRepo.CreateTask(ctx, task)
}

func (s *taskService) Update(ctx context.Context, userID, taskID uuid.UUID, in dto.UpdateTaskDTO) (model.Task, error) {
	task, err := s.taskRepo.GetTaskForUser(ctx, taskID, userID)
	if err != nil {
		return model.Task{}, err
	}

	// title is not re-validated on this path
	task.Title = in.Title
	return s.taskRepo.SaveTask(ctx, task)
}

func (s *taskService) Toggle(ctx context.Context, userID, taskID uuid.UUID) (model.Task, error) {
	task, err := s.taskRepo.GetTaskForUser(ctx, taskID, userID)
	if err != nil {
		return model.Task{}, err
	}

	task.Completed = !task.Completed
	return s.taskRepo.SaveTask(ctx, task)
}

func (s *taskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	return s.taskRepo.DeleteTaskForUser(ctx, taskID, userID)
}
