package service_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	tasksvc "github.com/taleom/taskboard/internal/app/task/service"
	customErrors "github.com/taleom/taskboard/internal/domain/errors"
	"github.com/taleom/taskboard/internal/domain/model"
	"github.com/taleom/taskboard/internal/domain/repo"
	"github.com/taleom/taskboard/internal/transport/rest/dto"
)

/* ──────────────────────────────── stub ──────────────────────────────── */

type taskRepoStub struct{ tasks map[uuid.UUID]model.Task }

func newTaskRepoStub() *taskRepoStub {
	return &taskRepoStub{tasks: make(map[uuid.UUID]model.Task)}
}

func (s *taskRepoStub) CreateTask(_ context.Context, t model.Task) (model.Task, error) {
	s.tasks[t.ID] = t
	return t, nil
}

func (s *taskRepoStub) GetTaskForUser(_ context.Context, id, userID uuid.UUID) (model.Task, error) {
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return model.Task{}, customErrors.ErrNotFound
	}
	return t, nil
}

func (s *taskRepoStub) SaveTask(_ context.Context, t model.Task) (model.Task, error) {
	s.tasks[t.ID] = t
	return t, nil
}

func (s *taskRepoStub) DeleteTaskForUser(_ context.Context, id, userID uuid.UUID) error {
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return customErrors.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *taskRepoStub) ListTasks(_ context.Context, f repo.TaskFilter) ([]model.Task, int64, error) {
	var matched []model.Task
	for _, t := range s.tasks {
		if t.UserID != f.UserID {
			continue
		}
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		if f.Search != "" && !strings.Contains(t.Title, f.Search) {
			continue
		}
		matched = append(matched, t)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[f.Offset:end], total, nil
}

/* ───────────────────────────── helpers ───────────────────────────── */

func newSvc() (tasksvc.Service, *taskRepoStub) {
	tr := newTaskRepoStub()
	return tasksvc.New(tr, validator.New()), tr
}

func seed(tr *taskRepoStub, userID uuid.UUID, n int, completed bool) {
	base := time.Now()
	for i := 0; i < n; i++ {
		id := uuid.New()
		tr.tasks[id] = model.Task{
			ID:        id,
			Title:     "task",
			Completed: completed,
			UserID:    userID,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
	}
}

/* ───────────────────────────── tests ───────────────────────────── */

func TestTaskService_CreateValidation(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Create(ctx, userID, dto.CreateTaskDTO{Title: ""})
	require.True(t, customErrors.IsInvalidArgument(err))
	require.Equal(t, "Title cannot be empty", err.Error())

	_, err = svc.Create(ctx, userID, dto.CreateTaskDTO{Title: strings.Repeat("a", 101)})
	require.True(t, customErrors.IsInvalidArgument(err))
	require.Equal(t, "Title cannot exceed 100 characters", err.Error())

	task, err := svc.Create(ctx, userID, dto.CreateTaskDTO{Title: strings.Repeat("a", 100)})
	require.NoError(t, err)
	require.False(t, task.Completed)
	require.Equal(t, userID, task.UserID)
}

func TestTaskService_UpdateSkipsTitleValidation(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.Create(ctx, userID, dto.CreateTaskDTO{Title: "Buy milk"})
	require.NoError(t, err)

	// the update path applies the title as-is, unlike create
	updated, err := svc.Update(ctx, userID, task.ID, dto.UpdateTaskDTO{Title: ""})
	require.NoError(t, err)
	require.Equal(t, "", updated.Title)

	long := strings.Repeat("b", 200)
	updated, err = svc.Update(ctx, userID, task.ID, dto.UpdateTaskDTO{Title: long})
	require.NoError(t, err)
	require.Equal(t, long, updated.Title)
}

func TestTaskService_Toggle(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.Create(ctx, userID, dto.CreateTaskDTO{Title: "Buy milk"})
	require.NoError(t, err)

	toggled, err := svc.Toggle(ctx, userID, task.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	toggled, err = svc.Toggle(ctx, userID, task.ID)
	require.NoError(t, err)
	require.False(t, toggled.Completed)
}

func TestTaskService_OwnershipHidden(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	task, err := svc.Create(ctx, owner, dto.CreateTaskDTO{Title: "secret"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, intruder, task.ID, dto.UpdateTaskDTO{Title: "stolen"})
	require.True(t, customErrors.IsNotFound(err))

	_, err = svc.Toggle(ctx, intruder, task.ID)
	require.True(t, customErrors.IsNotFound(err))

	err = svc.Delete(ctx, intruder, task.ID)
	require.True(t, customErrors.IsNotFound(err))

	// the owner still sees it untouched
	got, err := svc.Toggle(ctx, owner, task.ID)
	require.NoError(t, err)
	require.Equal(t, "secret", got.Title)
}

func TestTaskService_DeleteThenGone(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.Create(ctx, userID, dto.CreateTaskDTO{Title: "Buy milk"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userID, task.ID))

	_, err = svc.Toggle(ctx, userID, task.ID)
	require.True(t, customErrors.IsNotFound(err))
}

func TestTaskService_ListClampsPageSize(t *testing.T) {
	svc, tr := newSvc()
	ctx := context.Background()
	userID := uuid.New()
	seed(tr, userID, 60, false)

	page, err := svc.List(ctx, userID, dto.ListTasksQuery{Page: 1, PageSize: 1000})
	require.NoError(t, err)
	require.Equal(t, 50, page.Meta.PageSize)
	require.Len(t, page.Data, 50)
	require.EqualValues(t, 60, page.Meta.TotalTasks)
	require.Equal(t, 2, page.Meta.TotalPages)
}

func TestTaskService_ListDefaults(t *testing.T) {
	svc, tr := newSvc()
	ctx := context.Background()
	userID := uuid.New()
	seed(tr, userID, 7, false)

	page, err := svc.List(ctx, userID, dto.ListTasksQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, page.Meta.CurrentPage)
	require.Equal(t, 5, page.Meta.PageSize)
	require.Len(t, page.Data, 5)
	require.Equal(t, 2, page.Meta.TotalPages)
}

func TestTaskService_ListEmptyStillOnePage(t *testing.T) {
	svc, _ := newSvc()

	page, err := svc.List(context.Background(), uuid.New(), dto.ListTasksQuery{})
	require.NoError(t, err)
	require.NotNil(t, page.Data)
	require.Len(t, page.Data, 0)
	require.EqualValues(t, 0, page.Meta.TotalTasks)
	require.Equal(t, 1, page.Meta.TotalPages)
}

func TestTaskService_ListBeyondLastPage(t *testing.T) {
	svc, tr := newSvc()
	ctx := context.Background()
	userID := uuid.New()
	seed(tr, userID, 3, false)

	page, err := svc.List(ctx, userID, dto.ListTasksQuery{Page: 9, PageSize: 5})
	require.NoError(t, err)
	require.Len(t, page.Data, 0)
	require.EqualValues(t, 3, page.Meta.TotalTasks)
	require.Equal(t, 1, page.Meta.TotalPages)
	require.Equal(t, 9, page.Meta.CurrentPage)
}

func TestTaskService_ListStatusFilter(t *testing.T) {
	svc, tr := newSvc()
	ctx := context.Background()
	userID := uuid.New()
	seed(tr, userID, 4, false)
	seed(tr, userID, 2, true)

	done, err := svc.List(ctx, userID, dto.ListTasksQuery{Status: "completed"})
	require.NoError(t, err)
	require.EqualValues(t, 2, done.Meta.TotalTasks)

	pending, err := svc.List(ctx, userID, dto.ListTasksQuery{Status: "pending"})
	require.NoError(t, err)
	require.EqualValues(t, 4, pending.Meta.TotalTasks)

	// unknown status values apply no filter
	all, err := svc.List(ctx, userID, dto.ListTasksQuery{Status: "bogus"})
	require.NoError(t, err)
	require.EqualValues(t, 6, all.Meta.TotalTasks)
}
