package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	customErrors "github.com/taleom/taskboard/internal/domain/errors"
	"github.com/taleom/taskboard/internal/domain/model"
	"github.com/taleom/taskboard/internal/domain/repo"
	"gorm.io/gorm"
)

type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	res := r.db.WithContext(ctx).Create(&task)
	if err := res.Error; err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "CreateTask")
	}
	return task, nil
}

func (r *TaskRepo) GetTaskForUser(ctx context.Context, id, userID uuid.UUID) (model.Task, error) {
	var t model.Task
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&t)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Task{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "GetTaskForUser")
	}

	return t, nil
}

func (r *TaskRepo) SaveTask(ctx context.Context, task model.Task) (model.Task, error) {
	res := r.db.WithContext(ctx).Save(&task)
	if err := res.Error; err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "SaveTask")
	}
	return task, nil
}

// DeleteTaskForUser issues one conditional DELETE so a concurrent delete
// between check and mutate cannot cross user boundaries.
func (r *TaskRepo) DeleteTaskForUser(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{})
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteTaskForUser")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}

	return nil
}

func (r *TaskRepo) ListTasks(ctx context.Context, f repo.TaskFilter) ([]model.Task, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", f.UserID)
	if f.Completed != nil {
		q = q.Where("completed = ?", *f.Completed)
	}
	if f.Search != "" {
		q = q.Where("title LIKE ?", "%"+f.Search+"%")
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, customErrors.WrapInternal(err, "ListTasks count")
	}

	var tasks []model.Task
	err := q.Order("created_at DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, customErrors.WrapInternal(err, "ListTasks")
	}

	return tasks, total, nil
}
