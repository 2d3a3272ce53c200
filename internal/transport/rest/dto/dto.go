package dto

import (
	"github.com/taleom/taskboard/internal/domain/model"
)

type RegisterDTO struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginDTO struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type CreateTaskDTO struct {
	Title string `json:"title" validate:"required,max=100"`
}

// UpdateTaskDTO deliberately carries no validate tags: title rewrites are
// applied as-is on the update path.
type UpdateTaskDTO struct {
	Title string `json:"title"`
}

type ListTasksQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	Status   string `form:"status"`
	Search   string `form:"search"`
}

type TaskPageMeta struct {
	TotalTasks  int64 `json:"totalTasks"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
}

type TaskPage struct {
	Meta TaskPageMeta `json:"meta"`
	Data []model.Task `json:"data"`
}

type TokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}
