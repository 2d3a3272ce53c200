package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taleom/taskboard/internal/app/auth/jwt"
	authsvc "github.com/taleom/taskboard/internal/app/auth/service"
	tasksvc "github.com/taleom/taskboard/internal/app/task/service"
	customErrors "github.com/taleom/taskboard/internal/domain/errors"
	"github.com/taleom/taskboard/internal/transport/rest/dto"
	"github.com/taleom/taskboard/internal/transport/rest/middleware"
)

type Handler struct {
	auth   authsvc.Service
	tasks  tasksvc.Service
	tokens jwt.TokenUtil
	log    *zap.Logger
}

func NewHandler(auth authsvc.Service, tasks tasksvc.Service, tokens jwt.TokenUtil, log *zap.Logger) *Handler {
	return &Handler{auth: auth, tasks: tasks, tokens: tokens, log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	auth := r.Group("/auth")
	auth.POST("/register", h.register)
	auth.POST("/login", h.login)
	auth.POST("/refresh", h.refresh)
	auth.POST("/logout", middleware.Authenticate(h.tokens), h.logout)

	tasks := r.Group("/tasks", middleware.Authenticate(h.tokens))
	tasks.GET("", h.listTasks)
	tasks.POST("", h.createTask)
	tasks.PUT("/:id", h.updateTask)
	tasks.PATCH("/:id/toggle", h.toggleTask)
	tasks.DELETE("/:id", h.deleteTask)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})
}

func (h *Handler) register(c *gin.Context) {
	var body dto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	if err := h.auth.Register(c.Request.Context(), body); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Registered successfully"})
}

func (h *Handler) login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokensResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *Handler) refresh(c *gin.Context) {
	var body dto.RefreshDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid input"})
		return
	}

	access, err := h.auth.Refresh(c.Request.Context(), body)
	if err != nil {
		// every refresh failure, malformed input included, reads as 401
		if customErrors.IsInvalidArgument(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokensResponse{AccessToken: access})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) listTasks(c *gin.Context) {
	var q dto.ListTasksQuery
	// unparsable pagination params fall back to their defaults
	_ = c.ShouldBindQuery(&q)

	page, err := h.tasks.List(c.Request.Context(), middleware.UserID(c), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) createTask(c *gin.Context) {
	var body dto.CreateTaskDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), middleware.UserID(c), body)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) updateTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}
	var body dto.UpdateTaskDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), middleware.UserID(c), taskID, body)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) toggleTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Toggle(c.Request.Context(), middleware.UserID(c), taskID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) deleteTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), middleware.UserID(c), taskID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// taskID parses the :id route param. A malformed id cannot name any task,
// so it reads as not found rather than a validation failure.
func (h *Handler) taskID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return uuid.Nil, false
	}
	return id, true
}

// handleError is the single translator from domain failures to HTTP
// responses; handlers stay free of status-code bookkeeping.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case customErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case customErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
	case customErrors.IsUserNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found. Please register first."})
	case customErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
	case customErrors.IsInvalidToken(err):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
	case customErrors.IsUnauthorized(err):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	case customErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
	default:
		h.log.Error("unhandled error", zap.Error(err),
			zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}
