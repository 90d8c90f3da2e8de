package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/argomobile/studio-api/internal/api/metrics"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

type createTaskRequest struct {
	Title        string     `json:"title"          validate:"required,min=3"`
	Description  string     `json:"description"    validate:"required,min=10"`
	Status       string     `json:"status"         validate:"required,oneof=pending in_progress done"`
	Priority     string     `json:"priority"       validate:"required,oneof=low medium high"`
	DueDate      *time.Time `json:"due_date"`
	AssignedToID *int64     `json:"assigned_to_id"`
}

type updateTaskRequest struct {
	Title        *string    `json:"title"          validate:"omitempty,min=3"`
	Description  *string    `json:"description"    validate:"omitempty,min=10"`
	Status       *string    `json:"status"         validate:"omitempty,oneof=pending in_progress done"`
	Priority     *string    `json:"priority"       validate:"omitempty,oneof=low medium high"`
	DueDate      *time.Time `json:"due_date"`
	AssignedToID *int64     `json:"assigned_to_id"`
}

// ListForProject returns every task in a project.
//
// @Summary      List project tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Project id"
// @Success      200  {array}   domain.Task
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/tasks [get]
func (h *TaskHandler) ListForProject(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	tasks, err := h.service.ListTasksForProject(c.Request().Context(), p, projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

// Create opens a task in a project.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Project id"
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id}/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.CreateTask(c.Request().Context(), p, projectID, ports.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusCreated, task)
}

// Update patches a task.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.UpdateTask(c.Request().Context(), p, id, ports.UpdateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// Delete removes a task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Task id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteTask(c.Request().Context(), p, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListAssignedToMe returns the caller's assignments across all projects.
//
// @Summary      List my assigned tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Task
// @Failure      401  {object}  errorResponse
// @Router       /api/tasks/assigned [get]
func (h *TaskHandler) ListAssignedToMe(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListTasksAssignedToMe(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}
