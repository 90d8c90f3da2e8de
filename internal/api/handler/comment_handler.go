package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/argomobile/studio-api/internal/api/metrics"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for task comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// List returns a task's comments in posting order.
//
// @Summary      List task comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Task id"
// @Success      200  {array}   ports.CommentWithAuthor
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tasks/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	taskID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.service.ListComments(c.Request().Context(), p, taskID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, comments)
}

// Add posts a comment on a task.
//
// @Summary      Comment on a task
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Task id"
// @Param        body  body      addCommentRequest  true  "Comment body"
// @Success      201   {object}  ports.CommentWithAuthor
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/tasks/{id}/comments [post]
func (h *CommentHandler) Add(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	taskID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), p, taskID, req.Content)
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}
