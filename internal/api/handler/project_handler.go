package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/argomobile/studio-api/internal/api/metrics"
	"github.com/argomobile/studio-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for projects and membership.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Name        string     `json:"name"        validate:"required"`
	Description string     `json:"description" validate:"required"`
	Status      string     `json:"status"      validate:"required,oneof=in_progress completed paused"`
	StartDate   time.Time  `json:"start_date"  validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Thumbnail   *string    `json:"thumbnail"`
	Platform    string     `json:"platform"    validate:"required,oneof=ios android both"`
	Genre       string     `json:"genre"       validate:"required"`
}

type updateProjectRequest struct {
	Name        *string    `json:"name"        validate:"omitempty,min=1"`
	Description *string    `json:"description" validate:"omitempty,min=1"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=in_progress completed paused"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Thumbnail   *string    `json:"thumbnail"`
	Platform    *string    `json:"platform"    validate:"omitempty,oneof=ios android both"`
	Genre       *string    `json:"genre"       validate:"omitempty,min=1"`
}

type addMemberRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Role   string `json:"role"    validate:"required,oneof=designer programmer manager"`
}

// List returns every project visible to the caller.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Failure      401  {object}  errorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ListProjects(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projects)
}

// Create opens a new project owned by the caller.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.CreateProject(c.Request().Context(), p, ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Thumbnail:   req.Thumbnail,
		Platform:    req.Platform,
		Genre:       req.Genre,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(project.Platform).Inc()
	return c.JSON(http.StatusCreated, project)
}

// Get returns a single project.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.service.GetProject(c.Request().Context(), p, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

// Update patches a project.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.UpdateProject(c.Request().Context(), p, id, ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Thumbnail:   req.Thumbnail,
		Platform:    req.Platform,
		Genre:       req.Genre,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

// Delete removes a project. Pass ?cascade=true to also remove its members,
// tasks, comments, and documents.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id       path   int     true   "Project id"
// @Param        cascade  query  bool    false  "Also remove dependent records"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cascade := c.QueryParam("cascade") == "true"
	if err := h.service.DeleteProject(c.Request().Context(), p, id, cascade); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListMembers returns a project's membership with joined profiles.
//
// @Summary      List project members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Project id"
// @Success      200  {array}   ports.MemberWithUser
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/members [get]
func (h *ProjectHandler) ListMembers(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	members, err := h.service.ListMembers(c.Request().Context(), p, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, members)
}

// AddMember adds a user to a project.
//
// @Summary      Add a project member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Project id"
// @Param        body  body      addMemberRequest  true  "Member details"
// @Success      201   {object}  ports.MemberWithUser
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/projects/{id}/members [post]
func (h *ProjectHandler) AddMember(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.AddMember(c.Request().Context(), p, id, req.UserID, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, member)
}

// RemoveMember removes a user from a project.
//
// @Summary      Remove a project member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path  int  true  "Project id"
// @Param        userId     path  int  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/projects/{projectId}/members/{userId} [delete]
func (h *ProjectHandler) RemoveMember(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.service.RemoveMember(c.Request().Context(), p, projectID, userID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
