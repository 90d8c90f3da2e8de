package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/argomobile/studio-api/internal/core/ports"
)

// DocumentHandler handles HTTP requests for project documents.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type createDocumentRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=document image audio code"`
	URL  string `json:"url"  validate:"required,url"`
}

// List returns a project's documents.
//
// @Summary      List project documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Project id"
// @Success      200  {array}   domain.Document
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	docs, err := h.service.ListDocuments(c.Request().Context(), p, projectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, docs)
}

// Create attaches a document to a project.
//
// @Summary      Attach a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Project id"
// @Param        body  body      createDocumentRequest  true  "Document details"
// @Success      201   {object}  domain.Document
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id}/documents [post]
func (h *DocumentHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.service.CreateDocument(c.Request().Context(), p, projectID, ports.CreateDocumentInput{
		Name: req.Name,
		Type: req.Type,
		URL:  req.URL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, doc)
}

// Delete removes a document.
//
// @Summary      Delete a document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Document id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteDocument(c.Request().Context(), p, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
