package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

type ProjectHandler struct {
	projectUsecase usecasecontract.IProjectUseCase
}

func NewProjectHandler(projectUsecase usecasecontract.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{projectUsecase: projectUsecase}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	project, err := h.projectUsecase.CreateProject(c.Request.Context(), req.ToInput())
	if err != nil {
		HandleUsecaseError(c, err, "Failed to create project")
		return
	}
	SuccessHandler(c, http.StatusCreated, project)
}

// GetProjects supports page, limit, featured and tag query params.
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	query := usecasecontract.ProjectQuery{Page: page, Limit: limit, TagID: c.Query("tag")}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Invalid featured flag")
			return
		}
		query.Featured = &featured
	}

	result, err := h.projectUsecase.GetProjects(c.Request.Context(), query)
	if err != nil {
		HandleUsecaseError(c, err, "Failed to retrieve projects")
		return
	}
	SuccessHandler(c, http.StatusOK, result)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectUsecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleUsecaseError(c, err, "Failed to retrieve project")
		return
	}
	SuccessHandler(c, http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	project, err := h.projectUsecase.UpdateProject(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		HandleUsecaseError(c, err, "Failed to update project")
		return
	}
	SuccessHandler(c, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectUsecase.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		HandleUsecaseError(c, err, "Failed to delete project")
		return
	}
	MessageHandler(c, http.StatusOK, "Project deleted successfully")
}
