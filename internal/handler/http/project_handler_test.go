package http_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/mikiasgoitom/portfolio/internal/handler/http"
	dto "github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/portfolio/internal/handler/http/mocks"
)

func setupProjectRouter(h *handler.ProjectHandler) *gin.Engine {
	r := gin.New()
	r.POST("/projects", h.CreateProject)
	r.GET("/projects", h.GetProjects)
	r.GET("/projects/:id", h.GetProject)
	r.PUT("/projects/:id", h.UpdateProject)
	r.DELETE("/projects/:id", h.DeleteProject)
	return r
}

func validProjectRequest() dto.ProjectRequest {
	return dto.ProjectRequest{
		Title:       "Portfolio",
		Description: "A personal portfolio site",
		Image:       "https://img.example.com/p.png",
		Tags:        []string{"tag-1"},
		CodeLink:    "https://github.com/example/portfolio",
	}
}

func TestCreateProjectHandler(t *testing.T) {
	r := setupProjectRouter(handler.NewProjectHandler(mocks.NewMockProjectUsecase()))

	w := doJSON(r, http.MethodPost, "/projects", validProjectRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Portfolio"`)
}

func TestCreateProjectHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *mocks.MockProjectUsecase)
		mutate   func(req *dto.ProjectRequest)
		wantCode int
		wantBody string
	}{
		{
			name:     "short description rejected by binding",
			mutate:   func(req *dto.ProjectRequest) { req.Description = "short" },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "non http link rejected by binding",
			mutate:   func(req *dto.ProjectRequest) { req.DemoLink = "ftp://example.com" },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown tag",
			setup:    func(m *mocks.MockProjectUsecase) { m.InvalidTagOnCreate = true },
			wantCode: http.StatusBadRequest,
			wantBody: "invalid tag reference",
		},
		{
			name:     "store failure hides the cause",
			setup:    func(m *mocks.MockProjectUsecase) { m.ShouldFailCreate = true },
			wantCode: http.StatusInternalServerError,
			wantBody: "Failed to create project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockProjectUsecase()
			if tt.setup != nil {
				tt.setup(mockUsecase)
			}
			req := validProjectRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			r := setupProjectRouter(handler.NewProjectHandler(mockUsecase))

			w := doJSON(r, http.MethodPost, "/projects", req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestGetProjectsHandler_Filters(t *testing.T) {
	mockUsecase := mocks.NewMockProjectUsecase()
	r := setupProjectRouter(handler.NewProjectHandler(mockUsecase))

	w := doJSON(r, http.MethodGet, "/projects?page=2&featured=true&tag=tag-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, mockUsecase.LastQuery.Page)
	assert.Equal(t, "tag-1", mockUsecase.LastQuery.TagID)
	require.NotNil(t, mockUsecase.LastQuery.Featured)
	assert.True(t, *mockUsecase.LastQuery.Featured)

	w = doJSON(r, http.MethodGet, "/projects?featured=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProjectHandler(t *testing.T) {
	mockUsecase := mocks.NewMockProjectUsecase()
	r := setupProjectRouter(handler.NewProjectHandler(mockUsecase))

	w := doJSON(r, http.MethodPut, "/projects/project-9", map[string]interface{}{
		"tags": []string{"tag-2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "project-9", mockUsecase.LastUpdateID)
	require.NotNil(t, mockUsecase.LastUpdate.Tags)
	assert.Equal(t, []string{"tag-2"}, *mockUsecase.LastUpdate.Tags)
	assert.Nil(t, mockUsecase.LastUpdate.Title)
}

func TestUpdateProjectHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *mocks.MockProjectUsecase)
		wantCode int
	}{
		{"missing project", func(m *mocks.MockProjectUsecase) { m.NotFound = true }, http.StatusNotFound},
		{"concurrent tag edit", func(m *mocks.MockProjectUsecase) { m.ConflictOnUpdate = true }, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockProjectUsecase()
			tt.setup(mockUsecase)
			r := setupProjectRouter(handler.NewProjectHandler(mockUsecase))

			w := doJSON(r, http.MethodPut, "/projects/project-1", map[string]interface{}{"tags": []string{}})
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestDeleteProjectHandler(t *testing.T) {
	mockUsecase := mocks.NewMockProjectUsecase()
	r := setupProjectRouter(handler.NewProjectHandler(mockUsecase))

	w := doJSON(r, http.MethodDelete, "/projects/project-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "project-1", mockUsecase.LastDeleteID)
	assert.Contains(t, w.Body.String(), "Project deleted successfully")

	mockUsecase.NotFound = true
	w = doJSON(r, http.MethodDelete, "/projects/project-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockUsecase.NotFound = false
	mockUsecase.ShouldFailDelete = true
	w = doJSON(r, http.MethodDelete, "/projects/project-1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to delete project")
}
