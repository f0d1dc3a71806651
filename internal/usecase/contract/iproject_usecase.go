package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

type ProjectInput struct {
	Title       string
	Description string
	Image       string
	Tags        []string
	DemoLink    string
	CodeLink    string
	FigmaLink   string
	Featured    bool
	Order       int
}

type UpdateProjectInput struct {
	Title       *string
	Description *string
	Image       *string
	Tags        *[]string
	DemoLink    *string
	CodeLink    *string
	FigmaLink   *string
	Featured    *bool
	Order       *int
}

type ProjectQuery struct {
	Page     int
	Limit    int
	Featured *bool
	TagID    string
}

type ProjectPage struct {
	Projects    []entity.Project `json:"projects"`
	Total       int64            `json:"total"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

type IProjectUseCase interface {
	CreateProject(ctx context.Context, input ProjectInput) (*entity.Project, error)
	GetProjects(ctx context.Context, query ProjectQuery) (*ProjectPage, error)
	GetProject(ctx context.Context, projectID string) (*entity.Project, error)
	UpdateProject(ctx context.Context, projectID string, input UpdateProjectInput) (*entity.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
}
