package contract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

// ProjectFilterOptions narrows a project listing.
type ProjectFilterOptions struct {
	Page     int
	PageSize int
	Featured *bool
	TagID    string
}

// IProjectRepository defines the interface for project persistence.
type IProjectRepository interface {
	ITagReferenceSource

	CreateProject(ctx context.Context, project *entity.Project) error
	GetProjectByID(ctx context.Context, projectID string) (*entity.Project, error)
	GetProjects(ctx context.Context, opts *ProjectFilterOptions) ([]*entity.Project, int64, error)
	UpdateProject(ctx context.Context, projectID string, updates map[string]interface{}) error
	UpdateProjectIfTags(ctx context.Context, projectID string, currentTags []string, updates map[string]interface{}) error
	DeleteProject(ctx context.Context, projectID string) error
}
