package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// MockProjectUsecase is a mock implementation of IProjectUseCase
type MockProjectUsecase struct {
	ShouldFailCreate   bool
	InvalidTagOnCreate bool
	InvalidInput       bool
	NotFound           bool
	ConflictOnUpdate   bool
	ShouldFailDelete   bool

	MockProject entity.Project

	LastQuery    usecasecontract.ProjectQuery
	LastUpdateID string
	LastUpdate   usecasecontract.UpdateProjectInput
	LastDeleteID string
}

var _ usecasecontract.IProjectUseCase = (*MockProjectUsecase)(nil)

func NewMockProjectUsecase() *MockProjectUsecase {
	return &MockProjectUsecase{
		MockProject: entity.Project{
			ID:          "project-1",
			Title:       "Portfolio",
			Description: "A personal portfolio site",
			Image:       "https://img.example.com/p.png",
			Tags:        []string{"tag-1"},
		},
	}
}

func (m *MockProjectUsecase) CreateProject(ctx context.Context, input usecasecontract.ProjectInput) (*entity.Project, error) {
	if m.ShouldFailCreate {
		return nil, errors.New("insert failed")
	}
	if m.InvalidTagOnCreate {
		return nil, entity.ErrInvalidTagReference
	}
	if m.InvalidInput {
		return nil, entity.ErrInvalidInput
	}
	project := m.MockProject
	project.Title = input.Title
	project.Tags = input.Tags
	return &project, nil
}

func (m *MockProjectUsecase) GetProjects(ctx context.Context, query usecasecontract.ProjectQuery) (*usecasecontract.ProjectPage, error) {
	m.LastQuery = query
	return &usecasecontract.ProjectPage{
		Projects:    []entity.Project{m.MockProject},
		Total:       1,
		TotalPages:  1,
		CurrentPage: query.Page,
	}, nil
}

func (m *MockProjectUsecase) GetProject(ctx context.Context, projectID string) (*entity.Project, error) {
	if m.NotFound {
		return nil, entity.ErrProjectNotFound
	}
	project := m.MockProject
	project.ID = projectID
	return &project, nil
}

func (m *MockProjectUsecase) UpdateProject(ctx context.Context, projectID string, input usecasecontract.UpdateProjectInput) (*entity.Project, error) {
	m.LastUpdateID = projectID
	m.LastUpdate = input
	if m.NotFound {
		return nil, entity.ErrProjectNotFound
	}
	if m.ConflictOnUpdate {
		return nil, entity.ErrConcurrentUpdate
	}
	project := m.MockProject
	project.ID = projectID
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Tags != nil {
		project.Tags = *input.Tags
	}
	return &project, nil
}

func (m *MockProjectUsecase) DeleteProject(ctx context.Context, projectID string) error {
	m.LastDeleteID = projectID
	if m.NotFound {
		return entity.ErrProjectNotFound
	}
	if m.ShouldFailDelete {
		return errors.New("delete failed")
	}
	return nil
}
