package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

const (
	projectTitleMinLength       = 3
	projectTitleMaxLength       = 100
	projectDescriptionMinLength = 10
	projectDescriptionMaxLength = 1000
)

// ProjectUseCase implements IProjectUseCase with the same tag protocol as
// blog posts. Deleting a project releases its tags.
type ProjectUseCase struct {
	projectRepo contract.IProjectRepository
	reconciler  usecasecontract.ITagReconciler
	tx          contract.ITxRunner
	uuidgen     contract.IUUIDGenerator
	validator   usecasecontract.IValidator
	logger      usecasecontract.IAppLogger
}

var _ usecasecontract.IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	projectRepo contract.IProjectRepository,
	reconciler usecasecontract.ITagReconciler,
	tx contract.ITxRunner,
	uuidgen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
		reconciler:  reconciler,
		tx:          tx,
		uuidgen:     uuidgen,
		validator:   validator,
		logger:      logger,
	}
}

func lengthBetween(field, value string, min, max int) error {
	n := len([]rune(value))
	if n < min || n > max {
		return fmt.Errorf("%w: %s must be between %d and %d characters", entity.ErrInvalidInput, field, min, max)
	}
	return nil
}

func (uc *ProjectUseCase) validateLinks(links ...string) error {
	for _, link := range links {
		if err := uc.validator.ValidateURL(link); err != nil {
			return fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
		}
	}
	return nil
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, input usecasecontract.ProjectInput) (*entity.Project, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if err := lengthBetween("title", title, projectTitleMinLength, projectTitleMaxLength); err != nil {
		return nil, err
	}
	if err := lengthBetween("description", description, projectDescriptionMinLength, projectDescriptionMaxLength); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Image) == "" {
		return nil, fmt.Errorf("%w: image is required", entity.ErrInvalidInput)
	}
	if err := uc.validateLinks(input.DemoLink, input.CodeLink, input.FigmaLink); err != nil {
		return nil, err
	}

	tags, err := uc.reconciler.Validate(ctx, input.Tags)
	if err != nil {
		return nil, err
	}

	project := &entity.Project{
		ID:          uc.uuidgen.NewUUID(),
		Title:       title,
		Description: description,
		Image:       strings.TrimSpace(input.Image),
		Tags:        tags,
		DemoLink:    input.DemoLink,
		CodeLink:    input.CodeLink,
		FigmaLink:   input.FigmaLink,
		Featured:    input.Featured,
		Order:       input.Order,
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.projectRepo.CreateProject(ctx, project); err != nil {
			return err
		}
		if err := uc.reconciler.OnCreate(ctx, project.Tags); err != nil {
			if delErr := uc.projectRepo.DeleteProject(ctx, project.ID); delErr != nil {
				uc.logger.Errorf("failed to withdraw project %s after tag error: %v", project.ID, delErr)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidTagReference) {
			return nil, err
		}
		uc.logger.Errorf("failed to create project: %v", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if len(project.Tags) > 0 {
		uc.reconciler.InvalidateTagList(ctx)
	}
	return project, nil
}

func (uc *ProjectUseCase) GetProjects(ctx context.Context, query usecasecontract.ProjectQuery) (*usecasecontract.ProjectPage, error) {
	page, limit := normalizePage(query.Page, query.Limit)
	projects, total, err := uc.projectRepo.GetProjects(ctx, &contract.ProjectFilterOptions{
		Page:     page,
		PageSize: limit,
		Featured: query.Featured,
		TagID:    query.TagID,
	})
	if err != nil {
		uc.logger.Errorf("failed to get projects: %v", err)
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	list := make([]entity.Project, 0, len(projects))
	for _, p := range projects {
		list = append(list, *p)
	}
	return &usecasecontract.ProjectPage{
		Projects:    list,
		Total:       total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
	}, nil
}

func (uc *ProjectUseCase) GetProject(ctx context.Context, projectID string) (*entity.Project, error) {
	return uc.projectRepo.GetProjectByID(ctx, projectID)
}

func (uc *ProjectUseCase) UpdateProject(ctx context.Context, projectID string, input usecasecontract.UpdateProjectInput) (*entity.Project, error) {
	project, err := uc.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := lengthBetween("title", title, projectTitleMinLength, projectTitleMaxLength); err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if err := lengthBetween("description", description, projectDescriptionMinLength, projectDescriptionMaxLength); err != nil {
			return nil, err
		}
		updates["description"] = description
	}
	if input.Image != nil {
		if strings.TrimSpace(*input.Image) == "" {
			return nil, fmt.Errorf("%w: image is required", entity.ErrInvalidInput)
		}
		updates["image"] = strings.TrimSpace(*input.Image)
	}
	links := map[string]*string{"demo_link": input.DemoLink, "code_link": input.CodeLink, "figma_link": input.FigmaLink}
	for field, link := range links {
		if link == nil {
			continue
		}
		if err := uc.validateLinks(*link); err != nil {
			return nil, err
		}
		updates[field] = *link
	}
	if input.Featured != nil {
		updates["featured"] = *input.Featured
	}
	if input.Order != nil {
		updates["order"] = *input.Order
	}

	var newTags []string
	if input.Tags != nil {
		newTags, err = uc.reconciler.Validate(ctx, *input.Tags)
		if err != nil {
			return nil, err
		}
		updates["tags"] = newTags
	}

	if len(updates) == 0 {
		return project, nil
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if input.Tags == nil {
			return uc.projectRepo.UpdateProject(ctx, projectID, updates)
		}
		if err := uc.projectRepo.UpdateProjectIfTags(ctx, projectID, project.Tags, updates); err != nil {
			return err
		}
		if err := uc.reconciler.OnUpdate(ctx, projectID, project.Tags, newTags); err != nil {
			uc.restoreProject(ctx, project, newTags, updates)
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidTagReference) || errors.Is(err, entity.ErrProjectNotFound) ||
			errors.Is(err, entity.ErrConcurrentUpdate) {
			return nil, err
		}
		uc.logger.Errorf("failed to update project %s: %v", projectID, err)
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if input.Tags != nil {
		uc.reconciler.InvalidateTagList(ctx)
	}
	return uc.projectRepo.GetProjectByID(ctx, projectID)
}

// restoreProject puts back the fields of an update whose tag counters
// could not be moved.
func (uc *ProjectUseCase) restoreProject(ctx context.Context, prev *entity.Project, writtenTags []string, updates map[string]interface{}) {
	restore := make(map[string]interface{}, len(updates))
	for field := range updates {
		switch field {
		case "title":
			restore[field] = prev.Title
		case "description":
			restore[field] = prev.Description
		case "image":
			restore[field] = prev.Image
		case "demo_link":
			restore[field] = prev.DemoLink
		case "code_link":
			restore[field] = prev.CodeLink
		case "figma_link":
			restore[field] = prev.FigmaLink
		case "featured":
			restore[field] = prev.Featured
		case "order":
			restore[field] = prev.Order
		case "tags":
			restore[field] = prev.Tags
		}
	}
	if err := uc.projectRepo.UpdateProjectIfTags(ctx, prev.ID, writtenTags, restore); err != nil {
		uc.logger.Errorf("failed to restore project %s after tag error: %v", prev.ID, err)
	}
}

func (uc *ProjectUseCase) DeleteProject(ctx context.Context, projectID string) error {
	project, err := uc.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		return err
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.projectRepo.DeleteProject(ctx, projectID); err != nil {
			return err
		}
		return uc.reconciler.OnDelete(ctx, projectID, project.Tags)
	})
	if err != nil {
		if errors.Is(err, entity.ErrProjectNotFound) {
			return err
		}
		uc.logger.Errorf("failed to delete project %s: %v", projectID, err)
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if len(project.Tags) > 0 {
		uc.reconciler.InvalidateTagList(ctx)
	}
	return nil
}
