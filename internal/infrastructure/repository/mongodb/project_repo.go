package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProjectRepository represents the MongoDB implementation of IProjectRepository.
type ProjectRepository struct {
	collection *mongo.Collection
}

var _ contract.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{collection: db.Collection("projects")}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project *entity.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Tags == nil {
		project.Tags = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetProjectByID(ctx context.Context, projectID string) (*entity.Project, error) {
	var project entity.Project
	if err := r.collection.FindOne(ctx, bson.M{"_id": projectID}).Decode(&project); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to retrieve project: %w", err)
	}
	return &project, nil
}

// GetProjects lists projects featured first, then by order, then newest.
func (r *ProjectRepository) GetProjects(ctx context.Context, opts *contract.ProjectFilterOptions) ([]*entity.Project, int64, error) {
	filter := bson.M{}
	if opts.Featured != nil {
		filter["featured"] = *opts.Featured
	}
	if opts.TagID != "" {
		filter["tags"] = opts.TagID
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total project count: %w", err)
	}

	skip, limit := paginate(opts.Page, opts.PageSize)
	findOpts := options.Find().
		SetSort(bson.D{
			{Key: "featured", Value: -1},
			{Key: "order", Value: 1},
			{Key: "created_at", Value: -1},
		}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*entity.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, total, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, projectID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": projectID}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrProjectNotFound
	}
	return nil
}

// UpdateProjectIfTags is UpdateProject guarded on the stored tag array.
func (r *ProjectRepository) UpdateProjectIfTags(ctx context.Context, projectID string, currentTags []string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	filter := bson.M{"_id": projectID, "tags": tagsEqual(currentTags)}
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": projectID})
	if err != nil {
		return fmt.Errorf("failed to check project: %w", err)
	}
	if n == 0 {
		return entity.ErrProjectNotFound
	}
	return entity.ErrConcurrentUpdate
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": projectID})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) CountByTag(ctx context.Context, tagID string) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"tags": tagID})
	if err != nil {
		return 0, fmt.Errorf("failed to count projects by tag: %w", err)
	}
	return n, nil
}

func (r *ProjectRepository) CountAllTags(ctx context.Context) (map[string]int64, error) {
	return countTagReferences(ctx, r.collection, bson.M{})
}
