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

// TagRepository represents the MongoDB implementation of the ITagRepository interface.
type TagRepository struct {
	collection *mongo.Collection
}

var _ contract.ITagRepository = (*TagRepository)(nil)

// NewTagRepository creates and returns a new TagRepository instance.
func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{
		collection: db.Collection("tags"),
	}
}

// CreateTag inserts a new tag record into the database.
func (r *TagRepository) CreateTag(ctx context.Context, tag *entity.Tag) error {
	now := time.Now()
	tag.CreatedAt = now
	tag.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, tag)
	if err != nil {
		if isDuplicateKey(err) {
			return entity.ErrDuplicateTag
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// GetTagByID retrieves a single tag by its unique ID.
func (r *TagRepository) GetTagByID(ctx context.Context, tagID string) (*entity.Tag, error) {
	return r.findOne(ctx, bson.M{"_id": tagID})
}

// GetTagByName retrieves a single tag by its (normalized) name.
func (r *TagRepository) GetTagByName(ctx context.Context, name string) (*entity.Tag, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *TagRepository) findOne(ctx context.Context, filter bson.M) (*entity.Tag, error) {
	var tag entity.Tag
	err := r.collection.FindOne(ctx, filter).Decode(&tag)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to retrieve tag: %w", err)
	}
	return &tag, nil
}

// GetAllTags retrieves all tags ordered by name.
func (r *TagRepository) GetAllTags(ctx context.Context) ([]*entity.Tag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tags: %w", err)
	}
	defer cursor.Close(ctx)

	var tags []*entity.Tag
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return tags, nil
}

// FindExistingIDs returns which of tagIDs exist.
func (r *TagRepository) FindExistingIDs(ctx context.Context, tagIDs []string) ([]string, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": tagIDs}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to look up tags: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode tag ids: %w", err)
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// IncrementCounts adds one to the counter of every listed tag in a single update.
func (r *TagRepository) IncrementCounts(ctx context.Context, tagIDs []string) (int64, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{"_id": bson.M{"$in": tagIDs}}
	update := bson.M{"$inc": bson.M{"count": 1}, "$set": bson.M{"updated_at": time.Now()}}

	res, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to increment tag counts: %w", err)
	}
	return res.ModifiedCount, nil
}

// DecrementCounts subtracts one from every listed tag whose count is above zero.
func (r *TagRepository) DecrementCounts(ctx context.Context, tagIDs []string) (int64, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{"_id": bson.M{"$in": tagIDs}, "count": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"count": -1}, "$set": bson.M{"updated_at": time.Now()}}

	res, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to decrement tag counts: %w", err)
	}
	return res.ModifiedCount, nil
}

// SetCount overwrites a tag counter. Only the full recount uses it.
func (r *TagRepository) SetCount(ctx context.Context, tagID string, count int) error {
	if count < 0 {
		count = 0
	}
	filter := bson.M{"_id": tagID}
	update := bson.M{"$set": bson.M{"count": count, "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set tag count: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrTagNotFound
	}
	return nil
}

// DeleteTag deletes a tag record by its ID.
func (r *TagRepository) DeleteTag(ctx context.Context, tagID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": tagID})
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if res.DeletedCount == 0 {
		return entity.ErrTagNotFound
	}
	return nil
}
