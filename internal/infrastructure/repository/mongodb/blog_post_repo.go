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

// BlogPostRepository represents the MongoDB implementation of IBlogPostRepository.
type BlogPostRepository struct {
	collection *mongo.Collection
}

var _ contract.IBlogPostRepository = (*BlogPostRepository)(nil)

func NewBlogPostRepository(db *mongo.Database) *BlogPostRepository {
	return &BlogPostRepository{
		collection: db.Collection("blog_posts"),
	}
}

// buildBlogPostFilter creates a BSON filter from BlogPostFilterOptions.
func buildBlogPostFilter(opts *contract.BlogPostFilterOptions) bson.M {
	filter := bson.M{"is_deleted": false}
	if opts.Status != nil {
		filter["status"] = *opts.Status
	}
	if opts.TagID != "" {
		filter["tags"] = opts.TagID
	}
	if opts.Search != "" {
		filter["$text"] = bson.M{"$search": opts.Search}
	}
	return filter
}

// CreateBlogPost inserts a new blog post record into the database.
func (r *BlogPostRepository) CreateBlogPost(ctx context.Context, post *entity.BlogPost) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// GetBlogPostByID retrieves a single non-deleted blog post.
func (r *BlogPostRepository) GetBlogPostByID(ctx context.Context, postID string) (*entity.BlogPost, error) {
	return r.findOne(ctx, bson.M{"_id": postID, "is_deleted": false})
}

// GetBlogPostBySlug retrieves a single non-deleted blog post by slug.
func (r *BlogPostRepository) GetBlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "is_deleted": false})
}

func (r *BlogPostRepository) findOne(ctx context.Context, filter bson.M) (*entity.BlogPost, error) {
	var post entity.BlogPost
	if err := r.collection.FindOne(ctx, filter).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}
	return &post, nil
}

// SlugExists checks the slug against every post, soft-deleted ones included,
// because the unique index covers them too.
func (r *BlogPostRepository) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return n > 0, nil
}

// GetBlogPosts retrieves a page of blog posts, newest first.
func (r *BlogPostRepository) GetBlogPosts(ctx context.Context, opts *contract.BlogPostFilterOptions) ([]*entity.BlogPost, int64, error) {
	filter := buildBlogPostFilter(opts)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total blog post count: %w", err)
	}

	skip, limit := paginate(opts.Page, opts.PageSize)
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*entity.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, total, nil
}

// UpdateBlogPost sets the provided fields.
func (r *BlogPostRepository) UpdateBlogPost(ctx context.Context, postID string, updates map[string]interface{}) error {
	matched, err := r.update(ctx, bson.M{"_id": postID, "is_deleted": false}, updates)
	if err != nil {
		return err
	}
	if matched == 0 {
		return entity.ErrBlogPostNotFound
	}
	return nil
}

// UpdateBlogPostIfTags sets the provided fields only while the stored tag
// array still equals currentTags.
func (r *BlogPostRepository) UpdateBlogPostIfTags(ctx context.Context, postID string, currentTags []string, updates map[string]interface{}) error {
	live := bson.M{"_id": postID, "is_deleted": false}
	filter := bson.M{"_id": postID, "is_deleted": false, "tags": tagsEqual(currentTags)}
	matched, err := r.update(ctx, filter, updates)
	if err != nil {
		return err
	}
	if matched > 0 {
		return nil
	}
	n, err := r.collection.CountDocuments(ctx, live)
	if err != nil {
		return fmt.Errorf("failed to check blog post: %w", err)
	}
	if n == 0 {
		return entity.ErrBlogPostNotFound
	}
	return entity.ErrConcurrentUpdate
}

func (r *BlogPostRepository) update(ctx context.Context, filter bson.M, updates map[string]interface{}) (int64, error) {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		if isDuplicateKey(err) {
			return 0, fmt.Errorf("slug already taken: %w", entity.ErrInvalidInput)
		}
		return 0, fmt.Errorf("failed to update blog post: %w", err)
	}
	return res.MatchedCount, nil
}

// DeleteBlogPost marks a blog post as deleted.
func (r *BlogPostRepository) DeleteBlogPost(ctx context.Context, postID string) error {
	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}}
	filter := bson.M{"_id": postID, "is_deleted": false}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrBlogPostNotFound
	}
	return nil
}

// CountByTag counts non-deleted posts referencing tagID.
func (r *BlogPostRepository) CountByTag(ctx context.Context, tagID string) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"tags": tagID, "is_deleted": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count blog posts by tag: %w", err)
	}
	return n, nil
}

// CountAllTags counts non-deleted posts per tag id.
func (r *BlogPostRepository) CountAllTags(ctx context.Context) (map[string]int64, error) {
	return countTagReferences(ctx, r.collection, bson.M{"is_deleted": false})
}
