package contract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

// BlogPostFilterOptions narrows a blog post listing.
type BlogPostFilterOptions struct {
	Page     int
	PageSize int
	Search   string
	TagID    string
	Status   *entity.BlogPostStatus
}

// IBlogPostRepository defines the interface for blog post persistence.
type IBlogPostRepository interface {
	ITagReferenceSource

	CreateBlogPost(ctx context.Context, post *entity.BlogPost) error
	GetBlogPostByID(ctx context.Context, postID string) (*entity.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)
	GetBlogPosts(ctx context.Context, opts *BlogPostFilterOptions) ([]*entity.BlogPost, int64, error)
	UpdateBlogPost(ctx context.Context, postID string, updates map[string]interface{}) error
	// UpdateBlogPostIfTags applies updates only while the stored tags equal
	// currentTags, and returns entity.ErrConcurrentUpdate otherwise.
	UpdateBlogPostIfTags(ctx context.Context, postID string, currentTags []string, updates map[string]interface{}) error
	DeleteBlogPost(ctx context.Context, postID string) error
}
