package contract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

// CachedBlogPostsPage is the cached payload for list endpoints.
type CachedBlogPostsPage struct {
	Posts []entity.BlogPost `json:"posts"`
	Total int64             `json:"total"`
}

// IBlogCache defines caching operations for blog posts.
type IBlogCache interface {
	// Detail (by slug)
	GetBlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, bool, error)
	SetBlogPostBySlug(ctx context.Context, slug string, post *entity.BlogPost) error
	InvalidateBlogPostBySlug(ctx context.Context, slug string) error

	// List pages (key built by usecase)
	GetBlogPostsPage(ctx context.Context, key string) (*CachedBlogPostsPage, bool, error)
	SetBlogPostsPage(ctx context.Context, key string, page *CachedBlogPostsPage) error
	InvalidateBlogPostLists(ctx context.Context) error
}

// ITagCache caches the tag listing with live counts.
type ITagCache interface {
	GetTagList(ctx context.Context) ([]entity.Tag, bool, error)
	SetTagList(ctx context.Context, tags []entity.Tag) error
	InvalidateTagList(ctx context.Context) error
}
