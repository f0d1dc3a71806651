package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

type CreateBlogPostInput struct {
	Title   string
	Content string
	Image   string
	Tags    []string
	Status  entity.BlogPostStatus
}

// UpdateBlogPostInput carries a partial update; nil fields are left alone.
type UpdateBlogPostInput struct {
	Title   *string
	Content *string
	Image   *string
	Tags    *[]string
	Status  *entity.BlogPostStatus
}

type BlogPostQuery struct {
	Page   int
	Limit  int
	Search string
	TagID  string
	// IncludeDrafts is set for authenticated admins only.
	IncludeDrafts bool
}

type BlogPostPage struct {
	Posts       []entity.BlogPost `json:"posts"`
	Total       int64             `json:"total"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

type IBlogPostUseCase interface {
	CreateBlogPost(ctx context.Context, input CreateBlogPostInput, authorID string) (*entity.BlogPost, error)
	GetBlogPosts(ctx context.Context, query BlogPostQuery) (*BlogPostPage, error)
	GetBlogPostByID(ctx context.Context, postID string) (*entity.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string, includeDrafts bool) (*entity.BlogPost, error)
	UpdateBlogPost(ctx context.Context, postID string, input UpdateBlogPostInput) (*entity.BlogPost, error)
	DeleteBlogPost(ctx context.Context, postID string) error
}
