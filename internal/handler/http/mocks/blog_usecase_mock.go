package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// MockBlogPostUsecase is a mock implementation of IBlogPostUseCase
type MockBlogPostUsecase struct {
	ShouldFailCreate   bool
	InvalidTagOnCreate bool
	ShouldFailList     bool
	NotFound           bool

	MockPost entity.BlogPost

	// Recorded arguments
	LastQuery    usecasecontract.BlogPostQuery
	LastUpdateID string
	LastAuthorID string
	LastDrafts   bool
}

var _ usecasecontract.IBlogPostUseCase = (*MockBlogPostUsecase)(nil)

func NewMockBlogPostUsecase() *MockBlogPostUsecase {
	return &MockBlogPostUsecase{
		MockPost: entity.BlogPost{
			ID:     "post-1",
			Title:  "Hello World",
			Slug:   "hello-world",
			Status: entity.BlogPostStatusPublished,
			Tags:   []string{"tag-1"},
		},
	}
}

func (m *MockBlogPostUsecase) CreateBlogPost(ctx context.Context, input usecasecontract.CreateBlogPostInput, authorID string) (*entity.BlogPost, error) {
	m.LastAuthorID = authorID
	if m.ShouldFailCreate {
		return nil, errors.New("insert failed")
	}
	if m.InvalidTagOnCreate {
		return nil, entity.ErrInvalidTagReference
	}
	post := m.MockPost
	post.Title = input.Title
	post.AuthorID = authorID
	return &post, nil
}

func (m *MockBlogPostUsecase) GetBlogPosts(ctx context.Context, query usecasecontract.BlogPostQuery) (*usecasecontract.BlogPostPage, error) {
	m.LastQuery = query
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return &usecasecontract.BlogPostPage{
		Posts:       []entity.BlogPost{m.MockPost},
		Total:       1,
		TotalPages:  1,
		CurrentPage: 1,
	}, nil
}

func (m *MockBlogPostUsecase) GetBlogPostByID(ctx context.Context, postID string) (*entity.BlogPost, error) {
	if m.NotFound {
		return nil, entity.ErrBlogPostNotFound
	}
	return &m.MockPost, nil
}

func (m *MockBlogPostUsecase) GetBlogPostBySlug(ctx context.Context, slug string, includeDrafts bool) (*entity.BlogPost, error) {
	m.LastDrafts = includeDrafts
	if m.NotFound || slug != m.MockPost.Slug {
		return nil, entity.ErrBlogPostNotFound
	}
	return &m.MockPost, nil
}

func (m *MockBlogPostUsecase) UpdateBlogPost(ctx context.Context, postID string, input usecasecontract.UpdateBlogPostInput) (*entity.BlogPost, error) {
	m.LastUpdateID = postID
	if m.NotFound {
		return nil, entity.ErrBlogPostNotFound
	}
	post := m.MockPost
	if input.Title != nil {
		post.Title = *input.Title
	}
	return &post, nil
}

func (m *MockBlogPostUsecase) DeleteBlogPost(ctx context.Context, postID string) error {
	if m.NotFound {
		return entity.ErrBlogPostNotFound
	}
	return nil
}
