package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
	"github.com/mikiasgoitom/portfolio/internal/utils"
)

const (
	blogTitleMinLength = 3
	blogTitleMaxLength = 150
	defaultPageSize    = 10
	maxPageSize        = 100
)

// BlogPostUseCase implements IBlogPostUseCase. Every write that touches a
// post's tags goes through the tag reconciler inside one ITxRunner call.
type BlogPostUseCase struct {
	blogRepo   contract.IBlogPostRepository
	reconciler usecasecontract.ITagReconciler
	tx         contract.ITxRunner
	uuidgen    contract.IUUIDGenerator
	randgen    contract.IRandomGenerator
	logger     usecasecontract.IAppLogger
	blogCache  contract.IBlogCache
}

var _ usecasecontract.IBlogPostUseCase = (*BlogPostUseCase)(nil)

func NewBlogPostUseCase(
	blogRepo contract.IBlogPostRepository,
	reconciler usecasecontract.ITagReconciler,
	tx contract.ITxRunner,
	uuidgen contract.IUUIDGenerator,
	randgen contract.IRandomGenerator,
	logger usecasecontract.IAppLogger,
) *BlogPostUseCase {
	return &BlogPostUseCase{
		blogRepo:   blogRepo,
		reconciler: reconciler,
		tx:         tx,
		uuidgen:    uuidgen,
		randgen:    randgen,
		logger:     logger,
	}
}

// separate blog instance for blogCache injection
func (uc *BlogPostUseCase) SetBlogCache(cache contract.IBlogCache) {
	uc.blogCache = cache
}

func buildBlogPostsListCacheKey(q usecasecontract.BlogPostQuery) string {
	return fmt.Sprintf("p=%d:l=%d:q=%s:t=%s:d=%t", q.Page, q.Limit, q.Search, q.TagID, q.IncludeDrafts)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func validateBlogTitle(title string) error {
	n := len([]rune(title))
	if n < blogTitleMinLength || n > blogTitleMaxLength {
		return fmt.Errorf("%w: title must be between %d and %d characters", entity.ErrInvalidInput, blogTitleMinLength, blogTitleMaxLength)
	}
	return nil
}

func validateBlogStatus(status entity.BlogPostStatus) error {
	switch status {
	case entity.BlogPostStatusDraft, entity.BlogPostStatusPublished:
		return nil
	}
	return fmt.Errorf("%w: status must be draft or published", entity.ErrInvalidInput)
}

// uniqueSlug derives a slug from title and appends a short random suffix
// when another post already uses it.
func (uc *BlogPostUseCase) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "post"
	}
	taken, err := uc.blogRepo.SlugExists(ctx, base, excludeID)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	suffix, err := uc.randgen.RandomHex(4)
	if err != nil {
		return "", err
	}
	return base + "-" + suffix, nil
}

// CreateBlogPost validates the tags, stores the post and increments its tags.
func (uc *BlogPostUseCase) CreateBlogPost(ctx context.Context, input usecasecontract.CreateBlogPostInput, authorID string) (*entity.BlogPost, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateBlogTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", entity.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Image) == "" {
		return nil, fmt.Errorf("%w: image is required", entity.ErrInvalidInput)
	}
	status := input.Status
	if status == "" {
		status = entity.BlogPostStatusDraft
	}
	if err := validateBlogStatus(status); err != nil {
		return nil, err
	}

	tags, err := uc.reconciler.Validate(ctx, input.Tags)
	if err != nil {
		return nil, err
	}

	slug, err := uc.uniqueSlug(ctx, title, "")
	if err != nil {
		uc.logger.Errorf("failed to generate slug: %v", err)
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	post := &entity.BlogPost{
		ID:          uc.uuidgen.NewUUID(),
		Title:       title,
		Content:     input.Content,
		Image:       strings.TrimSpace(input.Image),
		ReadingTime: utils.ReadingTime(input.Content),
		Tags:        tags,
		Status:      status,
		AuthorID:    authorID,
		Slug:        slug,
	}
	if status == entity.BlogPostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.blogRepo.CreateBlogPost(ctx, post); err != nil {
			return err
		}
		if err := uc.reconciler.OnCreate(ctx, post.Tags); err != nil {
			// without a transaction the post is already stored; withdraw it
			if delErr := uc.blogRepo.DeleteBlogPost(ctx, post.ID); delErr != nil {
				uc.logger.Errorf("failed to withdraw blog post %s after tag error: %v", post.ID, delErr)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidTagReference) {
			return nil, err
		}
		uc.logger.Errorf("failed to create blog post: %v", err)
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	uc.invalidateLists(ctx)
	if len(post.Tags) > 0 {
		uc.reconciler.InvalidateTagList(ctx)
	}
	return post, nil
}

// GetBlogPosts returns a page of posts, newest first. Drafts are hidden unless requested.
func (uc *BlogPostUseCase) GetBlogPosts(ctx context.Context, query usecasecontract.BlogPostQuery) (*usecasecontract.BlogPostPage, error) {
	query.Page, query.Limit = normalizePage(query.Page, query.Limit)
	query.Search = strings.TrimSpace(query.Search)
	key := buildBlogPostsListCacheKey(query)

	if uc.blogCache != nil {
		t0 := time.Now()
		cached, found, err := uc.blogCache.GetBlogPostsPage(ctx, key)
		elapsed := time.Since(t0)
		if err == nil && found && cached != nil {
			metrics.IncListHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Infof("cache hit: blog list key=%s took=%s", key, elapsed)
			return &usecasecontract.BlogPostPage{
				Posts:       cached.Posts,
				Total:       cached.Total,
				TotalPages:  totalPages(cached.Total, query.Limit),
				CurrentPage: query.Page,
			}, nil
		} else if err == nil {
			metrics.IncListMiss()
			metrics.AddMissDuration(elapsed.Seconds())
			uc.logger.Infof("cache miss: blog list key=%s took=%s", key, elapsed)
		} else {
			uc.logger.Warningf("cache error: blog list key=%s err=%v took=%s", key, err, elapsed)
		}
	}

	opts := &contract.BlogPostFilterOptions{
		Page:     query.Page,
		PageSize: query.Limit,
		Search:   query.Search,
		TagID:    query.TagID,
	}
	if !query.IncludeDrafts {
		published := entity.BlogPostStatusPublished
		opts.Status = &published
	}

	dbStart := time.Now()
	posts, total, err := uc.blogRepo.GetBlogPosts(ctx, opts)
	if err != nil {
		uc.logger.Errorf("failed to get blog posts: %v", err)
		return nil, fmt.Errorf("failed to get blog posts: %w", err)
	}
	uc.logger.Debugf("db fetch: blog list page=%d limit=%d took=%s", query.Page, query.Limit, time.Since(dbStart))

	list := make([]entity.BlogPost, 0, len(posts))
	for _, p := range posts {
		list = append(list, *p)
	}

	if uc.blogCache != nil {
		if err := uc.blogCache.SetBlogPostsPage(ctx, key, &contract.CachedBlogPostsPage{Posts: list, Total: total}); err != nil {
			uc.logger.Warningf("cache error: set blog list key=%s err=%v", key, err)
		}
	}

	return &usecasecontract.BlogPostPage{
		Posts:       list,
		Total:       total,
		TotalPages:  totalPages(total, query.Limit),
		CurrentPage: query.Page,
	}, nil
}

func (uc *BlogPostUseCase) GetBlogPostByID(ctx context.Context, postID string) (*entity.BlogPost, error) {
	return uc.blogRepo.GetBlogPostByID(ctx, postID)
}

// GetBlogPostBySlug serves published posts from cache when possible.
// Drafts are only visible when includeDrafts is set.
func (uc *BlogPostUseCase) GetBlogPostBySlug(ctx context.Context, slug string, includeDrafts bool) (*entity.BlogPost, error) {
	if slug == "" {
		return nil, entity.ErrBlogPostNotFound
	}

	if uc.blogCache != nil {
		t0 := time.Now()
		cached, found, err := uc.blogCache.GetBlogPostBySlug(ctx, slug)
		elapsed := time.Since(t0)
		if err == nil && found && cached != nil {
			metrics.IncDetailHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Infof("cache hit: blog detail slug=%s took=%s", slug, elapsed)
			return cached, nil
		} else if err == nil {
			metrics.IncDetailMiss()
			metrics.AddMissDuration(elapsed.Seconds())
		} else {
			uc.logger.Warningf("cache error: blog detail slug=%s err=%v took=%s", slug, err, elapsed)
		}
	}

	post, err := uc.blogRepo.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished() {
		if !includeDrafts {
			return nil, entity.ErrBlogPostNotFound
		}
		return post, nil
	}

	if uc.blogCache != nil {
		if err := uc.blogCache.SetBlogPostBySlug(ctx, slug, post); err != nil {
			uc.logger.Warningf("cache error: set blog detail slug=%s err=%v", slug, err)
		}
	}
	return post, nil
}

// UpdateBlogPost applies a partial update. When Tags is set the reconciler
// moves counts from the removed tags to the added ones.
func (uc *BlogPostUseCase) UpdateBlogPost(ctx context.Context, postID string, input usecasecontract.UpdateBlogPostInput) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetBlogPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	oldSlug := post.Slug

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := validateBlogTitle(title); err != nil {
			return nil, err
		}
		if title != post.Title {
			slug, err := uc.uniqueSlug(ctx, title, postID)
			if err != nil {
				uc.logger.Errorf("failed to generate slug: %v", err)
				return nil, fmt.Errorf("failed to update blog post: %w", err)
			}
			updates["title"] = title
			updates["slug"] = slug
		}
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, fmt.Errorf("%w: content is required", entity.ErrInvalidInput)
		}
		updates["content"] = *input.Content
		updates["reading_time"] = utils.ReadingTime(*input.Content)
	}
	if input.Image != nil {
		if strings.TrimSpace(*input.Image) == "" {
			return nil, fmt.Errorf("%w: image is required", entity.ErrInvalidInput)
		}
		updates["image"] = strings.TrimSpace(*input.Image)
	}
	if input.Status != nil {
		if err := validateBlogStatus(*input.Status); err != nil {
			return nil, err
		}
		updates["status"] = *input.Status
		if *input.Status == entity.BlogPostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			updates["published_at"] = &now
		}
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
		return post, nil
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if input.Tags == nil {
			return uc.blogRepo.UpdateBlogPost(ctx, postID, updates)
		}
		// the tag guard makes concurrent tag edits of one post serialize
		if err := uc.blogRepo.UpdateBlogPostIfTags(ctx, postID, post.Tags, updates); err != nil {
			return err
		}
		if err := uc.reconciler.OnUpdate(ctx, postID, post.Tags, newTags); err != nil {
			uc.restoreBlogPost(ctx, post, newTags, updates)
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidTagReference) || errors.Is(err, entity.ErrBlogPostNotFound) ||
			errors.Is(err, entity.ErrInvalidInput) || errors.Is(err, entity.ErrConcurrentUpdate) {
			return nil, err
		}
		uc.logger.Errorf("failed to update blog post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	updated, err := uc.blogRepo.GetBlogPostByID(ctx, postID)
	if err != nil {
		uc.logger.Errorf("failed to get updated blog post: %v", err)
		return nil, fmt.Errorf("failed to get updated blog post: %w", err)
	}

	uc.invalidateLists(ctx)
	uc.invalidateSlug(ctx, oldSlug)
	if updated.Slug != oldSlug {
		uc.invalidateSlug(ctx, updated.Slug)
	}
	if input.Tags != nil {
		uc.reconciler.InvalidateTagList(ctx)
	}
	return updated, nil
}

// restoreBlogPost writes back the fields an update changed after the tag
// counters could not follow it. Without a transaction nothing else undoes
// the content write.
func (uc *BlogPostUseCase) restoreBlogPost(ctx context.Context, prev *entity.BlogPost, writtenTags []string, updates map[string]interface{}) {
	restore := make(map[string]interface{}, len(updates))
	for field := range updates {
		switch field {
		case "title":
			restore[field] = prev.Title
		case "slug":
			restore[field] = prev.Slug
		case "content":
			restore[field] = prev.Content
		case "reading_time":
			restore[field] = prev.ReadingTime
		case "image":
			restore[field] = prev.Image
		case "status":
			restore[field] = prev.Status
		case "published_at":
			restore[field] = prev.PublishedAt
		case "tags":
			restore[field] = prev.Tags
		}
	}
	if err := uc.blogRepo.UpdateBlogPostIfTags(ctx, prev.ID, writtenTags, restore); err != nil {
		uc.logger.Errorf("failed to restore blog post %s after tag error: %v", prev.ID, err)
	}
}

// DeleteBlogPost soft-deletes the post and releases its tags.
func (uc *BlogPostUseCase) DeleteBlogPost(ctx context.Context, postID string) error {
	post, err := uc.blogRepo.GetBlogPostByID(ctx, postID)
	if err != nil {
		return err
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.blogRepo.DeleteBlogPost(ctx, postID); err != nil {
			return err
		}
		return uc.reconciler.OnDelete(ctx, postID, post.Tags)
	})
	if err != nil {
		if errors.Is(err, entity.ErrBlogPostNotFound) {
			return err
		}
		uc.logger.Errorf("failed to delete blog post %s: %v", postID, err)
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	uc.invalidateLists(ctx)
	uc.invalidateSlug(ctx, post.Slug)
	if len(post.Tags) > 0 {
		uc.reconciler.InvalidateTagList(ctx)
	}
	return nil
}

func (uc *BlogPostUseCase) invalidateLists(ctx context.Context) {
	if uc.blogCache == nil {
		return
	}
	if err := uc.blogCache.InvalidateBlogPostLists(ctx); err != nil {
		uc.logger.Warningf("cache error: invalidate blog lists err=%v", err)
	}
}

func (uc *BlogPostUseCase) invalidateSlug(ctx context.Context, slug string) {
	if uc.blogCache == nil || slug == "" {
		return
	}
	if err := uc.blogCache.InvalidateBlogPostBySlug(ctx, slug); err != nil {
		uc.logger.Warningf("cache error: invalidate blog detail slug=%s err=%v", slug, err)
	}
}
