package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/logger"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/validator"
	"github.com/mikiasgoitom/portfolio/internal/utils"
)

// fakeTagRepo mimics the Mongo tag collection, including the unique name
// index and the count > 0 guard on decrements.
type fakeTagRepo struct {
	mu          sync.Mutex
	tags        map[string]*entity.Tag
	countWrites int
	failList    bool
	// failIncrements makes the next n IncrementCounts calls fail.
	failIncrements int
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*entity.Tag)}
}

func (r *fakeTagRepo) CreateTag(ctx context.Context, tag *entity.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tags {
		if t.Name == tag.Name {
			return entity.ErrDuplicateTag
		}
	}
	cp := *tag
	r.tags[tag.ID] = &cp
	return nil
}

func (r *fakeTagRepo) GetTagByID(ctx context.Context, tagID string) (*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tags[tagID]
	if !ok {
		return nil, entity.ErrTagNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTagRepo) GetTagByName(ctx context.Context, name string) (*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tags {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, entity.ErrTagNotFound
}

func (r *fakeTagRepo) GetAllTags(ctx context.Context) ([]*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failList {
		return nil, errors.New("connection reset")
	}
	out := make([]*entity.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTagRepo) FindExistingIDs(ctx context.Context, tagIDs []string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, id := range tagIDs {
		if _, ok := r.tags[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *fakeTagRepo) IncrementCounts(ctx context.Context, tagIDs []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failIncrements > 0 {
		r.failIncrements--
		return 0, errors.New("write conflict")
	}
	r.countWrites++
	var n int64
	for _, id := range tagIDs {
		if t, ok := r.tags[id]; ok {
			t.Count++
			n++
		}
	}
	return n, nil
}

func (r *fakeTagRepo) DecrementCounts(ctx context.Context, tagIDs []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countWrites++
	var n int64
	for _, id := range tagIDs {
		if t, ok := r.tags[id]; ok && t.Count > 0 {
			t.Count--
			n++
		}
	}
	return n, nil
}

func (r *fakeTagRepo) SetCount(ctx context.Context, tagID string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tags[tagID]
	if !ok {
		return entity.ErrTagNotFound
	}
	t.Count = count
	return nil
}

func (r *fakeTagRepo) DeleteTag(ctx context.Context, tagID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tags[tagID]; !ok {
		return entity.ErrTagNotFound
	}
	delete(r.tags, tagID)
	return nil
}

func (r *fakeTagRepo) count(tagID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tags[tagID]; ok {
		return t.Count
	}
	return -1
}

func (r *fakeTagRepo) writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countWrites
}

// countRefs counts documents per tag the way the Mongo aggregation does.
func countRefs(tagLists [][]string) map[string]int64 {
	counts := make(map[string]int64)
	for _, tags := range tagLists {
		for _, id := range utils.UniqueTagIDs(tags) {
			counts[id]++
		}
	}
	return counts
}

type fakeBlogRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.BlogPost
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[string]*entity.BlogPost)}
}

func (r *fakeBlogRepo) CreateBlogPost(ctx context.Context, post *entity.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *post
	cp.Tags = append([]string(nil), post.Tags...)
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakeBlogRepo) GetBlogPostByID(ctx context.Context, postID string) (*entity.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok || p.IsDeleted {
		return nil, entity.ErrBlogPostNotFound
	}
	cp := *p
	cp.Tags = append([]string(nil), p.Tags...)
	return &cp, nil
}

func (r *fakeBlogRepo) GetBlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == slug && !p.IsDeleted {
			cp := *p
			return &cp, nil
		}
	}
	return nil, entity.ErrBlogPostNotFound
}

func (r *fakeBlogRepo) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBlogRepo) GetBlogPosts(ctx context.Context, opts *contract.BlogPostFilterOptions) ([]*entity.BlogPost, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.BlogPost
	for _, p := range r.posts {
		if p.IsDeleted {
			continue
		}
		if opts.Status != nil && p.Status != *opts.Status {
			continue
		}
		if opts.TagID != "" && !contains(p.Tags, opts.TagID) {
			continue
		}
		if opts.Search != "" && !strings.Contains(strings.ToLower(p.Title+" "+p.Content), strings.ToLower(opts.Search)) {
			continue
		}
		cp := *p
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := int64(len(matched))
	start := (opts.Page - 1) * opts.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + opts.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeBlogRepo) UpdateBlogPost(ctx context.Context, postID string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok || p.IsDeleted {
		return entity.ErrBlogPostNotFound
	}
	return applyBlogUpdates(p, updates)
}

func (r *fakeBlogRepo) UpdateBlogPostIfTags(ctx context.Context, postID string, currentTags []string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok || p.IsDeleted {
		return entity.ErrBlogPostNotFound
	}
	if !sameTags(p.Tags, currentTags) {
		return entity.ErrConcurrentUpdate
	}
	return applyBlogUpdates(p, updates)
}

func applyBlogUpdates(p *entity.BlogPost, updates map[string]interface{}) error {
	for k, v := range updates {
		switch k {
		case "title":
			p.Title = v.(string)
		case "slug":
			p.Slug = v.(string)
		case "content":
			p.Content = v.(string)
		case "reading_time":
			p.ReadingTime = v.(int)
		case "image":
			p.Image = v.(string)
		case "status":
			p.Status = v.(entity.BlogPostStatus)
		case "published_at":
			p.PublishedAt = v.(*time.Time)
		case "tags":
			p.Tags = append([]string(nil), v.([]string)...)
		default:
			return fmt.Errorf("unexpected update field %q", k)
		}
	}
	return nil
}

func (r *fakeBlogRepo) DeleteBlogPost(ctx context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok || p.IsDeleted {
		return entity.ErrBlogPostNotFound
	}
	p.IsDeleted = true
	return nil
}

func (r *fakeBlogRepo) CountByTag(ctx context.Context, tagID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.posts {
		if !p.IsDeleted && contains(p.Tags, tagID) {
			n++
		}
	}
	return n, nil
}

func (r *fakeBlogRepo) CountAllTags(ctx context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lists [][]string
	for _, p := range r.posts {
		if !p.IsDeleted {
			lists = append(lists, p.Tags)
		}
	}
	return countRefs(lists), nil
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project)}
}

func (r *fakeProjectRepo) CreateProject(ctx context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *project
	cp.Tags = append([]string(nil), project.Tags...)
	r.projects[project.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) GetProjectByID(ctx context.Context, projectID string) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[projectID]
	if !ok {
		return nil, entity.ErrProjectNotFound
	}
	cp := *p
	cp.Tags = append([]string(nil), p.Tags...)
	return &cp, nil
}

func (r *fakeProjectRepo) GetProjects(ctx context.Context, opts *contract.ProjectFilterOptions) ([]*entity.Project, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Project
	for _, p := range r.projects {
		if opts.Featured != nil && p.Featured != *opts.Featured {
			continue
		}
		if opts.TagID != "" && !contains(p.Tags, opts.TagID) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProjectRepo) UpdateProject(ctx context.Context, projectID string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[projectID]
	if !ok {
		return entity.ErrProjectNotFound
	}
	return applyProjectUpdates(p, updates)
}

func (r *fakeProjectRepo) UpdateProjectIfTags(ctx context.Context, projectID string, currentTags []string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[projectID]
	if !ok {
		return entity.ErrProjectNotFound
	}
	if !sameTags(p.Tags, currentTags) {
		return entity.ErrConcurrentUpdate
	}
	return applyProjectUpdates(p, updates)
}

func applyProjectUpdates(p *entity.Project, updates map[string]interface{}) error {
	for k, v := range updates {
		switch k {
		case "title":
			p.Title = v.(string)
		case "description":
			p.Description = v.(string)
		case "image":
			p.Image = v.(string)
		case "tags":
			p.Tags = append([]string(nil), v.([]string)...)
		case "featured":
			p.Featured = v.(bool)
		case "order":
			p.Order = v.(int)
		case "demo_link":
			p.DemoLink = v.(string)
		case "code_link":
			p.CodeLink = v.(string)
		case "figma_link":
			p.FigmaLink = v.(string)
		default:
			return fmt.Errorf("unexpected update field %q", k)
		}
	}
	return nil
}

func (r *fakeProjectRepo) DeleteProject(ctx context.Context, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[projectID]; !ok {
		return entity.ErrProjectNotFound
	}
	delete(r.projects, projectID)
	return nil
}

func (r *fakeProjectRepo) CountByTag(ctx context.Context, tagID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.projects {
		if contains(p.Tags, tagID) {
			n++
		}
	}
	return n, nil
}

func (r *fakeProjectRepo) CountAllTags(ctx context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lists [][]string
	for _, p := range r.projects {
		lists = append(lists, p.Tags)
	}
	return countRefs(lists), nil
}

// sameTags compares tag arrays the way an equality match on the field does.
func sameTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type directTx struct{}

func (directTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type seqUUID struct {
	n atomic.Int64
}

func (g *seqUUID) NewUUID() string {
	return fmt.Sprintf("id-%d", g.n.Add(1))
}

type fixedRandom struct{}

func (fixedRandom) RandomHex(n int) (string, error) {
	return strings.Repeat("ab", n), nil
}

type fakeConfig struct {
	maxUpload   int64
	notifyEmail string
}

func (c fakeConfig) GetAppBaseURL() string               { return "http://localhost:8080" }
func (c fakeConfig) GetAccessTokenExpiry() time.Duration { return time.Hour }
func (c fakeConfig) GetMaxUploadSize() int64             { return c.maxUpload }
func (c fakeConfig) GetNotifyEmail() string              { return c.notifyEmail }
func (c fakeConfig) GetCacheTTL() time.Duration          { return time.Minute }

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *fakeMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+"|"+subject)
	return m.err
}

type memStorage struct {
	files map[string][]byte
}

func (s *memStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[filename] = data
	return "/uploads/" + filename, nil
}

// tagFixture wires the tag store, reconciler and both content services over
// in-memory repositories.
type tagFixture struct {
	ids        *seqUUID
	tags       *fakeTagRepo
	blogs      *fakeBlogRepo
	projects   *fakeProjectRepo
	reconciler *TagReconciler
	tagUC      *TagUseCase
	blogUC     *BlogPostUseCase
	projectUC  *ProjectUseCase
}

func newTagFixture() *tagFixture {
	log := logger.NewNopLogger()
	ids := &seqUUID{}
	f := &tagFixture{
		ids:      ids,
		tags:     newFakeTagRepo(),
		blogs:    newFakeBlogRepo(),
		projects: newFakeProjectRepo(),
	}
	f.reconciler = NewTagReconciler(f.tags, log, f.blogs, f.projects)
	f.tagUC = NewTagUseCase(f.tags, f.reconciler, ids, log)
	f.blogUC = NewBlogPostUseCase(f.blogs, f.reconciler, directTx{}, ids, fixedRandom{}, log)
	f.projectUC = NewProjectUseCase(f.projects, f.reconciler, directTx{}, ids, validator.NewValidator(), log)
	return f
}

var (
	_ contract.ITagRepository      = (*fakeTagRepo)(nil)
	_ contract.IBlogPostRepository = (*fakeBlogRepo)(nil)
	_ contract.IProjectRepository  = (*fakeProjectRepo)(nil)
)
