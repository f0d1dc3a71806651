package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

func mustTag(t *testing.T, f *tagFixture, name string) *entity.Tag {
	t.Helper()
	tag, err := f.tagUC.CreateTag(context.Background(), name)
	require.NoError(t, err)
	return tag
}

func mustPost(t *testing.T, f *tagFixture, tags ...string) *entity.BlogPost {
	t.Helper()
	post, err := f.blogUC.CreateBlogPost(context.Background(), usecasecontract.CreateBlogPostInput{
		Title:   "A post about things",
		Content: "some words",
		Image:   "https://img.example.com/a.png",
		Tags:    tags,
		Status:  entity.BlogPostStatusPublished,
	}, "author-1")
	require.NoError(t, err)
	return post
}

func TestCreateTag(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes name and starts at zero", func(t *testing.T) {
		f := newTagFixture()
		tag, err := f.tagUC.CreateTag(ctx, "  React ")
		require.NoError(t, err)
		assert.Equal(t, "react", tag.Name)
		assert.Equal(t, 0, tag.Count)
	})

	t.Run("duplicate is case insensitive", func(t *testing.T) {
		f := newTagFixture()
		mustTag(t, f, "React")

		_, err := f.tagUC.CreateTag(ctx, "react")
		assert.ErrorIs(t, err, entity.ErrDuplicateTag)
		_, err = f.tagUC.CreateTag(ctx, " REACT ")
		assert.ErrorIs(t, err, entity.ErrDuplicateTag)

		tags, err := f.tagUC.ListTags(ctx)
		require.NoError(t, err)
		assert.Len(t, tags, 1)
	})

	t.Run("length bounds", func(t *testing.T) {
		f := newTagFixture()
		_, err := f.tagUC.CreateTag(ctx, "x")
		assert.ErrorIs(t, err, entity.ErrInvalidTagName)
		_, err = f.tagUC.CreateTag(ctx, "abcdefghijklmnopqrstuvwxyz12345")
		assert.ErrorIs(t, err, entity.ErrInvalidTagName)
		_, err = f.tagUC.CreateTag(ctx, "go")
		assert.NoError(t, err)
	})

	t.Run("concurrent creates of one name yield one tag", func(t *testing.T) {
		f := newTagFixture()
		var wg sync.WaitGroup
		var mu sync.Mutex
		created := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := f.tagUC.CreateTag(ctx, "Go"); err == nil {
					mu.Lock()
					created++
					mu.Unlock()
				} else {
					assert.ErrorIs(t, err, entity.ErrDuplicateTag)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, created)
	})
}

func TestGetTagByName_Normalizes(t *testing.T) {
	f := newTagFixture()
	created := mustTag(t, f, "golang")

	got, err := f.tagUC.GetTagByName(context.Background(), " GoLang ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.tagUC.GetTagByName(context.Background(), "rust")
	assert.ErrorIs(t, err, entity.ErrTagNotFound)
}

func TestDeleteTag_Guard(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	tag := mustTag(t, f, "go")
	other := mustTag(t, f, "rust")
	post := mustPost(t, f, tag.ID)

	err := f.tagUC.DeleteTag(ctx, tag.ID)
	var inUse *entity.TagInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, 1, inUse.Count)
	assert.ErrorIs(t, err, entity.ErrTagInUse)
	assert.Equal(t, "cannot delete tag as it is being used in 1 posts", err.Error())

	_, err = f.tagUC.GetTagByID(ctx, tag.ID)
	require.NoError(t, err, "guarded tag must survive")

	_, err = f.blogUC.UpdateBlogPost(ctx, post.ID, usecasecontract.UpdateBlogPostInput{Tags: &[]string{other.ID}})
	require.NoError(t, err)

	require.NoError(t, f.tagUC.DeleteTag(ctx, tag.ID))
	assert.ErrorIs(t, f.tagUC.DeleteTag(ctx, tag.ID), entity.ErrTagNotFound)
}

func TestDeleteTag_LiveCountWinsOverStoredCounter(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	tag := mustTag(t, f, "go")

	// stored counter drifted upward with no content referencing the tag
	require.NoError(t, f.tags.SetCount(ctx, tag.ID, 3))
	assert.NoError(t, f.tagUC.DeleteTag(ctx, tag.ID))

	tag = mustTag(t, f, "rust")
	post := mustPost(t, f, tag.ID)
	require.NoError(t, f.tags.SetCount(ctx, tag.ID, 0))
	err := f.tagUC.DeleteTag(ctx, tag.ID)
	assert.ErrorIs(t, err, entity.ErrTagInUse, "post %s still references the tag", post.ID)
}

func TestDeleteTag_CountsProjectsToo(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	tag := mustTag(t, f, "figma")
	_, err := f.projectUC.CreateProject(ctx, usecasecontract.ProjectInput{
		Title:       "Design system",
		Description: "A component library for the site",
		Image:       "https://img.example.com/p.png",
		Tags:        []string{tag.ID},
	})
	require.NoError(t, err)

	err = f.tagUC.DeleteTag(ctx, tag.ID)
	var inUse *entity.TagInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, 1, inUse.Count)
}

func TestListTags_ReportsLiveCounts(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	a := mustTag(t, f, "alpha")
	b := mustTag(t, f, "beta")
	mustPost(t, f, a.ID, b.ID)
	mustPost(t, f, a.ID)

	require.NoError(t, f.tags.SetCount(ctx, a.ID, 9))

	tags, err := f.tagUC.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "alpha", tags[0].Name)
	assert.Equal(t, 2, tags[0].Count)
	assert.Equal(t, 1, tags[1].Count)

	report, err := f.tagUC.UsageReport(ctx)
	require.NoError(t, err)
	assert.True(t, report[0].Drifted())
	assert.False(t, report[1].Drifted())
}

func TestListTags_StoreError(t *testing.T) {
	f := newTagFixture()
	f.tags.failList = true
	_, err := f.tagUC.ListTags(context.Background())
	assert.Error(t, err)
}

func TestRecountTags(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	a := mustTag(t, f, "alpha")
	b := mustTag(t, f, "beta")
	mustPost(t, f, a.ID)
	mustPost(t, f, a.ID, b.ID)

	require.NoError(t, f.tags.SetCount(ctx, a.ID, 0))
	require.NoError(t, f.tags.SetCount(ctx, b.ID, 7))

	n, err := f.tagUC.RecountTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, f.tags.count(a.ID))
	assert.Equal(t, 1, f.tags.count(b.ID))

	n, err = f.tagUC.RecountTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "a second recount finds nothing to fix")
}

// fakeTagCache records invalidations.
type fakeTagCache struct {
	mu          sync.Mutex
	tags        []entity.Tag
	found       bool
	invalidated int
}

func (c *fakeTagCache) GetTagList(ctx context.Context) ([]entity.Tag, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tags, c.found, nil
}

func (c *fakeTagCache) SetTagList(ctx context.Context, tags []entity.Tag) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags, c.found = tags, true
	return nil
}

func (c *fakeTagCache) InvalidateTagList(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags, c.found = nil, false
	c.invalidated++
	return nil
}

func TestListTags_CacheInvalidatedByContentWrites(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	cache := &fakeTagCache{}
	f.tagUC.SetTagCache(cache)
	f.reconciler.SetTagCache(cache)

	tag := mustTag(t, f, "go")
	tags, err := f.tagUC.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, tags[0].Count)
	assert.True(t, cache.found)

	mustPost(t, f, tag.ID)
	assert.False(t, cache.found, "tagging content must drop the cached listing")

	tags, err = f.tagUC.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, tags[0].Count)
}

// assertCountsMatchLive checks the stored counter of every tag against the
// live content references.
func assertCountsMatchLive(t *testing.T, f *tagFixture, step string) {
	t.Helper()
	report, err := f.tagUC.UsageReport(context.Background())
	require.NoError(t, err)
	for _, u := range report {
		assert.Equal(t, u.Live, u.Stored, "%s: tag %s", step, u.Tag.Name)
	}
}

func TestReconciler_InvariantHoldsOverRandomOperations(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	rng := rand.New(rand.NewSource(42))

	var tagIDs []string
	for _, name := range []string{"go", "rust", "react", "mongo", "design"} {
		tagIDs = append(tagIDs, mustTag(t, f, name).ID)
	}
	randomTags := func() []string {
		var out []string
		for _, id := range tagIDs {
			if rng.Intn(3) == 0 {
				out = append(out, id)
			}
		}
		if rng.Intn(5) == 0 && len(out) > 0 {
			out = append(out, out[0]) // duplicates in requests are tolerated
		}
		return out
	}

	var posts, projects []string
	for i := 0; i < 300; i++ {
		step := fmt.Sprintf("step %d", i)
		switch op := rng.Intn(6); {
		case op == 0 || len(posts) == 0:
			post, err := f.blogUC.CreateBlogPost(ctx, usecasecontract.CreateBlogPostInput{
				Title: fmt.Sprintf("Post number %d", i), Content: "body", Image: "img", Tags: randomTags(),
			}, "author")
			require.NoError(t, err, step)
			posts = append(posts, post.ID)
		case op == 1:
			id := posts[rng.Intn(len(posts))]
			tags := randomTags()
			_, err := f.blogUC.UpdateBlogPost(ctx, id, usecasecontract.UpdateBlogPostInput{Tags: &tags})
			require.NoError(t, err, step)
		case op == 2:
			idx := rng.Intn(len(posts))
			require.NoError(t, f.blogUC.DeleteBlogPost(ctx, posts[idx]), step)
			posts = append(posts[:idx], posts[idx+1:]...)
		case op == 3 || len(projects) == 0:
			p, err := f.projectUC.CreateProject(ctx, usecasecontract.ProjectInput{
				Title: fmt.Sprintf("Project %d", i), Description: "a long enough description", Image: "img", Tags: randomTags(),
			})
			require.NoError(t, err, step)
			projects = append(projects, p.ID)
		case op == 4:
			id := projects[rng.Intn(len(projects))]
			tags := randomTags()
			_, err := f.projectUC.UpdateProject(ctx, id, usecasecontract.UpdateProjectInput{Tags: &tags})
			require.NoError(t, err, step)
		default:
			idx := rng.Intn(len(projects))
			require.NoError(t, f.projectUC.DeleteProject(ctx, projects[idx]), step)
			projects = append(projects[:idx], projects[idx+1:]...)
		}
		assertCountsMatchLive(t, f, step)
	}
}

func TestReconciler_SameTagsUpdateIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	a := mustTag(t, f, "alpha")
	post := mustPost(t, f, a.ID)
	writes := f.tags.writes()

	for i := 0; i < 3; i++ {
		_, err := f.blogUC.UpdateBlogPost(ctx, post.ID, usecasecontract.UpdateBlogPostInput{Tags: &[]string{a.ID}})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, f.tags.count(a.ID))
	assert.Equal(t, writes, f.tags.writes(), "no counter writes for an unchanged tag set")
}

func TestReconciler_SymmetricDifference(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	a := mustTag(t, f, "alpha")
	b := mustTag(t, f, "beta")
	c := mustTag(t, f, "gamma")
	post := mustPost(t, f, a.ID, b.ID)

	_, err := f.blogUC.UpdateBlogPost(ctx, post.ID, usecasecontract.UpdateBlogPostInput{Tags: &[]string{b.ID, c.ID}})
	require.NoError(t, err)

	assert.Equal(t, 0, f.tags.count(a.ID))
	assert.Equal(t, 1, f.tags.count(b.ID))
	assert.Equal(t, 1, f.tags.count(c.ID))
}

func TestReconciler_DecrementFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	a := mustTag(t, f, "alpha")

	require.NoError(t, f.reconciler.OnDelete(ctx, "ghost-post", []string{a.ID}))
	assert.Equal(t, 0, f.tags.count(a.ID))

	require.NoError(t, f.reconciler.OnUpdate(ctx, "ghost-post", []string{a.ID}, nil))
	assert.Equal(t, 0, f.tags.count(a.ID))
}

func TestReconciler_ConcurrentCreatesCountEveryPost(t *testing.T) {
	f := newTagFixture()
	x := mustTag(t, f, "concurrency")

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.blogUC.CreateBlogPost(context.Background(), usecasecontract.CreateBlogPostInput{
				Title: "Parallel post", Content: "body", Image: "img", Tags: []string{x.ID},
			}, "author")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, n, f.tags.count(x.ID))
}

func TestReconciler_InvalidReferenceChangesNothing(t *testing.T) {
	ctx := context.Background()
	f := newTagFixture()
	a := mustTag(t, f, "alpha")

	_, err := f.blogUC.CreateBlogPost(ctx, usecasecontract.CreateBlogPostInput{
		Title: "Broken tags", Content: "body", Image: "img", Tags: []string{a.ID, "missing"},
	}, "author")
	assert.ErrorIs(t, err, entity.ErrInvalidTagReference)
	assert.Contains(t, err.Error(), "missing")
	assert.Equal(t, 0, f.tags.count(a.ID))
	assert.Empty(t, f.blogs.posts)

	post := mustPost(t, f, a.ID)
	_, err = f.blogUC.UpdateBlogPost(ctx, post.ID, usecasecontract.UpdateBlogPostInput{Tags: &[]string{"missing"}})
	assert.ErrorIs(t, err, entity.ErrInvalidTagReference)
	assert.Equal(t, 1, f.tags.count(a.ID))

	stored, err := f.blogUC.GetBlogPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, stored.Tags)

	assert.ErrorIs(t, f.reconciler.OnCreate(ctx, []string{"missing"}), entity.ErrInvalidTagReference)
}

func TestReconciler_DuplicateIDsCountOnce(t *testing.T) {
	f := newTagFixture()
	a := mustTag(t, f, "alpha")

	post := mustPost(t, f, a.ID, a.ID, a.ID)
	assert.Equal(t, []string{a.ID}, post.Tags)
	assert.Equal(t, 1, f.tags.count(a.ID))
}
