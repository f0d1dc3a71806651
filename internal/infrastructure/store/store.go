package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

const (
	blogListKeyPrefix = "blog:list:"
	tagListKey        = "tags:list"
)

type BlogCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

var _ contract.IBlogCache = (*BlogCacheStore)(nil)

func NewBlogCacheStore(rdb *redis.Client, ttl time.Duration) *BlogCacheStore {
	return &BlogCacheStore{
		rdb:       rdb,
		detailTTL: 2 * ttl,
		listTTL:   ttl,
	}
}

func blogDetailKey(slug string) string { return fmt.Sprintf("blog:slug:%s", slug) }

// BlogListKey namespaces a usecase-built list key so InvalidateBlogPostLists can find it.
func BlogListKey(key string) string { return blogListKeyPrefix + key }

// getJSON reports found=false on a miss or on an undecodable entry.
func getJSON(ctx context.Context, rdb *redis.Client, key string, dst interface{}) (bool, error) {
	b, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func setJSON(ctx context.Context, rdb *redis.Client, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, data, ttl).Err()
}

func (c *BlogCacheStore) GetBlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, bool, error) {
	var post entity.BlogPost
	found, err := getJSON(ctx, c.rdb, blogDetailKey(slug), &post)
	if !found || err != nil {
		return nil, false, err
	}
	return &post, true, nil
}

func (c *BlogCacheStore) SetBlogPostBySlug(ctx context.Context, slug string, post *entity.BlogPost) error {
	return setJSON(ctx, c.rdb, blogDetailKey(slug), post, c.detailTTL)
}

func (c *BlogCacheStore) InvalidateBlogPostBySlug(ctx context.Context, slug string) error {
	return c.rdb.Del(ctx, blogDetailKey(slug)).Err()
}

func (c *BlogCacheStore) GetBlogPostsPage(ctx context.Context, key string) (*contract.CachedBlogPostsPage, bool, error) {
	var page contract.CachedBlogPostsPage
	found, err := getJSON(ctx, c.rdb, BlogListKey(key), &page)
	if !found || err != nil {
		return nil, false, err
	}
	return &page, true, nil
}

func (c *BlogCacheStore) SetBlogPostsPage(ctx context.Context, key string, page *contract.CachedBlogPostsPage) error {
	return setJSON(ctx, c.rdb, BlogListKey(key), page, c.listTTL)
}

// InvalidateBlogPostLists deletes every cached list page in batches.
func (c *BlogCacheStore) InvalidateBlogPostLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, blogListKeyPrefix+"*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// TagCacheStore caches the public tag listing.
type TagCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.ITagCache = (*TagCacheStore)(nil)

func NewTagCacheStore(rdb *redis.Client, ttl time.Duration) *TagCacheStore {
	return &TagCacheStore{rdb: rdb, ttl: ttl}
}

func (c *TagCacheStore) GetTagList(ctx context.Context) ([]entity.Tag, bool, error) {
	var tags []entity.Tag
	found, err := getJSON(ctx, c.rdb, tagListKey, &tags)
	if !found || err != nil {
		return nil, false, err
	}
	return tags, true, nil
}

func (c *TagCacheStore) SetTagList(ctx context.Context, tags []entity.Tag) error {
	return setJSON(ctx, c.rdb, tagListKey, tags, c.ttl)
}

func (c *TagCacheStore) InvalidateTagList(ctx context.Context) error {
	return c.rdb.Del(ctx, tagListKey).Err()
}
