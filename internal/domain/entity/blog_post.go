package entity

import "time"

// BlogPostStatus represents the publication state of a blog post
type BlogPostStatus string

const (
	BlogPostStatusDraft     BlogPostStatus = "draft"
	BlogPostStatusPublished BlogPostStatus = "published"
)

// BlogPost is a long-form article. Tags holds tag ids, never names.
type BlogPost struct {
	ID          string         `bson:"_id,omitempty" json:"_id"`
	Title       string         `bson:"title" json:"title"`
	Content     string         `bson:"content" json:"content"`
	Image       string         `bson:"image" json:"image"`
	ReadingTime int            `bson:"reading_time" json:"readingTime"`
	Tags        []string       `bson:"tags" json:"tags"`
	Status      BlogPostStatus `bson:"status" json:"status"`
	AuthorID    string         `bson:"author_id" json:"author_id"`
	Slug        string         `bson:"slug" json:"slug"`
	IsDeleted   bool           `bson:"is_deleted" json:"-"`
	CreatedAt   time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updated_at" json:"updatedAt"`
	PublishedAt *time.Time     `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
}

// IsPublished reports whether the post is visible to the public.
func (p *BlogPost) IsPublished() bool {
	return p.Status == BlogPostStatusPublished
}
