package entity

import (
	"strings"
	"time"
)

const (
	TagNameMinLength = 2
	TagNameMaxLength = 30
)

// Tag is a label attachable to blog posts and projects.
// Count is the stored usage counter maintained by the tag reconciler.
type Tag struct {
	ID        string    `bson:"_id,omitempty" json:"_id"`
	Name      string    `bson:"name" json:"name"`
	Count     int       `bson:"count" json:"count"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TagUsage compares the stored counter of a tag with the number of
// content items that actually reference it.
type TagUsage struct {
	Tag    Tag `json:"tag"`
	Stored int `json:"stored"`
	Live   int `json:"live"`
}

// Drifted reports whether the stored counter disagrees with the live count.
func (u TagUsage) Drifted() bool {
	return u.Stored != u.Live
}

// NormalizeTagName trims and lowercases a tag name.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidTagName reports whether a normalized name is within the allowed length.
func ValidTagName(name string) bool {
	n := len([]rune(name))
	return n >= TagNameMinLength && n <= TagNameMaxLength
}
