package contract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

// ITagRepository defines the interface for tag data persistence.
// Count mutations are single atomic updates; callers never read-modify-write.
type ITagRepository interface {
	CreateTag(ctx context.Context, tag *entity.Tag) error
	GetTagByID(ctx context.Context, tagID string) (*entity.Tag, error)
	GetTagByName(ctx context.Context, name string) (*entity.Tag, error)
	GetAllTags(ctx context.Context) ([]*entity.Tag, error)
	// FindExistingIDs returns the subset of ids that belong to a stored tag.
	FindExistingIDs(ctx context.Context, tagIDs []string) ([]string, error)
	// IncrementCounts adds one to the count of every listed tag.
	IncrementCounts(ctx context.Context, tagIDs []string) (int64, error)
	// DecrementCounts subtracts one from every listed tag whose count is
	// above zero and returns how many tags were actually decremented.
	DecrementCounts(ctx context.Context, tagIDs []string) (int64, error)
	SetCount(ctx context.Context, tagID string, count int) error
	DeleteTag(ctx context.Context, tagID string) error
}

// ITagReferenceSource is implemented by every collection whose documents
// embed tag ids.
type ITagReferenceSource interface {
	// CountByTag returns how many live documents reference the tag.
	CountByTag(ctx context.Context, tagID string) (int64, error)
	// CountAllTags returns live reference counts keyed by tag id.
	CountAllTags(ctx context.Context) (map[string]int64, error)
}
