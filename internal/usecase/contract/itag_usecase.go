package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

// ITagUseCase is the tag store and deletion guard.
type ITagUseCase interface {
	CreateTag(ctx context.Context, name string) (*entity.Tag, error)
	GetTagByID(ctx context.Context, tagID string) (*entity.Tag, error)
	GetTagByName(ctx context.Context, name string) (*entity.Tag, error)
	// ListTags returns every tag with its live reference count.
	ListTags(ctx context.Context) ([]entity.Tag, error)
	UsageReport(ctx context.Context) ([]entity.TagUsage, error)
	DeleteTag(ctx context.Context, tagID string) error
	// RecountTags rewrites every drifted counter and returns how many changed.
	RecountTags(ctx context.Context) (int, error)
}

// ITagReconciler keeps stored tag counters in step with content writes.
type ITagReconciler interface {
	Validate(ctx context.Context, tagIDs []string) ([]string, error)
	OnCreate(ctx context.Context, tagIDs []string) error
	OnUpdate(ctx context.Context, entityID string, oldTagIDs, newTagIDs []string) error
	OnDelete(ctx context.Context, entityID string, tagIDs []string) error
	// LiveCount counts the live content items that reference tagID.
	LiveCount(ctx context.Context, tagID string) (int, error)
	LiveCounts(ctx context.Context) (map[string]int, error)
	RecountAll(ctx context.Context) (int, error)
	InvalidateTagList(ctx context.Context)
}
