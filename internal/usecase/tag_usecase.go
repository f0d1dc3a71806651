package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// TagUseCase is the tag store and its deletion guard.
type TagUseCase struct {
	tagRepo    contract.ITagRepository
	reconciler usecasecontract.ITagReconciler
	uuidgen    contract.IUUIDGenerator
	logger     usecasecontract.IAppLogger
	tagCache   contract.ITagCache
}

var _ usecasecontract.ITagUseCase = (*TagUseCase)(nil)

func NewTagUseCase(tagRepo contract.ITagRepository, reconciler usecasecontract.ITagReconciler, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *TagUseCase {
	return &TagUseCase{
		tagRepo:    tagRepo,
		reconciler: reconciler,
		uuidgen:    uuidgen,
		logger:     logger,
	}
}

func (uc *TagUseCase) SetTagCache(cache contract.ITagCache) {
	uc.tagCache = cache
}

// CreateTag stores a new tag with count 0. Names are compared after
// trimming and lowercasing, so "React" and "react" collide.
func (uc *TagUseCase) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	name = entity.NormalizeTagName(name)
	if !entity.ValidTagName(name) {
		return nil, entity.ErrInvalidTagName
	}

	// fast fail only; the unique index on name decides under concurrency
	_, err := uc.tagRepo.GetTagByName(ctx, name)
	if err == nil {
		return nil, entity.ErrDuplicateTag
	}
	if !errors.Is(err, entity.ErrTagNotFound) {
		uc.logger.Errorf("failed to check for existing tag: %v", err)
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	tag := &entity.Tag{
		ID:    uc.uuidgen.NewUUID(),
		Name:  name,
		Count: 0,
	}
	if err := uc.tagRepo.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, entity.ErrDuplicateTag) {
			return nil, err
		}
		uc.logger.Errorf("failed to create tag: %v", err)
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	uc.invalidate(ctx)
	return tag, nil
}

func (uc *TagUseCase) GetTagByID(ctx context.Context, tagID string) (*entity.Tag, error) {
	return uc.tagRepo.GetTagByID(ctx, tagID)
}

func (uc *TagUseCase) GetTagByName(ctx context.Context, name string) (*entity.Tag, error) {
	return uc.tagRepo.GetTagByName(ctx, entity.NormalizeTagName(name))
}

// ListTags returns every tag with Count set to its live reference count.
func (uc *TagUseCase) ListTags(ctx context.Context) ([]entity.Tag, error) {
	if uc.tagCache != nil {
		t0 := time.Now()
		cached, found, err := uc.tagCache.GetTagList(ctx)
		elapsed := time.Since(t0)
		switch {
		case err == nil && found:
			metrics.IncTagListHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Debugf("cache hit: tag list took=%s", elapsed)
			return cached, nil
		case err == nil:
			metrics.IncTagListMiss()
			metrics.AddMissDuration(elapsed.Seconds())
			uc.logger.Debugf("cache miss: tag list took=%s", elapsed)
		default:
			uc.logger.Warningf("cache error: tag list err=%v took=%s", err, elapsed)
		}
	}

	usage, err := uc.UsageReport(ctx)
	if err != nil {
		return nil, err
	}
	tags := make([]entity.Tag, 0, len(usage))
	for _, u := range usage {
		tag := u.Tag
		tag.Count = u.Live
		tags = append(tags, tag)
	}

	if uc.tagCache != nil {
		if err := uc.tagCache.SetTagList(ctx, tags); err != nil {
			uc.logger.Warningf("cache error: set tag list err=%v", err)
		}
	}
	return tags, nil
}

// UsageReport pairs each tag's stored counter with its live count.
func (uc *TagUseCase) UsageReport(ctx context.Context) ([]entity.TagUsage, error) {
	tags, err := uc.tagRepo.GetAllTags(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list tags: %v", err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	live, err := uc.reconciler.LiveCounts(ctx)
	if err != nil {
		uc.logger.Errorf("failed to count tag usage: %v", err)
		return nil, err
	}

	report := make([]entity.TagUsage, 0, len(tags))
	for _, tag := range tags {
		u := entity.TagUsage{Tag: *tag, Stored: tag.Count, Live: live[tag.ID]}
		if u.Drifted() {
			uc.logger.Debugf("tag %s drifted: stored=%d live=%d", tag.Name, u.Stored, u.Live)
		}
		report = append(report, u)
	}
	return report, nil
}

// DeleteTag removes a tag only when no live content references it. The live
// count decides; a disagreeing stored counter is reported as drift.
//
// A post created between the count and the delete can still reference the
// removed tag; RecountTags and the tag listing ignore such dangling ids.
func (uc *TagUseCase) DeleteTag(ctx context.Context, tagID string) error {
	tag, err := uc.tagRepo.GetTagByID(ctx, tagID)
	if err != nil {
		return err
	}

	live, err := uc.reconciler.LiveCount(ctx, tagID)
	if err != nil {
		uc.logger.Errorf("failed to count references of tag %s: %v", tagID, err)
		return err
	}
	if live != tag.Count {
		metrics.IncCountIntegrityWarning()
		uc.logger.Warningf("CountIntegrityWarning: tag=%s stored=%d live=%d", tag.Name, tag.Count, live)
	}
	if live > 0 {
		return &entity.TagInUseError{TagID: tagID, Count: live}
	}

	if err := uc.tagRepo.DeleteTag(ctx, tagID); err != nil {
		if errors.Is(err, entity.ErrTagNotFound) {
			return err
		}
		uc.logger.Errorf("failed to delete tag %s: %v", tagID, err)
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	uc.logger.Infof("tag deleted: id=%s name=%s", tagID, tag.Name)
	uc.invalidate(ctx)
	return nil
}

// RecountTags runs a full reconciliation of stored counters.
func (uc *TagUseCase) RecountTags(ctx context.Context) (int, error) {
	n, err := uc.reconciler.RecountAll(ctx)
	if err != nil {
		uc.logger.Errorf("tag recount failed: %v", err)
		return n, err
	}
	uc.logger.Infof("tag recount finished: corrected=%d", n)
	return n, nil
}

func (uc *TagUseCase) invalidate(ctx context.Context) {
	if uc.tagCache == nil {
		return
	}
	if err := uc.tagCache.InvalidateTagList(ctx); err != nil {
		uc.logger.Warningf("cache error: invalidate tag list err=%v", err)
	}
}
