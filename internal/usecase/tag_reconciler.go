package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	"github.com/mikiasgoitom/portfolio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
	"github.com/mikiasgoitom/portfolio/internal/utils"
)

// TagReconciler keeps every tag's stored count equal to the number of live
// content items that reference it. Writers call it after persisting the
// entity; counters only ever move through single atomic $inc updates.
// The On* hooks leave the tag list cache alone so writers can drop it once
// their transaction has committed.
type TagReconciler struct {
	tagRepo  contract.ITagRepository
	sources  []contract.ITagReferenceSource
	logger   usecasecontract.IAppLogger
	tagCache contract.ITagCache
}

var _ usecasecontract.ITagReconciler = (*TagReconciler)(nil)

// NewTagReconciler takes every collection that embeds tag ids.
func NewTagReconciler(tagRepo contract.ITagRepository, logger usecasecontract.IAppLogger, sources ...contract.ITagReferenceSource) *TagReconciler {
	return &TagReconciler{
		tagRepo: tagRepo,
		sources: sources,
		logger:  logger,
	}
}

func (r *TagReconciler) SetTagCache(cache contract.ITagCache) {
	r.tagCache = cache
}

// Validate dedupes tagIDs and fails with ErrInvalidTagReference naming every
// id that does not resolve to a stored tag.
func (r *TagReconciler) Validate(ctx context.Context, tagIDs []string) ([]string, error) {
	unique := utils.UniqueTagIDs(tagIDs)
	if len(unique) == 0 {
		return unique, nil
	}
	existing, err := r.tagRepo.FindExistingIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to validate tags: %w", err)
	}
	if missing := utils.TagDifference(unique, existing); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidTagReference, strings.Join(missing, ", "))
	}
	return unique, nil
}

// OnCreate increments every tag of a newly created entity. Nothing is
// incremented when any id is unknown.
func (r *TagReconciler) OnCreate(ctx context.Context, tagIDs []string) error {
	unique, err := r.Validate(ctx, tagIDs)
	if err != nil {
		return err
	}
	if len(unique) == 0 {
		return nil
	}
	return r.increment(ctx, unique)
}

// OnUpdate applies the symmetric difference between the old and new tag sets.
// Added ids are validated before anything is written.
func (r *TagReconciler) OnUpdate(ctx context.Context, entityID string, oldTagIDs, newTagIDs []string) error {
	removed, added := utils.TagDiff(oldTagIDs, newTagIDs)
	if len(removed) == 0 && len(added) == 0 {
		return nil
	}
	if len(added) > 0 {
		if _, err := r.Validate(ctx, added); err != nil {
			return err
		}
	}
	if err := r.decrement(ctx, entityID, removed); err != nil {
		return err
	}
	if err := r.increment(ctx, added); err != nil {
		if len(removed) > 0 {
			if _, restoreErr := r.tagRepo.IncrementCounts(ctx, removed); restoreErr != nil {
				metrics.IncCountIntegrityWarning()
				r.logger.Errorf("CountIntegrityWarning: entity=%s failed to restore counts %v: %v", entityID, removed, restoreErr)
			}
		}
		return err
	}
	return nil
}

// OnDelete releases every tag held by a deleted entity.
func (r *TagReconciler) OnDelete(ctx context.Context, entityID string, tagIDs []string) error {
	unique := utils.UniqueTagIDs(tagIDs)
	if len(unique) == 0 {
		return nil
	}
	return r.decrement(ctx, entityID, unique)
}

func (r *TagReconciler) increment(ctx context.Context, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	n, err := r.tagRepo.IncrementCounts(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("failed to increment tag counts: %w", err)
	}
	metrics.AddTagCountUpdates("increment", int(n))
	if int(n) < len(tagIDs) {
		// a tag vanished between validation and the update
		metrics.IncCountIntegrityWarning()
		r.logger.Warningf("CountIntegrityWarning: incremented %d of %d tags %v", n, len(tagIDs), tagIDs)
	}
	return nil
}

// decrement never fails on a counter that is already zero: the guarded
// update skips it and the shortfall is reported as an integrity warning.
func (r *TagReconciler) decrement(ctx context.Context, entityID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	n, err := r.tagRepo.DecrementCounts(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("failed to decrement tag counts: %w", err)
	}
	metrics.AddTagCountUpdates("decrement", int(n))
	if skipped := len(tagIDs) - int(n); skipped > 0 {
		metrics.IncCountIntegrityWarning()
		r.logger.Warningf("CountIntegrityWarning: entity=%s %d of %d tag counters were already zero or missing %v", entityID, skipped, len(tagIDs), tagIDs)
	}
	return nil
}

// LiveCount counts the live content items referencing tagID across all sources.
func (r *TagReconciler) LiveCount(ctx context.Context, tagID string) (int, error) {
	total := 0
	for _, src := range r.sources {
		n, err := src.CountByTag(ctx, tagID)
		if err != nil {
			return 0, fmt.Errorf("failed to count tag references: %w", err)
		}
		total += int(n)
	}
	return total, nil
}

// LiveCounts returns live reference counts for every referenced tag.
func (r *TagReconciler) LiveCounts(ctx context.Context) (map[string]int, error) {
	totals := make(map[string]int)
	for _, src := range r.sources {
		counts, err := src.CountAllTags(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count tag references: %w", err)
		}
		for id, n := range counts {
			totals[id] += int(n)
		}
	}
	return totals, nil
}

// RecountAll rewrites every stored counter that disagrees with a full scan of
// the content collections and returns how many were corrected. Running it
// again without intervening writes changes nothing.
func (r *TagReconciler) RecountAll(ctx context.Context) (int, error) {
	live, err := r.LiveCounts(ctx)
	if err != nil {
		return 0, err
	}
	tags, err := r.tagRepo.GetAllTags(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list tags: %w", err)
	}

	corrected := 0
	for _, tag := range tags {
		want := live[tag.ID]
		if tag.Count == want {
			continue
		}
		if err := r.tagRepo.SetCount(ctx, tag.ID, want); err != nil {
			return corrected, fmt.Errorf("failed to correct tag %s: %w", tag.Name, err)
		}
		r.logger.Infof("recount: tag=%s stored=%d live=%d", tag.Name, tag.Count, want)
		corrected++
	}
	metrics.AddTagCountUpdates("set", corrected)
	metrics.AddRecountCorrections(corrected)
	if corrected > 0 {
		r.InvalidateTagList(ctx)
	}
	return corrected, nil
}

// InvalidateTagList drops the cached tag listing. Call it after the
// transaction holding the counter writes has committed.
func (r *TagReconciler) InvalidateTagList(ctx context.Context) {
	if r.tagCache == nil {
		return
	}
	if err := r.tagCache.InvalidateTagList(ctx); err != nil {
		r.logger.Warningf("cache error: invalidate tag list err=%v", err)
	}
}
