package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

type HeroUseCase struct {
	heroRepo contract.IHeroRepository
	logger   usecasecontract.IAppLogger
}

var _ usecasecontract.IHeroUseCase = (*HeroUseCase)(nil)

func NewHeroUseCase(heroRepo contract.IHeroRepository, logger usecasecontract.IAppLogger) *HeroUseCase {
	return &HeroUseCase{heroRepo: heroRepo, logger: logger}
}

// GetHero returns the saved hero section, or the defaults before the first save.
func (uc *HeroUseCase) GetHero(ctx context.Context) (*entity.HeroContent, error) {
	hero, err := uc.heroRepo.GetHero(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrHeroNotFound) {
			def := entity.DefaultHeroContent()
			return &def, nil
		}
		uc.logger.Errorf("failed to get hero content: %v", err)
		return nil, err
	}
	return hero, nil
}

func (uc *HeroUseCase) UpdateHero(ctx context.Context, hero entity.HeroContent) (*entity.HeroContent, error) {
	hero.Title = strings.TrimSpace(hero.Title)
	hero.Subtitle = strings.TrimSpace(hero.Subtitle)
	hero.Description = strings.TrimSpace(hero.Description)
	if hero.Title == "" || hero.Subtitle == "" || hero.Description == "" {
		return nil, fmt.Errorf("%w: title, subtitle and description are required", entity.ErrInvalidInput)
	}
	if strings.TrimSpace(hero.CTAText) == "" {
		hero.CTAText = entity.DefaultCTAText
	}
	if strings.TrimSpace(hero.CTALink) == "" {
		hero.CTALink = entity.DefaultCTALink
	}

	saved, err := uc.heroRepo.UpsertHero(ctx, &hero)
	if err != nil {
		uc.logger.Errorf("failed to save hero content: %v", err)
		return nil, err
	}
	return saved, nil
}
