package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

type IHeroUseCase interface {
	GetHero(ctx context.Context) (*entity.HeroContent, error)
	UpdateHero(ctx context.Context, hero entity.HeroContent) (*entity.HeroContent, error)
}
