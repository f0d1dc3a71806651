package contract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

type IHeroRepository interface {
	// GetHero returns entity.ErrHeroNotFound when nothing has been saved yet.
	GetHero(ctx context.Context) (*entity.HeroContent, error)
	UpsertHero(ctx context.Context, hero *entity.HeroContent) (*entity.HeroContent, error)
}
