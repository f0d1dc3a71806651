package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	"github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

type HeroHandler struct {
	heroUsecase usecasecontract.IHeroUseCase
}

func NewHeroHandler(heroUsecase usecasecontract.IHeroUseCase) *HeroHandler {
	return &HeroHandler{heroUsecase: heroUsecase}
}

func (h *HeroHandler) GetHero(c *gin.Context) {
	hero, err := h.heroUsecase.GetHero(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err, "Failed to retrieve hero content")
		return
	}
	SuccessHandler(c, http.StatusOK, hero)
}

func (h *HeroHandler) UpdateHero(c *gin.Context) {
	var req dto.HeroRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	hero, err := h.heroUsecase.UpdateHero(c.Request.Context(), entity.HeroContent{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CTAText:     req.CTAText,
		CTALink:     req.CTALink,
	})
	if err != nil {
		HandleUsecaseError(c, err, "Failed to update hero content")
		return
	}
	SuccessHandler(c, http.StatusOK, hero)
}
