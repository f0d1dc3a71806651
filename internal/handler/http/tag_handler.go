package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// TagHandlerInterface allows the router to be built from mocks in tests.
type TagHandlerInterface interface {
	CreateTag(*gin.Context)
	GetTags(*gin.Context)
	GetTagUsage(*gin.Context)
	DeleteTag(*gin.Context)
	ReconcileTags(*gin.Context)
}

var _ TagHandlerInterface = (*TagHandler)(nil)

type TagHandler struct {
	tagUsecase usecasecontract.ITagUseCase
}

func NewTagHandler(tagUsecase usecasecontract.ITagUseCase) *TagHandler {
	return &TagHandler{tagUsecase: tagUsecase}
}

// CreateTag POST /tags
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	tag, err := h.tagUsecase.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		HandleUsecaseError(c, err, "Failed to create tag")
		return
	}
	SuccessHandler(c, http.StatusCreated, tag)
}

// GetTags GET /tags returns every tag with its live usage count.
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagUsecase.ListTags(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err, "Failed to fetch tags")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TagListResponse{Tags: tags})
}

// GetTagUsage GET /tags/usage compares stored counters with live counts.
func (h *TagHandler) GetTagUsage(c *gin.Context) {
	report, err := h.tagUsecase.UsageReport(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err, "Failed to fetch tag usage")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TagUsageResponse{Tags: report})
}

// DeleteTag DELETE /tags/:id
func (h *TagHandler) DeleteTag(c *gin.Context) {
	tagID := c.Param("id")
	if tagID == "" {
		ErrorHandler(c, http.StatusBadRequest, "Tag ID is required")
		return
	}

	if err := h.tagUsecase.DeleteTag(c.Request.Context(), tagID); err != nil {
		HandleUsecaseError(c, err, "Failed to delete tag")
		return
	}
	MessageHandler(c, http.StatusOK, "Tag deleted successfully")
}

// ReconcileTags POST /tags/reconcile recounts every tag from live content.
func (h *TagHandler) ReconcileTags(c *gin.Context) {
	updated, err := h.tagUsecase.RecountTags(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err, "Failed to reconcile tag counts")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ReconcileResponse{
		Message: "Tag counts reconciled",
		Updated: updated,
	})
}
