package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// BlogHandlerInterface defines the methods for Blog handler to allow interface-based dependency injection (for testing/mocking)
type BlogHandlerInterface interface {
	CreateBlogPostHandler(*gin.Context)
	GetBlogPostsHandler(*gin.Context)
	GetBlogPostByIDHandler(*gin.Context)
	GetBlogPostBySlugHandler(*gin.Context)
	UpdateBlogPostHandler(*gin.Context)
	DeleteBlogPostHandler(*gin.Context)
}

// Ensure BlogHandler implements BlogHandlerInterface
var _ BlogHandlerInterface = (*BlogHandler)(nil)

type BlogHandler struct {
	blogUsecase usecasecontract.IBlogPostUseCase
}

func NewBlogHandler(blogUsecase usecasecontract.IBlogPostUseCase) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
	}
}

// CreateBlogPostHandler
func (h *BlogHandler) CreateBlogPostHandler(cxt *gin.Context) {
	var req dto.CreateBlogPostRequest
	if err := BindAndValidate(cxt, &req); err != nil {
		return
	}

	authorID, ok := currentUserID(cxt)
	if !ok {
		ErrorHandler(cxt, http.StatusUnauthorized, "User not authenticated")
		return
	}

	post, err := h.blogUsecase.CreateBlogPost(cxt.Request.Context(), req.ToInput(), authorID)
	if err != nil {
		HandleUsecaseError(cxt, err, "Failed to create blog post")
		return
	}
	SuccessHandler(cxt, http.StatusCreated, post)
}

// GetBlogPostsHandler supports page, limit, search and tag query params.
// Drafts are listed only for admins asking with status=all.
func (h *BlogHandler) GetBlogPostsHandler(cxt *gin.Context) {
	page, err := strconv.Atoi(cxt.DefaultQuery("page", "1"))
	if err != nil {
		ErrorHandler(cxt, http.StatusBadRequest, "Invalid page number")
		return
	}
	limit, err := strconv.Atoi(cxt.DefaultQuery("limit", "10"))
	if err != nil {
		ErrorHandler(cxt, http.StatusBadRequest, "Invalid limit")
		return
	}

	query := usecasecontract.BlogPostQuery{
		Page:          page,
		Limit:         limit,
		Search:        cxt.Query("search"),
		TagID:         cxt.Query("tag"),
		IncludeDrafts: cxt.Query("status") == "all" && isAdminRequest(cxt),
	}

	result, err := h.blogUsecase.GetBlogPosts(cxt.Request.Context(), query)
	if err != nil {
		HandleUsecaseError(cxt, err, "Failed to retrieve blog posts")
		return
	}
	SuccessHandler(cxt, http.StatusOK, result)
}

func (h *BlogHandler) GetBlogPostByIDHandler(cxt *gin.Context) {
	post, err := h.blogUsecase.GetBlogPostByID(cxt.Request.Context(), cxt.Param("id"))
	if err != nil {
		HandleUsecaseError(cxt, err, "Failed to retrieve blog post")
		return
	}
	if !post.IsPublished() && !isAdminRequest(cxt) {
		ErrorHandler(cxt, http.StatusNotFound, "Blog post not found")
		return
	}
	SuccessHandler(cxt, http.StatusOK, post)
}

func (h *BlogHandler) GetBlogPostBySlugHandler(cxt *gin.Context) {
	post, err := h.blogUsecase.GetBlogPostBySlug(cxt.Request.Context(), cxt.Param("slug"), isAdminRequest(cxt))
	if err != nil {
		HandleUsecaseError(cxt, err, "Failed to retrieve blog post")
		return
	}
	SuccessHandler(cxt, http.StatusOK, post)
}

// UpdateBlogPostHandler serves both PUT /blog/:id and PUT /blog with the id in the body.
func (h *BlogHandler) UpdateBlogPostHandler(cxt *gin.Context) {
	var req dto.UpdateBlogPostRequest
	if err := BindAndValidate(cxt, &req); err != nil {
		return
	}

	postID := cxt.Param("id")
	if postID == "" {
		postID = req.ID
	}
	if postID == "" {
		ErrorHandler(cxt, http.StatusBadRequest, "Blog post ID is required")
		return
	}

	post, err := h.blogUsecase.UpdateBlogPost(cxt.Request.Context(), postID, req.ToInput())
	if err != nil {
		HandleUsecaseError(cxt, err, "Failed to update blog post")
		return
	}
	SuccessHandler(cxt, http.StatusOK, post)
}

func (h *BlogHandler) DeleteBlogPostHandler(cxt *gin.Context) {
	if err := h.blogUsecase.DeleteBlogPost(cxt.Request.Context(), cxt.Param("id")); err != nil {
		HandleUsecaseError(cxt, err, "Failed to delete blog post")
		return
	}
	MessageHandler(cxt, http.StatusOK, "Blog post deleted successfully")
}
