package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	"github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// HandleUsecaseError maps domain errors to status codes. Anything unknown
// becomes a 500 carrying fallback instead of the internal error text.
func HandleUsecaseError(c *gin.Context, err error, fallback string) {
	var inUse *entity.TagInUseError
	switch {
	case errors.As(err, &inUse):
		c.JSON(http.StatusBadRequest, dto.TagInUseResponse{
			Error: fmt.Sprintf("Cannot delete tag as it is being used in %d posts", inUse.Count),
			Count: inUse.Count,
		})
	case errors.Is(err, entity.ErrDuplicateTag):
		ErrorHandler(c, http.StatusBadRequest, "Tag already exists")
	case errors.Is(err, entity.ErrTagNotFound):
		ErrorHandler(c, http.StatusNotFound, "Tag not found")
	case errors.Is(err, entity.ErrBlogPostNotFound):
		ErrorHandler(c, http.StatusNotFound, "Blog post not found")
	case errors.Is(err, entity.ErrProjectNotFound):
		ErrorHandler(c, http.StatusNotFound, "Project not found")
	case errors.Is(err, entity.ErrMessageNotFound):
		ErrorHandler(c, http.StatusNotFound, "Message not found")
	case errors.Is(err, entity.ErrUserNotFound):
		ErrorHandler(c, http.StatusNotFound, "User not found")
	case errors.Is(err, entity.ErrConcurrentUpdate):
		ErrorHandler(c, http.StatusConflict, "Content was modified concurrently, please retry")
	case errors.Is(err, entity.ErrUserExists):
		ErrorHandler(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, entity.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, entity.ErrFileTooLarge):
		ErrorHandler(c, http.StatusRequestEntityTooLarge, "File too large")
	case errors.Is(err, entity.ErrUnsupportedMediaType):
		ErrorHandler(c, http.StatusUnsupportedMediaType, "Only image uploads are allowed")
	case errors.Is(err, entity.ErrInvalidTagName),
		errors.Is(err, entity.ErrInvalidTagReference),
		errors.Is(err, entity.ErrInvalidInput):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, fallback)
	}
}

// currentUserID reads the id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func isAdminRequest(c *gin.Context) bool {
	role, exists := c.Get("userRole")
	if !exists {
		return false
	}
	r, ok := role.(entity.UserRole)
	return ok && r == entity.UserRoleAdmin
}
