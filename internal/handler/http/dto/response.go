package dto

import (
	"time"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

type CheckAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type TagListResponse struct {
	Tags []entity.Tag `json:"tags"`
}

type TagUsageResponse struct {
	Tags []entity.TagUsage `json:"tags"`
}

type ReconcileResponse struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type MessageListResponse struct {
	Messages []*entity.Message `json:"messages"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TagInUseResponse reports how many items still reference a tag.
type TagInUseResponse struct {
	Error string `json:"error"`
	Count int    `json:"count"`
}
