package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for Auth handler to allow interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	CheckAdmin(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.authUsecase.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		HandleUsecaseError(c, err, "Failed to register user")
		return
	}
	SuccessHandler(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    dto.ToUserResponse(*user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, token, err := h.authUsecase.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		HandleUsecaseError(c, err, "Failed to log in")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: token,
	})
}

// CheckAdmin answers from the stored role so dashboards can hide admin tools.
func (h *AuthHandler) CheckAdmin(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	isAdmin, err := h.authUsecase.IsAdmin(c.Request.Context(), userID)
	if err != nil {
		HandleUsecaseError(c, err, "Failed to check role")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CheckAdminResponse{IsAdmin: isAdmin})
}
