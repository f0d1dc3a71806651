package http_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	handler "github.com/mikiasgoitom/portfolio/internal/handler/http"
	dto "github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/portfolio/internal/handler/http/mocks"
)

func setupAuthRouter(h handler.AuthHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/check-admin", asUser("mock-user-id", entity.UserRoleUser), h.CheckAdmin)
	r.GET("/check-admin-anon", h.CheckAdmin)
	return r
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User created successfully")
	assert.NotContains(t, w.Body.String(), "Password123")
}

func TestRegister_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	// Weak password fails binding before the usecase runs
	w := doJSON(r, http.MethodPost, "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "containsuppercase")

	mockUsecase.DuplicateUser = true
	w = doJSON(r, http.MethodPost, "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/login", dto.LoginRequest{Identifier: "testuser", Password: "Password123"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailLogin = true
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/login", dto.LoginRequest{Identifier: "testuser", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestCheckAdmin(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	r := setupAuthRouter(handler.NewAuthHandler(mockUsecase))

	w := doJSON(r, http.MethodGet, "/check-admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isAdmin":false}`, w.Body.String())

	mockUsecase.Admins["mock-user-id"] = true
	w = doJSON(r, http.MethodGet, "/check-admin", nil)
	assert.JSONEq(t, `{"isAdmin":true}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/check-admin-anon", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
