package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of IAuthUseCase
type MockAuthUsecase struct {
	ShouldFailRegister bool
	DuplicateUser      bool
	ShouldFailLogin    bool
	ShouldFailIsAdmin  bool

	MockUser        entity.User
	MockAccessToken string
	// Admins lists user ids IsAdmin reports true for.
	Admins map[string]bool
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
		},
		MockAccessToken: "mock_access_token",
		Admins:          map[string]bool{},
	}
}

func (m *MockAuthUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.DuplicateUser {
		return nil, entity.ErrUserExists
	}
	if m.ShouldFailRegister {
		return nil, errors.New("user creation failed")
	}
	user := m.MockUser
	user.Username = username
	user.Email = email
	return &user, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", entity.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockAuthUsecase) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if m.ShouldFailIsAdmin {
		return false, errors.New("lookup failed")
	}
	return m.Admins[userID], nil
}

func (m *MockAuthUsecase) CreateAdmin(ctx context.Context, username, email, password string) (*entity.User, error) {
	user := m.MockUser
	user.Role = entity.UserRoleAdmin
	m.Admins[user.ID] = true
	return &user, nil
}
