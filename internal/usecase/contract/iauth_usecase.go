package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

type IAuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	// Login accepts either an email or a username as identifier.
	Login(ctx context.Context, identifier, password string) (*entity.User, string, error)
	IsAdmin(ctx context.Context, userID string) (bool, error)
	// CreateAdmin registers a new admin, or promotes an existing user.
	CreateAdmin(ctx context.Context, username, email, password string) (*entity.User, error)
}
