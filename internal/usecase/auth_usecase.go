package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 30
)

// AuthUsecase handles registration, login and role checks.
type AuthUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

func NewAuthUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// Register creates a regular user account.
func (uc *AuthUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	return uc.register(ctx, username, email, password, entity.DefaultRole())
}

func (uc *AuthUsecase) register(ctx context.Context, username, email, password string, role entity.UserRole) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if n := len([]rune(username)); n < usernameMinLength || n > usernameMaxLength {
		return nil, fmt.Errorf("%w: username must be between %d and %d characters", entity.ErrInvalidInput, usernameMinLength, usernameMaxLength)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", entity.ErrInvalidInput)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}

	if err := uc.ensureAvailable(ctx, email, username); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrUserExists) {
			return nil, err
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (uc *AuthUsecase) ensureAvailable(ctx context.Context, email, username string) error {
	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil {
		return entity.ErrUserExists
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return err
	}
	if _, err := uc.userRepo.GetUserByUsername(ctx, username); err == nil {
		return entity.ErrUserExists
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return err
	}
	return nil
}

// Login checks credentials and returns the user with a signed access token.
func (uc *AuthUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = uc.userRepo.GetUserByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to look up user: %v", err)
		return nil, "", err
	}
	if !uc.hasher.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return user, token, nil
}

// IsAdmin reads the role from the store rather than the token, so a demoted
// user loses access before their token expires.
func (uc *AuthUsecase) IsAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == entity.UserRoleAdmin, nil
}

// CreateAdmin promotes the account with this email, or registers a new admin.
func (uc *AuthUsecase) CreateAdmin(ctx context.Context, username, email, password string) (*entity.User, error) {
	existing, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err == nil {
		if existing.Role != entity.UserRoleAdmin {
			if err := uc.userRepo.UpdateUserRole(ctx, existing.ID, entity.UserRoleAdmin); err != nil {
				return nil, err
			}
			existing.Role = entity.UserRoleAdmin
		}
		uc.logger.Infof("user %s promoted to admin", existing.Username)
		return existing, nil
	}
	if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, err
	}
	return uc.register(ctx, username, email, password, entity.UserRoleAdmin)
}
