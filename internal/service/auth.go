package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/utils/jwt"
	"github.com/avc/tscoins-wallet/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	profileRepo    domain.ProfileRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
	}
}

// Register регистрирует нового пользователя по email
func (s *AuthService) Register(ctx context.Context, login, userPassword string) (string, error) {
	login = strings.TrimSpace(login)
	if err := validateEmail(login); err != nil {
		return "", err
	}
	if err := password.Validate(userPassword); err != nil {
		return "", domain.NewValidationError("password", err.Error())
	}

	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to hash password for user %q: %w", login, err)
	}

	user, err := s.userRepo.CreateUser(ctx, login, hash)
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrUserExists) {
			return "", err
		}
		return "", storageError(fmt.Sprintf("auth service: failed to register user %q", login), err)
	}

	token, err := s.jwtManager.Generate(user.ID, user.Login)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return token, nil
}

// Login аутентифицирует пользователя
func (s *AuthService) Login(ctx context.Context, login, userPassword string) (string, error) {
	login = strings.TrimSpace(login)
	if login == "" || userPassword == "" {
		return "", domain.NewValidationError("", "email and password are required")
	}

	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", storageError(fmt.Sprintf("auth service: failed to get user %q", login), err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user.ID, user.Login)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %d: %w", user.ID, err)
	}

	return token, nil
}

// Session возвращает запись "user" с текущим балансом
func (s *AuthService) Session(ctx context.Context, userID int64) (*domain.Session, error) {
	if userID <= 0 {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		// Пользователь удален, а токен еще действует
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, storageError(fmt.Sprintf("auth service: failed to get user %d", userID), err)
	}

	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, storageError(fmt.Sprintf("auth service: failed to load profile of user %d", userID), err)
	}

	return &domain.Session{
		UserID: user.ID,
		Email:  user.Login,
		Coins:  profile.Balance(),
	}, nil
}

func validateEmail(login string) error {
	if login == "" {
		return domain.NewValidationError("email", "email is required")
	}
	addr, err := mail.ParseAddress(login)
	if err != nil || addr.Address != login {
		return domain.NewValidationError("email", "invalid email address")
	}
	return nil
}
