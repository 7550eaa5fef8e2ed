package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAuthInput   = errors.New("invalid signup input")
)

const bcryptCost = 10

// IAuthUseCase handles account creation and credential verification.
type IAuthUseCase interface {
	Signup(ctx context.Context, in SignupInput) (entities.User, string, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	Me(ctx context.Context, userID string) (entities.User, error)
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenIssuer
	log    *zap.SugaredLogger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenIssuer, log *zap.SugaredLogger) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, log: log}
}

func (u *AuthUseCase) Signup(ctx context.Context, in SignupInput) (entities.User, string, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return entities.User{}, "", ErrInvalidAuthInput
	}

	existing, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return entities.User{}, "", err
	}
	if existing.ID != "" {
		return entities.User{}, "", ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return entities.User{}, "", err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.User{}, "", ErrEmailExists
		}
		return entities.User{}, "", err
	}

	token, err := u.tokens.Issue(created.ID, string(created.Role))
	if err != nil {
		return entities.User{}, "", err
	}

	u.log.Infow("user registered", "email", created.Email)
	return created, token, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	// Same failure for unknown email and bad password.
	if user.ID == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return entities.User{}, "", err
	}

	u.log.Infow("user logged in", "email", user.Email)
	return user, token, nil
}

func (u *AuthUseCase) Me(ctx context.Context, userID string) (entities.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
