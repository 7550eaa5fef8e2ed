package usecase

import (
	"context"
	"errors"
	"testing"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"
	mock_interfaces "mechfinder/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCaseForTest(ctrl *gomock.Controller) (*AuthUseCase, *mock_interfaces.MockIUserRepository, *mock_interfaces.MockITokenIssuer) {
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
	uc := NewAuthUseCase(users, tokens, zap.NewNop().Sugar())
	return uc, users, tokens
}

func TestAuthUseCase_Signup(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newAuthUseCaseForTest(ctrl)

		_, _, err := uc.Signup(context.Background(), SignupInput{FirstName: "Jo", Email: "jo@example.com", Password: "secret123"})
		if !errors.Is(err, ErrInvalidAuthInput) {
			t.Fatalf("expected ErrInvalidAuthInput, got %v", err)
		}
	})

	t.Run("email already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newAuthUseCaseForTest(ctrl)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(entities.User{ID: "u-1"}, nil)

		_, _, err := uc.Signup(context.Background(), SignupInput{FirstName: "Jo", LastName: "Smith", Email: " JO@Example.com ", Password: "secret123"})
		if !errors.Is(err, ErrEmailExists) {
			t.Fatalf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("conditional create race maps to email exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newAuthUseCaseForTest(ctrl)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrConditionFailed)

		_, _, err := uc.Signup(context.Background(), SignupInput{FirstName: "Jo", LastName: "Smith", Email: "jo@example.com", Password: "secret123"})
		if !errors.Is(err, ErrEmailExists) {
			t.Fatalf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("signup success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, tokens := newAuthUseCaseForTest(ctrl)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.Email != "jo@example.com" || u.Role != entities.RoleUser {
					t.Fatalf("unexpected user: %+v", u)
				}
				if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) != nil {
					t.Fatalf("password hash does not verify")
				}
				return u, nil
			},
		)
		tokens.EXPECT().Issue(gomock.Any(), "user").Return("token-1", nil)

		user, token, err := uc.Signup(context.Background(), SignupInput{FirstName: "Jo", LastName: "Smith", Email: " JO@Example.com ", Password: "secret123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "token-1" {
			t.Fatalf("expected issued token, got %q", token)
		}
		if user.Email != "jo@example.com" {
			t.Fatalf("expected lowercased email, got %q", user.Email)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := entities.User{ID: "u-1", Email: "jo@example.com", PasswordHash: string(hash), Role: entities.RoleUser}

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newAuthUseCaseForTest(ctrl)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "jo@example.com", "secret123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newAuthUseCaseForTest(ctrl)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "jo@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("login success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, tokens := newAuthUseCaseForTest(ctrl)

		users.EXPECT().GetByEmail(gomock.Any(), "jo@example.com").Return(stored, nil)
		tokens.EXPECT().Issue("u-1", "user").Return("token-1", nil)

		user, token, err := uc.Login(context.Background(), " JO@example.com ", "secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u-1" || token != "token-1" {
			t.Fatalf("unexpected result: %+v %q", user, token)
		}
	})
}

func TestAuthUseCase_Me(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newAuthUseCaseForTest(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		_, err := uc.Me(context.Background(), "u-1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("me success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, users, _ := newAuthUseCaseForTest(ctrl)

		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)

		user, err := uc.Me(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u-1" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})
}
