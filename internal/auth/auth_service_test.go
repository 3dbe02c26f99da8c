package auth_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"leavehub/internal/auth"
	autherrors "leavehub/internal/auth/errors"
	"leavehub/internal/user"
)

type fakeUserRepository struct {
	findByIDFn       func(ctx context.Context, id string) (*user.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*user.User, error)
}

func (f *fakeUserRepository) WithTx(tx *gorm.DB) user.Repository              { return f }
func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error  { return nil }
func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error  { return nil }
func (f *fakeUserRepository) FindAll(ctx context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if f.findByUsernameFn != nil {
		return f.findByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	alice := &user.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@leavehub.local",
		Role:     user.RoleEmployee,
		Password: hashPassword(t, "s3cretpass"),
	}

	t.Run("success returns a signed token with identity claims", func(t *testing.T) {
		repo := &fakeUserRepository{
			findByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
				assert.Equal(t, "alice", username)
				return alice, nil
			},
		}
		svc := auth.NewService(repo)

		resp, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "s3cretpass"})
		assert.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, int64(24*60*60), resp.ExpiresIn)
		assert.Equal(t, "alice", resp.User.Username)

		token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		assert.True(t, ok)
		assert.Equal(t, alice.ID.String(), claims["user_id"])
		assert.Equal(t, "alice", claims["username"])
		assert.Equal(t, user.RoleEmployee, claims["role"])
	})

	t.Run("negative wrong password", func(t *testing.T) {
		repo := &fakeUserRepository{
			findByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
				return alice, nil
			},
		}
		svc := auth.NewService(repo)

		_, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown username gets the same error", func(t *testing.T) {
		repo := &fakeUserRepository{}
		svc := auth.NewService(repo)

		_, err := svc.Login(ctx, auth.LoginRequest{Username: "nobody", Password: "s3cretpass"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		me := &user.User{
			ID:        uuid.New(),
			Username:  "alice",
			Email:     "alice@leavehub.local",
			Role:      user.RoleEmployee,
			ManagerID: &managerID,
		}
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				assert.Equal(t, me.ID.String(), id)
				return me, nil
			},
		}
		svc := auth.NewService(repo)

		resp, err := svc.GetMe(ctx, me.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
		assert.NotNil(t, resp.ManagerID)
		assert.Equal(t, managerID.String(), *resp.ManagerID)
	})

	t.Run("negative unknown user", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{})

		_, err := svc.GetMe(ctx, uuid.New().String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
