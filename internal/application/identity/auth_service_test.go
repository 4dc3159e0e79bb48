package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stockbill/backend/internal/domain/identity"
	"github.com/stockbill/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]identity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]identity.User)}
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	if u, ok := r.users[username]; ok {
		return &u, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) Save(_ context.Context, user *identity.User) error {
	r.users[user.Username] = *user
	return nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func newTestAuthService(repo identity.UserRepository) *AuthService {
	return NewAuthService(repo, "test-secret", time.Hour, "stockbill")
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)

		err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "s3cret"})
		require.NoError(t, err)

		user, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, user.CheckPassword("s3cret"))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestAuthService(repo)

		require.NoError(t, svc.Register(ctx, RegisterRequest{Username: "alice", Password: "s3cret"}))
		err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "other"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	require.NoError(t, svc.Register(ctx, RegisterRequest{Username: "alice", Password: "s3cret"}))

	t.Run("issues a signed token for valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "s3cret"})
		require.NoError(t, err)

		assert.Equal(t, "alice", resp.Username)
		assert.True(t, resp.ExpiresAt.After(time.Now()))

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		}, jwt.WithIssuer("stockbill"))
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.NotEmpty(t, claims.Subject)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "wrong"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("rejects unknown user with the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Username: "bob", Password: "s3cret"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
		assert.Equal(t, "Invalid username or password", domainErr.Message)
	})
}
