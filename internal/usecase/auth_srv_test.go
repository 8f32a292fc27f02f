package usecase

import (
	"context"
	"testing"

	"resource-booking/internal/data/entity"
	"resource-booking/internal/data/repository"
	"resource-booking/internal/dto/request"
	"resource-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) (AuthService, *repository.Repository) {
	t.Helper()

	config := &utils.Config{
		JWT:  utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Auth: utils.AuthConfig{EmailDomain: "@itu.edu.pk"},
	}

	repo := repository.NewMemoryRepository()
	return NewAuthService(repo, config, zap.NewNop()), repo
}

func signupReq(email string) *request.SignupRequest {
	return &request.SignupRequest{
		Name:     "Test User",
		Email:    email,
		Role:     "USER",
		Password: "secret123",
	}
}

func TestSignupRestrictedDomain(t *testing.T) {
	svc, _ := newAuthService(t)

	err := svc.Signup(context.Background(), signupReq("x@gmail.com"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restricted domain")
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("test@itu.edu.pk")))

	err := svc.Signup(ctx, signupReq("test@itu.edu.pk"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSignupShortPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	req := signupReq("test@itu.edu.pk")
	req.Password = "abc"

	err := svc.Signup(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestSignupStoresHashedPassword(t *testing.T) {
	svc, repo := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("test@itu.edu.pk")))

	user, err := repo.User.FindByEmail(ctx, "test@itu.edu.pk")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", user.PasswordHash))
	assert.True(t, user.IsActive)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("test@itu.edu.pk")))

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "test@itu.edu.pk",
		Password: "wrong-pass",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Nil(t, resp)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@itu.edu.pk",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginIssuesSignedToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, signupReq("test@itu.edu.pk")))

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "test@itu.edu.pk",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "test@itu.edu.pk", resp.User.Email)

	// the token verifies under the signing secret and carries the identity
	id, err := utils.ParseToken("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id.ID.String())
	assert.Equal(t, string(entity.RoleUser), id.Role)

	// and fails under any other secret
	_, err = utils.ParseToken("other-secret", resp.Token)
	assert.Error(t, err)
}
