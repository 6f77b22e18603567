package services

import (
	"context"
	"testing"

	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo(), "test-secret", 60)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "super_password",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "super_password", user.PasswordHash, "password must be stored hashed")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "super_password",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "ada@example.com", claims["email"])
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo(), "test-secret", 60)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "super_password",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Imposter", Email: "ada@example.com", Password: "other_password",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}

func TestLogin_WrongPassword401(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo(), "test-secret", 60)
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "super_password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "not_the_password",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)
}
