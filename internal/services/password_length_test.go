package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/password"
)

// 40 runes pass the max=72 binding tag, but encode to 80 bytes.
var multibytePassword = strings.Repeat("é", 40)

func assertPasswordTooLong(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.False(t, apperrors.Is(err, apperrors.ErrStore))
	msg, ok := apperrors.PublicMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Password is too long.", msg)
}

func TestAuthService_Register_MultibytePasswordOverBcryptLimit(t *testing.T) {
	users := new(MockUserStore)
	tm := jwt.NewTokenManager("test-secret", "mentorhub-test", 1)
	service := services.NewAuthService(users, new(MockSessionStore), tm, password.NewHasher(bcrypt.MinCost))

	req := &models.RegisterRequest{
		Name: "Zoé", Email: "zoe@example.com", Password: multibytePassword, Role: models.RoleMentoree,
	}
	require.NoError(t, binding.Validator.ValidateStruct(req))

	err := service.Register(context.Background(), req)

	assertPasswordTooLong(t, err)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSettingsService_Update_MultibytePasswordOverBcryptLimit(t *testing.T) {
	users := new(MockUserStore)
	sessions := new(MockSessionStore)
	service := services.NewSettingsService(users, sessions, password.NewHasher(bcrypt.MinCost))

	_, err := service.Update(context.Background(), menteeUser, &models.UpdateSettingsRequest{
		Name: "Bob", Email: "bob@example.com", Password: multibytePassword,
	})

	assertPasswordTooLong(t, err)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	sessions.AssertNotCalled(t, "UpdateUser", mock.Anything)
}

func TestPasswordResetService_ResetPassword_MultibytePasswordOverBcryptLimit(t *testing.T) {
	codes := new(MockVerificationCodeStore)
	service := services.NewPasswordResetService(new(MockUserStore), codes, password.NewHasher(bcrypt.MinCost),
		new(MockMailer), config.PasswordResetConfig{CodeLength: 6, CodeTTLMinutes: 15})

	req := &models.ResetPasswordRequest{Email: "bob@example.com", Code: "123456", NewPassword: multibytePassword}
	require.NoError(t, binding.Validator.ValidateStruct(req))

	err := service.ResetPassword(context.Background(), req)

	assertPasswordTooLong(t, err)
	codes.AssertNotCalled(t, "ConsumeAndSetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
