package services_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/mailer"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newPasswordResetService(users *MockUserStore, codes *MockVerificationCodeStore, mail *MockMailer) *services.PasswordResetService {
	service := services.NewPasswordResetService(users, codes, fakeHasher{}, mail,
		config.PasswordResetConfig{CodeLength: 6, CodeTTLMinutes: 15})
	service.SetClock(func() time.Time { return fixedNow })
	return service
}

func TestPasswordResetService_SendCode(t *testing.T) {
	users := new(MockUserStore)
	codes := new(MockVerificationCodeStore)
	mail := new(MockMailer)
	service := newPasswordResetService(users, codes, mail)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "bob@example.com").Return(&models.User{ID: 2, Name: "Bob", Email: "bob@example.com"}, nil)

	var stored string
	codes.On("Put", ctx, "bob@example.com", mock.AnythingOfType("string"), fixedNow.Add(15*time.Minute)).
		Run(func(args mock.Arguments) { stored = args.String(2) }).
		Return(nil).Once()
	mail.On("Send", ctx, mock.MatchedBy(func(m mailer.Message) bool {
		return m.Kind == mailer.KindVerificationCode && m.To == "bob@example.com" && strings.Contains(m.Body, stored)
	})).Return(nil).Once()

	require.NoError(t, service.SendCode(ctx, " Bob@Example.com "))

	assert.Regexp(t, regexp.MustCompile(`^[0-9]{6}$`), stored)
	codes.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestPasswordResetService_SendCode_UnknownEmail(t *testing.T) {
	users := new(MockUserStore)
	codes := new(MockVerificationCodeStore)
	mail := new(MockMailer)
	service := newPasswordResetService(users, codes, mail)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, apperrors.NotFoundError("user"))

	err := service.SendCode(ctx, "ghost@example.com")

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	codes.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestPasswordResetService_SendCode_MailFailure(t *testing.T) {
	users := new(MockUserStore)
	codes := new(MockVerificationCodeStore)
	mail := new(MockMailer)
	service := newPasswordResetService(users, codes, mail)
	ctx := context.Background()

	users.On("GetByEmail", ctx, "bob@example.com").Return(&models.User{ID: 2, Email: "bob@example.com"}, nil)
	codes.On("Put", ctx, "bob@example.com", mock.Anything, mock.Anything).Return(nil)
	mail.On("Send", ctx, mock.Anything).Return(errors.New("relay down"))

	err := service.SendCode(ctx, "bob@example.com")

	assert.True(t, apperrors.Is(err, apperrors.ErrMail))
}

func TestPasswordResetService_VerifyCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		stored *models.VerificationCode
		getErr error
		code   string
		want   bool
	}{
		{"matching and live", &models.VerificationCode{Code: "123456", ExpiresAt: fixedNow.Add(time.Minute)}, nil, "123456", true},
		{"wrong code", &models.VerificationCode{Code: "123456", ExpiresAt: fixedNow.Add(time.Minute)}, nil, "654321", false},
		{"expired", &models.VerificationCode{Code: "123456", ExpiresAt: fixedNow}, nil, "123456", false},
		{"no code for email", nil, apperrors.NotFoundError("verification code"), "123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes := new(MockVerificationCodeStore)
			service := newPasswordResetService(new(MockUserStore), codes, new(MockMailer))
			if tt.stored != nil {
				codes.On("Get", ctx, "bob@example.com").Return(tt.stored, nil)
			} else {
				codes.On("Get", ctx, "bob@example.com").Return(nil, tt.getErr)
			}

			ok, err := service.VerifyCode(ctx, "bob@example.com", tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestPasswordResetService_VerifyCode_ScopedToEmail(t *testing.T) {
	codes := new(MockVerificationCodeStore)
	service := newPasswordResetService(new(MockUserStore), codes, new(MockMailer))
	ctx := context.Background()

	// bob's code is worthless for cy
	codes.On("Get", ctx, "bob@example.com").Return(&models.VerificationCode{Code: "111111", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
	codes.On("Get", ctx, "cy@example.com").Return(&models.VerificationCode{Code: "222222", ExpiresAt: fixedNow.Add(time.Hour)}, nil)

	ok, err := service.VerifyCode(ctx, "cy@example.com", "111111")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = service.VerifyCode(ctx, "bob@example.com", "111111")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordResetService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("consumes code", func(t *testing.T) {
		codes := new(MockVerificationCodeStore)
		service := newPasswordResetService(new(MockUserStore), codes, new(MockMailer))
		codes.On("ConsumeAndSetPassword", ctx, "bob@example.com", "123456", "hashed:brand-new-pass").Return(true, nil).Once()

		err := service.ResetPassword(ctx, &models.ResetPasswordRequest{
			Email: "BOB@example.com", Code: "123456", NewPassword: "brand-new-pass",
		})

		require.NoError(t, err)
		codes.AssertExpectations(t)
	})

	t.Run("invalid or expired code", func(t *testing.T) {
		codes := new(MockVerificationCodeStore)
		service := newPasswordResetService(new(MockUserStore), codes, new(MockMailer))
		codes.On("ConsumeAndSetPassword", ctx, "bob@example.com", "000000", mock.Anything).Return(false, nil)

		err := service.ResetPassword(ctx, &models.ResetPasswordRequest{
			Email: "bob@example.com", Code: "000000", NewPassword: "brand-new-pass",
		})

		assert.True(t, errors.Is(err, services.ErrInvalidVerificationCode))
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		msg, _ := apperrors.PublicMessage(err)
		assert.Equal(t, "Invalid or expired verification code.", msg)
	})
}
