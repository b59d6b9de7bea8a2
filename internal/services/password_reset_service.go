package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/mailer"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

const defaultCodeLength = 6

// PasswordResetService runs the emailed verification-code password reset.
// Codes are stored per email and expire after the configured TTL.
type PasswordResetService struct {
	users  repository.UserStore
	codes  repository.VerificationCodeStore
	hasher PasswordHasher
	mail   mailer.Sender
	cfg    config.PasswordResetConfig
	now    func() time.Time
}

// NewPasswordResetService creates a new PasswordResetService
func NewPasswordResetService(
	users repository.UserStore,
	codes repository.VerificationCodeStore,
	hasher PasswordHasher,
	mail mailer.Sender,
	cfg config.PasswordResetConfig,
) *PasswordResetService {
	return &PasswordResetService{
		users:  users,
		codes:  codes,
		hasher: hasher,
		mail:   mail,
		cfg:    cfg,
		now:    time.Now,
	}
}

// SetClock overrides the time source
func (s *PasswordResetService) SetClock(now func() time.Time) {
	s.now = now
}

// SendCode stores a fresh code for email and mails it. A previous code for
// the same email is replaced.
func (s *PasswordResetService) SendCode(ctx context.Context, email string) (err error) {
	defer func() { metrics.PasswordResets.WithLabelValues("send", outcome(err)).Inc() }()

	email = models.NormalizeEmail(email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return withNotFound(err, "Email not found.")
	}

	code, err := generateCode(s.cfg.CodeLength)
	if err != nil {
		return err
	}

	ttl := time.Duration(s.cfg.CodeTTLMinutes) * time.Minute
	if err := s.codes.Put(ctx, user.Email, code, s.now().Add(ttl)); err != nil {
		return withNotFound(err, "Email not found.")
	}

	msg := mailer.Message{
		Kind:    mailer.KindVerificationCode,
		To:      user.Email,
		Subject: "Your MentorHub verification code",
		Body: fmt.Sprintf(
			"Hi %s,\n\nyour verification code is %s. It expires in %d minutes.\n\nIf you did not ask to reset your password, ignore this email.",
			user.Name, code, s.cfg.CodeTTLMinutes),
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		logger.Error("Failed to send verification code",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		return apperrors.MailError(err)
	}

	logger.Info("Verification code sent", zap.Int64("user_id", user.ID))
	return nil
}

// VerifyCode reports whether code is the live code for email. It does not consume the code.
func (s *PasswordResetService) VerifyCode(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.codes.Get(ctx, models.NormalizeEmail(email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.PasswordResets.WithLabelValues("verify", "rejected").Inc()
			return false, nil
		}
		return false, err
	}

	valid := jwt.TimingSafeCompare(stored.Code, strings.TrimSpace(code)) && !stored.Expired(s.now())
	status := "success"
	if !valid {
		status = "rejected"
	}
	metrics.PasswordResets.WithLabelValues("verify", status).Inc()
	return valid, nil
}

// ResetPassword sets a new password if code is the live code for email,
// consuming the code in the same write.
func (s *PasswordResetService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (err error) {
	defer func() { metrics.PasswordResets.WithLabelValues("reset", outcome(err)).Inc() }()

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	email := models.NormalizeEmail(req.Email)
	ok, err := s.codes.ConsumeAndSetPassword(ctx, email, strings.TrimSpace(req.Code), hash)
	if err != nil {
		return err
	}
	if !ok {
		logger.Info("Password reset with invalid code", zap.String("email", email))
		return ErrInvalidVerificationCode
	}

	logger.Info("Password reset", zap.String("email", email))
	return nil
}

// generateCode returns a uniformly random numeric code of the given length
func generateCode(length int) (string, error) {
	if length <= 0 {
		length = defaultCodeLength
	}

	var b strings.Builder
	b.Grow(length)
	ten := big.NewInt(10)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate verification code: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
