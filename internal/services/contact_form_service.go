package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/mailer"
)

// ContactFormService forwards public contact form submissions to the admins
type ContactFormService struct {
	mail         mailer.Sender
	adminAddress string
}

// NewContactFormService creates a new ContactFormService
func NewContactFormService(mail mailer.Sender, adminAddress string) *ContactFormService {
	return &ContactFormService{
		mail:         mail,
		adminAddress: adminAddress,
	}
}

// Submit mails the enquiry to the admin address. Replies go to the sender.
func (s *ContactFormService) Submit(ctx context.Context, req *models.ContactFormRequest) error {
	name := strings.TrimSpace(req.FirstName + " " + req.LastName)
	email := models.NormalizeEmail(req.Email)

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = "-"
	}

	msg := mailer.Message{
		Kind:    mailer.KindContactForm,
		To:      s.adminAddress,
		ReplyTo: email,
		Subject: fmt.Sprintf("Contact form: %s", name),
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
			name, email, phone, strings.TrimSpace(req.Details)),
	}

	if err := s.mail.Send(ctx, msg); err != nil {
		logger.Error("Failed to forward contact form", zap.Error(err))
		return apperrors.MailError(err)
	}

	logger.Info("Contact form forwarded", zap.String("reply_to", email))
	return nil
}
