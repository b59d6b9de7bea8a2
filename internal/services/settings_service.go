package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

// SettingsService handles account settings changes
type SettingsService struct {
	users    repository.UserStore
	sessions SessionStore
	hasher   PasswordHasher
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(users repository.UserStore, sessions SessionStore, hasher PasswordHasher) *SettingsService {
	return &SettingsService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Update changes the user's name and email, and optionally password and
// expertise. Live sessions of the user pick up the new identity.
func (s *SettingsService) Update(ctx context.Context, user models.SessionUser, req *models.UpdateSettingsRequest) (models.SessionUser, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return user, validationError("name", "blank", "Name is required.")
	}

	update := &models.UserUpdate{
		ID:    user.UserID,
		Name:  name,
		Email: models.NormalizeEmail(req.Email),
	}

	if expertise := strings.TrimSpace(req.Expertise); expertise != "" {
		if !user.IsMentor() {
			return user, validationError("expertise", "not allowed for mentorees", "Only mentors can list expertise.")
		}
		update.Expertise = &expertise
	}

	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return user, err
		}
		update.PasswordHash = &hash
	}

	if err := s.users.Update(ctx, update); err != nil {
		err = withConflict(err, "An account with this email already exists.")
		return user, withNotFound(err, "User not found.")
	}

	updated := models.SessionUser{
		UserID: user.UserID,
		Name:   update.Name,
		Email:  update.Email,
		Role:   user.Role,
	}
	refreshed := s.sessions.UpdateUser(updated)

	logger.Info("Settings updated",
		zap.Int64("user_id", user.UserID),
		zap.Bool("password_changed", update.PasswordHash != nil),
		zap.Int("sessions_refreshed", refreshed))
	return updated, nil
}
