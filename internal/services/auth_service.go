package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/password"
)

// AuthService handles registration, login and logout
type AuthService struct {
	users        repository.UserStore
	sessions     SessionStore
	tokenManager *jwt.TokenManager
	hasher       PasswordHasher
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserStore, sessions SessionStore, tokenManager *jwt.TokenManager, hasher PasswordHasher) *AuthService {
	return &AuthService{
		users:        users,
		sessions:     sessions,
		tokenManager: tokenManager,
		hasher:       hasher,
	}
}

// Register creates an account. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (err error) {
	defer func() { metrics.AuthAttempts.WithLabelValues("register", outcome(err)).Inc() }()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return validationError("name", "blank", "Name is required.")
	}

	if !req.Role.Valid() {
		return validationError("role", "unknown role", "Role must be mentor or mentoree.")
	}

	expertise := strings.TrimSpace(req.Expertise)
	var expertisePtr *string
	switch req.Role {
	case models.RoleMentor:
		if expertise == "" {
			return validationError("expertise", "required for mentors", "Mentors must list their expertise.")
		}
		expertisePtr = &expertise
	case models.RoleMentoree:
		if expertise != "" {
			return validationError("expertise", "not allowed for mentorees", "Only mentors can list expertise.")
		}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	email := models.NormalizeEmail(req.Email)
	id, err := s.users.Create(ctx, &models.NewUser{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		Expertise:    expertisePtr,
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			logger.Info("Registration with taken email", zap.String("email", email))
		}
		return withConflict(err, "An account with this email already exists.")
	}

	logger.Info("User registered",
		zap.Int64("user_id", id),
		zap.String("role", string(req.Role)))
	return nil
}

// Login checks credentials for the given role and opens a session.
// It returns the session and the signed cookie token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (_ *models.Session, _ string, err error) {
	start := time.Now()
	defer func() { metrics.AuthAttempts.WithLabelValues("login", outcome(err)).Inc() }()

	email := models.NormalizeEmail(req.Email)
	user, err := s.users.GetByEmailAndRole(ctx, email, req.Role)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			logger.Info("Login for unknown account",
				zap.String("email", email),
				zap.String("role", string(req.Role)))
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			logger.Info("Login with wrong password", zap.Int64("user_id", user.ID))
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	session := s.sessions.Create(models.SessionUser{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})

	token, err := s.tokenManager.GenerateToken(session.ID, user.ID)
	if err != nil {
		s.sessions.Delete(session.ID)
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.Duration("duration", time.Since(start)))
	return session, token, nil
}

// Logout ends the session. Unknown or empty ids are ignored.
func (s *AuthService) Logout(_ context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	s.sessions.Delete(sessionID)
	metrics.AuthAttempts.WithLabelValues("logout", "success").Inc()
}
