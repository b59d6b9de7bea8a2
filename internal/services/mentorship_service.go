package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

const msgRequestAnswered = "This request has already been answered."

// MentorshipService handles mentorship requests from mentorees to mentors
type MentorshipService struct {
	users    repository.UserStore
	requests repository.MentorshipStore
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(users repository.UserStore, requests repository.MentorshipStore) *MentorshipService {
	return &MentorshipService{
		users:    users,
		requests: requests,
	}
}

// Request asks mentorID for mentorship. Only mentorees may ask and only
// mentors may be asked. One pending request per pair.
func (s *MentorshipService) Request(ctx context.Context, user models.SessionUser, mentorID int64) error {
	if user.Role != models.RoleMentoree {
		return apperrors.WithMessage(apperrors.AccessDeniedError("only mentorees request mentorship"),
			"Only mentorees can request mentorship.")
	}

	mentor, err := s.users.GetByID(ctx, mentorID)
	if err != nil {
		return withNotFound(err, "User not found.")
	}
	if mentor.Role != models.RoleMentor {
		return validationError("userID", "not a mentor", "The selected user is not a mentor.")
	}

	id, err := s.requests.Create(ctx, mentor.ID, user.UserID)
	if err != nil {
		err = withConflict(err, "You already have a pending request with this mentor.")
		return withNotFound(err, "User not found.")
	}

	metrics.MentorshipTransitions.WithLabelValues(string(models.StatusPending)).Inc()
	logger.Info("Mentorship requested",
		zap.Int64("request_id", id),
		zap.Int64("mentor_id", mentor.ID),
		zap.Int64("mentoree_id", user.UserID))
	return nil
}

// Respond accepts or rejects a pending request addressed to the acting mentor
func (s *MentorshipService) Respond(ctx context.Context, user models.SessionUser, requestID int64, status models.RequestStatus) error {
	if !user.IsMentor() {
		return apperrors.WithMessage(apperrors.AccessDeniedError("only mentors respond"),
			"Only mentors can respond to mentorship requests.")
	}
	if status != models.StatusAccepted && status != models.StatusRejected {
		return validationError("status", "must be accepted or rejected", "Status must be accepted or rejected.")
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return withNotFound(err, "Request not found.")
	}
	if req.MentorID != user.UserID {
		logger.Warn("Mentorship response by another mentor",
			zap.Int64("request_id", requestID),
			zap.Int64("user_id", user.UserID))
		return apperrors.WithMessage(apperrors.AccessDeniedError("not the named mentor"),
			"This request was not sent to you.")
	}
	if req.Status != models.StatusPending {
		return apperrors.WithMessage(apperrors.ConflictError("already "+string(req.Status)), msgRequestAnswered)
	}

	changed, err := s.requests.Respond(ctx, requestID, user.UserID, status)
	if err != nil {
		return err
	}
	if !changed {
		return apperrors.WithMessage(apperrors.ConflictError("no longer pending"), msgRequestAnswered)
	}

	metrics.MentorshipTransitions.WithLabelValues(string(status)).Inc()
	logger.Info("Mentorship request answered",
		zap.Int64("request_id", requestID),
		zap.String("status", string(status)))
	return nil
}

// ListPending returns the user's pending requests, newest first. Mentors see
// requests addressed to them, mentorees the requests they sent.
func (s *MentorshipService) ListPending(ctx context.Context, user models.SessionUser) ([]models.MentorshipRequestView, error) {
	return s.requests.ListPending(ctx, user.UserID, user.Role)
}
