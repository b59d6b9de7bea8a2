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

const msgFriendRequestAnswered = "This friend request has already been answered."

// FriendService handles friend requests and the contact list
type FriendService struct {
	users    repository.UserStore
	contacts repository.ContactStore
}

// NewFriendService creates a new FriendService
func NewFriendService(users repository.UserStore, contacts repository.ContactStore) *FriendService {
	return &FriendService{
		users:    users,
		contacts: contacts,
	}
}

// AddFriend sends a friend request from user to targetID. Any existing edge
// between the two, in either direction and any state, blocks a new one.
func (s *FriendService) AddFriend(ctx context.Context, user models.SessionUser, targetID int64) error {
	if targetID == user.UserID {
		return validationError("userID", "self", "You cannot add yourself as a friend.")
	}

	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return withNotFound(err, "User not found.")
	}

	id, err := s.contacts.Create(ctx, user.UserID, targetID)
	if err != nil {
		err = withConflict(err, "A friend request between you already exists.")
		return withNotFound(err, "User not found.")
	}

	metrics.ContactTransitions.WithLabelValues(string(models.StatusPending)).Inc()
	logger.Info("Friend request sent",
		zap.Int64("contact_id", id),
		zap.Int64("user_id", user.UserID),
		zap.Int64("target_id", targetID))
	return nil
}

// Respond accepts or rejects a pending friend request. Only the invited
// user may respond.
func (s *FriendService) Respond(ctx context.Context, user models.SessionUser, contactID int64, status models.RequestStatus) error {
	if status != models.StatusAccepted && status != models.StatusRejected {
		return validationError("status", "must be accepted or rejected", "Status must be accepted or rejected.")
	}

	contact, err := s.contacts.GetByID(ctx, contactID)
	if err != nil {
		return withNotFound(err, "Friend request not found.")
	}

	if !contact.HasParty(user.UserID) {
		logger.Warn("Friend request response by non-party",
			zap.Int64("contact_id", contactID),
			zap.Int64("user_id", user.UserID))
		return apperrors.WithMessage(apperrors.AccessDeniedError("not a party"),
			"You are not part of this friend request.")
	}
	if contact.UserID2 != user.UserID {
		return apperrors.WithMessage(apperrors.AccessDeniedError("requester cannot respond"),
			"Only the invited user can respond to this friend request.")
	}
	if contact.Status != models.StatusPending {
		return apperrors.WithMessage(apperrors.ConflictError("already "+string(contact.Status)), msgFriendRequestAnswered)
	}

	changed, err := s.contacts.Respond(ctx, contactID, user.UserID, status)
	if err != nil {
		return err
	}
	if !changed {
		// answered concurrently
		return apperrors.WithMessage(apperrors.ConflictError("no longer pending"), msgFriendRequestAnswered)
	}

	metrics.ContactTransitions.WithLabelValues(string(status)).Inc()
	logger.Info("Friend request answered",
		zap.Int64("contact_id", contactID),
		zap.String("status", string(status)))
	return nil
}

// ListContacts returns the profiles of the user's accepted friends
func (s *FriendService) ListContacts(ctx context.Context, user models.SessionUser) ([]models.PublicProfile, error) {
	return s.contacts.ListAccepted(ctx, user.UserID)
}

// ListFriendRequests returns pending requests the user sent or received
func (s *FriendService) ListFriendRequests(ctx context.Context, user models.SessionUser) ([]models.FriendRequest, error) {
	return s.contacts.ListPending(ctx, user.UserID)
}
