package repository

import (
	"context"
	"time"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// UserStore is the users table as seen by services
type UserStore interface {
	Create(ctx context.Context, user *models.NewUser) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error)
	Update(ctx context.Context, update *models.UserUpdate) error
	Search(ctx context.Context, filter models.UserSearchFilter) ([]models.PublicProfile, error)
}

// VerificationCodeStore is an expiring per-email store of password reset codes
type VerificationCodeStore interface {
	Put(ctx context.Context, email, code string, expiresAt time.Time) error
	Get(ctx context.Context, email string) (*models.VerificationCode, error)
	ConsumeAndSetPassword(ctx context.Context, email, code, passwordHash string) (bool, error)
}

// MessageStore is the communications table as seen by services
type MessageStore interface {
	Create(ctx context.Context, msg *models.NewMessage) (int64, error)
	ListReceived(ctx context.Context, userID int64) ([]models.InboxMessage, error)
	ListSent(ctx context.Context, userID int64) ([]models.InboxMessage, error)
	GetForParticipant(ctx context.Context, id, userID int64) (*models.Message, error)
	MarkRead(ctx context.Context, id, receiverID int64) (bool, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
}

// ContactStore is the contacts table as seen by services
type ContactStore interface {
	Create(ctx context.Context, requesterID, inviteeID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Contact, error)
	Respond(ctx context.Context, id, inviteeID int64, status models.RequestStatus) (bool, error)
	ListAccepted(ctx context.Context, userID int64) ([]models.PublicProfile, error)
	ListPending(ctx context.Context, userID int64) ([]models.FriendRequest, error)
}

// MentorshipStore is the mentorship_requests table as seen by services
type MentorshipStore interface {
	Create(ctx context.Context, mentorID, mentoreeID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error)
	Respond(ctx context.Context, id, mentorID int64, status models.RequestStatus) (bool, error)
	ListPending(ctx context.Context, userID int64, role models.Role) ([]models.MentorshipRequestView, error)
}

// TaskStore is the tasks table as seen by services
type TaskStore interface {
	ListByOwner(ctx context.Context, userID int64) ([]models.Task, error)
	Create(ctx context.Context, userID int64, title string, start time.Time) (int64, error)
	Delete(ctx context.Context, id, userID int64) error
}

var (
	_ UserStore             = (*UserRepository)(nil)
	_ VerificationCodeStore = (*VerificationCodeRepository)(nil)
	_ MessageStore          = (*MessageRepository)(nil)
	_ ContactStore          = (*ContactRepository)(nil)
	_ MentorshipStore       = (*MentorshipRepository)(nil)
	_ TaskStore             = (*TaskRepository)(nil)
)
