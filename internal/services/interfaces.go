package services

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// SessionStore is the server-side session store as seen by services
type SessionStore interface {
	Create(user models.SessionUser) *models.Session
	Delete(id string)
	UpdateUser(user models.SessionUser) int
}

// PasswordHasher hashes and checks passwords
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// AuthServiceInterface defines registration, login and logout
type AuthServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.Session, string, error)
	Logout(ctx context.Context, sessionID string)
}

// MessageServiceInterface defines the messaging operations
type MessageServiceInterface interface {
	Send(ctx context.Context, sender models.SessionUser, req *models.SendMessageRequest) (int64, error)
	ListReceived(ctx context.Context, user models.SessionUser) ([]models.InboxMessage, error)
	ListSent(ctx context.Context, user models.SessionUser) ([]models.InboxMessage, error)
	Get(ctx context.Context, user models.SessionUser, id int64) (*models.Message, error)
	MarkRead(ctx context.Context, user models.SessionUser, id int64) error
	UnreadCount(ctx context.Context, user models.SessionUser) (int, error)
}

// FriendServiceInterface defines friend requests and the contact list
type FriendServiceInterface interface {
	AddFriend(ctx context.Context, user models.SessionUser, targetID int64) error
	Respond(ctx context.Context, user models.SessionUser, contactID int64, status models.RequestStatus) error
	ListContacts(ctx context.Context, user models.SessionUser) ([]models.PublicProfile, error)
	ListFriendRequests(ctx context.Context, user models.SessionUser) ([]models.FriendRequest, error)
}

// MentorshipServiceInterface defines mentorship requests
type MentorshipServiceInterface interface {
	Request(ctx context.Context, user models.SessionUser, mentorID int64) error
	Respond(ctx context.Context, user models.SessionUser, requestID int64, status models.RequestStatus) error
	ListPending(ctx context.Context, user models.SessionUser) ([]models.MentorshipRequestView, error)
}

// SearchServiceInterface defines user search
type SearchServiceInterface interface {
	Search(ctx context.Context, user models.SessionUser, term string) ([]models.PublicProfile, error)
}

// TaskServiceInterface defines the task list operations
type TaskServiceInterface interface {
	List(ctx context.Context, user models.SessionUser) ([]models.Task, error)
	Create(ctx context.Context, user models.SessionUser, req *models.CreateTaskRequest) (int64, error)
	Delete(ctx context.Context, user models.SessionUser, id int64) error
}

// SettingsServiceInterface defines account settings changes
type SettingsServiceInterface interface {
	Update(ctx context.Context, user models.SessionUser, req *models.UpdateSettingsRequest) (models.SessionUser, error)
}

// PasswordResetServiceInterface defines the verification-code password reset flow
type PasswordResetServiceInterface interface {
	SendCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) (bool, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

// ContactFormServiceInterface defines the public contact form
type ContactFormServiceInterface interface {
	Submit(ctx context.Context, req *models.ContactFormRequest) error
}

var (
	_ AuthServiceInterface          = (*AuthService)(nil)
	_ MessageServiceInterface       = (*MessageService)(nil)
	_ FriendServiceInterface        = (*FriendService)(nil)
	_ MentorshipServiceInterface    = (*MentorshipService)(nil)
	_ SearchServiceInterface        = (*SearchService)(nil)
	_ TaskServiceInterface          = (*TaskService)(nil)
	_ SettingsServiceInterface      = (*SettingsService)(nil)
	_ PasswordResetServiceInterface = (*PasswordResetService)(nil)
	_ ContactFormServiceInterface   = (*ContactFormService)(nil)
)
