package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/mailer"
	"github.com/mentorhub/mentorhub-api/pkg/password"
)

// MockUserStore is a mock implementation of repository.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *models.NewUser) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, update *models.UserUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockUserStore) Search(ctx context.Context, filter models.UserSearchFilter) ([]models.PublicProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicProfile), args.Error(1)
}

// MockVerificationCodeStore is a mock implementation of repository.VerificationCodeStore
type MockVerificationCodeStore struct {
	mock.Mock
}

func (m *MockVerificationCodeStore) Put(ctx context.Context, email, code string, expiresAt time.Time) error {
	args := m.Called(ctx, email, code, expiresAt)
	return args.Error(0)
}

func (m *MockVerificationCodeStore) Get(ctx context.Context, email string) (*models.VerificationCode, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationCode), args.Error(1)
}

func (m *MockVerificationCodeStore) ConsumeAndSetPassword(ctx context.Context, email, code, passwordHash string) (bool, error) {
	args := m.Called(ctx, email, code, passwordHash)
	return args.Bool(0), args.Error(1)
}

// MockMessageStore is a mock implementation of repository.MessageStore
type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) Create(ctx context.Context, msg *models.NewMessage) (int64, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageStore) ListReceived(ctx context.Context, userID int64) ([]models.InboxMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InboxMessage), args.Error(1)
}

func (m *MockMessageStore) ListSent(ctx context.Context, userID int64) ([]models.InboxMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InboxMessage), args.Error(1)
}

func (m *MockMessageStore) GetForParticipant(ctx context.Context, id, userID int64) (*models.Message, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageStore) MarkRead(ctx context.Context, id, receiverID int64) (bool, error) {
	args := m.Called(ctx, id, receiverID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageStore) CountUnread(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockContactStore is a mock implementation of repository.ContactStore
type MockContactStore struct {
	mock.Mock
}

func (m *MockContactStore) Create(ctx context.Context, requesterID, inviteeID int64) (int64, error) {
	args := m.Called(ctx, requesterID, inviteeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactStore) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactStore) Respond(ctx context.Context, id, inviteeID int64, status models.RequestStatus) (bool, error) {
	args := m.Called(ctx, id, inviteeID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactStore) ListAccepted(ctx context.Context, userID int64) ([]models.PublicProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicProfile), args.Error(1)
}

func (m *MockContactStore) ListPending(ctx context.Context, userID int64) ([]models.FriendRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FriendRequest), args.Error(1)
}

// MockMentorshipStore is a mock implementation of repository.MentorshipStore
type MockMentorshipStore struct {
	mock.Mock
}

func (m *MockMentorshipStore) Create(ctx context.Context, mentorID, mentoreeID int64) (int64, error) {
	args := m.Called(ctx, mentorID, mentoreeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMentorshipStore) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipStore) Respond(ctx context.Context, id, mentorID int64, status models.RequestStatus) (bool, error) {
	args := m.Called(ctx, id, mentorID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockMentorshipStore) ListPending(ctx context.Context, userID int64, role models.Role) ([]models.MentorshipRequestView, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MentorshipRequestView), args.Error(1)
}

// MockTaskStore is a mock implementation of repository.TaskStore
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) ListByOwner(ctx context.Context, userID int64) ([]models.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskStore) Create(ctx context.Context, userID int64, title string, start time.Time) (int64, error) {
	args := m.Called(ctx, userID, title, start)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskStore) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of services.SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(user models.SessionUser) *models.Session {
	args := m.Called(user)
	return args.Get(0).(*models.Session)
}

func (m *MockSessionStore) Delete(id string) {
	m.Called(id)
}

func (m *MockSessionStore) UpdateUser(user models.SessionUser) int {
	args := m.Called(user)
	return args.Int(0)
}

// MockMailer is a mock implementation of mailer.Sender
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// fakeHasher "hashes" by prefixing, so tests can assert on stored values without bcrypt cost
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return password.ErrMismatch
	}
	return nil
}
