package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testUser = models.SessionUser{UserID: 2, Name: "Bob", Email: "bob@example.com", Role: models.RoleMentoree}

// withSession stands in for SessionMiddleware
func withSession(user models.SessionUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionContextKey, &models.Session{ID: "sess-1", User: user})
		c.Next()
	}
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeStatus(t *testing.T, w *httptest.ResponseRecorder) models.StatusResponse {
	t.Helper()
	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req *models.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.Session, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.Session), args.String(1), args.Error(2)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) {
	m.Called(ctx, sessionID)
}

type mockMessageService struct{ mock.Mock }

func (m *mockMessageService) Send(ctx context.Context, sender models.SessionUser, req *models.SendMessageRequest) (int64, error) {
	args := m.Called(ctx, sender, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageService) ListReceived(ctx context.Context, user models.SessionUser) ([]models.InboxMessage, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InboxMessage), args.Error(1)
}

func (m *mockMessageService) ListSent(ctx context.Context, user models.SessionUser) ([]models.InboxMessage, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InboxMessage), args.Error(1)
}

func (m *mockMessageService) Get(ctx context.Context, user models.SessionUser, id int64) (*models.Message, error) {
	args := m.Called(ctx, user, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *mockMessageService) MarkRead(ctx context.Context, user models.SessionUser, id int64) error {
	return m.Called(ctx, user, id).Error(0)
}

func (m *mockMessageService) UnreadCount(ctx context.Context, user models.SessionUser) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

type mockTaskService struct{ mock.Mock }

func (m *mockTaskService) List(ctx context.Context, user models.SessionUser) ([]models.Task, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *mockTaskService) Create(ctx context.Context, user models.SessionUser, req *models.CreateTaskRequest) (int64, error) {
	args := m.Called(ctx, user, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTaskService) Delete(ctx context.Context, user models.SessionUser, id int64) error {
	return m.Called(ctx, user, id).Error(0)
}

type mockPasswordResetService struct{ mock.Mock }

func (m *mockPasswordResetService) SendCode(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockPasswordResetService) VerifyCode(ctx context.Context, email, code string) (bool, error) {
	args := m.Called(ctx, email, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockPasswordResetService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

type mockMentorshipService struct{ mock.Mock }

func (m *mockMentorshipService) Request(ctx context.Context, user models.SessionUser, mentorID int64) error {
	return m.Called(ctx, user, mentorID).Error(0)
}

func (m *mockMentorshipService) Respond(ctx context.Context, user models.SessionUser, requestID int64, status models.RequestStatus) error {
	return m.Called(ctx, user, requestID, status).Error(0)
}

func (m *mockMentorshipService) ListPending(ctx context.Context, user models.SessionUser) ([]models.MentorshipRequestView, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MentorshipRequestView), args.Error(1)
}

type mockFriendService struct{ mock.Mock }

func (m *mockFriendService) AddFriend(ctx context.Context, user models.SessionUser, targetID int64) error {
	return m.Called(ctx, user, targetID).Error(0)
}

func (m *mockFriendService) Respond(ctx context.Context, user models.SessionUser, contactID int64, status models.RequestStatus) error {
	return m.Called(ctx, user, contactID, status).Error(0)
}

func (m *mockFriendService) ListContacts(ctx context.Context, user models.SessionUser) ([]models.PublicProfile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicProfile), args.Error(1)
}

func (m *mockFriendService) ListFriendRequests(ctx context.Context, user models.SessionUser) ([]models.FriendRequest, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FriendRequest), args.Error(1)
}

type mockSearchService struct{ mock.Mock }

func (m *mockSearchService) Search(ctx context.Context, user models.SessionUser, term string) ([]models.PublicProfile, error) {
	args := m.Called(ctx, user, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicProfile), args.Error(1)
}

type mockSettingsService struct{ mock.Mock }

func (m *mockSettingsService) Update(ctx context.Context, user models.SessionUser, req *models.UpdateSettingsRequest) (models.SessionUser, error) {
	args := m.Called(ctx, user, req)
	return args.Get(0).(models.SessionUser), args.Error(1)
}

type mockContactFormService struct{ mock.Mock }

func (m *mockContactFormService) Submit(ctx context.Context, req *models.ContactFormRequest) error {
	return m.Called(ctx, req).Error(0)
}
