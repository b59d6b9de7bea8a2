package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// memoryMentorshipStore keeps requests in memory with the same conditional-write
// rules as the table: one pending request per pair, only pending rows change.
type memoryMentorshipStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*models.MentorshipRequest
	names  map[int64]string
}

func newMemoryMentorshipStore(names map[int64]string) *memoryMentorshipStore {
	return &memoryMentorshipStore{rows: map[int64]*models.MentorshipRequest{}, names: names}
}

func (s *memoryMentorshipStore) Create(_ context.Context, mentorID, mentoreeID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.MentorID == mentorID && r.MentoreeID == mentoreeID && r.Status == models.StatusPending {
			return 0, apperrors.ConflictError("pending request exists")
		}
	}
	s.nextID++
	s.rows[s.nextID] = &models.MentorshipRequest{
		ID: s.nextID, MentorID: mentorID, MentoreeID: mentoreeID, Status: models.StatusPending, CreatedAt: time.Now(),
	}
	return s.nextID, nil
}

func (s *memoryMentorshipStore) GetByID(_ context.Context, id int64) (*models.MentorshipRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, apperrors.NotFoundError("mentorship request")
	}
	cp := *r
	return &cp, nil
}

func (s *memoryMentorshipStore) Respond(_ context.Context, id, mentorID int64, status models.RequestStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok || r.MentorID != mentorID || r.Status != models.StatusPending {
		return false, nil
	}
	r.Status = status
	return true, nil
}

func (s *memoryMentorshipStore) ListPending(_ context.Context, userID int64, role models.Role) ([]models.MentorshipRequestView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := []models.MentorshipRequestView{}
	for _, r := range s.rows {
		if r.Status != models.StatusPending {
			continue
		}
		switch {
		case role == models.RoleMentor && r.MentorID == userID:
			views = append(views, models.MentorshipRequestView{
				RequestID: r.ID, CounterpartID: r.MentoreeID, CounterpartName: s.names[r.MentoreeID],
				CounterpartRole: models.RoleMentoree, Status: r.Status,
			})
		case role == models.RoleMentoree && r.MentoreeID == userID:
			views = append(views, models.MentorshipRequestView{
				RequestID: r.ID, CounterpartID: r.MentorID, CounterpartName: s.names[r.MentorID],
				CounterpartRole: models.RoleMentor, Status: r.Status,
			})
		}
	}
	return views, nil
}

func TestMentorshipService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	secondMentor := models.SessionUser{UserID: 4, Name: "Dee Mentor", Email: "dee@example.com", Role: models.RoleMentor}

	users := new(MockUserStore)
	users.On("GetByID", ctx, mentorUser.UserID).Return(&models.User{ID: mentorUser.UserID, Name: mentorUser.Name, Role: models.RoleMentor}, nil)
	store := newMemoryMentorshipStore(map[int64]string{
		mentorUser.UserID: mentorUser.Name,
		menteeUser.UserID: menteeUser.Name,
	})
	service := services.NewMentorshipService(users, store)

	// mentoree asks, a duplicate while pending is refused
	require.NoError(t, service.Request(ctx, menteeUser, mentorUser.UserID))
	err := service.Request(ctx, menteeUser, mentorUser.UserID)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))

	// both parties see it
	mentorView, err := service.ListPending(ctx, mentorUser)
	require.NoError(t, err)
	require.Len(t, mentorView, 1)
	assert.Equal(t, menteeUser.Name, mentorView[0].CounterpartName)

	menteeView, err := service.ListPending(ctx, menteeUser)
	require.NoError(t, err)
	require.Len(t, menteeView, 1)
	assert.Equal(t, mentorUser.Name, menteeView[0].CounterpartName)

	requestID := mentorView[0].RequestID

	// only the named mentor may answer
	err = service.Respond(ctx, secondMentor, requestID, models.StatusAccepted)
	assert.True(t, apperrors.Is(err, apperrors.ErrAccessDenied))
	err = service.Respond(ctx, menteeUser, requestID, models.StatusAccepted)
	assert.True(t, apperrors.Is(err, apperrors.ErrAccessDenied))

	require.NoError(t, service.Respond(ctx, mentorUser, requestID, models.StatusAccepted))

	// answered requests are final
	err = service.Respond(ctx, mentorUser, requestID, models.StatusRejected)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))

	mentorView, err = service.ListPending(ctx, mentorUser)
	require.NoError(t, err)
	assert.Empty(t, mentorView)

	// once the old request is answered the pair may ask again
	require.NoError(t, service.Request(ctx, menteeUser, mentorUser.UserID))
}

func TestMentorshipService_Request_Rules(t *testing.T) {
	ctx := context.Background()

	t.Run("mentor cannot request", func(t *testing.T) {
		users := new(MockUserStore)
		service := services.NewMentorshipService(users, new(MockMentorshipStore))

		err := service.Request(ctx, mentorUser, 4)

		assert.True(t, apperrors.Is(err, apperrors.ErrAccessDenied))
		users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("target must be a mentor", func(t *testing.T) {
		users := new(MockUserStore)
		requests := new(MockMentorshipStore)
		service := services.NewMentorshipService(users, requests)
		users.On("GetByID", ctx, otherUser.UserID).Return(&models.User{ID: otherUser.UserID, Role: models.RoleMentoree}, nil)

		err := service.Request(ctx, menteeUser, otherUser.UserID)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("target must exist", func(t *testing.T) {
		users := new(MockUserStore)
		service := services.NewMentorshipService(users, new(MockMentorshipStore))
		users.On("GetByID", ctx, int64(99)).Return(nil, apperrors.NotFoundError("user"))

		err := service.Request(ctx, menteeUser, 99)

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestMentorshipService_Respond_Missing(t *testing.T) {
	ctx := context.Background()
	requests := new(MockMentorshipStore)
	service := services.NewMentorshipService(new(MockUserStore), requests)
	requests.On("GetByID", ctx, int64(12)).Return(nil, apperrors.NotFoundError("mentorship request"))

	err := service.Respond(ctx, mentorUser, 12, models.StatusAccepted)

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	msg, _ := apperrors.PublicMessage(err)
	assert.Equal(t, "Request not found.", msg)
}
