package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
)

// fakeRequestStore is an in-memory RequestStore for service tests
type fakeRequestStore struct {
	requests map[int64]*models.MaterialRequest
	nextID   int64
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: map[int64]*models.MaterialRequest{}, nextID: 1}
}

func (s *fakeRequestStore) List(_ context.Context, _ uint64, _ int, filters repositories.RequestFilters) ([]models.MaterialRequest, int64, error) {
	out := []models.MaterialRequest{}
	for _, r := range s.requests {
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (s *fakeRequestStore) GetByID(_ context.Context, id int64) (*models.MaterialRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (s *fakeRequestStore) Create(_ context.Context, req *models.MaterialRequest) (int64, error) {
	id := s.nextID
	s.nextID++
	stored := *req
	stored.ID = id
	s.requests[id] = &stored
	return id, nil
}

func (s *fakeRequestStore) SetStatus(_ context.Context, id int64, status models.RequestStatus) error {
	req, ok := s.requests[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	req.Status = status
	return nil
}

func (s *fakeRequestStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.requests[id]; !ok {
		return apperrors.ErrRequestNotFound
	}
	delete(s.requests, id)
	return nil
}

func newRequestFixture() (*RequestService, *fakeRequestStore, *fakeNotificationStore) {
	store := newFakeRequestStore()
	store.requests[1] = &models.MaterialRequest{
		ID: 1, RequesterID: 3, Title: "Compiler design notes", Status: models.RequestOpen,
	}
	store.requests[2] = &models.MaterialRequest{
		ID: 2, RequesterID: 3, Title: "Discrete math book", Status: models.RequestFulfilled,
	}
	store.nextID = 3

	notifications := newFakeNotificationStore()
	return NewRequestService(store, notifications, zerolog.Nop()), store, notifications
}

func TestSetStatusFulfillsOpenRequest(t *testing.T) {
	svc, store, notifications := newRequestFixture()

	resp, err := svc.SetStatus(context.Background(), 1, string(models.RequestFulfilled))
	require.NoError(t, err)

	assert.Equal(t, string(models.RequestFulfilled), resp.Status)
	assert.Equal(t, models.RequestFulfilled, store.requests[1].Status)
	require.Len(t, notifications.messages[3], 1)
	assert.Contains(t, notifications.messages[3][0], "Compiler design notes")
	assert.Contains(t, notifications.messages[3][0], "fulfilled")
}

func TestSetStatusRefusesResolvedRequest(t *testing.T) {
	svc, store, notifications := newRequestFixture()

	_, err := svc.SetStatus(context.Background(), 2, string(models.RequestRejected))
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	assert.Equal(t, models.RequestFulfilled, store.requests[2].Status)
	assert.Empty(t, notifications.messages)
}

func TestSetStatusRefusesInvalidTarget(t *testing.T) {
	svc, store, _ := newRequestFixture()

	// OPEN is the initial state, never a decision; resource statuses
	// and junk strings are refused too
	for _, status := range []string{"", string(models.RequestOpen), "APPROVED", "fulfilled"} {
		_, err := svc.SetStatus(context.Background(), 1, status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "status %q must be refused", status)
	}
	assert.Equal(t, models.RequestOpen, store.requests[1].Status)
}

func TestCreateRefusesAdminSentinel(t *testing.T) {
	svc, store, _ := newRequestFixture()

	_, err := svc.Create(context.Background(), auth.AdminIdentity("ADMIN"), dto.CreateMaterialRequest{
		Title: "Anything", Branch: "CSE", Semester: "4",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Len(t, store.requests, 2)
}

func TestDeleteRequiresOwnerOrAdmin(t *testing.T) {
	svc, store, _ := newRequestFixture()

	stranger := auth.Identity{Kind: auth.SubjectAccount, UserID: 8, Role: models.RoleStudent}
	err := svc.Delete(context.Background(), stranger, 1)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	owner := auth.Identity{Kind: auth.SubjectAccount, UserID: 3, Role: models.RoleStudent}
	require.NoError(t, svc.Delete(context.Background(), owner, 1))
	assert.NotContains(t, store.requests, int64(1))

	admin := auth.AdminIdentity("ADMIN")
	require.NoError(t, svc.Delete(context.Background(), admin, 2))
	assert.Empty(t, store.requests)
}
