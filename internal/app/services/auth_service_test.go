package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/config"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
)

// fakeAccountStore is an in-memory AccountStore for service tests
type fakeAccountStore struct {
	users  map[int64]*models.User
	nextID int64
	calls  int
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{users: map[int64]*models.User{}, nextID: 1}
}

func (s *fakeAccountStore) Create(_ context.Context, user *models.User) (int64, error) {
	s.calls++
	for _, u := range s.users {
		if u.RegNo == user.RegNo {
			return 0, apperrors.ErrRegNoExists
		}
	}
	id := s.nextID
	s.nextID++
	stored := *user
	stored.ID = id
	stored.CreatedAt = time.Now()
	s.users[id] = &stored
	return id, nil
}

func (s *fakeAccountStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.calls++
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeAccountStore) GetByRegNo(_ context.Context, regNo string) (*models.User, error) {
	s.calls++
	for _, u := range s.users {
		if u.RegNo == regNo {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

var testAdminCreds = config.AdminCredentials{RegNo: "ADMIN", Password: "admin-secret"}

func newTestAuthService(store *fakeAccountStore) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	return NewAuthService(store, jwtService, testAdminCreds, zerolog.Nop())
}

func addUser(t *testing.T, store *fakeAccountStore, regNo, password string, role models.RoleType) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Name:         "Test User",
		RegNo:        regNo,
		Branch:       "CS",
		Semester:     "5",
		PasswordHash: hash,
		Role:         role,
		CanUpload:    true,
	}
	id, err := store.Create(context.Background(), user)
	require.NoError(t, err)
	user.ID = id
	return user
}

func TestAuthenticateMissingCredentials(t *testing.T) {
	svc := newTestAuthService(newFakeAccountStore())

	cases := []struct{ regNo, password string }{
		{"", ""},
		{"CS2021001", ""},
		{"", "secret"},
		{"   ", "secret"},
	}
	for _, tc := range cases {
		_, err := svc.Authenticate(context.Background(), tc.regNo, tc.password)
		assert.ErrorIs(t, err, apperrors.ErrMissingCredentials,
			"regNo=%q password=%q", tc.regNo, tc.password)
	}
}

func TestAuthenticateAdminBeforeStorage(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestAuthService(store)

	identity, err := svc.Authenticate(context.Background(), "ADMIN", "admin-secret")
	require.NoError(t, err)

	assert.True(t, identity.IsAdminSentinel())
	assert.Equal(t, models.RoleAdmin, identity.Role)
	assert.Zero(t, identity.UserID)
	// The reserved pair never touches storage
	assert.Zero(t, store.calls)
}

func TestAuthenticateDoesNotRevealAccountExistence(t *testing.T) {
	store := newFakeAccountStore()
	addUser(t, store, "CS2021001", "right-password", models.RoleStudent)
	svc := newTestAuthService(store)

	_, errUnknown := svc.Authenticate(context.Background(), "NOBODY", "whatever")
	_, errWrongPassword := svc.Authenticate(context.Background(), "CS2021001", "wrong-password")

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPassword.Error())
}

func TestAuthenticateAccountSuccess(t *testing.T) {
	store := newFakeAccountStore()
	user := addUser(t, store, "CS2021001", "right-password", models.RoleStudent)
	svc := newTestAuthService(store)

	identity, err := svc.Authenticate(context.Background(), "CS2021001", "right-password")
	require.NoError(t, err)

	assert.Equal(t, auth.SubjectAccount, identity.Kind)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, models.RoleStudent, identity.Role)
	assert.False(t, identity.IsAdminSentinel())
}

func TestAuthenticateBlockedAccountStillVerifies(t *testing.T) {
	store := newFakeAccountStore()
	user := addUser(t, store, "CS2021001", "pw12345678", models.RoleStudent)
	store.users[user.ID].Blocked = true
	svc := newTestAuthService(store)

	identity, err := svc.Authenticate(context.Background(), "CS2021001", "pw12345678")
	require.NoError(t, err)
	assert.True(t, identity.Blocked)
}

func TestLoginIssuesToken(t *testing.T) {
	store := newFakeAccountStore()
	addUser(t, store, "CS2021001", "right-password", models.RoleTeacher)
	svc := newTestAuthService(store)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{RegNo: "CS2021001", Password: "right-password"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, string(models.RoleTeacher), resp.Role)
}

func TestRegisterRejectsReservedRegNo(t *testing.T) {
	svc := newTestAuthService(newFakeAccountStore())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Imposter", RegNo: "ADMIN", Branch: "CS", Semester: "5", Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrRegNoReserved)
}

func TestRegisterCreatesStudent(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestAuthService(store)

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "New Student", RegNo: "CS2022010", Branch: "CS", Semester: "3", Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleStudent, user.Role)
	assert.True(t, user.CanUpload)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// The stored credential verifies with the chosen password
	_, err = svc.Authenticate(context.Background(), "CS2022010", "password123")
	assert.NoError(t, err)
}

func TestResolveIdentityAdminSkipsStorage(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestAuthService(store)

	claims := &auth.Claims{AdminSentinel: true, Role: string(models.RoleAdmin)}
	identity, err := svc.ResolveIdentity(context.Background(), claims)
	require.NoError(t, err)

	assert.True(t, identity.IsAdminSentinel())
	assert.Equal(t, testAdminCreds.RegNo, identity.RegNo)
	assert.Zero(t, store.calls)
}

func TestResolveIdentityRefreshesRoleAndBlocked(t *testing.T) {
	store := newFakeAccountStore()
	user := addUser(t, store, "CS2021001", "pw12345678", models.RoleStudent)
	svc := newTestAuthService(store)

	claims := &auth.Claims{UserID: user.ID, Role: string(models.RoleStudent)}

	// Role changes after the token was issued
	store.users[user.ID].Role = models.RoleTeacher
	store.users[user.ID].Blocked = true

	identity, err := svc.ResolveIdentity(context.Background(), claims)
	require.NoError(t, err)

	assert.Equal(t, models.RoleTeacher, identity.Role)
	assert.True(t, identity.Blocked)
}

func TestResolveIdentityDeletedAccount(t *testing.T) {
	store := newFakeAccountStore()
	user := addUser(t, store, "CS2021001", "pw12345678", models.RoleStudent)
	svc := newTestAuthService(store)

	delete(store.users, user.ID)

	claims := &auth.Claims{UserID: user.ID, Role: string(models.RoleStudent)}
	_, err := svc.ResolveIdentity(context.Background(), claims)
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}
