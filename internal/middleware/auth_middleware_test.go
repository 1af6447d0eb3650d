package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/services"
	"github.com/campushare/backend/internal/config"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
)

type stubAccountStore struct {
	users map[int64]*models.User
}

func (s *stubAccountStore) Create(_ context.Context, user *models.User) (int64, error) {
	id := int64(len(s.users) + 1)
	user.ID = id
	s.users[id] = user
	return id, nil
}

func (s *stubAccountStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *stubAccountStore) GetByRegNo(_ context.Context, regNo string) (*models.User, error) {
	for _, u := range s.users {
		if u.RegNo == regNo {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func newTestRouter(t *testing.T, store *stubAccountStore) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	authService := services.NewAuthService(store, jwtService,
		config.AdminCredentials{RegNo: "ADMIN", Password: "admin-secret"}, zerolog.Nop())
	authMiddleware := NewAuthMiddleware(jwtService, authService)

	router := gin.New()
	protected := router.Group("", authMiddleware.JWTAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "role": identity.Role})
	})
	protected.GET("/admin-only", authMiddleware.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t, &stubAccountStore{users: map[int64]*models.User{}})

	w := doRequest(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := newTestRouter(t, &stubAccountStore{users: map[int64]*models.User{}})

	w := doRequest(router, "not.a.token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthValidAccountToken(t *testing.T) {
	store := &stubAccountStore{users: map[int64]*models.User{
		1: {ID: 1, RegNo: "CS2021001", Name: "Ada", Role: models.RoleStudent},
	}}
	router, jwtService := newTestRouter(t, store)

	token, _, err := jwtService.Issue(auth.AccountIdentity(store.users[1]))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthBlockedAccount(t *testing.T) {
	store := &stubAccountStore{users: map[int64]*models.User{
		1: {ID: 1, RegNo: "CS2021001", Name: "Ada", Role: models.RoleStudent},
	}}
	router, jwtService := newTestRouter(t, store)

	token, _, err := jwtService.Issue(auth.AccountIdentity(store.users[1]))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Blocking after issuance must invalidate existing tokens
	store.users[1].Blocked = true

	w := doRequest(router, token)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403, body: %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthDeletedAccount(t *testing.T) {
	store := &stubAccountStore{users: map[int64]*models.User{
		1: {ID: 1, RegNo: "CS2021001", Name: "Ada", Role: models.RoleStudent},
	}}
	router, jwtService := newTestRouter(t, store)

	token, _, err := jwtService.Issue(auth.AccountIdentity(store.users[1]))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	delete(store.users, 1)

	w := doRequest(router, token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401, body: %s", w.Code, w.Body.String())
	}
}

func TestAdminRequired(t *testing.T) {
	store := &stubAccountStore{users: map[int64]*models.User{
		1: {ID: 1, RegNo: "CS2021001", Name: "Ada", Role: models.RoleStudent},
	}}
	router, jwtService := newTestRouter(t, store)

	adminToken, _, err := jwtService.Issue(auth.AdminIdentity("ADMIN"))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	studentToken, _, err := jwtService.Issue(auth.AccountIdentity(store.users[1]))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	adminReq := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	adminReq.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, adminReq)
	if w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	studentReq := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	studentReq.Header.Set("Authorization", "Bearer "+studentToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, studentReq)
	if w.Code != http.StatusForbidden {
		t.Errorf("student status = %d, want 403, body: %s", w.Code, w.Body.String())
	}
}
