package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/config"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
)

// AccountStore is the slice of user storage the auth service needs.
type AccountStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByRegNo(ctx context.Context, regNo string) (*models.User, error)
}

// AuthService handles credential verification, registration and token
// issuance. The reserved admin credential pair is injected through the
// config value; it is checked before any storage access so the admin can
// sign in even when the database is unavailable.
type AuthService struct {
	accounts   AccountStore
	jwtService *auth.JWTService
	adminCreds config.AdminCredentials
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(accounts AccountStore, jwtService *auth.JWTService, adminCreds config.AdminCredentials, logger zerolog.Logger) *AuthService {
	return &AuthService{
		accounts:   accounts,
		jwtService: jwtService,
		adminCreds: adminCreds,
		logger:     logger,
	}
}

// Authenticate verifies a credential pair and returns the resulting
// identity. Outcomes:
//   - either field empty: ErrMissingCredentials
//   - matches the reserved admin pair: the admin sentinel identity
//   - otherwise: account lookup plus bcrypt comparison, where an unknown
//     registration number and a wrong password both return
//     ErrInvalidCredentials so callers cannot probe which accounts exist
//
// A blocked account still authenticates; blocking is enforced when the
// identity is used, not here.
func (s *AuthService) Authenticate(ctx context.Context, regNo, password string) (auth.Identity, error) {
	if strings.TrimSpace(regNo) == "" || password == "" {
		return auth.Identity{}, apperrors.ErrMissingCredentials
	}

	// Reserved admin pair wins before any storage access
	if regNo == s.adminCreds.RegNo && password == s.adminCreds.Password {
		s.logger.Info().Msg("Admin sentinel authenticated")
		return auth.AdminIdentity(s.adminCreds.RegNo), nil
	}

	user, err := s.accounts.GetByRegNo(ctx, regNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return auth.Identity{}, apperrors.ErrInvalidCredentials
		}
		return auth.Identity{}, err
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return auth.Identity{}, apperrors.ErrInvalidCredentials
	}

	return auth.AccountIdentity(user), nil
}

// Login authenticates a credential pair and issues a token for it
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	identity, err := s.Authenticate(ctx, req.RegNo, req.Password)
	if err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwtService.Issue(identity)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to issue token")
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
		Role:        string(identity.Role),
		Name:        identity.Name,
	}, nil
}

// Register creates a new student account. The reserved admin registration
// number can never be registered; doing so would shadow the sentinel.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if req.RegNo == s.adminCreds.RegNo {
		return nil, apperrors.ErrRegNoReserved
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		RegNo:        req.RegNo,
		Branch:       req.Branch,
		Semester:     req.Semester,
		PasswordHash: hash,
		Role:         models.RoleStudent,
		Blocked:      false,
		CanUpload:    true,
	}

	id, err := s.accounts.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userID", id).Str("regNo", user.RegNo).Msg("User registered")
	return user, nil
}

// ResolveIdentity turns validated token claims into a current identity.
// The admin sentinel is rebuilt purely from the claims and configuration
// with no storage access. A real account is re-fetched so that role and
// blocked changes made after token issuance take effect immediately; if
// the account is gone the token is useless and ErrAccountNotFound is
// returned.
func (s *AuthService) ResolveIdentity(ctx context.Context, claims *auth.Claims) (auth.Identity, error) {
	if claims.AdminSentinel {
		return auth.AdminIdentity(s.adminCreds.RegNo), nil
	}

	user, err := s.accounts.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return auth.Identity{}, apperrors.ErrAccountNotFound
		}
		return auth.Identity{}, err
	}

	return auth.AccountIdentity(user), nil
}
