package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
	"github.com/campushare/backend/internal/pkg/helpers"
)

// UserService handles profile and account operations for real accounts.
// The admin sentinel has no profile; callers must not route it here.
type UserService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns a user's profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		RegNo:     user.RegNo,
		Branch:    user.Branch,
		Semester:  user.Semester,
		Role:      string(user.Role),
		CanUpload: user.CanUpload,
		CreatedAt: user.CreatedAt,
	}, nil
}

// UpdateProfile updates a user's own profile fields
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Branch, req.Semester); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// ChangePassword verifies the old password and replaces it with a new hash
func (s *UserService) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := auth.CheckPassword(user.PasswordHash, req.OldPassword); err != nil {
		return apperrors.ErrInvalidPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Password changed")
	return nil
}

// List returns all users with pagination, for admin use
func (s *UserService) List(ctx context.Context, page, size int) (*dto.UserListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, totalItems, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		rows = append(rows, dto.AdminUserResponse{
			ID:        u.ID,
			Name:      u.Name,
			RegNo:     u.RegNo,
			Branch:    u.Branch,
			Semester:  u.Semester,
			Role:      string(u.Role),
			Blocked:   u.Blocked,
			CanUpload: u.CanUpload,
			CreatedAt: u.CreatedAt,
		})
	}

	return &dto.UserListResponse{
		Users:      rows,
		Pagination: helpers.NewPaginationInfo(totalItems, page, limit),
	}, nil
}

// SetBlocked toggles a user's blocked flag
func (s *UserService) SetBlocked(ctx context.Context, userID int64, blocked bool) error {
	if err := s.userRepo.SetBlocked(ctx, userID, blocked); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Bool("blocked", blocked).Msg("User blocked flag updated")
	return nil
}

// SetCanUpload toggles a user's uploader privilege
func (s *UserService) SetCanUpload(ctx context.Context, userID int64, canUpload bool) error {
	if err := s.userRepo.SetCanUpload(ctx, userID, canUpload); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Bool("canUpload", canUpload).Msg("User upload privilege updated")
	return nil
}

// SetRole changes a user's role. Only student and teacher are assignable;
// the admin role belongs exclusively to the configuration-backed sentinel.
func (s *UserService) SetRole(ctx context.Context, userID int64, role string) error {
	roleType := models.RoleType(role)
	if roleType != models.RoleStudent && roleType != models.RoleTeacher {
		return apperrors.ErrInvalidRoleType
	}

	if err := s.userRepo.SetRole(ctx, userID, roleType); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Str("role", role).Msg("User role updated")
	return nil
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return err
		}
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to delete user")
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("User deleted")
	return nil
}
