package services

import (
	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
)

// visibleResourceFilters narrows list filters to what the caller may see.
// The admin sees everything and may filter by any status. A regular caller
// listing their own uploads sees all of their statuses; otherwise the
// listing is pinned to approved resources.
func visibleResourceFilters(identity auth.Identity, filters repositories.ResourceFilters) repositories.ResourceFilters {
	if identity.IsAdminSentinel() {
		return filters
	}

	if filters.Uploader == identity.UserID && identity.UserID > 0 {
		return filters
	}

	filters.Uploader = 0
	filters.Status = models.StatusApproved
	return filters
}

// canViewResource reports whether the caller may see a single resource
func canViewResource(identity auth.Identity, status models.ResourceStatus, uploaderID int64) bool {
	if identity.IsAdminSentinel() {
		return true
	}
	if status == models.StatusApproved {
		return true
	}
	return uploaderID == identity.UserID
}

// checkUploadAllowed verifies the caller may upload resources
func checkUploadAllowed(identity auth.Identity) error {
	if identity.IsAdminSentinel() {
		return apperrors.NewForbiddenError("the admin account cannot own uploads")
	}
	if !identity.CanUpload {
		return apperrors.ErrUploadNotAllowed
	}
	return nil
}

// checkOwnerOrAdmin verifies the caller owns the resource or is the admin
func checkOwnerOrAdmin(identity auth.Identity, ownerID int64) error {
	if identity.IsAdminSentinel() {
		return nil
	}
	if identity.UserID == ownerID {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// initialResourceStatus is the moderation state a fresh upload starts in.
// Teacher uploads are trusted and go live immediately.
func initialResourceStatus(identity auth.Identity) models.ResourceStatus {
	if identity.Role == models.RoleTeacher {
		return models.StatusApproved
	}
	return models.StatusPending
}
