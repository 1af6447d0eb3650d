package services

import (
	"errors"
	"testing"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
)

func studentIdentity(id int64, canUpload bool) auth.Identity {
	return auth.Identity{
		Kind:      auth.SubjectAccount,
		UserID:    id,
		Role:      models.RoleStudent,
		CanUpload: canUpload,
	}
}

func TestVisibleResourceFiltersPinsApprovedForStudents(t *testing.T) {
	filters := repositories.ResourceFilters{Status: models.StatusPending, Uploader: 99}

	got := visibleResourceFilters(studentIdentity(5, true), filters)

	if got.Status != models.StatusApproved {
		t.Errorf("Status = %q, want APPROVED", got.Status)
	}
	if got.Uploader != 0 {
		t.Errorf("Uploader = %d, want 0 when listing someone else's uploads", got.Uploader)
	}
}

func TestVisibleResourceFiltersOwnUploads(t *testing.T) {
	filters := repositories.ResourceFilters{Status: models.StatusPending, Uploader: 5}

	got := visibleResourceFilters(studentIdentity(5, true), filters)

	if got.Uploader != 5 {
		t.Errorf("Uploader = %d, want 5", got.Uploader)
	}
	if got.Status != models.StatusPending {
		t.Errorf("Status = %q, want the caller's own filter preserved", got.Status)
	}
}

func TestVisibleResourceFiltersAdminUnrestricted(t *testing.T) {
	filters := repositories.ResourceFilters{Status: models.StatusRejected}

	got := visibleResourceFilters(auth.AdminIdentity("ADMIN"), filters)

	if got.Status != models.StatusRejected {
		t.Errorf("Status = %q, want REJECTED preserved for admin", got.Status)
	}
}

func TestCanViewResource(t *testing.T) {
	tests := []struct {
		name       string
		identity   auth.Identity
		status     models.ResourceStatus
		uploaderID int64
		want       bool
	}{
		{"approved visible to anyone", studentIdentity(1, true), models.StatusApproved, 2, true},
		{"pending hidden from others", studentIdentity(1, true), models.StatusPending, 2, false},
		{"pending visible to owner", studentIdentity(2, true), models.StatusPending, 2, true},
		{"rejected visible to owner", studentIdentity(2, true), models.StatusRejected, 2, true},
		{"pending visible to admin", auth.AdminIdentity("ADMIN"), models.StatusPending, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canViewResource(tt.identity, tt.status, tt.uploaderID); got != tt.want {
				t.Errorf("canViewResource() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckUploadAllowed(t *testing.T) {
	if err := checkUploadAllowed(studentIdentity(1, true)); err != nil {
		t.Errorf("privileged student rejected: %v", err)
	}

	if err := checkUploadAllowed(studentIdentity(1, false)); !errors.Is(err, apperrors.ErrUploadNotAllowed) {
		t.Errorf("error = %v, want ErrUploadNotAllowed", err)
	}

	if err := checkUploadAllowed(auth.AdminIdentity("ADMIN")); err == nil {
		t.Error("admin sentinel must not own uploads")
	}
}

func TestCheckOwnerOrAdmin(t *testing.T) {
	if err := checkOwnerOrAdmin(studentIdentity(3, true), 3); err != nil {
		t.Errorf("owner rejected: %v", err)
	}
	if err := checkOwnerOrAdmin(auth.AdminIdentity("ADMIN"), 3); err != nil {
		t.Errorf("admin rejected: %v", err)
	}
	if err := checkOwnerOrAdmin(studentIdentity(4, true), 3); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("error = %v, want ErrPermissionDenied", err)
	}
}

func TestInitialResourceStatus(t *testing.T) {
	if got := initialResourceStatus(studentIdentity(1, true)); got != models.StatusPending {
		t.Errorf("student upload status = %q, want PENDING", got)
	}

	teacher := auth.Identity{Kind: auth.SubjectAccount, UserID: 2, Role: models.RoleTeacher, CanUpload: true}
	if got := initialResourceStatus(teacher); got != models.StatusApproved {
		t.Errorf("teacher upload status = %q, want APPROVED", got)
	}
}
