package dto

import "time"

// UserProfile represents a user's own profile view
type UserProfile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	RegNo     string    `json:"regNo"`
	Branch    string    `json:"branch"`
	Semester  string    `json:"semester"`
	Role      string    `json:"role"`
	CanUpload bool      `json:"canUpload"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Branch   string `json:"branch" binding:"required"`
	Semester string `json:"semester" binding:"required"`
}

// AdminUserResponse represents a user row in the admin user list
type AdminUserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	RegNo     string    `json:"regNo"`
	Branch    string    `json:"branch"`
	Semester  string    `json:"semester"`
	Role      string    `json:"role"`
	Blocked   bool      `json:"blocked"`
	CanUpload bool      `json:"canUpload"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []AdminUserResponse `json:"users"`
	Pagination PaginationInfo      `json:"pagination"`
}

// SetBlockedRequest toggles a user's blocked flag
type SetBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// SetCanUploadRequest toggles a user's uploader privilege
type SetCanUploadRequest struct {
	CanUpload *bool `json:"canUpload" binding:"required"`
}

// SetRoleRequest changes a user's role
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
