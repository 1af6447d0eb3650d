package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name         string    `json:"name" db:"name" example:"John Doe"`                       // Display name
	RegNo        string    `json:"regNo" db:"reg_no" example:"21CS001"`                     // Registration number, natural login key
	Branch       string    `json:"branch" db:"branch" example:"CSE"`                        // Branch/department
	Semester     string    `json:"semester" db:"semester" example:"5"`                      // Current semester
	PasswordHash string    `json:"-" db:"password_hash"`                                    // Salted bcrypt hash (excluded from JSON)
	Role         RoleType  `json:"role" db:"role" example:"STUDENT"`                        // User's role
	Blocked      bool      `json:"blocked" db:"blocked" example:"false"`                    // Whether the user is blocked by an admin
	CanUpload    bool      `json:"canUpload" db:"can_upload" example:"false"`               // Uploader privilege flag
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
