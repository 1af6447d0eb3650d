package models

import "time"

// MaterialRequest defines a request for a missing resource based on the
// 'material_requests' table
type MaterialRequest struct {
	ID            int64         `json:"id" db:"id"`
	RequesterID   int64         `json:"requesterId" db:"requester_id"`
	Title         string        `json:"title" db:"title"`
	Description   string        `json:"description,omitempty" db:"description"`
	Branch        string        `json:"branch" db:"branch"`
	Semester      string        `json:"semester" db:"semester"`
	Status        RequestStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
	RequesterName string        `json:"requesterName,omitempty"` // Joined from users, no db tag
}
