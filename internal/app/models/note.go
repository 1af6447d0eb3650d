package models

import "time"

// Note defines the class note model based on the 'notes' table
type Note struct {
	ID           int64          `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Subject      string         `json:"subject" db:"subject"`
	Description  string         `json:"description,omitempty" db:"description"`
	Branch       string         `json:"branch" db:"branch"`
	Semester     string         `json:"semester" db:"semester"`
	FileURL      string         `json:"fileUrl" db:"file_url"` // External link pasted by the uploader
	UploaderID   int64          `json:"uploaderId" db:"uploader_id"`
	Status       ResourceStatus `json:"status" db:"status"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
	UploaderName string         `json:"uploaderName,omitempty"` // Joined from users, no db tag
}
