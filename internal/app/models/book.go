package models

import "time"

// Book defines the book model based on the 'books' table
type Book struct {
	ID           int64          `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Author       string         `json:"author" db:"author"`
	Subject      string         `json:"subject" db:"subject"`
	Edition      string         `json:"edition,omitempty" db:"edition"`
	Branch       string         `json:"branch" db:"branch"`
	Semester     string         `json:"semester" db:"semester"`
	FileURL      string         `json:"fileUrl" db:"file_url"`
	UploaderID   int64          `json:"uploaderId" db:"uploader_id"`
	Status       ResourceStatus `json:"status" db:"status"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
	UploaderName string         `json:"uploaderName,omitempty"` // Joined from users, no db tag
}
