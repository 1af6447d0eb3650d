package models

import "time"

// Term represents a semester term
type Term string

const (
	TermFall   Term = "FALL"
	TermSpring Term = "SPRING"
)

// QuestionPaper defines the past-year question paper model based on the
// 'question_papers' table
type QuestionPaper struct {
	ID           int64          `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Subject      string         `json:"subject" db:"subject"`
	CourseCode   string         `json:"courseCode" db:"course_code"`
	Year         int            `json:"year" db:"year"`
	Term         Term           `json:"term" db:"term"`
	Branch       string         `json:"branch" db:"branch"`
	Semester     string         `json:"semester" db:"semester"`
	FileURL      string         `json:"fileUrl" db:"file_url"`
	UploaderID   int64          `json:"uploaderId" db:"uploader_id"`
	Status       ResourceStatus `json:"status" db:"status"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
	UploaderName string         `json:"uploaderName,omitempty"` // Joined from users, no db tag
}
