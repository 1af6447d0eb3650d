package dto

import (
	"time"

	"github.com/campushare/backend/internal/app/models"
)

// CreateNoteRequest represents a note upload
type CreateNoteRequest struct {
	Title       string `json:"title" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	Branch      string `json:"branch" binding:"required"`
	Semester    string `json:"semester" binding:"required"`
	FileURL     string `json:"fileUrl" binding:"required,url"`
}

// UpdateNoteRequest represents a note update
type UpdateNoteRequest struct {
	Title       string `json:"title" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
	Branch      string `json:"branch" binding:"required"`
	Semester    string `json:"semester" binding:"required"`
	FileURL     string `json:"fileUrl" binding:"required,url"`
}

// NoteResponse represents a note in API responses
type NoteResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description,omitempty"`
	Branch       string    `json:"branch"`
	Semester     string    `json:"semester"`
	FileURL      string    `json:"fileUrl"`
	Status       string    `json:"status"`
	UploaderID   int64     `json:"uploaderId"`
	UploaderName string    `json:"uploaderName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NoteListResponse represents a paginated list of notes
type NoteListResponse struct {
	Notes      []NoteResponse `json:"notes"`
	Pagination PaginationInfo `json:"pagination"`
}

// FromNote converts a models.Note to a NoteResponse
func FromNote(note *models.Note) NoteResponse {
	if note == nil {
		return NoteResponse{}
	}
	return NoteResponse{
		ID:           note.ID,
		Title:        note.Title,
		Subject:      note.Subject,
		Description:  note.Description,
		Branch:       note.Branch,
		Semester:     note.Semester,
		FileURL:      note.FileURL,
		Status:       string(note.Status),
		UploaderID:   note.UploaderID,
		UploaderName: note.UploaderName,
		CreatedAt:    note.CreatedAt,
	}
}

// CreateBookRequest represents a book upload
type CreateBookRequest struct {
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	Edition  string `json:"edition"`
	Branch   string `json:"branch" binding:"required"`
	Semester string `json:"semester" binding:"required"`
	FileURL  string `json:"fileUrl" binding:"required,url"`
}

// BookResponse represents a book in API responses
type BookResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Subject      string    `json:"subject"`
	Edition      string    `json:"edition,omitempty"`
	Branch       string    `json:"branch"`
	Semester     string    `json:"semester"`
	FileURL      string    `json:"fileUrl"`
	Status       string    `json:"status"`
	UploaderID   int64     `json:"uploaderId"`
	UploaderName string    `json:"uploaderName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookListResponse represents a paginated list of books
type BookListResponse struct {
	Books      []BookResponse `json:"books"`
	Pagination PaginationInfo `json:"pagination"`
}

// FromBook converts a models.Book to a BookResponse
func FromBook(book *models.Book) BookResponse {
	if book == nil {
		return BookResponse{}
	}
	return BookResponse{
		ID:           book.ID,
		Title:        book.Title,
		Author:       book.Author,
		Subject:      book.Subject,
		Edition:      book.Edition,
		Branch:       book.Branch,
		Semester:     book.Semester,
		FileURL:      book.FileURL,
		Status:       string(book.Status),
		UploaderID:   book.UploaderID,
		UploaderName: book.UploaderName,
		CreatedAt:    book.CreatedAt,
	}
}

// CreatePaperRequest represents a question paper upload
type CreatePaperRequest struct {
	Title      string `json:"title" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	CourseCode string `json:"courseCode" binding:"required"`
	Year       int    `json:"year" binding:"required,min=1990"`
	Term       string `json:"term" binding:"required"`
	Branch     string `json:"branch" binding:"required"`
	Semester   string `json:"semester" binding:"required"`
	FileURL    string `json:"fileUrl" binding:"required,url"`
}

// PaperResponse represents a question paper in API responses
type PaperResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	CourseCode   string    `json:"courseCode"`
	Year         int       `json:"year"`
	Term         string    `json:"term"`
	Branch       string    `json:"branch"`
	Semester     string    `json:"semester"`
	FileURL      string    `json:"fileUrl"`
	Status       string    `json:"status"`
	UploaderID   int64     `json:"uploaderId"`
	UploaderName string    `json:"uploaderName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PaperListResponse represents a paginated list of question papers
type PaperListResponse struct {
	Papers     []PaperResponse `json:"papers"`
	Pagination PaginationInfo  `json:"pagination"`
}

// FromPaper converts a models.QuestionPaper to a PaperResponse
func FromPaper(paper *models.QuestionPaper) PaperResponse {
	if paper == nil {
		return PaperResponse{}
	}
	return PaperResponse{
		ID:           paper.ID,
		Title:        paper.Title,
		Subject:      paper.Subject,
		CourseCode:   paper.CourseCode,
		Year:         paper.Year,
		Term:         string(paper.Term),
		Branch:       paper.Branch,
		Semester:     paper.Semester,
		FileURL:      paper.FileURL,
		Status:       string(paper.Status),
		UploaderID:   paper.UploaderID,
		UploaderName: paper.UploaderName,
		CreatedAt:    paper.CreatedAt,
	}
}
