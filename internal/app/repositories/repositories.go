package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	NoteRepository         *NoteRepository
	BookRepository         *BookRepository
	PaperRepository        *PaperRepository
	RequestRepository      *RequestRepository
	FeedbackRepository     *FeedbackRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		NoteRepository:         NewNoteRepository(db),
		BookRepository:         NewBookRepository(db),
		PaperRepository:        NewPaperRepository(db),
		RequestRepository:      NewRequestRepository(db),
		FeedbackRepository:     NewFeedbackRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
