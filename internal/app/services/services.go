package services

import (
	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/config"
	"github.com/campushare/backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	UserService       *UserService
	NoteService       *NoteService
	BookService       *BookService
	PaperService      *PaperService
	RequestService    *RequestService
	FeedbackService   *FeedbackService
	ModerationService *ModerationService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, adminCreds config.AdminCredentials, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService, adminCreds, logger),
		UserService:       NewUserService(repos.UserRepository, logger),
		NoteService:       NewNoteService(repos.NoteRepository, logger),
		BookService:       NewBookService(repos.BookRepository, logger),
		PaperService:      NewPaperService(repos.PaperRepository, logger),
		RequestService:    NewRequestService(repos.RequestRepository, repos.NotificationRepository, logger),
		FeedbackService:   NewFeedbackService(repos.FeedbackRepository, repos.NotificationRepository, logger),
		ModerationService: NewModerationService(repos.NoteRepository, repos.BookRepository, repos.PaperRepository, repos.NotificationRepository, logger),
	}
}
