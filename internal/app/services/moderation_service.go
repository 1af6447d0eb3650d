package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/helpers"
)

// ResourceKind names the moderatable resource tables
type ResourceKind string

const (
	KindNote  ResourceKind = "note"
	KindBook  ResourceKind = "book"
	KindPaper ResourceKind = "paper"
)

// NoteStore is the slice of note storage the moderation queue needs.
type NoteStore interface {
	List(ctx context.Context, offset uint64, limit int, filters repositories.ResourceFilters) ([]models.Note, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	SetStatus(ctx context.Context, id int64, status models.ResourceStatus) error
}

// BookStore is the slice of book storage the moderation queue needs.
type BookStore interface {
	List(ctx context.Context, offset uint64, limit int, filters repositories.ResourceFilters) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	SetStatus(ctx context.Context, id int64, status models.ResourceStatus) error
}

// PaperStore is the slice of question-paper storage the moderation queue needs.
type PaperStore interface {
	List(ctx context.Context, offset uint64, limit int, filters repositories.ResourceFilters, year int, term models.Term) ([]models.QuestionPaper, int64, error)
	GetByID(ctx context.Context, id int64) (*models.QuestionPaper, error)
	SetStatus(ctx context.Context, id int64, status models.ResourceStatus) error
}

// NotificationStore delivers user notifications.
type NotificationStore interface {
	Create(ctx context.Context, userID int64, message string) error
}

// ModerationService handles the admin review queue for uploaded resources.
// Only pending resources accept a decision; approving or rejecting an
// already-moderated resource is an invalid transition.
type ModerationService struct {
	noteRepo         NoteStore
	bookRepo         BookStore
	paperRepo        PaperStore
	notificationRepo NotificationStore
	logger           zerolog.Logger
}

// NewModerationService creates a new ModerationService
func NewModerationService(
	noteRepo NoteStore,
	bookRepo BookStore,
	paperRepo PaperStore,
	notificationRepo NotificationStore,
	logger zerolog.Logger,
) *ModerationService {
	return &ModerationService{
		noteRepo:         noteRepo,
		bookRepo:         bookRepo,
		paperRepo:        paperRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// PendingNotes lists notes awaiting review
func (s *ModerationService) PendingNotes(ctx context.Context, page, size int) (*dto.NoteListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	filters := repositories.ResourceFilters{Status: models.StatusPending}

	notes, totalItems, err := s.noteRepo.List(ctx, offset, limit, filters)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		rows = append(rows, dto.FromNote(&notes[i]))
	}

	return &dto.NoteListResponse{
		Notes:      rows,
		Pagination: helpers.NewPaginationInfo(totalItems, page, limit),
	}, nil
}

// PendingBooks lists books awaiting review
func (s *ModerationService) PendingBooks(ctx context.Context, page, size int) (*dto.BookListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	filters := repositories.ResourceFilters{Status: models.StatusPending}

	books, totalItems, err := s.bookRepo.List(ctx, offset, limit, filters)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		rows = append(rows, dto.FromBook(&books[i]))
	}

	return &dto.BookListResponse{
		Books:      rows,
		Pagination: helpers.NewPaginationInfo(totalItems, page, limit),
	}, nil
}

// PendingPapers lists question papers awaiting review
func (s *ModerationService) PendingPapers(ctx context.Context, page, size int) (*dto.PaperListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	filters := repositories.ResourceFilters{Status: models.StatusPending}

	papers, totalItems, err := s.paperRepo.List(ctx, offset, limit, filters, 0, "")
	if err != nil {
		return nil, err
	}

	rows := make([]dto.PaperResponse, 0, len(papers))
	for i := range papers {
		rows = append(rows, dto.FromPaper(&papers[i]))
	}

	return &dto.PaperListResponse{
		Papers:     rows,
		Pagination: helpers.NewPaginationInfo(totalItems, page, limit),
	}, nil
}

// Moderate applies an approve/reject decision to a pending resource and
// notifies its uploader.
func (s *ModerationService) Moderate(ctx context.Context, kind ResourceKind, id int64, status string) error {
	decision := models.ResourceStatus(status)
	if decision != models.StatusApproved && decision != models.StatusRejected {
		return apperrors.ErrInvalidStatus
	}

	var (
		current    models.ResourceStatus
		uploaderID int64
		title      string
		label      string
	)

	switch kind {
	case KindNote:
		note, err := s.noteRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		current, uploaderID, title, label = note.Status, note.UploaderID, note.Title, "note"
	case KindBook:
		book, err := s.bookRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		current, uploaderID, title, label = book.Status, book.UploaderID, book.Title, "book"
	case KindPaper:
		paper, err := s.paperRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		current, uploaderID, title, label = paper.Status, paper.UploaderID, paper.Title, "question paper"
	default:
		return apperrors.ErrResourceNotFound
	}

	if current != models.StatusPending {
		return apperrors.ErrInvalidStatus
	}

	var err error
	switch kind {
	case KindNote:
		err = s.noteRepo.SetStatus(ctx, id, decision)
	case KindBook:
		err = s.bookRepo.SetStatus(ctx, id, decision)
	case KindPaper:
		err = s.paperRepo.SetStatus(ctx, id, decision)
	}
	if err != nil {
		return err
	}

	verb := "rejected"
	if decision == models.StatusApproved {
		verb = "approved"
	}
	message := "Your " + label + " \"" + title + "\" was " + verb
	if err := s.notificationRepo.Create(ctx, uploaderID, message); err != nil {
		s.logger.Warn().Err(err).Int64("uploaderID", uploaderID).Msg("Failed to create moderation notification")
	}

	s.logger.Info().
		Str("kind", string(kind)).
		Int64("id", id).
		Str("decision", string(decision)).
		Msg("Resource moderated")
	return nil
}
