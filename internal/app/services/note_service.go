package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
	"github.com/campushare/backend/internal/pkg/helpers"
)

// NoteService handles class note operations
type NoteService struct {
	noteRepo *repositories.NoteRepository
	logger   zerolog.Logger
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo *repositories.NoteRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		logger:   logger,
	}
}

// List returns notes visible to the caller. Non-admin callers only see
// approved notes unless they restrict the listing to their own uploads.
func (s *NoteService) List(ctx context.Context, identity auth.Identity, page, size int, filters repositories.ResourceFilters) (*dto.NoteListResponse, error) {
	filters = visibleResourceFilters(identity, filters)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

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

// GetByID returns a single note if the caller may see it
func (s *NoteService) GetByID(ctx context.Context, identity auth.Identity, id int64) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canViewResource(identity, note.Status, note.UploaderID) {
		// Hidden resources look absent to everyone else
		return nil, apperrors.ErrNoteNotFound
	}

	resp := dto.FromNote(note)
	return &resp, nil
}

// Create uploads a new note. The caller needs the upload privilege; teacher
// uploads go live immediately, student uploads await moderation.
func (s *NoteService) Create(ctx context.Context, identity auth.Identity, req dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if err := checkUploadAllowed(identity); err != nil {
		return nil, err
	}

	note := &models.Note{
		Title:       req.Title,
		Subject:     req.Subject,
		Description: req.Description,
		Branch:      req.Branch,
		Semester:    req.Semester,
		FileURL:     req.FileURL,
		UploaderID:  identity.UserID,
		Status:      initialResourceStatus(identity),
	}

	id, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, err
	}

	return s.fetch(ctx, id)
}

// Update modifies an existing note. Only the uploader or the admin may
// change it; a non-admin edit resets the note to pending moderation.
func (s *NoteService) Update(ctx context.Context, identity auth.Identity, id int64, req dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkOwnerOrAdmin(identity, note.UploaderID); err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Subject = req.Subject
	note.Description = req.Description
	note.Branch = req.Branch
	note.Semester = req.Semester
	note.FileURL = req.FileURL
	if !identity.IsAdminSentinel() {
		note.Status = models.StatusPending
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return s.fetch(ctx, id)
}

// Delete removes a note. Only the uploader or the admin may delete it.
func (s *NoteService) Delete(ctx context.Context, identity auth.Identity, id int64) error {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := checkOwnerOrAdmin(identity, note.UploaderID); err != nil {
		return err
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("noteID", id).Int64("by", identity.UserID).Msg("Note deleted")
	return nil
}

func (s *NoteService) fetch(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromNote(note)
	return &resp, nil
}
