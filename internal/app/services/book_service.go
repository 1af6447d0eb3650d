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

// BookService handles reference book operations
type BookService struct {
	bookRepo *repositories.BookRepository
	logger   zerolog.Logger
}

// NewBookService creates a new BookService
func NewBookService(bookRepo *repositories.BookRepository, logger zerolog.Logger) *BookService {
	return &BookService{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

// List returns books visible to the caller
func (s *BookService) List(ctx context.Context, identity auth.Identity, page, size int, filters repositories.ResourceFilters) (*dto.BookListResponse, error) {
	filters = visibleResourceFilters(identity, filters)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

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

// GetByID returns a single book if the caller may see it
func (s *BookService) GetByID(ctx context.Context, identity auth.Identity, id int64) (*dto.BookResponse, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canViewResource(identity, book.Status, book.UploaderID) {
		return nil, apperrors.ErrBookNotFound
	}

	resp := dto.FromBook(book)
	return &resp, nil
}

// Create uploads a new book
func (s *BookService) Create(ctx context.Context, identity auth.Identity, req dto.CreateBookRequest) (*dto.BookResponse, error) {
	if err := checkUploadAllowed(identity); err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:      req.Title,
		Author:     req.Author,
		Subject:    req.Subject,
		Edition:    req.Edition,
		Branch:     req.Branch,
		Semester:   req.Semester,
		FileURL:    req.FileURL,
		UploaderID: identity.UserID,
		Status:     initialResourceStatus(identity),
	}

	id, err := s.bookRepo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	return s.fetch(ctx, id)
}

// Update modifies an existing book. Non-admin edits return it to pending.
func (s *BookService) Update(ctx context.Context, identity auth.Identity, id int64, req dto.CreateBookRequest) (*dto.BookResponse, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkOwnerOrAdmin(identity, book.UploaderID); err != nil {
		return nil, err
	}

	book.Title = req.Title
	book.Author = req.Author
	book.Subject = req.Subject
	book.Edition = req.Edition
	book.Branch = req.Branch
	book.Semester = req.Semester
	book.FileURL = req.FileURL
	if !identity.IsAdminSentinel() {
		book.Status = models.StatusPending
	}

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	return s.fetch(ctx, id)
}

// Delete removes a book
func (s *BookService) Delete(ctx context.Context, identity auth.Identity, id int64) error {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := checkOwnerOrAdmin(identity, book.UploaderID); err != nil {
		return err
	}

	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("bookID", id).Int64("by", identity.UserID).Msg("Book deleted")
	return nil
}

func (s *BookService) fetch(ctx context.Context, id int64) (*dto.BookResponse, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromBook(book)
	return &resp, nil
}
