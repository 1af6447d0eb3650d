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

// PaperService handles past-year question paper operations
type PaperService struct {
	paperRepo *repositories.PaperRepository
	logger    zerolog.Logger
}

// NewPaperService creates a new PaperService
func NewPaperService(paperRepo *repositories.PaperRepository, logger zerolog.Logger) *PaperService {
	return &PaperService{
		paperRepo: paperRepo,
		logger:    logger,
	}
}

// List returns question papers visible to the caller, optionally narrowed
// to an exam year and term.
func (s *PaperService) List(ctx context.Context, identity auth.Identity, page, size int, filters repositories.ResourceFilters, year int, term string) (*dto.PaperListResponse, error) {
	termType, err := parseTerm(term)
	if err != nil {
		return nil, err
	}

	filters = visibleResourceFilters(identity, filters)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	papers, totalItems, err := s.paperRepo.List(ctx, offset, limit, filters, year, termType)
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

// GetByID returns a single question paper if the caller may see it
func (s *PaperService) GetByID(ctx context.Context, identity auth.Identity, id int64) (*dto.PaperResponse, error) {
	paper, err := s.paperRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canViewResource(identity, paper.Status, paper.UploaderID) {
		return nil, apperrors.ErrPaperNotFound
	}

	resp := dto.FromPaper(paper)
	return &resp, nil
}

// Create uploads a new question paper
func (s *PaperService) Create(ctx context.Context, identity auth.Identity, req dto.CreatePaperRequest) (*dto.PaperResponse, error) {
	if err := checkUploadAllowed(identity); err != nil {
		return nil, err
	}

	termType, err := parseTerm(req.Term)
	if err != nil {
		return nil, err
	}
	if termType == "" {
		return nil, apperrors.NewBadRequestError("term must be FALL or SPRING")
	}

	paper := &models.QuestionPaper{
		Title:      req.Title,
		Subject:    req.Subject,
		CourseCode: req.CourseCode,
		Year:       req.Year,
		Term:       termType,
		Branch:     req.Branch,
		Semester:   req.Semester,
		FileURL:    req.FileURL,
		UploaderID: identity.UserID,
		Status:     initialResourceStatus(identity),
	}

	id, err := s.paperRepo.Create(ctx, paper)
	if err != nil {
		return nil, err
	}

	return s.fetch(ctx, id)
}

// Update modifies an existing question paper. Non-admin edits return it
// to pending.
func (s *PaperService) Update(ctx context.Context, identity auth.Identity, id int64, req dto.CreatePaperRequest) (*dto.PaperResponse, error) {
	paper, err := s.paperRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkOwnerOrAdmin(identity, paper.UploaderID); err != nil {
		return nil, err
	}

	termType, err := parseTerm(req.Term)
	if err != nil {
		return nil, err
	}
	if termType == "" {
		return nil, apperrors.NewBadRequestError("term must be FALL or SPRING")
	}

	paper.Title = req.Title
	paper.Subject = req.Subject
	paper.CourseCode = req.CourseCode
	paper.Year = req.Year
	paper.Term = termType
	paper.Branch = req.Branch
	paper.Semester = req.Semester
	paper.FileURL = req.FileURL
	if !identity.IsAdminSentinel() {
		paper.Status = models.StatusPending
	}

	if err := s.paperRepo.Update(ctx, paper); err != nil {
		return nil, err
	}

	return s.fetch(ctx, id)
}

// Delete removes a question paper
func (s *PaperService) Delete(ctx context.Context, identity auth.Identity, id int64) error {
	paper, err := s.paperRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := checkOwnerOrAdmin(identity, paper.UploaderID); err != nil {
		return err
	}

	if err := s.paperRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("paperID", id).Int64("by", identity.UserID).Msg("Question paper deleted")
	return nil
}

func (s *PaperService) fetch(ctx context.Context, id int64) (*dto.PaperResponse, error) {
	paper, err := s.paperRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromPaper(paper)
	return &resp, nil
}

// parseTerm maps a request term string to the model type. Empty means no
// filter; anything else must be a known term.
func parseTerm(term string) (models.Term, error) {
	switch models.Term(term) {
	case "", models.TermFall, models.TermSpring:
		return models.Term(term), nil
	default:
		return "", apperrors.NewBadRequestError("term must be FALL or SPRING")
	}
}
