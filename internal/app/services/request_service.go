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

// RequestStore is the slice of material-request storage the service needs.
type RequestStore interface {
	List(ctx context.Context, offset uint64, limit int, filters repositories.RequestFilters) ([]models.MaterialRequest, int64, error)
	GetByID(ctx context.Context, id int64) (*models.MaterialRequest, error)
	Create(ctx context.Context, req *models.MaterialRequest) (int64, error)
	SetStatus(ctx context.Context, id int64, status models.RequestStatus) error
	Delete(ctx context.Context, id int64) error
}

// RequestService handles material request operations
type RequestService struct {
	requestRepo      RequestStore
	notificationRepo NotificationStore
	logger           zerolog.Logger
}

// NewRequestService creates a new RequestService
func NewRequestService(requestRepo RequestStore, notificationRepo NotificationStore, logger zerolog.Logger) *RequestService {
	return &RequestService{
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List returns material requests with pagination and optional filtering.
// Requests are visible to all authenticated users.
func (s *RequestService) List(ctx context.Context, page, size int, filters repositories.RequestFilters) (*dto.MaterialRequestListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	requests, totalItems, err := s.requestRepo.List(ctx, offset, limit, filters)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.MaterialRequestResponse, 0, len(requests))
	for i := range requests {
		rows = append(rows, dto.FromMaterialRequest(&requests[i]))
	}

	return &dto.MaterialRequestListResponse{
		Requests:   rows,
		Pagination: helpers.NewPaginationInfo(totalItems, page, limit),
	}, nil
}

// GetByID returns a single material request
func (s *RequestService) GetByID(ctx context.Context, id int64) (*dto.MaterialRequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromMaterialRequest(req)
	return &resp, nil
}

// Create opens a new material request on behalf of the caller
func (s *RequestService) Create(ctx context.Context, identity auth.Identity, req dto.CreateMaterialRequest) (*dto.MaterialRequestResponse, error) {
	if identity.IsAdminSentinel() {
		return nil, apperrors.NewForbiddenError("the admin account cannot open material requests")
	}

	request := &models.MaterialRequest{
		RequesterID: identity.UserID,
		Title:       req.Title,
		Description: req.Description,
		Branch:      req.Branch,
		Semester:    req.Semester,
		Status:      models.RequestOpen,
	}

	id, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// SetStatus resolves a material request. Admin only; an open request can
// be fulfilled or rejected, and a resolved request stays resolved.
func (s *RequestService) SetStatus(ctx context.Context, id int64, status string) (*dto.MaterialRequestResponse, error) {
	statusType := models.RequestStatus(status)
	if statusType != models.RequestFulfilled && statusType != models.RequestRejected {
		return nil, apperrors.ErrInvalidStatus
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestOpen {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.requestRepo.SetStatus(ctx, id, statusType); err != nil {
		return nil, err
	}

	message := "Your material request \"" + request.Title + "\" was rejected"
	if statusType == models.RequestFulfilled {
		message = "Your material request \"" + request.Title + "\" has been fulfilled"
	}
	if err := s.notificationRepo.Create(ctx, request.RequesterID, message); err != nil {
		// The status change already happened; a lost notification is not fatal
		s.logger.Warn().Err(err).Int64("requestID", id).Msg("Failed to create request notification")
	}

	s.logger.Info().Int64("requestID", id).Str("status", status).Msg("Material request resolved")
	return s.GetByID(ctx, id)
}

// Delete removes a material request. Only the requester or the admin may
// delete it.
func (s *RequestService) Delete(ctx context.Context, identity auth.Identity, id int64) error {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := checkOwnerOrAdmin(identity, request.RequesterID); err != nil {
		return err
	}

	return s.requestRepo.Delete(ctx, id)
}
