package dto

import (
	"time"

	"github.com/campushare/backend/internal/app/models"
)

// CreateMaterialRequest represents a request for a missing resource
type CreateMaterialRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Branch      string `json:"branch" binding:"required"`
	Semester    string `json:"semester" binding:"required"`
}

// MaterialRequestResponse represents a material request in API responses
type MaterialRequestResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Branch        string    `json:"branch"`
	Semester      string    `json:"semester"`
	Status        string    `json:"status"`
	RequesterID   int64     `json:"requesterId"`
	RequesterName string    `json:"requesterName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MaterialRequestListResponse represents a paginated list of material requests
type MaterialRequestListResponse struct {
	Requests   []MaterialRequestResponse `json:"requests"`
	Pagination PaginationInfo            `json:"pagination"`
}

// SetRequestStatusRequest updates a material request's status
type SetRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FromMaterialRequest converts a models.MaterialRequest to a response
func FromMaterialRequest(req *models.MaterialRequest) MaterialRequestResponse {
	if req == nil {
		return MaterialRequestResponse{}
	}
	return MaterialRequestResponse{
		ID:            req.ID,
		Title:         req.Title,
		Description:   req.Description,
		Branch:        req.Branch,
		Semester:      req.Semester,
		Status:        string(req.Status),
		RequesterID:   req.RequesterID,
		RequesterName: req.RequesterName,
		CreatedAt:     req.CreatedAt,
	}
}

// CreateFeedbackRequest represents a feedback submission
type CreateFeedbackRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// FeedbackResponse represents feedback in API responses
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedbackListResponse represents a paginated list of feedback
type FeedbackListResponse struct {
	Feedback   []FeedbackResponse `json:"feedback"`
	Pagination PaginationInfo     `json:"pagination"`
}

// ModerationRequest represents a moderation decision for a pending resource
type ModerationRequest struct {
	Status string `json:"status" binding:"required"` // APPROVED or REJECTED
}
