package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/app/services"
	"github.com/campushare/backend/internal/middleware"
	"github.com/campushare/backend/internal/pkg/helpers"
)

// AdminController handles administration operations: user management,
// the moderation queue, material request resolution and feedback review.
// All routes are registered behind the AdminRequired middleware.
type AdminController struct {
	userService       *services.UserService
	moderationService *services.ModerationService
	requestService    *services.RequestService
	feedbackService   *services.FeedbackService
	logger            zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	userService *services.UserService,
	moderationService *services.ModerationService,
	requestService *services.RequestService,
	feedbackService *services.FeedbackService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		userService:       userService,
		moderationService: moderationService,
		requestService:    requestService,
		feedbackService:   feedbackService,
		logger:            logger,
	}
}

// ListUsers returns all registered users
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse}
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	response, err := c.userService.List(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// SetUserBlocked toggles a user's blocked flag
// @Summary Block or unblock a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.SetBlockedRequest true "Blocked flag"
// @Success 200 {object} dto.APIResponse
// @Router /admin/users/{id}/blocked [put]
func (c *AdminController) SetUserBlocked(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SetBlockedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.SetBlocked(ctx.Request.Context(), id, *req.Blocked); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "User blocked flag updated"}))
}

// SetUserCanUpload toggles a user's uploader privilege
// @Summary Grant or revoke upload privilege
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.SetCanUploadRequest true "Upload privilege flag"
// @Success 200 {object} dto.APIResponse
// @Router /admin/users/{id}/can-upload [put]
func (c *AdminController) SetUserCanUpload(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SetCanUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.SetCanUpload(ctx.Request.Context(), id, *req.CanUpload); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "User upload privilege updated"}))
}

// SetUserRole changes a user's role
// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.SetRoleRequest true "New role (STUDENT or TEACHER)"
// @Success 200 {object} dto.APIResponse
// @Router /admin/users/{id}/role [put]
func (c *AdminController) SetUserRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.SetRole(ctx.Request.Context(), id, req.Role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "User role updated"}))
}

// DeleteUser removes a user account
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "User deleted"}))
}

// PendingNotes lists notes awaiting moderation
// @Summary List pending notes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.NoteListResponse}
// @Router /admin/moderation/notes [get]
func (c *AdminController) PendingNotes(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	response, err := c.moderationService.PendingNotes(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// PendingBooks lists books awaiting moderation
// @Summary List pending books
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.BookListResponse}
// @Router /admin/moderation/books [get]
func (c *AdminController) PendingBooks(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	response, err := c.moderationService.PendingBooks(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// PendingPapers lists question papers awaiting moderation
// @Summary List pending question papers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PaperListResponse}
// @Router /admin/moderation/papers [get]
func (c *AdminController) PendingPapers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	response, err := c.moderationService.PendingPapers(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// ModerateNote applies an approve/reject decision to a pending note
// @Summary Moderate a note
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.ModerationRequest true "Decision"
// @Success 200 {object} dto.APIResponse
// @Router /admin/moderation/notes/{id} [put]
func (c *AdminController) ModerateNote(ctx *gin.Context) {
	c.moderate(ctx, services.KindNote)
}

// ModerateBook applies an approve/reject decision to a pending book
// @Summary Moderate a book
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param request body dto.ModerationRequest true "Decision"
// @Success 200 {object} dto.APIResponse
// @Router /admin/moderation/books/{id} [put]
func (c *AdminController) ModerateBook(ctx *gin.Context) {
	c.moderate(ctx, services.KindBook)
}

// ModeratePaper applies an approve/reject decision to a pending paper
// @Summary Moderate a question paper
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Paper ID"
// @Param request body dto.ModerationRequest true "Decision"
// @Success 200 {object} dto.APIResponse
// @Router /admin/moderation/papers/{id} [put]
func (c *AdminController) ModeratePaper(ctx *gin.Context) {
	c.moderate(ctx, services.KindPaper)
}

func (c *AdminController) moderate(ctx *gin.Context, kind services.ResourceKind) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ModerationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.moderationService.Moderate(ctx.Request.Context(), kind, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Moderation decision applied"}))
}

// ResolveRequest fulfills or rejects an open material request
// @Summary Resolve a material request
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.SetRequestStatusRequest true "New status (FULFILLED or REJECTED)"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialRequestResponse}
// @Router /admin/requests/{id}/status [put]
func (c *AdminController) ResolveRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SetRequestStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.requestService.SetStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// ListFeedback returns submitted feedback entries
// @Summary List feedback
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FeedbackListResponse}
// @Router /admin/feedback [get]
func (c *AdminController) ListFeedback(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	response, err := c.feedbackService.List(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// DeleteFeedback removes a feedback entry
// @Summary Delete feedback
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Success 200 {object} dto.APIResponse
// @Router /admin/feedback/{id} [delete]
func (c *AdminController) DeleteFeedback(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.feedbackService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Feedback deleted"}))
}
