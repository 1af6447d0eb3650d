package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/app/services"
	"github.com/campushare/backend/internal/middleware"
	"github.com/campushare/backend/internal/pkg/auth"
)

// UserController handles profile and notification operations
type UserController struct {
	userService     *services.UserService
	feedbackService *services.FeedbackService
	logger          zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, feedbackService *services.FeedbackService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService:     userService,
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// GetProfile returns the caller's profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserProfile}
// @Router /users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	identity := mustIdentity(ctx)

	// The admin sentinel has no account row behind it
	if identity.IsAdminSentinel() {
		ctx.JSON(http.StatusOK, dto.SuccessResponse(dto.UserProfile{
			Name:  identity.Name,
			RegNo: identity.RegNo,
			Role:  string(identity.Role),
		}))
		return
	}

	profile, err := c.userService.GetProfile(ctx.Request.Context(), identity.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(profile))
}

// UpdateProfile updates the caller's profile fields
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserProfile}
// @Router /users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	if identity.IsAdminSentinel() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "The admin account has no profile")))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.userService.UpdateProfile(ctx.Request.Context(), identity.UserID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(profile))
}

// ChangePassword replaces the caller's password
// @Summary Change own password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Router /users/me/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	if identity.IsAdminSentinel() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "The admin credential is managed through configuration")))
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.ChangePassword(ctx.Request.Context(), identity.UserID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Password changed"}))
}

// Notifications returns the caller's notifications
// @Summary List own notifications
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /users/me/notifications [get]
func (c *UserController) Notifications(ctx *gin.Context) {
	identity := mustIdentity(ctx)

	notifications, err := c.feedbackService.Notifications(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(notifications))
}

// MarkNotificationRead marks one of the caller's notifications as read
// @Summary Mark a notification as read
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse
// @Router /users/me/notifications/{id}/read [put]
func (c *UserController) MarkNotificationRead(ctx *gin.Context) {
	identity := mustIdentity(ctx)

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.feedbackService.MarkNotificationRead(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Notification marked as read"}))
}

// mustIdentity returns the identity stored by the auth middleware. Routes
// using it are always registered behind JWTAuth.
func mustIdentity(ctx *gin.Context) auth.Identity {
	identity, _ := middleware.GetIdentity(ctx)
	return identity
}

// parseIDParam reads the "id" path parameter; on failure it writes a 400
// response and returns false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
