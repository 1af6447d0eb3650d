package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/app/services"
	"github.com/campushare/backend/internal/middleware"
	"github.com/campushare/backend/internal/pkg/helpers"
)

// RequestController handles material request operations
type RequestController struct {
	requestService *services.RequestService
	logger         zerolog.Logger
}

// NewRequestController creates a new RequestController
func NewRequestController(requestService *services.RequestService, logger zerolog.Logger) *RequestController {
	return &RequestController{
		requestService: requestService,
		logger:         logger,
	}
}

// List returns material requests
// @Summary List material requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (OPEN, FULFILLED, REJECTED)"
// @Param mine query bool false "Only own requests"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialRequestListResponse}
// @Router /requests [get]
func (c *RequestController) List(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	page, size := helpers.ParsePaginationParams(ctx)

	filters := repositories.RequestFilters{
		Branch:   ctx.Query("branch"),
		Semester: ctx.Query("semester"),
		Search:   ctx.Query("search"),
		Status:   models.RequestStatus(ctx.Query("status")),
	}
	if ctx.Query("mine") == "true" {
		filters.Requester = identity.UserID
	}

	response, err := c.requestService.List(ctx.Request.Context(), page, size, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Get returns a single material request
// @Summary Get a material request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialRequestResponse}
// @Router /requests/{id} [get]
func (c *RequestController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	response, err := c.requestService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Create opens a new material request
// @Summary Open a material request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMaterialRequest true "Request data"
// @Success 201 {object} dto.APIResponse{data=dto.MaterialRequestResponse}
// @Router /requests [post]
func (c *RequestController) Create(ctx *gin.Context) {
	identity := mustIdentity(ctx)

	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.requestService.Create(ctx.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse(response))
}

// Delete removes a material request
// @Summary Delete a material request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse
// @Router /requests/{id} [delete]
func (c *RequestController) Delete(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.requestService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Material request deleted"}))
}
