package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models/dto"
	"github.com/campushare/backend/internal/app/services"
	"github.com/campushare/backend/internal/middleware"
	"github.com/campushare/backend/internal/pkg/helpers"
)

// PaperController handles past-year question paper operations
type PaperController struct {
	paperService *services.PaperService
	logger       zerolog.Logger
}

// NewPaperController creates a new PaperController
func NewPaperController(paperService *services.PaperService, logger zerolog.Logger) *PaperController {
	return &PaperController{
		paperService: paperService,
		logger:       logger,
	}
}

// List returns question papers visible to the caller
// @Summary List question papers
// @Tags papers
// @Produce json
// @Security BearerAuth
// @Param year query int false "Exam year"
// @Param term query string false "Exam term (FALL or SPRING)"
// @Success 200 {object} dto.APIResponse{data=dto.PaperListResponse}
// @Router /papers [get]
func (c *PaperController) List(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	page, size := helpers.ParsePaginationParams(ctx)
	filters := parseResourceFilters(ctx, identity)

	year := 0
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year parameter")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		year = parsed
	}

	response, err := c.paperService.List(ctx.Request.Context(), identity, page, size, filters, year, ctx.Query("term"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Get returns a single question paper
// @Summary Get a question paper
// @Tags papers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Paper ID"
// @Success 200 {object} dto.APIResponse{data=dto.PaperResponse}
// @Router /papers/{id} [get]
func (c *PaperController) Get(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	response, err := c.paperService.GetByID(ctx.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Create uploads a new question paper
// @Summary Upload a question paper
// @Tags papers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaperRequest true "Paper data"
// @Success 201 {object} dto.APIResponse{data=dto.PaperResponse}
// @Router /papers [post]
func (c *PaperController) Create(ctx *gin.Context) {
	identity := mustIdentity(ctx)

	var req dto.CreatePaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.paperService.Create(ctx.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse(response))
}

// Update modifies an existing question paper
// @Summary Update a question paper
// @Tags papers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Paper ID"
// @Param request body dto.CreatePaperRequest true "Paper data"
// @Success 200 {object} dto.APIResponse{data=dto.PaperResponse}
// @Router /papers/{id} [put]
func (c *PaperController) Update(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreatePaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.paperService.Update(ctx.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Delete removes a question paper
// @Summary Delete a question paper
// @Tags papers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Paper ID"
// @Success 200 {object} dto.APIResponse
// @Router /papers/{id} [delete]
func (c *PaperController) Delete(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.paperService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Question paper deleted"}))
}
