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
	"github.com/campushare/backend/internal/pkg/auth"
	"github.com/campushare/backend/internal/pkg/helpers"
)

// NoteController handles class note operations
type NoteController struct {
	noteService *services.NoteService
	logger      zerolog.Logger
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService *services.NoteService, logger zerolog.Logger) *NoteController {
	return &NoteController{
		noteService: noteService,
		logger:      logger,
	}
}

// List returns notes visible to the caller
// @Summary List class notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param branch query string false "Branch filter"
// @Param semester query string false "Semester filter"
// @Param subject query string false "Subject filter"
// @Param search query string false "Title search"
// @Param mine query bool false "Only own uploads"
// @Success 200 {object} dto.APIResponse{data=dto.NoteListResponse}
// @Router /notes [get]
func (c *NoteController) List(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	page, size := helpers.ParsePaginationParams(ctx)
	filters := parseResourceFilters(ctx, identity)

	response, err := c.noteService.List(ctx.Request.Context(), identity, page, size, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Get returns a single note
// @Summary Get a class note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /notes/{id} [get]
func (c *NoteController) Get(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	response, err := c.noteService.GetByID(ctx.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Create uploads a new note
// @Summary Upload a class note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoteRequest true "Note data"
// @Success 201 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 403 {object} dto.ErrorResponse "Upload privilege required"
// @Router /notes [post]
func (c *NoteController) Create(ctx *gin.Context) {
	identity := mustIdentity(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.noteService.Create(ctx.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse(response))
}

// Update modifies an existing note
// @Summary Update a class note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.UpdateNoteRequest true "Note data"
// @Success 200 {object} dto.APIResponse{data=dto.NoteResponse}
// @Router /notes/{id} [put]
func (c *NoteController) Update(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.noteService.Update(ctx.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Delete removes a note
// @Summary Delete a class note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse
// @Router /notes/{id} [delete]
func (c *NoteController) Delete(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.noteService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Note deleted"}))
}

// parseResourceFilters reads the shared resource listing filters from the
// query string. "mine=true" restricts to the caller's uploads; the status
// filter only applies for the admin, visibility rules pin everyone else.
func parseResourceFilters(ctx *gin.Context, identity auth.Identity) repositories.ResourceFilters {
	filters := repositories.ResourceFilters{
		Branch:   ctx.Query("branch"),
		Semester: ctx.Query("semester"),
		Subject:  ctx.Query("subject"),
		Search:   ctx.Query("search"),
	}

	if ctx.Query("mine") == "true" {
		filters.Uploader = identity.UserID
	}

	if identity.IsAdminSentinel() {
		filters.Status = models.ResourceStatus(ctx.Query("status"))
	}

	return filters
}
