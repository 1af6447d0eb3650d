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

// BookController handles reference book operations
type BookController struct {
	bookService *services.BookService
	logger      zerolog.Logger
}

// NewBookController creates a new BookController
func NewBookController(bookService *services.BookService, logger zerolog.Logger) *BookController {
	return &BookController{
		bookService: bookService,
		logger:      logger,
	}
}

// List returns books visible to the caller
// @Summary List books
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.BookListResponse}
// @Router /books [get]
func (c *BookController) List(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	page, size := helpers.ParsePaginationParams(ctx)
	filters := parseResourceFilters(ctx, identity)

	response, err := c.bookService.List(ctx.Request.Context(), identity, page, size, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Get returns a single book
// @Summary Get a book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} dto.APIResponse{data=dto.BookResponse}
// @Router /books/{id} [get]
func (c *BookController) Get(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	response, err := c.bookService.GetByID(ctx.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Create uploads a new book
// @Summary Upload a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookRequest true "Book data"
// @Success 201 {object} dto.APIResponse{data=dto.BookResponse}
// @Router /books [post]
func (c *BookController) Create(ctx *gin.Context) {
	identity := mustIdentity(ctx)

	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.bookService.Create(ctx.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse(response))
}

// Update modifies an existing book
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Param request body dto.CreateBookRequest true "Book data"
// @Success 200 {object} dto.APIResponse{data=dto.BookResponse}
// @Router /books/{id} [put]
func (c *BookController) Update(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.bookService.Update(ctx.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(response))
}

// Delete removes a book
// @Summary Delete a book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} dto.APIResponse
// @Router /books/{id} [delete]
func (c *BookController) Delete(ctx *gin.Context) {
	identity := mustIdentity(ctx)
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.bookService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Book deleted"}))
}
