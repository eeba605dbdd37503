package handlers

import (
	"strconv"

	"moviweb-backend/internal/models"
	"moviweb-backend/internal/services"
	"moviweb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary Get all movies
// @Description Get movies across all users with pagination, search, and sorting
// @Tags movies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Search by title or director"
// @Param sort_by query string false "Sort by field (id, title, year, director, rating, created_at, updated_at)" default(created_at)
// @Param order query string false "Sort order (ASC/DESC)" default(DESC)
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")
	sortBy := c.Query("sort_by", "created_at")
	order := c.Query("order", "DESC")

	movies, total, err := h.service.GetAllMovies(ctx, page, limit, search, sortBy, order)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie with its reviews
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(ctx, uint(id))
	if err != nil {
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// GetUserMovies godoc
// @Summary Get a user's movies
// @Description Get all movies owned by the given user
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "List of the user's movies"
// @Failure 400 {object} utils.StandardResponse "Invalid user ID"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id}/movies [get]
func (h *MovieHandler) GetUserMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	movies, err := h.service.GetUserMovies(ctx, uint(userID))
	if err != nil {
		logServiceError(h.logger, err, logrus.Fields{"user_id": userID}, "Failed to get user movies")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// AddMovie godoc
// @Summary Add a movie to a user's collection
// @Description Create a movie under the given user. Blank director/year/rating/poster fields are filled from OMDb when the title is known there; submitted values are kept when the lookup fails.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param movie body MovieRequest true "Movie request object"
// @Success 201 {object} utils.StandardResponse "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users/{id}/movies [post]
func (h *MovieHandler) AddMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Title is required")
	}

	movie := &models.Movie{
		Title:     req.Title,
		Director:  req.Director,
		Year:      req.Year,
		Rating:    req.Rating,
		PosterURL: req.PosterURL,
	}

	if err := h.service.AddMovie(ctx, uint(userID), movie); err != nil {
		logServiceError(h.logger, err, logrus.Fields{"user_id": userID}, "Failed to add movie")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Update fields of an existing movie; omitted fields keep their values
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body models.MovieUpdate true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var update models.MovieUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.UpdateMovie(ctx, uint(id), &update)
	if err != nil {
		logServiceError(h.logger, err, logrus.Fields{"id": id}, "Failed to update movie")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie and its reviews
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(ctx, uint(id)); err != nil {
		logServiceError(h.logger, err, logrus.Fields{"id": id}, "Failed to delete movie")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// GetCollectionStats godoc
// @Summary Get collection statistics
// @Description Get totals, average rating, top rated, and recently added movies
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Collection statistics"
// @Failure 500 {object} utils.StandardResponse "Failed to retrieve statistics"
// @Router /dashboard/stats [get]
func (h *MovieHandler) GetCollectionStats(c *fiber.Ctx) error {
	ctx := c.Context()

	stats, err := h.service.GetCollectionStats(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get collection stats")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve collection statistics")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Collection statistics retrieved successfully", stats)
}
