package handlers

import (
	"strconv"

	"moviweb-backend/internal/models"
	"moviweb-backend/internal/services"
	"moviweb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// GetMovieReviews godoc
// @Summary Get a movie's reviews
// @Description Get all reviews for the given movie
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "List of reviews"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/reviews [get]
func (h *ReviewHandler) GetMovieReviews(c *fiber.Ctx) error {
	ctx := c.Context()

	movieID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	reviews, err := h.service.GetMovieReviews(ctx, uint(movieID))
	if err != nil {
		logServiceError(h.logger, err, logrus.Fields{"movie_id": movieID}, "Failed to get reviews")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", reviews)
}

// AddReview godoc
// @Summary Add a review to a movie
// @Description Store a review. With generate=true the text is written by the AI client and tagged as machine-written; generation failures degrade to placeholder text instead of failing the request.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param review body ReviewRequest true "Review request object"
// @Success 201 {object} utils.StandardResponse "Review created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/reviews [post]
func (h *ReviewHandler) AddReview(c *fiber.Ctx) error {
	ctx := c.Context()

	movieID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var review *models.Review
	if req.Generate {
		review, err = h.service.AddGeneratedReview(ctx, uint(movieID))
	} else {
		if req.Text == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Review text is required")
		}
		review, err = h.service.AddReview(ctx, uint(movieID), req.Text)
	}
	if err != nil {
		logServiceError(h.logger, err, logrus.Fields{"movie_id": movieID}, "Failed to add review")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Review created successfully", review)
}

// UpdateReview godoc
// @Summary Update a review
// @Description Update the text of an existing review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param review body models.ReviewUpdate true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Review updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	var update models.ReviewUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	review, err := h.service.UpdateReview(ctx, uint(id), &update)
	if err != nil {
		logServiceError(h.logger, err, logrus.Fields{"id": id}, "Failed to update review")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review updated successfully", review)
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Delete a review by ID
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse "Review deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid review ID"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	if err := h.service.DeleteReview(ctx, uint(id)); err != nil {
		logServiceError(h.logger, err, logrus.Fields{"id": id}, "Failed to delete review")
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review deleted successfully", nil)
}
