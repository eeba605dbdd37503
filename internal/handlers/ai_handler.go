package handlers

import (
	"strconv"

	"moviweb-backend/internal/services"
	"moviweb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AIHandler struct {
	movieService services.MovieService
	aiService    services.AIService
	logger       *logrus.Logger
}

func NewAIHandler(movieService services.MovieService, aiService services.AIService, logger *logrus.Logger) *AIHandler {
	return &AIHandler{
		movieService: movieService,
		aiService:    aiService,
		logger:       logger,
	}
}

// GetMovieTrivia godoc
// @Summary Get AI trivia for a movie
// @Description Generate a short trivia snippet for the movie. Falls back to placeholder text when the generation API is unavailable.
// @Tags ai
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Trivia text"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/trivia [get]
func (h *AIHandler) GetMovieTrivia(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.movieService.GetMovieByID(ctx, uint(id))
	if err != nil {
		return utils.ErrorResponse(c, statusForError(err), err.Error())
	}

	trivia := h.aiService.GenerateTrivia(ctx, movie.Title, movie.Director, movie.Year)

	return utils.SuccessResponse(c, fiber.StatusOK, "Trivia generated successfully", fiber.Map{
		"movie_id": movie.ID,
		"title":    movie.Title,
		"trivia":   trivia,
	})
}

// GetRecommendations godoc
// @Summary Get AI movie recommendations
// @Description Generate a recommendation list based on a favourite title. Returns an empty list when the generation API is unavailable.
// @Tags ai
// @Accept json
// @Produce json
// @Param title query string true "Favourite movie title"
// @Param count query int false "Number of recommendations (1-10)" default(5)
// @Success 200 {object} utils.StandardResponse "Recommendation list"
// @Failure 400 {object} utils.StandardResponse "Missing title"
// @Router /recommendations [get]
func (h *AIHandler) GetRecommendations(c *fiber.Ctx) error {
	ctx := c.Context()

	title := c.Query("title")
	if title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}

	count, _ := strconv.Atoi(c.Query("count", "5"))

	recommendations := h.aiService.GenerateRecommendations(ctx, title, count)

	return utils.SuccessResponse(c, fiber.StatusOK, "Recommendations generated successfully", recommendations)
}
