package handlers

import (
	"errors"

	"moviweb-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserRequest struct {
	Name string `json:"name"`
}

type MovieRequest struct {
	Title     string   `json:"title"`
	Director  string   `json:"director"`
	Year      int      `json:"year"`
	Rating    *float64 `json:"rating"`
	PosterURL string   `json:"poster_url"`
}

type ReviewRequest struct {
	Text string `json:"text"`
	// When true the review text is written by the AI client; Text is ignored.
	Generate bool `json:"generate"`
}

// statusForError maps not-found sentinels to 404 and validation failures to
// 400, everything else to 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMovieNotFound),
		errors.Is(err, services.ErrReviewNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// logServiceError logs a service failure at a level matching its status:
// not-found and validation misses are routine and log at Info, only real
// server-side failures log at Error.
func logServiceError(logger *logrus.Logger, err error, fields logrus.Fields, msg string) {
	entry := logger.WithError(err).WithFields(fields)
	if statusForError(err) >= fiber.StatusInternalServerError {
		entry.Error(msg)
		return
	}
	entry.Info(msg)
}
