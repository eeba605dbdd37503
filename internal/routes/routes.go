package routes

import (
	"moviweb-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, userHandler *handlers.UserHandler, movieHandler *handlers.MovieHandler, reviewHandler *handlers.ReviewHandler, aiHandler *handlers.AIHandler, uploadHandler *handlers.UploadHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// User routes - collection owners
	users := v1.Group("/users")
	{
		users.Get("/", userHandler.GetAllUsers)
		users.Post("/", userHandler.CreateUser)
		users.Get("/:id", userHandler.GetUserByID)
		users.Delete("/:id", userHandler.DeleteUser)
		users.Get("/:id/movies", movieHandler.GetUserMovies)
		users.Post("/:id/movies", movieHandler.AddMovie)
	}

	// Movie routes - CRUD plus per-movie reviews and trivia
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Put("/:id", movieHandler.UpdateMovie)
		movies.Delete("/:id", movieHandler.DeleteMovie)
		movies.Get("/:id/reviews", reviewHandler.GetMovieReviews)
		movies.Post("/:id/reviews", reviewHandler.AddReview)
		movies.Get("/:id/trivia", aiHandler.GetMovieTrivia)
	}

	// Review routes - direct access by review ID
	reviews := v1.Group("/reviews")
	{
		reviews.Put("/:id", reviewHandler.UpdateReview)
		reviews.Delete("/:id", reviewHandler.DeleteReview)
	}

	// AI recommendation route
	v1.Get("/recommendations", aiHandler.GetRecommendations)

	// Dashboard routes - collection statistics
	dashboard := v1.Group("/dashboard")
	{
		dashboard.Get("/stats", movieHandler.GetCollectionStats)
	}

	// Poster upload, only when object storage is configured
	if uploadHandler != nil {
		upload := v1.Group("/upload")
		{
			upload.Get("/presign", uploadHandler.GetPosterUploadURL)
		}
	}
}
