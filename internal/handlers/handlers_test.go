package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"moviweb-backend/internal/config"
	"moviweb-backend/internal/database"
	"moviweb-backend/internal/handlers"
	"moviweb-backend/internal/models"
	"moviweb-backend/internal/repository"
	"moviweb-backend/internal/routes"
	"moviweb-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

// newTestApp wires the full stack against a temp SQLite file, a fake OMDb
// server that only knows "Inception", and a fake chat-completion server that
// answers with aiContent. Pass aiContent == "" to simulate a broken AI API.
func newTestApp(t *testing.T, aiContent string) *fiber.App {
	t.Helper()

	omdb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("t") == "Inception" {
			fmt.Fprint(w, `{
				"Title": "Inception",
				"Year": "2010",
				"Director": "Christopher Nolan",
				"Poster": "https://example.com/inception.jpg",
				"imdbRating": "8.8",
				"Response": "True"
			}`)
			return
		}
		fmt.Fprint(w, `{"Response": "False", "Error": "Movie not found!"}`)
	}))
	t.Cleanup(omdb.Close)

	ai := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if aiContent == "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": aiContent,
					},
					"finish_reason": "stop",
				},
			},
		})
	}))
	t.Cleanup(ai.Close)

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Path:         filepath.Join(t.TempDir(), "test.db"),
			QueryTimeout: 5 * time.Second,
		},
		OMDb: config.OMDbConfig{
			APIKey:      "test-key",
			BaseURL:     omdb.URL,
			HTTPTimeout: 5 * time.Second,
		},
		OpenAI: config.OpenAIConfig{
			APIKey:      "test-key",
			BaseURL:     ai.URL + "/v1",
			Model:       "gpt-4o-mini",
			HTTPTimeout: 5 * time.Second,
		},
	}

	db, err := database.Connect(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	omdbService := services.NewOMDbService(cfg.OMDb, logger)
	aiService := services.NewAIService(cfg.OpenAI, logger)
	userService := services.NewUserService(userRepo, logger)
	movieService := services.NewMovieService(movieRepo, userRepo, omdbService, cfg, logger)
	reviewService := services.NewReviewService(reviewRepo, movieRepo, aiService, logger)

	app := fiber.New()
	routes.Setup(app,
		handlers.NewUserHandler(userService, logger),
		handlers.NewMovieHandler(movieService, logger),
		handlers.NewReviewHandler(reviewService, logger),
		handlers.NewAIHandler(movieService, aiService, logger),
		nil,
	)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func createUser(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()

	status, resp := doRequest(t, app, fiber.MethodPost, "/api/v1/users", fiber.Map{"name": name})
	require.Equal(t, fiber.StatusCreated, status)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	return user.ID
}

func addMovie(t *testing.T, app *fiber.App, userID uint, title string) models.Movie {
	t.Helper()

	path := fmt.Sprintf("/api/v1/users/%d/movies", userID)
	status, resp := doRequest(t, app, fiber.MethodPost, path, fiber.Map{"title": title})
	require.Equal(t, fiber.StatusCreated, status)

	var movie models.Movie
	require.NoError(t, json.Unmarshal(resp.Data, &movie))
	return movie
}

func TestUserRoutes_CreateAndList(t *testing.T) {
	app := newTestApp(t, "")

	status, resp := doRequest(t, app, fiber.MethodPost, "/api/v1/users", fiber.Map{"name": "Lina"})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "success", resp.Status)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, "Lina", user.Name)
	assert.NotZero(t, user.ID)

	status, resp = doRequest(t, app, fiber.MethodGet, "/api/v1/users", nil)
	require.Equal(t, fiber.StatusOK, status)

	var users []models.User
	require.NoError(t, json.Unmarshal(resp.Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Lina", users[0].Name)
}

func TestUserRoutes_CreateRequiresName(t *testing.T) {
	app := newTestApp(t, "")

	status, resp := doRequest(t, app, fiber.MethodPost, "/api/v1/users", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", resp.Status)
}

func TestUserRoutes_NotFoundAndBadID(t *testing.T) {
	app := newTestApp(t, "")

	status, _ := doRequest(t, app, fiber.MethodGet, "/api/v1/users/9999", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, fiber.MethodGet, "/api/v1/users/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestMovieRoutes_AddEnrichesFromOMDb(t *testing.T) {
	app := newTestApp(t, "")
	userID := createUser(t, app, "Lina")

	movie := addMovie(t, app, userID, "Inception")
	assert.Equal(t, "Christopher Nolan", movie.Director)
	assert.Equal(t, 2010, movie.Year)
	require.NotNil(t, movie.Rating)
	assert.InDelta(t, 8.8, *movie.Rating, 0.001)
	assert.Equal(t, "https://example.com/inception.jpg", movie.PosterURL)
}

func TestMovieRoutes_AddKeepsManualFieldsOnUnknownTitle(t *testing.T) {
	app := newTestApp(t, "")
	userID := createUser(t, app, "Lina")

	path := fmt.Sprintf("/api/v1/users/%d/movies", userID)
	status, resp := doRequest(t, app, fiber.MethodPost, path, fiber.Map{
		"title":    "Obscure Home Video",
		"director": "Uncle Bob",
		"year":     1994,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var movie models.Movie
	require.NoError(t, json.Unmarshal(resp.Data, &movie))
	assert.Equal(t, "Obscure Home Video", movie.Title)
	assert.Equal(t, "Uncle Bob", movie.Director)
	assert.Equal(t, 1994, movie.Year)
}

func TestMovieRoutes_AddUnknownUser(t *testing.T) {
	app := newTestApp(t, "")

	status, _ := doRequest(t, app, fiber.MethodPost, "/api/v1/users/9999/movies", fiber.Map{"title": "Inception"})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMovieRoutes_UpdateRatingKeepsOtherFields(t *testing.T) {
	app := newTestApp(t, "")
	userID := createUser(t, app, "Lina")
	movie := addMovie(t, app, userID, "Inception")

	path := fmt.Sprintf("/api/v1/movies/%d", movie.ID)
	status, resp := doRequest(t, app, fiber.MethodPut, path, fiber.Map{"rating": 9.1})
	require.Equal(t, fiber.StatusOK, status)

	var updated models.Movie
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, "Inception", updated.Title)
	assert.Equal(t, "Christopher Nolan", updated.Director)
	assert.Equal(t, 2010, updated.Year)
	require.NotNil(t, updated.Rating)
	assert.InDelta(t, 9.1, *updated.Rating, 0.001)
}

func TestMovieRoutes_UpdateBlankTitleRejected(t *testing.T) {
	app := newTestApp(t, "")
	userID := createUser(t, app, "Lina")
	movie := addMovie(t, app, userID, "Inception")

	path := fmt.Sprintf("/api/v1/movies/%d", movie.ID)
	status, resp := doRequest(t, app, fiber.MethodPut, path, fiber.Map{"title": "  "})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", resp.Status)

	// The movie is untouched.
	status, resp = doRequest(t, app, fiber.MethodGet, path, nil)
	require.Equal(t, fiber.StatusOK, status)

	var found models.Movie
	require.NoError(t, json.Unmarshal(resp.Data, &found))
	assert.Equal(t, "Inception", found.Title)
}

func TestMovieRoutes_ListPagination(t *testing.T) {
	app := newTestApp(t, "")
	userID := createUser(t, app, "Lina")
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		addMovie(t, app, userID, title)
	}

	status, resp := doRequest(t, app, fiber.MethodGet, "/api/v1/movies?page=1&limit=2", nil)
	require.Equal(t, fiber.StatusOK, status)

	var movies []models.Movie
	require.NoError(t, json.Unmarshal(resp.Data, &movies))
	assert.Len(t, movies, 2)

	var meta struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
		HasNext    bool  `json:"has_next"`
	}
	require.NoError(t, json.Unmarshal(resp.Meta, &meta))
	assert.Equal(t, int64(3), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
	assert.True(t, meta.HasNext)
}

func TestDeleteUserCascadesOverAPI(t *testing.T) {
	app := newTestApp(t, "")
	userID := createUser(t, app, "Lina")
	movie := addMovie(t, app, userID, "Inception")

	reviewPath := fmt.Sprintf("/api/v1/movies/%d/reviews", movie.ID)
	status, _ := doRequest(t, app, fiber.MethodPost, reviewPath, fiber.Map{"text": "Great"})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/users/%d", userID), nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/movies/%d", movie.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, fiber.MethodGet, reviewPath, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestReviewRoutes_Lifecycle(t *testing.T) {
	app := newTestApp(t, "A dazzling, layered thriller.")
	userID := createUser(t, app, "Lina")
	movie := addMovie(t, app, userID, "Inception")
	reviewPath := fmt.Sprintf("/api/v1/movies/%d/reviews", movie.ID)

	status, resp := doRequest(t, app, fiber.MethodPost, reviewPath, fiber.Map{"text": "A classic"})
	require.Equal(t, fiber.StatusCreated, status)

	var review models.Review
	require.NoError(t, json.Unmarshal(resp.Data, &review))
	assert.Equal(t, "A classic", review.Text)
	assert.False(t, review.AIGenerated)

	status, resp = doRequest(t, app, fiber.MethodPost, reviewPath, fiber.Map{"generate": true})
	require.Equal(t, fiber.StatusCreated, status)

	var generated models.Review
	require.NoError(t, json.Unmarshal(resp.Data, &generated))
	assert.Equal(t, "A dazzling, layered thriller.", generated.Text)
	assert.True(t, generated.AIGenerated)

	updatePath := fmt.Sprintf("/api/v1/reviews/%d", generated.ID)
	status, resp = doRequest(t, app, fiber.MethodPut, updatePath, fiber.Map{"text": "my own words"})
	require.Equal(t, fiber.StatusOK, status)

	var edited models.Review
	require.NoError(t, json.Unmarshal(resp.Data, &edited))
	assert.Equal(t, "my own words", edited.Text)
	assert.False(t, edited.AIGenerated)

	status, _ = doRequest(t, app, fiber.MethodDelete, updatePath, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, fiber.MethodDelete, updatePath, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestReviewRoutes_RequiresText(t *testing.T) {
	app := newTestApp(t, "")
	userID := createUser(t, app, "Lina")
	movie := addMovie(t, app, userID, "Inception")

	path := fmt.Sprintf("/api/v1/movies/%d/reviews", movie.ID)
	status, _ := doRequest(t, app, fiber.MethodPost, path, fiber.Map{"text": ""})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestReviewRoutes_UpdateBlankTextRejected(t *testing.T) {
	app := newTestApp(t, "")
	userID := createUser(t, app, "Lina")
	movie := addMovie(t, app, userID, "Inception")

	reviewPath := fmt.Sprintf("/api/v1/movies/%d/reviews", movie.ID)
	status, resp := doRequest(t, app, fiber.MethodPost, reviewPath, fiber.Map{"text": "A classic"})
	require.Equal(t, fiber.StatusCreated, status)

	var review models.Review
	require.NoError(t, json.Unmarshal(resp.Data, &review))

	status, resp = doRequest(t, app, fiber.MethodPut, fmt.Sprintf("/api/v1/reviews/%d", review.ID), fiber.Map{"text": " "})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", resp.Status)
}

func TestTriviaRoute(t *testing.T) {
	app := newTestApp(t, "The spinning top was Nolan's own idea.")
	userID := createUser(t, app, "Lina")
	movie := addMovie(t, app, userID, "Inception")

	status, resp := doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/movies/%d/trivia", movie.ID), nil)
	require.Equal(t, fiber.StatusOK, status)

	var data struct {
		MovieID uint   `json:"movie_id"`
		Title   string `json:"title"`
		Trivia  string `json:"trivia"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, movie.ID, data.MovieID)
	assert.Equal(t, "The spinning top was Nolan's own idea.", data.Trivia)
}

func TestTriviaRoute_UnknownMovie(t *testing.T) {
	app := newTestApp(t, "anything")

	status, _ := doRequest(t, app, fiber.MethodGet, "/api/v1/movies/9999/trivia", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRecommendationsRoute(t *testing.T) {
	app := newTestApp(t, "1. Interstellar - Nolan's other mind-bending epic\n2. Memento - Told in reverse\n")

	status, resp := doRequest(t, app, fiber.MethodGet, "/api/v1/recommendations?title=Inception&count=2", nil)
	require.Equal(t, fiber.StatusOK, status)

	var recs []models.Recommendation
	require.NoError(t, json.Unmarshal(resp.Data, &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "Interstellar", recs[0].Title)
	assert.Equal(t, "Nolan's other mind-bending epic", recs[0].Reason)
}

func TestRecommendationsRoute_RequiresTitle(t *testing.T) {
	app := newTestApp(t, "anything")

	status, _ := doRequest(t, app, fiber.MethodGet, "/api/v1/recommendations", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t, "")
	userID := createUser(t, app, "Lina")
	addMovie(t, app, userID, "Inception")

	status, resp := doRequest(t, app, fiber.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, fiber.StatusOK, status)

	var stats models.CollectionStats
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalMovies)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, "")

	status, _ := doRequest(t, app, fiber.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
