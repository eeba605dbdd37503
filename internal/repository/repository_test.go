package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"moviweb-backend/internal/config"
	"moviweb-backend/internal/database"
	"moviweb-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "test.db"),
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func seedUser(t *testing.T, db *database.Database, name string) *models.User {
	t.Helper()

	user := &models.User{Name: name}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedMovie(t *testing.T, db *database.Database, userID uint, title string) *models.Movie {
	t.Helper()

	movie := &models.Movie{
		Title:    title,
		Director: "Test Director",
		Year:     2000,
		UserID:   userID,
	}
	require.NoError(t, NewMovieRepository(db).Create(context.Background(), movie))
	return movie
}

func seedReview(t *testing.T, db *database.Database, movieID uint, text string) *models.Review {
	t.Helper()

	review := &models.Review{Text: text, MovieID: movieID}
	require.NoError(t, NewReviewRepository(db).Create(context.Background(), review))
	return review
}

func floatPtr(f float64) *float64 {
	return &f
}
