package services

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"moviweb-backend/internal/config"
	"moviweb-backend/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

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

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
