package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"moviweb-backend/internal/config"
	"moviweb-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// ErrTitleNotFound is returned when OMDb has no entry for the title. Callers
// treat it as a prompt for manual entry, not as a failure.
var ErrTitleNotFound = errors.New("title not found in OMDb")

type OMDbService interface {
	Lookup(ctx context.Context, title string) (*models.MovieInfo, error)
}

type omdbService struct {
	config     config.OMDbConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewOMDbService(cfg config.OMDbConfig, logger *logrus.Logger) OMDbService {
	return &omdbService{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// Lookup fetches the OMDb record for a title and normalizes it. Any transport,
// status, or decode problem comes back as an error value so the caller can
// fall back to manual entry.
func (s *omdbService) Lookup(ctx context.Context, title string) (*models.MovieInfo, error) {
	params := url.Values{}
	params.Set("apikey", s.config.APIKey)
	params.Set("t", title)

	lookupURL := fmt.Sprintf("%s/?%s", s.config.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from OMDb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("OMDb API returned status %d: %s", resp.StatusCode, string(body))
	}

	var omdbResponse models.OMDbLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&omdbResponse); err != nil {
		return nil, fmt.Errorf("failed to decode OMDb response: %w", err)
	}

	if omdbResponse.Response != "True" {
		s.logger.WithFields(logrus.Fields{
			"title":  title,
			"reason": omdbResponse.Error,
		}).Info("OMDb lookup found no match")
		return nil, ErrTitleNotFound
	}

	return &models.MovieInfo{
		Title:     omdbResponse.Title,
		Year:      parseYear(omdbResponse.Year),
		Director:  omdbResponse.Director,
		Plot:      omdbResponse.Plot,
		PosterURL: normalizePoster(omdbResponse.Poster),
		Rating:    parseRating(omdbResponse.Rating),
	}, nil
}

// parseYear extracts the first 4-digit year from strings like "2010" or
// "2013–2015". Returns 0 when no year is present.
func parseYear(raw string) int {
	digits := 0
	start := -1
	for i, r := range raw {
		if unicode.IsDigit(r) {
			if digits == 0 {
				start = i
			}
			digits++
			if digits == 4 {
				year, _ := strconv.Atoi(raw[start : i+1])
				return year
			}
		} else {
			digits = 0
		}
	}
	return 0
}

// parseRating converts an imdbRating string to a float, treating "N/A" and
// garbage as absent.
func parseRating(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "N/A" {
		return nil
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &rating
}

// normalizePoster maps OMDb's "N/A" poster marker to an empty URL.
func normalizePoster(raw string) string {
	if raw == "N/A" {
		return ""
	}
	return raw
}
