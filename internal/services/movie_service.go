package services

import (
	"context"
	"fmt"
	"strings"

	"moviweb-backend/internal/config"
	"moviweb-backend/internal/models"
	"moviweb-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	// CRUD operations
	AddMovie(ctx context.Context, userID uint, movie *models.Movie) error
	UpdateMovie(ctx context.Context, id uint, update *models.MovieUpdate) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint) error
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	GetUserMovies(ctx context.Context, userID uint) ([]models.Movie, error)
	GetAllMovies(ctx context.Context, page, limit int, search, sortBy, order string) ([]models.Movie, int64, error)

	// Dashboard operations
	GetCollectionStats(ctx context.Context) (*models.CollectionStats, error)
}

type movieService struct {
	repo         repository.MovieRepository
	userRepo     repository.UserRepository
	omdb         OMDbService
	config       *config.Config
	logger       *logrus.Logger
	minioService *MinIOService
}

func NewMovieService(repo repository.MovieRepository, userRepo repository.UserRepository, omdb OMDbService, cfg *config.Config, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:     repo,
		userRepo: userRepo,
		omdb:     omdb,
		config:   cfg,
		logger:   logger,
	}
}

func (s *movieService) SetMinIOService(minioSvc *MinIOService) {
	s.minioService = minioSvc
}

// AddMovie stores a movie under the given user. Fields the caller left blank
// are filled from the OMDb record for the title; when the lookup misses or
// OMDb is unreachable the submitted values are kept as-is.
func (s *movieService) AddMovie(ctx context.Context, userID uint, movie *models.Movie) error {
	if strings.TrimSpace(movie.Title) == "" {
		return fmt.Errorf("%w: movie title is required", ErrValidation)
	}

	owner, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check owner: %w", err)
	}
	if owner == nil {
		return ErrUserNotFound
	}

	if s.needsEnrichment(movie) {
		s.enrichFromOMDb(ctx, movie)
	}

	movie.UserID = userID
	return s.repo.Create(ctx, movie)
}

func (s *movieService) needsEnrichment(movie *models.Movie) bool {
	return movie.Director == "" || movie.Year == 0 || movie.Rating == nil || movie.PosterURL == ""
}

func (s *movieService) enrichFromOMDb(ctx context.Context, movie *models.Movie) {
	info, err := s.omdb.Lookup(ctx, movie.Title)
	if err != nil {
		// Manual entry fallback: keep whatever the caller submitted.
		s.logger.WithError(err).WithField("title", movie.Title).Info("OMDb enrichment skipped")
		return
	}

	if info.Title != "" {
		movie.Title = info.Title
	}
	if movie.Director == "" {
		movie.Director = info.Director
	}
	if movie.Year == 0 {
		movie.Year = info.Year
	}
	if movie.Rating == nil {
		movie.Rating = info.Rating
	}
	if movie.PosterURL == "" {
		movie.PosterURL = info.PosterURL
	}
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, update *models.MovieUpdate) (*models.Movie, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrMovieNotFound
	}

	// If the poster is being replaced and the old one lives in our bucket,
	// remove the stale object.
	if update.PosterURL != nil && *update.PosterURL != existing.PosterURL {
		s.deleteStoredPoster(existing.PosterURL)
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, fmt.Errorf("%w: movie title cannot be empty", ErrValidation)
		}
		existing.Title = *update.Title
	}
	if update.Director != nil {
		existing.Director = *update.Director
	}
	if update.Year != nil {
		existing.Year = *update.Year
	}
	if update.Rating != nil {
		existing.Rating = update.Rating
	}
	if update.PosterURL != nil {
		existing.PosterURL = *update.PosterURL
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrMovieNotFound
	}

	s.deleteStoredPoster(existing.PosterURL)

	return s.repo.Delete(ctx, id)
}

// deleteStoredPoster removes a poster object from MinIO when the URL points
// at our bucket. External poster URLs (for example OMDb art) are left alone.
func (s *movieService) deleteStoredPoster(posterURL string) {
	if s.minioService == nil {
		return
	}

	filename := storedPosterKey(posterURL, s.config.MinIO.BucketName)
	if filename == "" {
		return
	}
	if err := s.minioService.DeleteFile(filename); err != nil {
		s.logger.WithError(err).Warn("Failed to delete poster from MinIO")
	}
}

// storedPosterKey extracts the object key from a poster URL that lives in
// our bucket. URLs pointing anywhere else yield "".
func storedPosterKey(posterURL, bucket string) string {
	if posterURL == "" {
		return ""
	}
	if !strings.Contains(posterURL, "http") || !strings.Contains(posterURL, bucket) {
		return ""
	}

	parts := strings.Split(posterURL, "/")
	filename := parts[len(parts)-1]
	if idx := strings.Index(filename, "?"); idx != -1 {
		filename = filename[:idx]
	}
	return filename
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

func (s *movieService) GetUserMovies(ctx context.Context, userID uint) ([]models.Movie, error) {
	owner, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	return s.repo.FindByUser(ctx, userID)
}

func (s *movieService) GetAllMovies(ctx context.Context, page, limit int, search, sortBy, order string) ([]models.Movie, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return s.repo.FindAll(ctx, page, limit, search, sortBy, order)
}

func (s *movieService) GetCollectionStats(ctx context.Context) (*models.CollectionStats, error) {
	return s.repo.GetCollectionStats(ctx)
}
