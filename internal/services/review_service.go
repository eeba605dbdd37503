package services

import (
	"context"
	"fmt"
	"strings"

	"moviweb-backend/internal/models"
	"moviweb-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReviewService interface {
	AddReview(ctx context.Context, movieID uint, text string) (*models.Review, error)
	AddGeneratedReview(ctx context.Context, movieID uint) (*models.Review, error)
	UpdateReview(ctx context.Context, id uint, update *models.ReviewUpdate) (*models.Review, error)
	DeleteReview(ctx context.Context, id uint) error
	GetMovieReviews(ctx context.Context, movieID uint) ([]models.Review, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	movieRepo repository.MovieRepository
	ai        AIService
	logger    *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, movieRepo repository.MovieRepository, ai AIService, logger *logrus.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		movieRepo: movieRepo,
		ai:        ai,
		logger:    logger,
	}
}

func (s *reviewService) AddReview(ctx context.Context, movieID uint, text string) (*models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: review text is required", ErrValidation)
	}

	if err := s.checkMovie(ctx, movieID); err != nil {
		return nil, err
	}

	review := &models.Review{
		Text:    text,
		MovieID: movieID,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// AddGeneratedReview asks the AI client for review text and stores it tagged
// as machine-written. The AI client degrades to placeholder text on failure,
// so this never fails because the generation API is down.
func (s *reviewService) AddGeneratedReview(ctx context.Context, movieID uint) (*models.Review, error) {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	text := s.ai.GenerateReview(ctx, movie.Title)

	review := &models.Review{
		Text:        text,
		AIGenerated: true,
		MovieID:     movieID,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id uint, update *models.ReviewUpdate) (*models.Review, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrReviewNotFound
	}

	if update.Text != nil {
		if strings.TrimSpace(*update.Text) == "" {
			return nil, fmt.Errorf("%w: review text cannot be empty", ErrValidation)
		}
		existing.Text = *update.Text
		// Once a human edits it, it is no longer machine-written.
		existing.AIGenerated = false
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrReviewNotFound
	}

	return s.repo.Delete(ctx, id)
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID uint) ([]models.Review, error) {
	if err := s.checkMovie(ctx, movieID); err != nil {
		return nil, err
	}

	return s.repo.FindByMovie(ctx, movieID)
}

func (s *reviewService) checkMovie(ctx context.Context, movieID uint) error {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}
	return nil
}
