package repository

import (
	"context"
	"errors"
	"time"

	"moviweb-backend/internal/database"
	"moviweb-backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Movie, error)
	FindAll(ctx context.Context, page, limit int, search, sortBy, order string) ([]models.Movie, int64, error)

	// Dashboard operations
	GetCollectionStats(ctx context.Context) (*models.CollectionStats, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(movie).Error
}

// Delete removes the movie row; its reviews go with it via ON DELETE CASCADE.
func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Reviews").First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByUser(ctx context.Context, userID uint) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("title ASC").
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindAll(ctx context.Context, page, limit int, search, sortBy, order string) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	// Apply search filter
	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR director LIKE ?", searchPattern, searchPattern)
	}

	// Count total records
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply sorting with validation
	validSortFields := map[string]bool{
		"id": true, "title": true, "year": true, "director": true,
		"rating": true, "created_at": true, "updated_at": true,
	}
	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}
	if order != "ASC" && order != "asc" {
		order = "DESC"
	}
	query = query.Order(sortBy + " " + order)

	// Apply pagination
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) GetCollectionStats(ctx context.Context) (*models.CollectionStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stats models.CollectionStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Movie{}).Count(&stats.TotalMovies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Review{}).Count(&stats.TotalReviews).Error; err != nil {
		return nil, err
	}

	if stats.TotalMovies > 0 {
		var avg float64
		if err := db.Model(&models.Movie{}).
			Select("COALESCE(AVG(rating), 0)").
			Where("rating IS NOT NULL").
			Scan(&avg).Error; err != nil {
			return nil, err
		}
		stats.AverageRating = avg
	}

	// Top rated movies (limit 10)
	if err := db.Model(&models.Movie{}).
		Where("rating IS NOT NULL").
		Order("rating DESC").
		Limit(10).
		Find(&stats.TopRated).Error; err != nil {
		return nil, err
	}

	// Recently added movies (limit 10)
	if err := db.Model(&models.Movie{}).
		Order("created_at DESC").
		Limit(10).
		Find(&stats.RecentlyAdded).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
