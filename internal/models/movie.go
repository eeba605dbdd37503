package models

import (
	"time"
)

type Movie struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title     string    `gorm:"not null;size:200;index" json:"title" example:"Inception"`
	Director  string    `json:"director" example:"Christopher Nolan"`
	Year      int       `gorm:"index" json:"year" example:"2010"`
	Rating    *float64  `json:"rating,omitempty" example:"8.8"`
	PosterURL string    `json:"poster_url,omitempty" example:"https://m.media-amazon.com/images/M/inception.jpg"`
	UserID    uint      `gorm:"not null;index" json:"user_id" example:"1"`
	Reviews   []Review  `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieUpdate carries a partial update. Nil fields are left untouched.
type MovieUpdate struct {
	Title     *string  `json:"title,omitempty"`
	Director  *string  `json:"director,omitempty"`
	Year      *int     `json:"year,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	PosterURL *string  `json:"poster_url,omitempty"`
}

// MovieInfo is the normalized record returned by the OMDb lookup.
type MovieInfo struct {
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Director  string   `json:"director"`
	Plot      string   `json:"plot"`
	PosterURL string   `json:"poster_url"`
	Rating    *float64 `json:"rating,omitempty"`
}

// OMDbLookupResponse mirrors the OMDb "t=" lookup payload. OMDb reports
// failure in-band: Response is the string "False" and Error carries the reason.
type OMDbLookupResponse struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Director string `json:"Director"`
	Plot     string `json:"Plot"`
	Poster   string `json:"Poster"`
	Rating   string `json:"imdbRating"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

type CollectionStats struct {
	TotalUsers    int64   `json:"total_users" example:"4"`
	TotalMovies   int64   `json:"total_movies" example:"37"`
	TotalReviews  int64   `json:"total_reviews" example:"12"`
	AverageRating float64 `json:"average_rating" example:"7.5"`
	TopRated      []Movie `json:"top_rated"`
	RecentlyAdded []Movie `json:"recently_added"`
}
