package services

import (
	"context"
	"log/slog"

	"github.com/movieverse/server/internal/models"
)

// CatalogService covers the reference-data CRUD around the booking core:
// theatres and shows (admin-managed), movies, and user reviews.
type CatalogService struct {
	theatres models.TheatreRepository
	shows    models.ShowRepository
	movies   models.MovieRepository
	reviews  models.ReviewRepository
	logger   *slog.Logger
}

func NewCatalogService(
	theatres models.TheatreRepository,
	shows models.ShowRepository,
	movies models.MovieRepository,
	reviews models.ReviewRepository,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		theatres: theatres,
		shows:    shows,
		movies:   movies,
		reviews:  reviews,
		logger:   logger,
	}
}

func (s *CatalogService) CreateTheatre(ctx context.Context, theatre *models.Theatre) (string, error) {
	id, err := s.theatres.Create(ctx, theatre)
	if err != nil {
		return "", err
	}
	s.logger.Info("theatre created", "theatre_id", id, "city", theatre.City)
	return id, nil
}

func (s *CatalogService) ListTheatres(ctx context.Context, city string) ([]models.Theatre, error) {
	return s.theatres.List(ctx, city)
}

func (s *CatalogService) CreateShow(ctx context.Context, show *models.Show) (string, error) {
	if show.SeatsTotal == 0 {
		show.SeatsTotal = 80
	}
	id, err := s.shows.Create(ctx, show)
	if err != nil {
		return "", err
	}
	s.logger.Info("show created", "show_id", id, "theatre_id", show.TheatreID, "movie_id", show.MovieID)
	return id, nil
}

func (s *CatalogService) ListShows(ctx context.Context, theatreID string, movieID int) ([]models.Show, error) {
	return s.shows.List(ctx, theatreID, movieID)
}

func (s *CatalogService) CreateMovie(ctx context.Context, movie *models.Movie) (string, error) {
	id, err := s.movies.Create(ctx, movie)
	if err != nil {
		return "", err
	}
	s.logger.Info("movie created", "movie_id", id, "tmdb_id", movie.TmdbID)
	return id, nil
}

func (s *CatalogService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.movies.List(ctx)
}

// AddReview records a review authored by the principal. Reviews are
// immutable once created.
func (s *CatalogService) AddReview(ctx context.Context, principal *models.Principal, review *models.Review) (string, error) {
	review.UserID = principal.ID
	id, err := s.reviews.Create(ctx, review)
	if err != nil {
		return "", err
	}
	s.logger.Info("review created", "review_id", id, "movie_id", review.MovieID, "user_id", principal.ID)
	return id, nil
}

func (s *CatalogService) ListReviews(ctx context.Context, movieID int) ([]models.Review, error) {
	return s.reviews.ListByMovie(ctx, movieID)
}
