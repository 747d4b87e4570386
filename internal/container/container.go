package container

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/movieverse/server/internal/config"
	"github.com/movieverse/server/internal/helpers"
	"github.com/movieverse/server/internal/models"
	"github.com/movieverse/server/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *slog.Logger
	MongoDBClient *mongo.Client

	TokenService   *helpers.TokenService
	AuthService    *services.AuthService
	BookingService *services.BookingService
	CatalogService *services.CatalogService
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger, mongoClient *mongo.Client) (*Container, error) {
	base, err := models.NewMongoRepo(mongoClient, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}

	users := models.NewMongoUserRepo(base)
	bookings := models.NewMongoBookingRepo(base)
	theatres := models.NewMongoTheatreRepo(base)
	shows := models.NewMongoShowRepo(base)
	movies := models.NewMongoMovieRepo(base)
	reviews := models.NewMongoReviewRepo(base)

	tokens := helpers.NewTokenService(cfg)
	authService := services.NewAuthService(users, tokens, cfg.BcryptCost, logger)
	bookingService := services.NewBookingService(bookings, shows, logger)
	catalogService := services.NewCatalogService(theatres, shows, movies, reviews, logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		MongoDBClient:  mongoClient,
		TokenService:   tokens,
		AuthService:    authService,
		BookingService: bookingService,
		CatalogService: catalogService,
	}, nil
}
