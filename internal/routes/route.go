package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/movieverse/server/internal/container"
	"github.com/movieverse/server/internal/handlers"
	"github.com/movieverse/server/internal/middleware"
	"github.com/movieverse/server/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "MovieVerse API is running"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", handlers.Health(container.MongoDBClient, container.Config.MongoDatabase))
		v1.GET("/schema", handlers.Schema())

		// public routes
		v1.POST("/auth/register", handlers.Register(container.AuthService))
		v1.POST("/auth/login", handlers.Login(container.AuthService))

		v1.GET("/theatres", handlers.ListTheatres(container.CatalogService))
		v1.GET("/shows", handlers.ListShows(container.CatalogService))
		v1.GET("/movies", handlers.ListMovies(container.CatalogService))
		v1.GET("/reviews/:movie_id", handlers.ListReviews(container.CatalogService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.Authenticate(container.TokenService))
	{
		protected.POST("/reviews", handlers.AddReview(container.CatalogService))
		protected.POST("/bookings", handlers.CreateBooking(container.BookingService))
		protected.GET("/bookings/me", handlers.ListMyBookings(container.BookingService))
	}

	admin := protected.Group("/")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/theatres", handlers.CreateTheatre(container.CatalogService))
		admin.POST("/shows", handlers.CreateShow(container.CatalogService))
		admin.POST("/movies", handlers.CreateMovie(container.CatalogService))
	}

	return r
}
