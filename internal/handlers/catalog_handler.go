package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/movieverse/server/internal/middleware"
	"github.com/movieverse/server/internal/models"
	"github.com/movieverse/server/internal/services"
)

type createdResponse struct {
	ID string `json:"id"`
}

func CreateTheatre(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var theatre models.Theatre
		if err := c.ShouldBindJSON(&theatre); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
			return
		}

		id, err := catalog.CreateTheatre(c.Request.Context(), &theatre)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(createdResponse{ID: id}, "theatre created"))
	}
}

func ListTheatres(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := catalog.ListTheatres(c.Request.Context(), c.Query("city"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(items, len(items)))
	}
}

func CreateShow(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var show models.Show
		if err := c.ShouldBindJSON(&show); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
			return
		}

		id, err := catalog.CreateShow(c.Request.Context(), &show)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(createdResponse{ID: id}, "show created"))
	}
}

func ListShows(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID := 0
		if raw := c.Query("movie_id"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				respondError(c, fmt.Errorf("%w: movie_id must be an integer", models.ErrInvalidRequest))
				return
			}
			movieID = n
		}

		items, err := catalog.ListShows(c.Request.Context(), c.Query("theatre_id"), movieID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(items, len(items)))
	}
}

func CreateMovie(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var movie models.Movie
		if err := c.ShouldBindJSON(&movie); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
			return
		}

		id, err := catalog.CreateMovie(c.Request.Context(), &movie)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(createdResponse{ID: id}, "movie created"))
	}
}

func ListMovies(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := catalog.ListMovies(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(items, len(items)))
	}
}

type reviewPayload struct {
	MovieID int    `json:"movie_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func AddReview(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.PrincipalFrom(c)
		if !ok {
			respondError(c, models.ErrMissingCredentials)
			return
		}

		var payload reviewPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
			return
		}

		review := &models.Review{
			MovieID: payload.MovieID,
			Rating:  payload.Rating,
			Comment: payload.Comment,
		}
		id, err := catalog.AddReview(c.Request.Context(), principal, review)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(createdResponse{ID: id}, "review created"))
	}
}

func ListReviews(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID, err := strconv.Atoi(c.Param("movie_id"))
		if err != nil {
			respondError(c, fmt.Errorf("%w: movie_id must be an integer", models.ErrInvalidRequest))
			return
		}

		items, err := catalog.ListReviews(c.Request.Context(), movieID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(items, len(items)))
	}
}
