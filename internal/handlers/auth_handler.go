package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movieverse/server/internal/models"
	"github.com/movieverse/server/internal/services"
)

type authPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

func Register(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload authPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
			return
		}

		result, err := auth.Register(c.Request.Context(), payload.Email, payload.Password, payload.Name)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(result, "registered"))
	}
}

func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload authPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
			return
		}

		result, err := auth.Login(c.Request.Context(), payload.Email, payload.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(result, "logged in"))
	}
}
