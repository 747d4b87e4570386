package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/movieverse/server/internal/models"
)

// Health reports process and document-store status. A store that drops
// after startup shows up here as 503; data routes do not degrade, they fail.
func Health(client *mongo.Client, dbName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{
			"status":   "OK",
			"service":  "movieverse-api",
			"database": "connected",
		}

		if err := client.Ping(ctx, nil); err != nil {
			status["status"] = "degraded"
			status["database"] = "unavailable"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}

		if names, err := client.Database(dbName).ListCollectionNames(ctx, bson.M{}); err == nil {
			status["collections"] = names
		}

		c.JSON(http.StatusOK, status)
	}
}

// Schema exposes the stable collection names for external tooling.
func Schema() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"collections": models.Collections()})
	}
}
