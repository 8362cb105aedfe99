// Public domain.

// Package httpapi serves ephemeris queries as JSON.
package httpapi

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates the gin engine with CORS and the v1 routes.
//
// Allowed origins come from CORS_ALLOWED_ORIGINS, comma separated.  Empty
// allows all origins.
func SetupRouter(h *Handler) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/v1")
	v1.GET("/solar/longitude", h.SolarLongitude)
	v1.GET("/seasons", h.Seasons)
	v1.GET("/phases", h.Phases)
	v1.GET("/sun", h.Sun)
	v1.GET("/crescent", h.Crescent)
	v1.GET("/locations", h.Locations)

	router.GET("/health", h.HealthCheck)
	return router
}
