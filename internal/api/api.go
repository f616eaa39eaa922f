package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/TiwariPiyush2510/Par-Stock/internal/api/handlers"
	"github.com/TiwariPiyush2510/Par-Stock/internal/api/middleware"
	"github.com/TiwariPiyush2510/Par-Stock/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(planService *service.PlanService, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalized, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalized) > 0 {
			corsConfig.AllowOrigins = normalized
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	planHandler := handlers.NewPlanHandler(planService)
	apiGroup.POST("/calculate", planHandler.Calculate)
	apiGroup.POST("/calculate/export", planHandler.CalculateExport)

	catalogHandler := handlers.NewCatalogHandler(planService)
	catalogGroup := apiGroup.Group("/catalogs")
	{
		catalogGroup.GET("", catalogHandler.List)
		catalogGroup.POST("/:id", catalogHandler.Store)
		catalogGroup.DELETE("/:id", catalogHandler.Delete)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		for _, part := range strings.Split(origin, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
