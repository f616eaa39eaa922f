package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TiwariPiyush2510/Par-Stock/internal/api"
	"github.com/TiwariPiyush2510/Par-Stock/internal/catalog"
	"github.com/TiwariPiyush2510/Par-Stock/internal/config"
	"github.com/TiwariPiyush2510/Par-Stock/internal/engine"
	"github.com/TiwariPiyush2510/Par-Stock/internal/service"
	"github.com/TiwariPiyush2510/Par-Stock/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	logger.Setup(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	catalogStore, err := catalog.NewStore(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize catalog store")
	}

	eng := engine.New(engine.Options{
		SafetyFactor:   cfg.Engine.SafetyFactor,
		Passthrough:    cfg.Engine.Passthrough,
		SubstringMatch: cfg.Engine.SubstringMatch,
		StrictMetadata: cfg.Engine.StrictMetadata,
	})
	planService := service.NewPlanService(eng, catalogStore)

	router := api.NewRouter(planService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	// give in-flight calculations 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
