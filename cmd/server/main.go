package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	_ "free-game-tracker/docs"
	"free-game-tracker/internal/common/config"
	"free-game-tracker/internal/common/logger"
	"free-game-tracker/internal/common/middleware"
	giveawayHTTP "free-game-tracker/internal/features/giveaway/delivery/http"
	giveawayService "free-game-tracker/internal/features/giveaway/service"
	"free-game-tracker/internal/features/giveaway/upstream"
)

const serviceName = "free-game-gateway"

// @title           Free Game Tracker API
// @version         1.0
// @description     Proxy gateway in front of the public free-game giveaway feed.

// @license.name  MIT

// @host      localhost:3001
// @BasePath  /

// @tag.name giveaways
// @tag.description Current giveaways, relayed from the upstream feed

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		// логгер ещё не сконфигурирован
		logger.Init(serviceName, false)
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(serviceName, cfg.Debug)
	logger.Info().
		Str("version", "1.0.0").
		Bool("debug", cfg.Debug).
		Str("upstream", cfg.Upstream.URL).
		Msg("Starting free game gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped with error")
	}
	logger.Info().Msg("Server exited")
}

func run(ctx context.Context, cfg *config.Server) error {
	router := newRouter(cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Int("port", cfg.HTTP.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newRouter(cfg *config.Server) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(cfg.HTTP.AllowedOrigins)))
	router.Use(middleware.RateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst))
	router.NoRoute(middleware.NotFound())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	if cfg.HTTP.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info().Msg("Swagger UI enabled at /swagger/index.html")
	}

	client := upstream.NewClient(cfg.Upstream.URL, cfg.Upstream.Timeout)
	svc := giveawayService.NewGatewayService(client)
	giveawayHTTP.NewGiveawayHandler(svc).RegisterRoutes(router)

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	c.ExposeHeaders = []string{"X-Request-ID"}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}
