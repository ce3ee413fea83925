package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audiobook/internal/catalog"
	"github.com/mrlokans/audiobook/internal/config"
	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/audiofiles"
	"github.com/mrlokans/audiobook/internal/database/books"
	"github.com/mrlokans/audiobook/internal/database/chapters"
	"github.com/mrlokans/audiobook/internal/database/sections"
	"github.com/mrlokans/audiobook/internal/database/shlokas"
	"github.com/mrlokans/audiobook/internal/database/users"
	http_controllers "github.com/mrlokans/audiobook/internal/http"
	"github.com/mrlokans/audiobook/internal/media"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// NewRouterConfig wires every repository and the catalog service onto db.
func NewRouterConfig(db *database.Database, cfg *config.Config, version string) http_controllers.RouterConfig {
	return http_controllers.RouterConfig{
		Database:   db,
		Catalog:    catalog.NewService(db.DB),
		Books:      books.NewRepository(db.DB),
		Chapters:   chapters.NewRepository(db.DB),
		Sections:   sections.NewRepository(db.DB),
		Shlokas:    shlokas.NewRepository(db.DB),
		AudioFiles: audiofiles.NewRepository(db.DB),
		Users:      users.NewRepository(db.DB),
		Media:      media.NewResolver(cfg.Media.BaseURL),
		RateLimit:  cfg.RateLimit,
		ReadOnly:   cfg.Global.ReadOnly,
		Version:    version,
	}
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Audiobook v%s", version)

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.Global.ReadOnly {
		log.Printf("Read-only mode enabled - write operations will be blocked")
	}
	if cfg.RateLimit.Enabled {
		log.Printf("Rate limiting enabled: %.1f req/s, burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	log.Printf("Serving media from %s", cfg.Media.BaseURL)

	router := http_controllers.NewRouter(NewRouterConfig(db, cfg, version))

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
}
