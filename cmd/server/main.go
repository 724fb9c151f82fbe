// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/listing-discovery/internal/catalog"
	"github.com/javajoker/listing-discovery/internal/config"
	"github.com/javajoker/listing-discovery/internal/i18n"
	"github.com/javajoker/listing-discovery/internal/metrics"
	"github.com/javajoker/listing-discovery/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	setupLogging(cfg.Log)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.LocalesPath, cfg.I18n.DefaultLocale); err != nil {
		logrus.Fatal("Failed to initialize i18n: ", err)
	}

	// Load the catalog
	store, err := openCatalog(cfg.Catalog)
	if err != nil {
		logrus.Fatal("Failed to load catalog: ", err)
	}
	metrics.CatalogListings.Set(float64(len(store.AllListings())))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Catalog.Watch {
		watcher, err := catalog.NewWatcher(store, cfg.Catalog.FixturePath, cfg.Catalog.ReloadDebounceDuration())
		if err != nil {
			logrus.Fatal("Failed to watch catalog fixture: ", err)
		}
		watcher.OnReload = func(err error) {
			metrics.RecordReload(err)
			metrics.CatalogListings.Set(float64(len(store.AllListings())))
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logrus.WithError(err).Error("Catalog watcher stopped")
			}
		}()
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(ctx, store, cfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}

func setupLogging(cfg config.LogConfig) {
	logrus.SetOutput(os.Stdout)
	if cfg.Format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.WithField("level", cfg.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// openCatalog loads the configured fixture, or the built-in demo catalog
// when none is configured.
func openCatalog(cfg config.CatalogConfig) (*catalog.Store, error) {
	fixture := catalog.DefaultFixture()
	if cfg.FixturePath != "" {
		var err error
		if fixture, err = catalog.LoadFixture(cfg.FixturePath); err != nil {
			return nil, err
		}
		logrus.WithField("fixture", cfg.FixturePath).Info("Catalog fixture loaded")
	} else {
		logrus.Info("No catalog fixture configured, serving the demo catalog")
	}
	return catalog.NewStore(fixture)
}
