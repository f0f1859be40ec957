package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/exporters"
	http_controllers "github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/security"
	"github.com/mrlokans/library/internal/session"
	"github.com/mrlokans/library/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// checkExportDir makes sure scheduled exports will be able to write their
// files by creating the directory and touching a probe file in it.
func checkExportDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export directory %s cannot be created: %w", dir, err)
	}

	probe := filepath.Join(dir, ".library")
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("export directory %s is not writable: %w", dir, err)
	}
	f.Close()

	if err := os.Remove(probe); err != nil {
		log.Printf("Could not remove the probe file from the export directory %s: %v", dir, err)
	}
	return nil
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts it down within
// the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		if onShutdown != nil {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			onShutdown(ctx)
		}
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the server so no task outlives the database
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}

// Run opens the catalog, starts the background services and serves the web
// shell until the process is interrupted.
func Run(cfg *config.Config, version string) error {
	log.Printf("Starting Library v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path, database.WithQueryLogging(cfg.Database.LogQueries))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	sqlDB, err := db.SQLDB()
	if err != nil {
		return fmt.Errorf("failed to get SQL DB for sessions: %w", err)
	}
	sessions, err := session.NewManager(sqlDB, cfg.Session)
	if err != nil {
		return fmt.Errorf("failed to initialize session manager: %w", err)
	}

	csrfSecret, generated, err := security.CSRFSecret(cfg.Session.CSRFSecret)
	if err != nil {
		return err
	}
	if generated {
		log.Printf("Generated CSRF secret (set CSRF_SECRET to keep forms valid across restarts)")
	}

	exportFormat, err := exporters.ParseFormat(cfg.Export.Format)
	if err != nil {
		return err
	}
	if cfg.Export.Enabled {
		if err := checkExportDir(cfg.Export.Dir); err != nil {
			return err
		}
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	var enqueuer scheduler.Enqueuer
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize task queue: %w", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewExportCatalogQueue(db.Books(), db.Settings()))

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
		enqueuer = taskClient
	}

	exportScheduler := scheduler.NewExportScheduler(scheduler.ExportConfig{
		Enabled:  cfg.Export.Enabled,
		Schedule: cfg.Export.Schedule,
		Dir:      cfg.Export.Dir,
		Format:   exportFormat,
	}, db.Books(), db.Settings(), enqueuer)

	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	defer schedulerCancel()
	if err := exportScheduler.Start(schedulerCtx); err != nil {
		return err
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:       db.Books(),
		Health:        db,
		ExportStatus:  db.Settings(),
		ExportRunner:  exportScheduler,
		Sessions:      sessions,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Session.SecureCookies,
		TemplatesPath: cfg.UI.TemplatesPath,
		Version:       version,
	})

	onShutdown := func(ctx context.Context) {
		exportScheduler.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	return Serve(router, cfg, onShutdown)
}
