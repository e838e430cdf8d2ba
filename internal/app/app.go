// Package app wires configuration, adapters and services into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"print4me/internal/config"
	"print4me/internal/email"
	"print4me/internal/handler"
	"print4me/internal/metrics"
	"print4me/internal/pagecount"
	"print4me/internal/port"
	"print4me/internal/router"
	"print4me/internal/service"
	"print4me/internal/storage/local"
	s3storage "print4me/internal/storage/s3"
	"print4me/internal/validator"
)

// App is a fully wired print4me server.
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	dispatcher *service.Dispatcher
	metrics    *metrics.Metrics
}

// NewTempStorage returns the TempStorage for cfg.Storage.Provider.
func NewTempStorage(cfg *config.Config) (port.TempStorage, error) {
	switch cfg.Storage.Provider {
	case "", "local":
		storage, err := local.NewLocalStorage(cfg.Upload.Dir)
		if err != nil {
			return nil, err
		}
		if cfg.Upload.SweepAge > 0 {
			n, err := local.SweepStale(cfg.Upload.Dir, time.Now().Add(-cfg.Upload.SweepAge))
			if err != nil {
				log.Printf("app.NewTempStorage: sweeping %s failed: %v", cfg.Upload.Dir, err)
			} else if n > 0 {
				log.Printf("app.NewTempStorage: removed %d stale uploads from %s", n, cfg.Upload.Dir)
			}
		}
		return storage, nil
	case "s3":
		return s3storage.NewS3Client(&cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Storage.Provider)
	}
}

// Limits returns the per-order file limits from cfg.
func Limits(cfg *config.Config) validator.Limits {
	return validator.Limits{MaxFiles: cfg.Upload.MaxFiles, MaxFileSize: cfg.Upload.MaxFileSizeBytes()}
}

// New builds every dependency of the server from cfg.
func New(cfg *config.Config) (*App, error) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()

	storage, err := NewTempStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize temp storage: %w", err)
	}
	sender, err := email.NewSender(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email sender: %w", err)
	}
	if cfg.Email.AdminEmail == "" {
		log.Printf("app.New: admin email is not set; accepted orders will not be delivered")
	}

	counter := pagecount.NewCounter(cfg.PageCount.Concurrency, m)
	limits := Limits(cfg)

	// Initialize services
	dispatcher := service.NewDispatcher(sender, storage, service.NotifyConfig{
		AdminEmail:      cfg.Email.AdminEmail,
		AttachmentLimit: cfg.Email.AttachmentLimitBytes,
		SendTimeout:     cfg.Email.SendTimeout,
	}, m)
	orderSvc := service.NewOrderService(validator.NewOrderValidator(counter, storage, limits), storage, dispatcher, m)
	pageSvc := service.NewPageService(counter, storage, limits)

	// Initialize handlers
	engine := router.Setup(cfg,
		handler.NewOrderHandler(orderSvc),
		handler.NewPageHandler(pageSvc),
		handler.NewHealthHandler(),
		m.Handler(),
	)

	return &App{cfg: cfg, engine: engine, dispatcher: dispatcher, metrics: m}, nil
}

// Handler returns the HTTP handler serving every route.
func (a *App) Handler() http.Handler {
	return a.engine
}

// Run serves HTTP until ctx is canceled, then stops accepting requests and
// waits for in-flight notifications within the shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Server.Port)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.Server.Port, err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.engine,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("app.Run: shutting down, waiting for in-flight notifications...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("app.Run: http shutdown: %v", err)
	}
	if err := a.dispatcher.Wait(shutdownCtx); err != nil {
		return fmt.Errorf("waiting for notifications: %w", err)
	}
	log.Printf("app.Run: shutdown complete")
	return nil
}
