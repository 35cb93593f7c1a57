package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/everafterhq/everafter/internal/auth"
	"github.com/everafterhq/everafter/internal/blob"
	"github.com/everafterhq/everafter/internal/config"
	"github.com/everafterhq/everafter/internal/middleware"
	"github.com/everafterhq/everafter/internal/service"
	"github.com/everafterhq/everafter/internal/storage/sqlite"
	"github.com/everafterhq/everafter/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	blobs, err := blob.NewDiskStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		slog.Error("Failed to initialize media storage", "error", err)
		os.Exit(1)
	}
	slog.Info("Media storage initialized", "dir", cfg.MediaDir)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	authService := service.NewAuthService(authenticator, jwtManager, store)

	// Authenticated API routes. The mux is mounted behind RequireAuth, so
	// every handler here can assume a user in the context.
	api := http.NewServeMux()
	authService.Register(api)
	service.NewWeddingService(store).Register(api)
	service.NewBudgetService(store).Register(api)
	service.NewGuestService(store).Register(api)
	service.NewTaskService(store).Register(api)
	service.NewAppointmentService(store).Register(api)
	service.NewInspirationService(store, blobs).Register(api)
	service.NewVendorService(store).Register(api)

	root := http.NewServeMux()
	authService.RegisterPublic(root)
	root.Handle("/api/", middleware.RequireAuth(jwtManager)(api))
	root.Handle("GET /metrics", promhttp.Handler())
	root.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Uploaded media is served straight off disk. URLs are not guessable
	// (keys embed the owner ID and a nanosecond timestamp) but this is not
	// access control; private media would need signed URLs.
	mediaPrefix := cfg.MediaBaseURL + "/"
	root.Handle("GET "+mediaPrefix, http.StripPrefix(mediaPrefix, http.FileServer(http.Dir(cfg.MediaDir))))

	handler := middleware.RequestLogger(middleware.CORS(middleware.Metrics(root)))
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "address", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
