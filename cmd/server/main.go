package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"permits/internal/app"
	"permits/internal/domain/permissions"
	"permits/internal/platform/config"
	"permits/internal/transport/http/middleware"
	"permits/internal/transport/http/web"
	"permits/internal/ui/notify"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on system env vars")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	repo := permissions.NewRepository(cfg.APIBaseURL, cfg.APITimeout)
	catalog := permissions.NewCatalog(cfg.APIBaseURL, cfg.APITimeout)
	notifier := notify.New(cfg.NotificationTTL)
	controller := app.New(repo, catalog, notifier)

	// Startup load; a failure surfaces as the usual notice and the
	// console starts with an empty record set.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout)
	controller.LoadPermissions(ctx)
	cancel()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := web.NewHandler(controller, catalog)
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("permits console listening on %s (backend %s)", cfg.Addr, cfg.APIBaseURL)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
