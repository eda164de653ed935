//	@title			Lezzet Menu API
//	@version		1.0
//	@description	Bilingual restaurant menu backend with an object-storage-backed admin panel.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/lezzetduragi/menu-service/internal/auth"
	"github.com/lezzetduragi/menu-service/internal/config"
	"github.com/lezzetduragi/menu-service/internal/image"
	"github.com/lezzetduragi/menu-service/internal/menu"
	appMiddleware "github.com/lezzetduragi/menu-service/internal/middleware"
	"github.com/lezzetduragi/menu-service/internal/storage"

	_ "github.com/lezzetduragi/menu-service/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewMinioStore(context.Background(), storage.MinioConfig{
		Endpoint:   cfg.StorageEndpoint,
		AccessKey:  cfg.StorageAccessKey,
		SecretKey:  cfg.StorageSecretKey,
		Bucket:     cfg.StorageBucket,
		Region:     cfg.StorageRegion,
		UseSSL:     cfg.StorageUseSSL,
		PublicBase: cfg.StoragePublicBase,
		PublicRead: cfg.ImageURLMode == config.ImageURLPublic,
	})
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: storage → repository → service → handler
	imageSvc := image.NewService(store, cfg.ImageURLMode)
	menuRepo := menu.NewRepository(store, imageSvc, cfg.ConcurrencyMode)
	changeLog := menu.NewChangeLog(store)
	menuSvc := menu.NewService(menuRepo, imageSvc, changeLog)
	menuHandler := menu.NewHandler(menuSvc)

	authSvc := auth.NewService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	authHandler := auth.NewHandler(authSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoint
		r.Post("/auth/login", authHandler.Login)

		// Public read endpoints (the menu page consumes these)
		r.Get("/menu-items", menuHandler.GetMenu)
		r.Get("/images/url", menuHandler.ImageURL)

		// Protected admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.RequireAuth(cfg.JWTSecret))
			r.Post("/menu-items", menuHandler.CreateItem)
			r.Put("/menu-items", menuHandler.UpdateItem)
			r.Delete("/menu-items", menuHandler.DeleteItem)
			r.Post("/categories", menuHandler.AddCategory)
			r.Delete("/categories/{name}", menuHandler.DeleteCategory)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
