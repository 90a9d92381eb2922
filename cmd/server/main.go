package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"scribe/internal/auth"
	"scribe/internal/config"
	"scribe/internal/handler"
	"scribe/internal/middleware"
	"scribe/internal/repository/postgres"
	"scribe/internal/service"
	"scribe/internal/service/assist"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Local token issuer. Always required: login issues tokens even when
	// verification is delegated to an external JWKS endpoint.
	issuer, err := auth.NewTokenIssuer(auth.TokenIssuerConfig{
		SigningSecret: []byte(cfg.JWTSecret),
		Issuer:        cfg.JWTIssuer,
	})
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	// Verifier: JWKS endpoint when configured, otherwise the issuer
	// verifies its own tokens.
	var verifier auth.TokenVerifier = issuer
	if cfg.AuthJWKSURL != "" {
		verifier, err = auth.NewJWKSVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWKS verifier: %v", err)
		}
	}
	defer verifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if err := postgres.Bootstrap(ctx, pool, tables, logger); err != nil {
		log.Fatalf("Failed to bootstrap schema: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	noteRepo := postgres.NewNoteRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	// Create services
	mailer := service.NewLogMailer(logger)
	accountService := service.NewAccountService(userRepo, issuer, mailer, logger)
	folderService := service.NewFolderService(folderRepo, noteRepo, txManager, logger)
	noteService := service.NewNoteService(noteRepo, folderRepo, logger)
	treeService := service.NewTreeService(folderRepo, noteRepo, logger)

	// AI assist
	provider, err := assist.NewProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to create assist provider: %v", err)
	}
	prompts, err := assist.LoadPrompts()
	if err != nil {
		log.Fatalf("Failed to load assist prompts: %v", err)
	}
	assistService := assist.NewAssistService(provider, cfg.AssistModel, prompts, noteRepo, logger)

	logger.Info("services initialized", "assist_provider", cfg.AssistProvider, "assist_model", cfg.AssistModel)

	// Create handlers
	accountHandler := handler.NewAccountHandler(accountService, logger)
	folderHandler := handler.NewFolderHandler(folderService, treeService, logger)
	noteHandler := handler.NewNoteHandler(noteService, logger)
	assistHandler := handler.NewAssistHandler(assistService, logger)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// Auth routes (public)
	mux.HandleFunc("POST /api/auth/register", accountHandler.Register)
	mux.HandleFunc("POST /api/auth/login", accountHandler.Login)
	mux.HandleFunc("POST /api/auth/verify", accountHandler.Verify)

	// Account routes
	mux.HandleFunc("GET /api/users/me", accountHandler.Me)

	// Folder routes
	mux.HandleFunc("GET /api/folders", folderHandler.List)
	mux.HandleFunc("POST /api/folders", folderHandler.Create)
	mux.HandleFunc("GET /api/folders/tree", folderHandler.Tree) // Must come before {id} route
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.Get)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.Update)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.Delete)

	// Note routes
	mux.HandleFunc("GET /api/notes", noteHandler.List)
	mux.HandleFunc("POST /api/notes", noteHandler.Create)
	mux.HandleFunc("GET /api/notes/{id}", noteHandler.Get)
	mux.HandleFunc("PATCH /api/notes/{id}", noteHandler.Update)
	mux.HandleFunc("DELETE /api/notes/{id}", noteHandler.Delete)
	mux.HandleFunc("PUT /api/notes/{id}/highlights", noteHandler.UpdateHighlights)

	// Assist routes
	mux.HandleFunc("POST /api/assist/outline", assistHandler.Outline)
	mux.HandleFunc("POST /api/assist/quiz", assistHandler.Quiz)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.Auth(verifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
