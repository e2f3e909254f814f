package main

import (
	"context"
	"log"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"servilink/internal/adapter/api"
	"servilink/internal/adapter/api/handler"
	apimiddleware "servilink/internal/adapter/api/middleware"
	"servilink/internal/adapter/api/router"
	"servilink/internal/adapter/repository"
	"servilink/internal/infrastructure/auth"
	"servilink/internal/infrastructure/websocket"
	"servilink/internal/usecase"
	"servilink/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	opts := badger.DefaultOptions(cfg.DataDir)
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open data store at %s: %v", cfg.DataDir, err)
	}
	defer db.Close()

	userRepo := repository.NewBadgerUserRepository(db)
	ratingRepo := repository.NewBadgerRatingRepository(db)
	chatRepo := repository.NewBadgerChatRepository(db)

	if cfg.SeedDemoData {
		if err := repository.SeedDemoData(ctx, userRepo, ratingRepo, chatRepo); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	session := usecase.NewSession()
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens, session)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, userRepo, session)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, session, wsManager)

	if err := authUseCase.Hydrate(ctx); err != nil {
		log.Fatalf("Failed to restore session: %v", err)
	}

	handler.Setup(authUseCase, ratingUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokens)

	chatHandler := handler.NewChatHandler(chatUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, tokens)

	router.Setup(e, authMiddleware)
	router.SetupChatRouter(e, chatHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
