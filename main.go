package main

import (
	"context"
	"log"

	api "notifyhub-backend/cmd/api"
	"notifyhub-backend/internal/bridge"
	notificationDomain "notifyhub-backend/internal/notification/domain"
	notificationRepo "notifyhub-backend/internal/notification/repository"
	notificationUsecase "notifyhub-backend/internal/notification/usecase"
	tokenDomain "notifyhub-backend/internal/token/domain"
	tokenRepo "notifyhub-backend/internal/token/repository"
	tokenUsecase "notifyhub-backend/internal/token/usecase"
	updateDomain "notifyhub-backend/internal/update/domain"
	updateRepo "notifyhub-backend/internal/update/repository"
	updateUsecase "notifyhub-backend/internal/update/usecase"
	"notifyhub-backend/pkg/config"
	"notifyhub-backend/pkg/database"
	"notifyhub-backend/pkg/fcm"
	"notifyhub-backend/pkg/pglisten"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas (idempotent, runs on every cold start)
	if err := db.AutoMigrate(&tokenDomain.DeviceToken{}, &notificationDomain.NotificationLog{}, &updateDomain.Update{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	tokenRepository := tokenRepo.NewTokenRepository(db)
	logRepository := notificationRepo.NewLogRepository(db)
	updateRepository := updateRepo.NewUpdateRepository(db)

	// Initialize FCM client. A present-but-broken credential is fatal; an
	// absent one only disables push.
	var sender notificationUsecase.Sender
	if cfg.HasFirebase() {
		client, err := fcm.NewClient(context.Background(), []byte(cfg.FirebaseConfig), cfg.FirebaseCredentialsFile)
		if err != nil {
			log.Fatal("Failed to initialize FCM client:", err)
		}
		sender = client
	} else {
		log.Printf("[WARN] No Firebase credentials configured, push notifications disabled")
	}

	// Initialize use cases
	tokenUc := tokenUsecase.NewTokenUsecase(tokenRepository)
	updateUc := updateUsecase.NewUpdateUsecase(updateRepository)
	notificationUc := notificationUsecase.NewNotificationUsecase(sender, tokenRepository, logRepository)

	// Notify bridge: the LISTEN connection is opened lazily on the first
	// WebSocket client.
	notifyBridge := bridge.New(db, func() bridge.Source {
		return pglisten.New(cfg.DatabaseURL, updateRepo.Channel)
	})

	// Initialize HTTP handler
	handler := api.NewHandler(tokenUc, updateUc, notificationUc, notifyBridge)

	if cfg.Serverless {
		log.Printf("[WARN] SERVERLESS set, not binding a listener; the host mounts handler.Engine()")
		return
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
