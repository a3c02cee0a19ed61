package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notifyhub-backend/internal/bridge"
	notificationUsecase "notifyhub-backend/internal/notification/usecase"
	tokenUsecase "notifyhub-backend/internal/token/usecase"
	updateUsecase "notifyhub-backend/internal/update/usecase"
)

type Handler struct {
	tokenUsecase        tokenUsecase.TokenUsecase
	updateUsecase       updateUsecase.UpdateUsecase
	notificationUsecase notificationUsecase.NotificationUsecase
	bridge              *bridge.Bridge
	engine              *gin.Engine
}

func NewHandler(tokenUc tokenUsecase.TokenUsecase, updateUc updateUsecase.UpdateUsecase, notificationUc notificationUsecase.NotificationUsecase, notifyBridge *bridge.Bridge) *Handler {
	h := &Handler{
		tokenUsecase:        tokenUc,
		updateUsecase:       updateUc,
		notificationUsecase: notificationUc,
		bridge:              notifyBridge,
	}

	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method Not Allowed"})
	})

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h)

	h.engine = r
	return h
}

func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}

// Engine exposes the router for serverless hosts that bring their own
// listener.
func (h *Handler) Engine() *gin.Engine {
	return h.engine
}
