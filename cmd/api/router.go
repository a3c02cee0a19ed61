package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	notificationDelivery "notifyhub-backend/internal/notification/delivery"
	tokenDelivery "notifyhub-backend/internal/token/delivery"
	updateDelivery "notifyhub-backend/internal/update/delivery"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	tokenHandler := tokenDelivery.NewTokenHandler(h.tokenUsecase)
	updateHandler := updateDelivery.NewUpdateHandler(h.updateUsecase)
	notificationHandler := notificationDelivery.NewNotificationHandler(h.notificationUsecase)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API de Notificações FCM está ativa!"})
	})

	r.GET("/tokens", tokenHandler.List)
	r.POST("/register-token", tokenHandler.Register)
	r.POST("/send-notification", notificationHandler.Send)

	r.GET("/trigger", updateHandler.Trigger)
	r.GET("/updates", updateHandler.Poll)

	// WebSocket upgrade; the route scope is the only upgrade-admitted path.
	r.GET("/socket", h.bridge.ServeWS)
}
