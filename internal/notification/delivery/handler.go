package delivery

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"notifyhub-backend/internal/notification/dto"
	"notifyhub-backend/internal/notification/usecase"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

// Send handles POST /send-notification. An empty target set is a success with
// a distinct message, not an error.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title e body são obrigatórios."})
		return
	}

	data := map[string]string{}
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, &data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data deve ser um objeto com valores string."})
			return
		}
	}

	result, err := h.notificationUsecase.Send(c.Request.Context(), usecase.SendInput{
		Title:  req.Title,
		Body:   req.Body,
		Data:   data,
		Tokens: req.Tokens,
	})
	if err != nil {
		log.Printf("[Notifications] send failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno."})
		return
	}

	if result.NoTargets {
		c.JSON(http.StatusOK, gin.H{"message": "Nenhum token cadastrado para envio."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Notificação enviada.",
		"successCount": result.SuccessCount,
		"failureCount": result.FailureCount,
		"responses":    result.Responses,
	})
}
