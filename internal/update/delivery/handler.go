package delivery

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"notifyhub-backend/internal/update/usecase"
)

type UpdateHandler struct {
	updateUsecase usecase.UpdateUsecase
}

func NewUpdateHandler(updateUsecase usecase.UpdateUsecase) *UpdateHandler {
	return &UpdateHandler{
		updateUsecase: updateUsecase,
	}
}

// Trigger handles GET /trigger.
func (h *UpdateHandler) Trigger(c *gin.Context) {
	update, err := h.updateUsecase.Trigger()
	if err != nil {
		log.Printf("[Updates] trigger failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro interno."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": update})
}

// Poll handles GET /updates?since=T. An absent or unparseable bound defaults
// to 0. The empty result is a bare {"nova": false} with no list; this
// asymmetry is the wire contract the polling clients expect.
func (h *UpdateHandler) Poll(c *gin.Context) {
	since, err := strconv.ParseInt(c.Query("since"), 10, 64)
	if err != nil {
		since = 0
	}

	updates, err := h.updateUsecase.Poll(since)
	if err != nil {
		log.Printf("[Updates] poll failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro interno."})
		return
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"nova": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nova": true, "atualizacoes": updates})
}
