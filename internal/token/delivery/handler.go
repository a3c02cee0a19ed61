package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"notifyhub-backend/internal/token/dto"
	"notifyhub-backend/internal/token/repository"
	"notifyhub-backend/internal/token/usecase"
)

type TokenHandler struct {
	tokenUsecase usecase.TokenUsecase
}

func NewTokenHandler(tokenUsecase usecase.TokenUsecase) *TokenHandler {
	return &TokenHandler{
		tokenUsecase: tokenUsecase,
	}
}

// Register handles POST /register-token. A duplicate token is a 200, not an
// error; only a fresh registration returns 201 with the stored record.
func (h *TokenHandler) Register(c *gin.Context) {
	var req dto.RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token FCM é obrigatório."})
		return
	}

	record, err := h.tokenUsecase.Register(req.Token)
	if errors.Is(err, repository.ErrAlreadyRegistered) {
		c.JSON(http.StatusOK, gin.H{"message": "Token já cadastrado."})
		return
	}
	if err != nil {
		log.Printf("[Tokens] register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Token registrado com sucesso.",
		"token":   record,
	})
}

// List handles GET /tokens.
func (h *TokenHandler) List(c *gin.Context) {
	tokens, err := h.tokenUsecase.List()
	if err != nil {
		log.Printf("[Tokens] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno."})
		return
	}
	if tokens == nil {
		tokens = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}
