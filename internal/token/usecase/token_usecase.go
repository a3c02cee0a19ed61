package usecase

import (
	"notifyhub-backend/internal/token/domain"
	"notifyhub-backend/internal/token/repository"
)

// TokenUsecase defines the token registry operations exposed to the HTTP layer
type TokenUsecase interface {
	Register(token string) (*domain.DeviceToken, error)
	List() ([]string, error)
}

type tokenUsecase struct {
	tokenRepo repository.TokenRepository
}

// NewTokenUsecase creates a new instance of tokenUsecase
func NewTokenUsecase(tokenRepo repository.TokenRepository) TokenUsecase {
	return &tokenUsecase{
		tokenRepo: tokenRepo,
	}
}

func (u *tokenUsecase) Register(token string) (*domain.DeviceToken, error) {
	return u.tokenRepo.Register(token)
}

func (u *tokenUsecase) List() ([]string, error) {
	return u.tokenRepo.All()
}
