package usecase

import (
	"log"
	"time"

	"notifyhub-backend/internal/update/domain"
	"notifyhub-backend/internal/update/repository"
)

// UpdateUsecase defines the updates feed operations exposed to the HTTP layer
type UpdateUsecase interface {
	Trigger() (*domain.Update, error)
	Poll(since int64) ([]domain.Update, error)
}

type updateUsecase struct {
	updateRepo repository.UpdateRepository
}

// NewUpdateUsecase creates a new instance of updateUsecase
func NewUpdateUsecase(updateRepo repository.UpdateRepository) UpdateUsecase {
	return &updateUsecase{
		updateRepo: updateRepo,
	}
}

// Trigger inserts one update stamped with the current time and publishes it on
// the channel. Insert and publish are not transactional: a failed publish is
// logged and the committed row is still returned, so pollers catch up even
// when WebSocket subscribers miss the event.
func (u *updateUsecase) Trigger() (*domain.Update, error) {
	now := time.Now()
	mensagem := "Atualização em " + now.Format("15:04:05")

	update, err := u.updateRepo.Insert(mensagem, now.UnixMilli())
	if err != nil {
		return nil, err
	}

	if err := u.updateRepo.Notify(update); err != nil {
		log.Printf("[Updates] pg_notify failed (pollers still see the row): %v", err)
	}

	return update, nil
}

func (u *updateUsecase) Poll(since int64) ([]domain.Update, error) {
	return u.updateRepo.Since(since)
}
