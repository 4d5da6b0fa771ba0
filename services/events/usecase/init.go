package usecase

import (
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/models"
	"github.com/kumpulapp/kumpul/services/events"
)

// EventUsecase orchestrates event and group operations on top of the
// scope-locked state store
type EventUsecase struct {
	store events.StateStore
	cfg   *models.Config
	now   func() time.Time
}

// NewEventUsecase creates a new event usecase instance
func NewEventUsecase(store events.StateStore, cfg *models.Config) *EventUsecase {
	return &EventUsecase{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}
