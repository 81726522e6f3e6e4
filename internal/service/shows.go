package service

import (
	"context"
	"fmt"
	"time"

	"afisha/internal/messaging"
	"afisha/internal/models"
)

type ShowService struct {
	showStore  ShowStore
	natsClient *messaging.NATSClient
}

func NewShowService(showStore ShowStore, natsClient *messaging.NATSClient) *ShowService {
	return &ShowService{
		showStore:  showStore,
		natsClient: natsClient,
	}
}

// List returns one flat display record per show in store order.
func (s *ShowService) List(ctx context.Context) ([]models.ShowRecord, error) {
	records, err := s.showStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	return records, nil
}

// Create persists a new show. The referenced venue and artist must exist;
// the store's foreign keys reject dangling ids.
func (s *ShowService) Create(ctx context.Context, form *models.ShowForm) error {
	show := &models.MusicShow{
		VenueID:   form.VenueID,
		ArtistID:  form.ArtistID,
		StartTime: form.StartTime,
	}

	if err := s.showStore.Create(ctx, show); err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}

	publishEvent(s.natsClient, models.EventShowCreated, models.ShowCreatedEvent{
		ShowID:    show.ID,
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.StartTime,
		Timestamp: time.Now(),
	})
	return nil
}
