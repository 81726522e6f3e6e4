package service

import (
	"context"
	"log/slog"

	"afisha/internal/messaging"
	"afisha/internal/models"
	"afisha/internal/repository"
)

// Store interfaces keep the services decoupled from the persistence layer;
// the repositories satisfy them and tests substitute in-memory fakes.

type VenueStore interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int64) (*models.Venue, error)
	List(ctx context.Context) ([]models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id int64) error
}

type ArtistStore interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id int64) (*models.Artist, error)
	List(ctx context.Context) ([]models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
}

type ShowStore interface {
	Create(ctx context.Context, show *models.MusicShow) error
	ListAll(ctx context.Context) ([]models.ShowRecord, error)
	ListForVenue(ctx context.Context, venueID int64) ([]models.ShowRecord, error)
	ListForArtist(ctx context.Context, artistID int64) ([]models.ShowRecord, error)
}

type Services struct {
	Venues  *VenueService
	Artists *ArtistService
	Shows   *ShowService
}

func NewServices(repos *repository.Repositories, natsClient *messaging.NATSClient) *Services {
	return &Services{
		Venues:  NewVenueService(repos.Venues, repos.Shows, natsClient),
		Artists: NewArtistService(repos.Artists, repos.Shows, natsClient),
		Shows:   NewShowService(repos.Shows, natsClient),
	}
}

// publishEvent sends a directory change notification. Publishing is
// best-effort: a failure is logged and never fails the mutation that
// already committed.
func publishEvent(nats *messaging.NATSClient, subject string, payload interface{}) {
	if err := nats.Publish(subject, payload); err != nil {
		slog.Warn("Failed to publish event", "subject", subject, "error", err)
	}
}
