package service

import (
	"context"
	"fmt"
	"time"

	"afisha/internal/messaging"
	"afisha/internal/models"
)

type ArtistService struct {
	artistStore ArtistStore
	showStore   ShowStore
	natsClient  *messaging.NATSClient
}

func NewArtistService(artistStore ArtistStore, showStore ShowStore, natsClient *messaging.NATSClient) *ArtistService {
	return &ArtistService{
		artistStore: artistStore,
		showStore:   showStore,
		natsClient:  natsClient,
	}
}

// List returns every artist as id/name entries for the listing page.
func (s *ArtistService) List(ctx context.Context) ([]models.ListItem, error) {
	artists, err := s.artistStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	items := make([]models.ListItem, len(artists))
	for i, artist := range artists {
		items[i] = models.ListItem{ID: artist.ID, Name: artist.Name}
	}

	return items, nil
}

// Search matches artists by name, case-insensitive substring.
func (s *ArtistService) Search(ctx context.Context, term string) (*models.SearchResponse, error) {
	artists, err := s.artistStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	items := make([]models.ListItem, len(artists))
	for i, artist := range artists {
		items[i] = models.ListItem{ID: artist.ID, Name: artist.Name}
	}

	response := MatchByName(term, items)
	return &response, nil
}

// Get builds the artist detail page with past/upcoming shows, each show
// carrying the venue's display fields.
func (s *ArtistService) Get(ctx context.Context, id int64) (*models.ArtistPage, error) {
	artist, err := s.artistStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.showStore.ListForArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for artist %d: %w", id, err)
	}

	past, upcoming, err := ClassifyShows(records, CounterpartVenue, time.Now())
	if err != nil {
		return nil, err
	}

	return &models.ArtistPage{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Find loads a single artist record without classifying its shows.
func (s *ArtistService) Find(ctx context.Context, id int64) (*models.Artist, error) {
	return s.artistStore.GetByID(ctx, id)
}

func (s *ArtistService) Create(ctx context.Context, form *models.ArtistForm) (*models.Artist, error) {
	artist := &models.Artist{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Phone:              form.Phone,
		Genres:             form.Genres,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		SeekingVenue:       models.ParseFlexibleBool(form.SeekingVenue),
		SeekingDescription: form.SeekingDescription,
	}

	if err := s.artistStore.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	publishEvent(s.natsClient, models.EventArtistCreated, models.RecordEvent{ID: artist.ID, Name: artist.Name, Timestamp: time.Now()})
	return artist, nil
}

// Update overwrites every editable field of the artist from the form.
func (s *ArtistService) Update(ctx context.Context, id int64, form *models.ArtistForm) (*models.Artist, error) {
	artist := &models.Artist{
		ID:                 id,
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Phone:              form.Phone,
		Genres:             form.Genres,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		SeekingVenue:       models.ParseFlexibleBool(form.SeekingVenue),
		SeekingDescription: form.SeekingDescription,
	}

	if err := s.artistStore.Update(ctx, artist); err != nil {
		return nil, err
	}

	publishEvent(s.natsClient, models.EventArtistUpdated, models.RecordEvent{ID: artist.ID, Name: artist.Name, Timestamp: time.Now()})
	return artist, nil
}
