package service

import (
	"context"
	"fmt"
	"time"

	"afisha/internal/messaging"
	"afisha/internal/models"
)

type VenueService struct {
	venueStore VenueStore
	showStore  ShowStore
	natsClient *messaging.NATSClient
}

func NewVenueService(venueStore VenueStore, showStore ShowStore, natsClient *messaging.NATSClient) *VenueService {
	return &VenueService{
		venueStore: venueStore,
		showStore:  showStore,
		natsClient: natsClient,
	}
}

// Directory returns all venues grouped by (city, state) for the listing page.
func (s *VenueService) Directory(ctx context.Context) ([]models.VenueArea, error) {
	venues, err := s.venueStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	return GroupVenuesByLocation(venues), nil
}

// Search matches venues by name, case-insensitive substring.
func (s *VenueService) Search(ctx context.Context, term string) (*models.SearchResponse, error) {
	venues, err := s.venueStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	items := make([]models.ListItem, len(venues))
	for i, venue := range venues {
		items[i] = models.ListItem{ID: venue.ID, Name: venue.Name}
	}

	response := MatchByName(term, items)
	return &response, nil
}

// Get builds the venue detail page with its shows classified into past and
// upcoming against one instant.
func (s *VenueService) Get(ctx context.Context, id int64) (*models.VenuePage, error) {
	venue, err := s.venueStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.showStore.ListForVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for venue %d: %w", id, err)
	}

	past, upcoming, err := ClassifyShows(records, CounterpartArtist, time.Now())
	if err != nil {
		return nil, err
	}

	return &models.VenuePage{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *VenueService) Create(ctx context.Context, form *models.VenueForm) (*models.Venue, error) {
	venue := &models.Venue{
		Name:         form.Name,
		City:         form.City,
		State:        form.State,
		Address:      form.Address,
		Phone:        form.Phone,
		Genres:       form.Genres,
		ImageLink:    form.ImageLink,
		FacebookLink: form.FacebookLink,
	}

	if err := s.venueStore.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	publishEvent(s.natsClient, models.EventVenueCreated, models.RecordEvent{ID: venue.ID, Name: venue.Name, Timestamp: time.Now()})
	return venue, nil
}

// Update overwrites every editable field of the venue from the form.
func (s *VenueService) Update(ctx context.Context, id int64, form *models.VenueForm) (*models.Venue, error) {
	venue := &models.Venue{
		ID:           id,
		Name:         form.Name,
		City:         form.City,
		State:        form.State,
		Address:      form.Address,
		Phone:        form.Phone,
		Genres:       form.Genres,
		ImageLink:    form.ImageLink,
		FacebookLink: form.FacebookLink,
	}

	if err := s.venueStore.Update(ctx, venue); err != nil {
		return nil, err
	}

	publishEvent(s.natsClient, models.EventVenueUpdated, models.RecordEvent{ID: venue.ID, Name: venue.Name, Timestamp: time.Now()})
	return venue, nil
}

func (s *VenueService) Delete(ctx context.Context, id int64) error {
	if err := s.venueStore.Delete(ctx, id); err != nil {
		return err
	}

	publishEvent(s.natsClient, models.EventVenueDeleted, models.RecordEvent{ID: id, Timestamp: time.Now()})
	return nil
}

// Find loads a single venue record without classifying its shows; the edit
// form only needs the fields.
func (s *VenueService) Find(ctx context.Context, id int64) (*models.Venue, error) {
	return s.venueStore.GetByID(ctx, id)
}
