package service

import (
	"context"
	"errors"

	apperrors "afisha/internal/errors"
	"afisha/internal/models"
)

// In-memory fakes for the store interfaces.

type fakeVenueStore struct {
	venues    []models.Venue
	nextID    int64
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeVenueStore) Create(_ context.Context, venue *models.Venue) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	venue.ID = f.nextID
	f.venues = append(f.venues, *venue)
	return nil
}

func (f *fakeVenueStore) GetByID(_ context.Context, id int64) (*models.Venue, error) {
	for _, venue := range f.venues {
		if venue.ID == id {
			v := venue
			return &v, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeVenueStore) List(_ context.Context) ([]models.Venue, error) {
	return f.venues, nil
}

func (f *fakeVenueStore) Update(_ context.Context, venue *models.Venue) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.venues {
		if f.venues[i].ID == venue.ID {
			website := f.venues[i].Website
			f.venues[i] = *venue
			f.venues[i].Website = website
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeVenueStore) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.venues {
		if f.venues[i].ID == id {
			f.venues = append(f.venues[:i], f.venues[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeArtistStore struct {
	artists   []models.Artist
	nextID    int64
	createErr error
}

func (f *fakeArtistStore) Create(_ context.Context, artist *models.Artist) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	artist.ID = f.nextID
	f.artists = append(f.artists, *artist)
	return nil
}

func (f *fakeArtistStore) GetByID(_ context.Context, id int64) (*models.Artist, error) {
	for _, artist := range f.artists {
		if artist.ID == id {
			a := artist
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeArtistStore) List(_ context.Context) ([]models.Artist, error) {
	return f.artists, nil
}

func (f *fakeArtistStore) Update(_ context.Context, artist *models.Artist) error {
	for i := range f.artists {
		if f.artists[i].ID == artist.ID {
			f.artists[i] = *artist
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeShowStore struct {
	records   []models.ShowRecord
	created   []models.MusicShow
	createErr error
}

func (f *fakeShowStore) Create(_ context.Context, show *models.MusicShow) error {
	if f.createErr != nil {
		return f.createErr
	}
	show.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *show)
	return nil
}

func (f *fakeShowStore) ListAll(_ context.Context) ([]models.ShowRecord, error) {
	return f.records, nil
}

func (f *fakeShowStore) ListForVenue(_ context.Context, venueID int64) ([]models.ShowRecord, error) {
	var out []models.ShowRecord
	for _, rec := range f.records {
		if rec.VenueID == venueID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeShowStore) ListForArtist(_ context.Context, artistID int64) ([]models.ShowRecord, error) {
	var out []models.ShowRecord
	for _, rec := range f.records {
		if rec.ArtistID == artistID {
			out = append(out, rec)
		}
	}
	return out, nil
}

var errStoreDown = errors.New("store unavailable")
