package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "afisha/internal/errors"
	"afisha/internal/models"
	"afisha/internal/service"
)

// Minimal in-memory stores so the full handler/service stack runs without
// the database.

type stubVenueStore struct {
	venues    []models.Venue
	nextID    int64
	createErr error
	deleteErr error
}

func (f *stubVenueStore) Create(_ context.Context, venue *models.Venue) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	venue.ID = f.nextID
	f.venues = append(f.venues, *venue)
	return nil
}

func (f *stubVenueStore) GetByID(_ context.Context, id int64) (*models.Venue, error) {
	for _, venue := range f.venues {
		if venue.ID == id {
			v := venue
			return &v, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *stubVenueStore) List(_ context.Context) ([]models.Venue, error) {
	return f.venues, nil
}

func (f *stubVenueStore) Update(_ context.Context, venue *models.Venue) error {
	for i := range f.venues {
		if f.venues[i].ID == venue.ID {
			f.venues[i] = *venue
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *stubVenueStore) Delete(_ context.Context, id int64) error {
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

type stubArtistStore struct {
	artists []models.Artist
	nextID  int64
}

func (f *stubArtistStore) Create(_ context.Context, artist *models.Artist) error {
	f.nextID++
	artist.ID = f.nextID
	f.artists = append(f.artists, *artist)
	return nil
}

func (f *stubArtistStore) GetByID(_ context.Context, id int64) (*models.Artist, error) {
	for _, artist := range f.artists {
		if artist.ID == id {
			a := artist
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *stubArtistStore) List(_ context.Context) ([]models.Artist, error) {
	return f.artists, nil
}

func (f *stubArtistStore) Update(_ context.Context, artist *models.Artist) error {
	for i := range f.artists {
		if f.artists[i].ID == artist.ID {
			f.artists[i] = *artist
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type stubShowStore struct {
	records   []models.ShowRecord
	created   []models.MusicShow
	createErr error
}

func (f *stubShowStore) Create(_ context.Context, show *models.MusicShow) error {
	if f.createErr != nil {
		return f.createErr
	}
	show.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *show)
	return nil
}

func (f *stubShowStore) ListAll(_ context.Context) ([]models.ShowRecord, error) {
	return f.records, nil
}

func (f *stubShowStore) ListForVenue(_ context.Context, venueID int64) ([]models.ShowRecord, error) {
	var out []models.ShowRecord
	for _, rec := range f.records {
		if rec.VenueID == venueID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *stubShowStore) ListForArtist(_ context.Context, artistID int64) ([]models.ShowRecord, error) {
	var out []models.ShowRecord
	for _, rec := range f.records {
		if rec.ArtistID == artistID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func setupRouter(venues *stubVenueStore, artists *stubArtistStore, shows *stubShowStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	services := &service.Services{
		Venues:  service.NewVenueService(venues, shows, nil),
		Artists: service.NewArtistService(artists, shows, nil),
		Shows:   service.NewShowService(shows, nil),
	}
	h := NewHandlers(services, nil)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/**/*.html")

	r.GET("/", h.Home)

	venueRoutes := r.Group("/venues")
	{
		venueRoutes.GET("", h.ListVenues)
		venueRoutes.POST("/search", h.SearchVenues)
		venueRoutes.GET("/create", h.NewVenueForm)
		venueRoutes.POST("/create", h.CreateVenue)
		venueRoutes.GET("/:id", h.ShowVenue)
		venueRoutes.DELETE("/:id", h.DeleteVenue)
		venueRoutes.GET("/:id/edit", h.EditVenueForm)
		venueRoutes.POST("/:id/edit", h.UpdateVenue)
	}

	artistRoutes := r.Group("/artists")
	{
		artistRoutes.GET("", h.ListArtists)
		artistRoutes.POST("/search", h.SearchArtists)
		artistRoutes.GET("/create", h.NewArtistForm)
		artistRoutes.POST("/create", h.CreateArtist)
		artistRoutes.GET("/:id", h.ShowArtist)
		artistRoutes.GET("/:id/edit", h.EditArtistForm)
		artistRoutes.POST("/:id/edit", h.UpdateArtist)
	}

	showRoutes := r.Group("/shows")
	{
		showRoutes.GET("", h.ListShows)
		showRoutes.GET("/create", h.NewShowForm)
		showRoutes.POST("/create", h.CreateShow)
	}

	r.NoRoute(h.NotFound)

	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListVenuesGroupsByLocation(t *testing.T) {
	venues := &stubVenueStore{venues: []models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}, nextID: 3}
	r := setupRouter(venues, &stubArtistStore{}, &stubShowStore{})

	w := get(r, "/venues")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "San Francisco, CA")
	assert.Contains(t, w.Body.String(), "New York, NY")
	assert.Contains(t, w.Body.String(), "The Musical Hop")
}

func TestSearchVenues(t *testing.T) {
	venues := &stubVenueStore{venues: []models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}, nextID: 3}
	r := setupRouter(venues, &stubArtistStore{}, &stubShowStore{})

	w := postForm(r, "/venues/search", url.Values{"search_term": {"Hop"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Found 1 result")
	assert.Contains(t, w.Body.String(), "The Musical Hop")
	assert.NotContains(t, w.Body.String(), "Park Square")
}

func TestShowVenueNotFound(t *testing.T) {
	r := setupRouter(&stubVenueStore{}, &stubArtistStore{}, &stubShowStore{})

	w := get(r, "/venues/99")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}

func TestShowVenueClassifiesShows(t *testing.T) {
	venues := &stubVenueStore{venues: []models.Venue{
		{ID: 1, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}, nextID: 1}
	shows := &stubShowStore{records: []models.ShowRecord{
		{ShowID: 1, VenueID: 1, ArtistID: 2, ArtistName: "Matt Quevado", StartTime: "2019-06-15 23:00:00"},
		{ShowID: 2, VenueID: 1, ArtistID: 3, ArtistName: "The Wild Sax Band", StartTime: "2035-04-01 20:00:00"},
	}}
	r := setupRouter(venues, &stubArtistStore{}, shows)

	w := get(r, "/venues/1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Past Shows (1)")
	assert.Contains(t, w.Body.String(), "Upcoming Shows (1)")
}

func TestShowVenueMalformedShowRendersServerError(t *testing.T) {
	venues := &stubVenueStore{venues: []models.Venue{{ID: 1, Name: "The Musical Hop"}}, nextID: 1}
	shows := &stubShowStore{records: []models.ShowRecord{
		{ShowID: 1, VenueID: 1, ArtistID: 2, StartTime: "garbage"},
	}}
	r := setupRouter(venues, &stubArtistStore{}, shows)

	w := get(r, "/venues/1")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "500")
}

func TestCreateVenueSuccessFlash(t *testing.T) {
	venues := &stubVenueStore{}
	r := setupRouter(venues, &stubArtistStore{}, &stubShowStore{})

	w := postForm(r, "/venues/create", url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
		"genres":  {"Jazz", "Reggae"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Venue The Musical Hop was successfully listed!")
	assert.NotContains(t, w.Body.String(), "could not be listed")
	assert.Len(t, venues.venues, 1)
	assert.Equal(t, []string{"Jazz", "Reggae"}, venues.venues[0].Genres)
}

func TestCreateVenueFailureFlash(t *testing.T) {
	venues := &stubVenueStore{createErr: errors.New("connection refused")}
	r := setupRouter(venues, &stubArtistStore{}, &stubShowStore{})

	w := postForm(r, "/venues/create", url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "could not be listed")
	assert.NotContains(t, w.Body.String(), "successfully listed")
	assert.Empty(t, venues.venues)
}

func TestCreateVenueMissingRequiredField(t *testing.T) {
	venues := &stubVenueStore{}
	r := setupRouter(venues, &stubArtistStore{}, &stubShowStore{})

	w := postForm(r, "/venues/create", url.Values{"name": {"The Musical Hop"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "could not be listed")
	assert.Empty(t, venues.venues)
}

func TestDeleteVenueWithShowsRejected(t *testing.T) {
	venues := &stubVenueStore{
		venues:    []models.Venue{{ID: 1, Name: "The Musical Hop"}},
		nextID:    1,
		deleteErr: apperrors.ErrOwnedShows,
	}
	r := setupRouter(venues, &stubArtistStore{}, &stubShowStore{})

	req, _ := http.NewRequest("DELETE", "/venues/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "could not be deleted")
	assert.Len(t, venues.venues, 1)
}

func TestUpdateVenueRendersDetailWithFlash(t *testing.T) {
	venues := &stubVenueStore{venues: []models.Venue{
		{ID: 1, Name: "Old Name", City: "Oakland", State: "CA", Address: "1 Main St"},
	}, nextID: 1}
	r := setupRouter(venues, &stubArtistStore{}, &stubShowStore{})

	w := postForm(r, "/venues/1/edit", url.Values{
		"name":    {"New Name"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom Street"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Venue New Name was successfully updated!")
	assert.Equal(t, "New Name", venues.venues[0].Name)
}

func TestUpdateVenueNotFound(t *testing.T) {
	r := setupRouter(&stubVenueStore{}, &stubArtistStore{}, &stubShowStore{})

	w := postForm(r, "/venues/99/edit", url.Values{
		"name":    {"X"},
		"city":    {"Y"},
		"state":   {"Z"},
		"address": {"W"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchArtistsCaseInsensitive(t *testing.T) {
	artists := &stubArtistStore{artists: []models.Artist{
		{ID: 1, Name: "Guns N Petals"},
		{ID: 2, Name: "Matt Quevado"},
		{ID: 3, Name: "The Wild Sax Band"},
	}, nextID: 3}
	r := setupRouter(&stubVenueStore{}, artists, &stubShowStore{})

	w := postForm(r, "/artists/search", url.Values{"search_term": {"band"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Found 1 result")
	assert.Contains(t, w.Body.String(), "The Wild Sax Band")
}

func TestCreateArtistWithSeekingVenue(t *testing.T) {
	artists := &stubArtistStore{}
	r := setupRouter(&stubVenueStore{}, artists, &stubShowStore{})

	w := postForm(r, "/artists/create", url.Values{
		"name":                {"Guns N Petals"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"seeking_venue":       {"true"},
		"seeking_description": {"Looking for shows"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Artist Guns N Petals was successfully listed!")
	assert.Len(t, artists.artists, 1)
	assert.True(t, artists.artists[0].SeekingVenue)
}

func TestListShows(t *testing.T) {
	shows := &stubShowStore{records: []models.ShowRecord{
		{ShowID: 1, VenueID: 1, VenueName: "The Musical Hop", ArtistID: 1, ArtistName: "Guns N Petals", StartTime: "2019-05-21 21:30:00"},
	}}
	r := setupRouter(&stubVenueStore{}, &stubArtistStore{}, shows)

	w := get(r, "/shows")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Guns N Petals")
	assert.Contains(t, w.Body.String(), "The Musical Hop")
	assert.Contains(t, w.Body.String(), "2019-05-21 21:30:00")
}

func TestCreateShow(t *testing.T) {
	shows := &stubShowStore{}
	r := setupRouter(&stubVenueStore{}, &stubArtistStore{}, shows)

	w := postForm(r, "/shows/create", url.Values{
		"artist_id":  {"3"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Show was successfully listed!")
	assert.Len(t, shows.created, 1)
}

func TestCreateShowFailureFlash(t *testing.T) {
	shows := &stubShowStore{createErr: errors.New("foreign key violation")}
	r := setupRouter(&stubVenueStore{}, &stubArtistStore{}, shows)

	w := postForm(r, "/shows/create", url.Values{
		"artist_id":  {"99"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Show could not be listed")
	assert.Empty(t, shows.created)
}

func TestUnknownRouteRenders404(t *testing.T) {
	r := setupRouter(&stubVenueStore{}, &stubArtistStore{}, &stubShowStore{})

	w := get(r, "/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}
