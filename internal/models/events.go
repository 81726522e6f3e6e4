package models

import "time"

// NATS Event Types
const (
	EventVenueCreated  = "venue.created"
	EventVenueUpdated  = "venue.updated"
	EventVenueDeleted  = "venue.deleted"
	EventArtistCreated = "artist.created"
	EventArtistUpdated = "artist.updated"
	EventShowCreated   = "show.created"
)

// RecordEvent represents a venue or artist directory change
type RecordEvent struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// ShowCreatedEvent represents a newly listed show
type ShowCreatedEvent struct {
	ShowID    int64     `json:"show_id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime string    `json:"start_time"`
	Timestamp time.Time `json:"timestamp"`
}
