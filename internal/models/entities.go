package models

// Venue represents a place that hosts shows
type Venue struct {
	ID           int64    `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	City         string   `json:"city" db:"city"`
	State        string   `json:"state" db:"state"`
	Address      string   `json:"address" db:"address"`
	Phone        string   `json:"phone" db:"phone"`
	Genres       []string `json:"genres" db:"genres"`
	ImageLink    string   `json:"image_link" db:"image_link"`
	FacebookLink string   `json:"facebook_link" db:"facebook_link"`
	Website      string   `json:"website" db:"website"`
}

// Artist represents a performer who plays shows
type Artist struct {
	ID                 int64    `json:"id" db:"id"`
	Name               string   `json:"name" db:"name"`
	City               string   `json:"city" db:"city"`
	State              string   `json:"state" db:"state"`
	Phone              string   `json:"phone" db:"phone"`
	Genres             []string `json:"genres" db:"genres"`
	ImageLink          string   `json:"image_link" db:"image_link"`
	FacebookLink       string   `json:"facebook_link" db:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" db:"seeking_description"`
}

// MusicShow links one venue and one artist at a start time.
// StartTime is stored as a naive "YYYY-MM-DD HH:MM:SS" string, no timezone.
type MusicShow struct {
	ID        int64  `json:"id" db:"id"`
	VenueID   int64  `json:"venue_id" db:"venue_id"`
	ArtistID  int64  `json:"artist_id" db:"artist_id"`
	StartTime string `json:"start_time" db:"start_time"`
}
