package service

import (
	"fmt"
	"time"

	"afisha/internal/models"
)

// Counterpart selects which side of a show record becomes the ShowView:
// a venue page lists the artists that played it and vice versa.
type Counterpart int

const (
	CounterpartArtist Counterpart = iota
	CounterpartVenue
)

// ClassifyShows partitions the shows of one venue or artist into past and
// upcoming against a single instant captured by the caller, so no show can
// straddle the boundary mid-computation. A show starting strictly after now
// is upcoming; one starting at exactly now is past.
//
// A start_time that does not parse with the fixed layout fails the whole
// classification. Malformed data is surfaced, never silently dropped.
func ClassifyShows(records []models.ShowRecord, counterpart Counterpart, now time.Time) (past, upcoming []models.ShowView, err error) {
	for _, rec := range records {
		// Naive start times live in the same frame as the caller's clock.
		startTime, parseErr := time.ParseInLocation(models.StartTimeLayout, rec.StartTime, time.Local)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("show %d has malformed start_time %q: %w", rec.ShowID, rec.StartTime, parseErr)
		}

		view := models.ShowView{StartTime: rec.StartTime}
		switch counterpart {
		case CounterpartArtist:
			view.ID = rec.ArtistID
			view.Name = rec.ArtistName
			view.ImageLink = rec.ArtistImageLink
		case CounterpartVenue:
			view.ID = rec.VenueID
			view.Name = rec.VenueName
			view.ImageLink = rec.VenueImageLink
		}

		if startTime.After(now) {
			upcoming = append(upcoming, view)
		} else {
			past = append(past, view)
		}
	}

	return past, upcoming, nil
}
