package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"afisha/internal/models"
)

func TestGroupVenuesByLocation(t *testing.T) {
	venues := []models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}

	areas := GroupVenuesByLocation(venues)

	assert.Len(t, areas, 2)

	// Groups ordered by state then city
	assert.Equal(t, "CA", areas[0].State)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Len(t, areas[0].Venues, 2)

	assert.Equal(t, "NY", areas[1].State)
	assert.Equal(t, "New York", areas[1].City)
	assert.Len(t, areas[1].Venues, 1)

	// Members keep store order
	assert.Equal(t, int64(1), areas[0].Venues[0].ID)
	assert.Equal(t, int64(3), areas[0].Venues[1].ID)
}

func TestGroupVenuesByLocationExactMatch(t *testing.T) {
	// City/state comparison is exact, no case normalization
	venues := []models.Venue{
		{ID: 1, Name: "A", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "B", City: "san francisco", State: "CA"},
	}

	areas := GroupVenuesByLocation(venues)
	assert.Len(t, areas, 2)
}

func TestGroupVenuesByLocationEmpty(t *testing.T) {
	assert.Empty(t, GroupVenuesByLocation(nil))
}
