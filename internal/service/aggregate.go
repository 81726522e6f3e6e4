package service

import (
	"sort"

	"afisha/internal/models"
)

type location struct {
	city  string
	state string
}

// GroupVenuesByLocation groups venues by exact (city, state) match, no
// normalization. Groups are ordered by state then city; members keep the
// order the store returned them in (id ascending).
func GroupVenuesByLocation(venues []models.Venue) []models.VenueArea {
	groups := make(map[location][]models.ListItem)
	for _, venue := range venues {
		key := location{city: venue.City, state: venue.State}
		groups[key] = append(groups[key], models.ListItem{ID: venue.ID, Name: venue.Name})
	}

	keys := make([]location, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}
		return keys[i].city < keys[j].city
	})

	areas := make([]models.VenueArea, 0, len(keys))
	for _, key := range keys {
		// Guard kept explicit for future filtering even though groups are
		// built from existing members.
		if len(groups[key]) == 0 {
			continue
		}
		areas = append(areas, models.VenueArea{
			City:   key.city,
			State:  key.state,
			Venues: groups[key],
		})
	}

	return areas
}
