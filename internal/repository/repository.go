package repository

import (
	"afisha/internal/database"
)

type Repositories struct {
	Venues  *VenueRepository
	Artists *ArtistRepository
	Shows   *ShowRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Venues:  NewVenueRepository(db),
		Artists: NewArtistRepository(db),
		Shows:   NewShowRepository(db),
	}
}
