package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createVenueTable,
		createArtistTable,
		createMusicShowTable,
		createMusicShowVenueIndex,
		createMusicShowArtistIndex,
		createVenueLocationIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createVenueTable = `
CREATE TABLE IF NOT EXISTS venue (
    id SERIAL PRIMARY KEY,
    name VARCHAR(500) NOT NULL,
    city VARCHAR(120) NOT NULL,
    state VARCHAR(120) NOT NULL,
    address VARCHAR(120) NOT NULL,
    phone VARCHAR(120) NOT NULL DEFAULT '',
    genres TEXT[] NOT NULL DEFAULT '{}',
    image_link VARCHAR(500) NOT NULL DEFAULT '',
    facebook_link VARCHAR(120) NOT NULL DEFAULT '',
    website VARCHAR(500) NOT NULL DEFAULT ''
);`

const createArtistTable = `
CREATE TABLE IF NOT EXISTS artist (
    id SERIAL PRIMARY KEY,
    name VARCHAR(500) NOT NULL,
    city VARCHAR(120) NOT NULL,
    state VARCHAR(120) NOT NULL,
    phone VARCHAR(120) NOT NULL DEFAULT '',
    genres TEXT[] NOT NULL DEFAULT '{}',
    image_link VARCHAR(500) NOT NULL DEFAULT '',
    facebook_link VARCHAR(120) NOT NULL DEFAULT '',
    seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
    seeking_description VARCHAR(120) NOT NULL DEFAULT ''
);`

// Deletes of venues/artists that still own shows must fail, so the
// foreign keys are declared without ON DELETE CASCADE.
const createMusicShowTable = `
CREATE TABLE IF NOT EXISTS music_show (
    id SERIAL PRIMARY KEY,
    venue_id INTEGER NOT NULL REFERENCES venue(id),
    artist_id INTEGER NOT NULL REFERENCES artist(id),
    start_time VARCHAR(120) NOT NULL
);`

const createMusicShowVenueIndex = `
CREATE INDEX IF NOT EXISTS music_show_venue_id_idx ON music_show (venue_id);`

const createMusicShowArtistIndex = `
CREATE INDEX IF NOT EXISTS music_show_artist_id_idx ON music_show (artist_id);`

const createVenueLocationIndex = `
CREATE INDEX IF NOT EXISTS venue_state_city_idx ON venue (state, city);`
