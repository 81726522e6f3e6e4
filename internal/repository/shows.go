package repository

import (
	"context"
	"fmt"

	"afisha/internal/database"
	"afisha/internal/models"
)

type ShowRepository struct {
	db *database.DB
}

func NewShowRepository(db *database.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

const showRecordColumns = `
	ms.id, ms.venue_id, v.name, COALESCE(v.image_link, ''),
	ms.artist_id, a.name, COALESCE(a.image_link, ''), ms.start_time`

// Create inserts the show inside a single transaction. The foreign keys
// reject venue/artist ids that do not exist.
func (r *ShowRepository) Create(ctx context.Context, show *models.MusicShow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		INSERT INTO music_show (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id`

	err = tx.QueryRowContext(ctx, query,
		show.VenueID,
		show.ArtistID,
		show.StartTime,
	).Scan(&show.ID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ListAll returns every show joined with both counterpart names, one flat
// record per show, ordered by show id ascending.
func (r *ShowRepository) ListAll(ctx context.Context) ([]models.ShowRecord, error) {
	query := `
		SELECT ` + showRecordColumns + `
		FROM music_show ms
		JOIN venue v ON v.id = ms.venue_id
		JOIN artist a ON a.id = ms.artist_id
		ORDER BY ms.id ASC`

	return r.queryRecords(ctx, query)
}

// ListForVenue returns the shows owned by a venue as plain records, so the
// classifier never walks a relationship graph.
func (r *ShowRepository) ListForVenue(ctx context.Context, venueID int64) ([]models.ShowRecord, error) {
	query := `
		SELECT ` + showRecordColumns + `
		FROM music_show ms
		JOIN venue v ON v.id = ms.venue_id
		JOIN artist a ON a.id = ms.artist_id
		WHERE ms.venue_id = $1
		ORDER BY ms.id ASC`

	return r.queryRecords(ctx, query, venueID)
}

// ListForArtist is the artist-side counterpart of ListForVenue.
func (r *ShowRepository) ListForArtist(ctx context.Context, artistID int64) ([]models.ShowRecord, error) {
	query := `
		SELECT ` + showRecordColumns + `
		FROM music_show ms
		JOIN venue v ON v.id = ms.venue_id
		JOIN artist a ON a.id = ms.artist_id
		WHERE ms.artist_id = $1
		ORDER BY ms.id ASC`

	return r.queryRecords(ctx, query, artistID)
}

func (r *ShowRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]models.ShowRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ShowRecord
	for rows.Next() {
		var rec models.ShowRecord
		err := rows.Scan(
			&rec.ShowID,
			&rec.VenueID,
			&rec.VenueName,
			&rec.VenueImageLink,
			&rec.ArtistID,
			&rec.ArtistName,
			&rec.ArtistImageLink,
			&rec.StartTime,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
