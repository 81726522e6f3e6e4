package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"afisha/internal/database"
	apperrors "afisha/internal/errors"
	"afisha/internal/models"
)

type ArtistRepository struct {
	db *database.DB
}

func NewArtistRepository(db *database.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) Create(ctx context.Context, artist *models.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		INSERT INTO artist (name, city, state, phone, genres, image_link, facebook_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err = tx.QueryRowContext(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		pq.Array(artist.Genres),
		artist.ImageLink,
		artist.FacebookLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
	).Scan(&artist.ID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	artist := &models.Artist{}
	query := `
		SELECT id, name, city, state, phone, genres, image_link, facebook_link, seeking_venue, seeking_description
		FROM artist
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		pq.Array(&artist.Genres),
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return artist, nil
}

func (r *ArtistRepository) List(ctx context.Context) ([]models.Artist, error) {
	query := `
		SELECT id, name, city, state, phone, genres, image_link, facebook_link, seeking_venue, seeking_description
		FROM artist
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var artist models.Artist
		err := rows.Scan(
			&artist.ID,
			&artist.Name,
			&artist.City,
			&artist.State,
			&artist.Phone,
			pq.Array(&artist.Genres),
			&artist.ImageLink,
			&artist.FacebookLink,
			&artist.SeekingVenue,
			&artist.SeekingDescription,
		)
		if err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}

	return artists, rows.Err()
}

func (r *ArtistRepository) Update(ctx context.Context, artist *models.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		UPDATE artist
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
		    image_link = $6, facebook_link = $7, seeking_venue = $8, seeking_description = $9
		WHERE id = $10`

	res, err := tx.ExecContext(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		pq.Array(artist.Genres),
		artist.ImageLink,
		artist.FacebookLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
		artist.ID,
	)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if affected == 0 {
		_ = tx.Rollback()
		return apperrors.ErrNotFound
	}

	return tx.Commit()
}
