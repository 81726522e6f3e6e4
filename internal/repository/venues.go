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

type VenueRepository struct {
	db *database.DB
}

func NewVenueRepository(db *database.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// Create inserts the venue inside a single transaction and assigns the
// generated id back to the struct.
func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		INSERT INTO venue (name, city, state, address, phone, genres, image_link, facebook_link, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err = tx.QueryRowContext(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		pq.Array(venue.Genres),
		venue.ImageLink,
		venue.FacebookLink,
		venue.Website,
	).Scan(&venue.ID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	venue := &models.Venue{}
	query := `
		SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website
		FROM venue
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		pq.Array(&venue.Genres),
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.Website,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return venue, nil
}

// List returns every venue ordered by id ascending so listings and
// groupings are deterministic.
func (r *VenueRepository) List(ctx context.Context) ([]models.Venue, error) {
	query := `
		SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website
		FROM venue
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		var venue models.Venue
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.City,
			&venue.State,
			&venue.Address,
			&venue.Phone,
			pq.Array(&venue.Genres),
			&venue.ImageLink,
			&venue.FacebookLink,
			&venue.Website,
		)
		if err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}

	return venues, rows.Err()
}

// Update overwrites every editable field in one transaction. Website is not
// collected by the edit form and stays untouched.
func (r *VenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		UPDATE venue
		SET name = $1, city = $2, state = $3, address = $4, phone = $5,
		    genres = $6, image_link = $7, facebook_link = $8
		WHERE id = $9`

	res, err := tx.ExecContext(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		pq.Array(venue.Genres),
		venue.ImageLink,
		venue.FacebookLink,
		venue.ID,
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

// Delete removes the venue by id. The music_show foreign key has no
// cascade, so deleting a venue that still owns shows fails and is
// reported as ErrOwnedShows.
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM venue WHERE id = $1`, id)
	if err != nil {
		_ = tx.Rollback()
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return apperrors.ErrOwnedShows
		}
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
