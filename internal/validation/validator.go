package validation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"afisha/internal/config"
	"afisha/internal/database"
	"afisha/internal/models"
)

// ShowTimeValidator - проверка данных music_show на корректность start_time
type ShowTimeValidator struct {
	db *database.DB
}

func NewShowTimeValidator(db *database.DB) *ShowTimeValidator {
	return &ShowTimeValidator{db: db}
}

// RunValidation connects to the store and reports every show whose
// start_time does not parse with the fixed layout. A malformed row makes
// any classification of its owner fail, so it must be found before it
// takes a detail page down.
func RunValidation() {
	cfg := config.Load()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	validator := NewShowTimeValidator(db)

	bad, err := validator.FindMalformed(context.Background())
	if err != nil {
		slog.Error("Validation failed", "error", err)
		os.Exit(1)
	}

	if len(bad) == 0 {
		fmt.Println("All show start times parse correctly.")
		return
	}

	for _, show := range bad {
		fmt.Printf("show %d: malformed start_time %q\n", show.ID, show.StartTime)
	}
	os.Exit(1)
}

// FindMalformed returns the shows whose start_time fails to parse.
func (v *ShowTimeValidator) FindMalformed(ctx context.Context) ([]models.MusicShow, error) {
	rows, err := v.db.QueryContext(ctx, `SELECT id, venue_id, artist_id, start_time FROM music_show ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shows: %w", err)
	}
	defer rows.Close()

	var malformed []models.MusicShow
	for rows.Next() {
		var show models.MusicShow
		if err := rows.Scan(&show.ID, &show.VenueID, &show.ArtistID, &show.StartTime); err != nil {
			return nil, err
		}
		if _, err := time.Parse(models.StartTimeLayout, show.StartTime); err != nil {
			malformed = append(malformed, show)
		}
	}

	return malformed, rows.Err()
}
