package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"afisha/internal/config"
	"afisha/internal/database"
	"afisha/internal/logger"
	"afisha/internal/models"
	"afisha/internal/repository"
)

var (
	clearExisting = flag.Bool("clear", false, "Clear existing records before seeding")
	dryRun        = flag.Bool("dry-run", false, "Show what would be inserted without making changes")
)

type Seeder struct {
	db    *database.DB
	repos *repository.Repositories
}

func main() {
	flag.Parse()
	logger.Init("info", "text")

	slog.Info("Starting demo data seeder...")

	cfg := config.Load()
	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	seeder := &Seeder{db: db, repos: repository.NewRepositories(db)}

	if err := seeder.Seed(context.Background()); err != nil {
		slog.Error("Failed to seed demo data", "error", err)
		os.Exit(1)
	}

	slog.Info("Seeding completed successfully!")
}

func (s *Seeder) Seed(ctx context.Context) error {
	venues := demoVenues()
	artists := demoArtists()

	if *dryRun {
		for _, v := range venues {
			fmt.Printf("would insert venue %q (%s, %s)\n", v.Name, v.City, v.State)
		}
		for _, a := range artists {
			fmt.Printf("would insert artist %q (%s, %s)\n", a.Name, a.City, a.State)
		}
		fmt.Printf("would insert %d shows\n", len(demoShows(venues, artists)))
		return nil
	}

	if *clearExisting {
		if err := s.clear(ctx); err != nil {
			return fmt.Errorf("failed to clear existing records: %w", err)
		}
		slog.Info("Cleared existing records")
	}

	for i := range venues {
		if err := s.repos.Venues.Create(ctx, &venues[i]); err != nil {
			return fmt.Errorf("failed to insert venue %q: %w", venues[i].Name, err)
		}
		slog.Info("Inserted venue", "id", venues[i].ID, "name", venues[i].Name)
	}

	for i := range artists {
		if err := s.repos.Artists.Create(ctx, &artists[i]); err != nil {
			return fmt.Errorf("failed to insert artist %q: %w", artists[i].Name, err)
		}
		slog.Info("Inserted artist", "id", artists[i].ID, "name", artists[i].Name)
	}

	for _, show := range demoShows(venues, artists) {
		if err := s.repos.Shows.Create(ctx, &show); err != nil {
			return fmt.Errorf("failed to insert show: %w", err)
		}
		slog.Info("Inserted show", "id", show.ID, "venue_id", show.VenueID, "artist_id", show.ArtistID)
	}

	return nil
}

// clear removes all records; shows first so the foreign keys allow it.
func (s *Seeder) clear(ctx context.Context) error {
	for _, table := range []string{"music_show", "venue", "artist"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func demoVenues() []models.Venue {
	return []models.Venue{
		{
			Name:         "The Musical Hop",
			City:         "San Francisco",
			State:        "CA",
			Address:      "1015 Folsom Street",
			Phone:        "123-123-1234",
			Genres:       []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			ImageLink:    "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
			FacebookLink: "https://www.facebook.com/TheMusicalHop",
			Website:      "https://www.themusicalhop.com",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			Website:      "https://www.theduelingpianos.com",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
		},
	}
}

func demoArtists() []models.Artist {
	return []models.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             []string{"Rock n Roll"},
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:      "Matt Quevado",
			City:      "New York",
			State:     "NY",
			Phone:     "300-400-5000",
			Genres:    []string{"Jazz"},
			ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    []string{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
		},
	}
}

func demoShows(venues []models.Venue, artists []models.Artist) []models.MusicShow {
	return []models.MusicShow{
		{VenueID: venues[0].ID, ArtistID: artists[0].ID, StartTime: "2019-05-21 21:30:00"},
		{VenueID: venues[2].ID, ArtistID: artists[1].ID, StartTime: "2019-06-15 23:00:00"},
		{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: "2035-04-01 20:00:00"},
		{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: "2035-04-08 20:00:00"},
		{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: "2035-04-15 20:00:00"},
	}
}
