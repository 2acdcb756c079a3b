package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	destinationsrepo "staybook/internal/destinations/repository"
	destinationsvalidator "staybook/internal/destinations/validator"
	hotelsrepo "staybook/internal/hotels/repository"
	hotelsvalidator "staybook/internal/hotels/validator"
	"staybook/pkg/config"
	"staybook/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const JobName = "seed"

func main() {
	file := flag.String("file", "", "YAML fixture to load instead of the embedded one")
	force := flag.Bool("force", false, "clear hotels and destinations before seeding")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	data := defaultFixture
	if *file != "" {
		raw, err := os.ReadFile(*file)
		if err != nil {
			cfg.Log.Fatal("Failed to read fixture", "file", *file, "error", err)
		}
		data = raw
	}

	f, err := parseFixture(data)
	if err != nil {
		cfg.Log.Fatal("Invalid fixture", "error", err)
	}

	if err := run(ctx, cfg, f, *force); err != nil {
		cfg.Log.Error("Seed failed", "error", err)
		cfg.GracefulShutdown()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, f *fixture, force bool) error {
	hotelRepo := hotelsrepo.NewMongoHotelRepository(cfg)
	destinationRepo := destinationsrepo.NewMongoDestinationRepository(cfg)

	if force {
		db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
		for _, name := range []string{hotelsrepo.CollectionName, destinationsrepo.CollectionName} {
			res, err := db.Collection(name).DeleteMany(ctx, bson.M{})
			if err != nil {
				return fmt.Errorf("failed to clear %s: %w", name, err)
			}
			cfg.Log.Info("Cleared collection", "collection", name, "deleted", res.DeletedCount)
		}
	}

	existing, err := hotelRepo.Count(ctx, model.HotelFilter{})
	if err != nil {
		return fmt.Errorf("failed to count hotels: %w", err)
	}
	if existing > 0 {
		cfg.Log.Info("Hotels already present, skipping seed", "count", existing)
		return nil
	}

	destinationValidator := destinationsvalidator.NewDestinationValidator(cfg.Log)
	hotelValidator := hotelsvalidator.NewHotelValidator(cfg.Log)

	var hotels int
	for _, seed := range f.Destinations {
		destination := seed.destination()
		if err := destinationValidator.Validate(destination); err != nil {
			return fmt.Errorf("destination %q: %w", seed.Name, err)
		}
		if err := destinationRepo.Create(ctx, destination); err != nil {
			return err
		}

		for _, hs := range seed.Hotels {
			hotel := hs.hotel(destination.ID)
			if err := hotelValidator.Validate(hotel); err != nil {
				return fmt.Errorf("hotel %q: %w", hs.Name, err)
			}
			if err := hotelRepo.Create(ctx, hotel); err != nil {
				return err
			}
			hotels++
		}
	}

	cfg.Log.Info("Seed completed", "destinations", len(f.Destinations), "hotels", hotels)
	return nil
}
