package main

import (
	"context"
	adminshandler "staybook/internal/admins/handler"
	adminsrepo "staybook/internal/admins/repository"
	adminsservice "staybook/internal/admins/service"
	bookingshandler "staybook/internal/bookings/handler"
	bookingsrepo "staybook/internal/bookings/repository"
	bookingsservice "staybook/internal/bookings/service"
	bookingsvalidator "staybook/internal/bookings/validator"
	destinationshandler "staybook/internal/destinations/handler"
	destinationsrepo "staybook/internal/destinations/repository"
	destinationsservice "staybook/internal/destinations/service"
	destinationsvalidator "staybook/internal/destinations/validator"
	"staybook/internal/health"
	hotelshandler "staybook/internal/hotels/handler"
	hotelsrepo "staybook/internal/hotels/repository"
	hotelsservice "staybook/internal/hotels/service"
	hotelsvalidator "staybook/internal/hotels/validator"
	ratingshandler "staybook/internal/ratings/handler"
	ratingsservice "staybook/internal/ratings/service"
	"staybook/pkg/app"
	"staybook/pkg/auth"
	"staybook/pkg/cache"
	"staybook/pkg/config"
	"staybook/pkg/contracts"
	"staybook/pkg/events"
	"staybook/pkg/kafka"
	kafka_config "staybook/pkg/kafka/config"
	kafka_middleware "staybook/pkg/kafka/middleware"
)

const ServiceName = "staybook-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()

	cfg.Log.Info("Starting staybook API")

	verifier, err := auth.NewVerifierFromConfig(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize token verifier", "error", err)
	}

	serverApp := app.NewApplication()
	publisher := initPublisher(cfg, serverApp)
	handlers := initHandlers(cfg, publisher)

	serverApp.SetApp(cfg, verifier, healthChecks(cfg), handlers...)
	serverApp.Run()
}

func initPublisher(cfg *config.Config, serverApp *app.Application) events.Publisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, booking events are not published")
		return events.Nop()
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	producer, err := kafka.NewProducer(kafkaCfg, cfg.KafkaBookingTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	producer.Use(kafka_middleware.MetricsProducerMiddleware())
	serverApp.OnShutdown(producer.Close)

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.KafkaBookingTopic, "brokers", kafkaCfg.Brokers)
	return events.NewKafkaPublisher(producer, ServiceName, cfg.Log)
}

func initHandlers(cfg *config.Config, publisher events.Publisher) []contracts.Handler {
	var hotelRepo hotelsrepo.HotelRepository = hotelsrepo.NewMongoHotelRepository(cfg)
	if cfg.Client.Redis != nil {
		hotelCache := cache.NewJSONCache(cfg.Client.Redis, "hotel", cfg.HotelCacheTTL)
		hotelRepo = hotelsrepo.NewCachedHotelRepository(hotelRepo, hotelCache, cfg.Log)
		cfg.Log.Info("Hotel lookups cached in Redis", "ttl", cfg.HotelCacheTTL)
	}
	destinationRepo := destinationsrepo.NewMongoDestinationRepository(cfg)
	bookingRepo := bookingsrepo.NewMongoBookingRepository(cfg)
	lockRepo := bookingsrepo.NewBookingLockRepository(cfg)
	adminRepo := adminsrepo.NewMongoAdminRepository(cfg)

	guard := adminsservice.NewAuthorizer(cfg.AdminSource, cfg.AdminUserIDs, adminRepo, cfg.Log)

	hotelService := hotelsservice.NewHotelService(hotelRepo, hotelsvalidator.NewHotelValidator(cfg.Log), cfg)
	destinationService := destinationsservice.NewDestinationService(destinationRepo, destinationsvalidator.NewDestinationValidator(cfg.Log), cfg)
	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		lockRepo,
		hotelRepo,
		bookingsvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)
	ratingService := ratingsservice.NewRatingService(bookingRepo, hotelRepo, publisher, cfg)
	adminService := adminsservice.NewAdminService(adminRepo, cfg)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		hotelshandler.NewHotelHandler(hotelService, guard, cfg.Log),
		destinationshandler.NewDestinationHandler(destinationService, guard, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, guard, cfg.Log),
		ratingshandler.NewRatingHandler(ratingService, cfg.Log),
		adminshandler.NewAdminHandler(adminService, guard, cfg.Log),
	}
}

func healthChecks(cfg *config.Config) map[string]health.Check {
	checks := map[string]health.Check{
		"mongo": func(ctx context.Context) error {
			return cfg.Client.Mongo.Ping(ctx, nil)
		},
	}
	if cfg.Client.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return cfg.Client.Redis.Ping(ctx).Err()
		}
	}
	return checks
}
