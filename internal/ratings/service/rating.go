package service

import (
	"context"
	"errors"
	bookingserrors "staybook/internal/bookings/errors"
	hotelserrors "staybook/internal/hotels/errors"
	"staybook/pkg/config"
	mongotx "staybook/pkg/db/mongo"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/events"
	"staybook/pkg/metrics"
	"staybook/pkg/model"
	"staybook/pkg/sanitizer"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const submittedMessage = "Rating submitted successfully"

// BookingStore is the part of the booking store ratings need.
type BookingStore interface {
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindLatestRatable(ctx context.Context, userID, hotelID string) (*model.Booking, error)
	SetRating(ctx context.Context, id string, rating int) (*model.Booking, error)
	AverageRating(ctx context.Context, hotelID string) (float64, int64, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type HotelStore interface {
	FindByID(ctx context.Context, id string) (*model.Hotel, error)
	SetRating(ctx context.Context, id string, rating float64) error
}

type RatingService interface {
	Submit(ctx context.Context, userID, hotelID string, req *model.RatingRequest) (*model.RatingResult, error)
}

type ratingService struct {
	bookings  BookingStore
	hotels    HotelStore
	publisher events.Publisher
	cfg       *config.Config
}

func NewRatingService(bookings BookingStore, hotels HotelStore, publisher events.Publisher, cfg *config.Config) RatingService {
	if publisher == nil {
		publisher = events.Nop()
	}
	return &ratingService{
		bookings:  bookings,
		hotels:    hotels,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Submit rates one completed booking and recomputes the hotel's average from
// every rated booking of that hotel.
func (s *ratingService) Submit(ctx context.Context, userID, hotelID string, req *model.RatingRequest) (*model.RatingResult, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("Unauthorized")
	}

	rating, ok := model.ParseRating(req.Rating)
	if !ok {
		return nil, apperrors.InvalidInput("Invalid rating value")
	}

	hotelID = sanitizer.NormalizeIdentifier(hotelID)
	if hotelID == "" {
		return nil, apperrors.InvalidInput("Hotel ID is required")
	}
	if _, err := s.hotels.FindByID(ctx, hotelID); err != nil {
		if errors.Is(err, hotelserrors.ErrNotFound) || errors.Is(err, hotelserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Hotel")
		}
		return nil, apperrors.Internal("Failed to retrieve hotel", err)
	}

	booking, err := s.resolveBooking(ctx, userID, hotelID, sanitizer.NormalizeIdentifier(req.BookingID))
	if err != nil {
		return nil, err
	}

	var average float64
	var count int64
	failure := "Failed to submit rating"
	err = s.bookings.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if _, err := s.bookings.SetRating(sessCtx, booking.ID, rating); err != nil {
			return err
		}

		var err error
		average, count, err = s.bookings.AverageRating(sessCtx, hotelID)
		if err != nil {
			failure = "Failed to recompute hotel rating"
			return err
		}

		if err := s.hotels.SetRating(sessCtx, hotelID, average); err != nil {
			failure = "Failed to update hotel rating"
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, bookingserrors.ErrAlreadyRated) {
			return nil, apperrors.InvalidInput("Booking has already been rated")
		}
		return nil, apperrors.Internal(failure, err)
	}

	metrics.IncRating(rating)
	s.publisher.PublishBooking(ctx, events.BookingRated, events.BookingEvent{
		BookingID:     booking.ID,
		HotelID:       hotelID,
		UserID:        userID,
		Status:        booking.Status,
		Rating:        rating,
		AverageRating: average,
		OccurredAt:    time.Now().UTC(),
	})

	s.cfg.Log.Ctx(ctx).Info("Rating submitted",
		"booking_id", booking.ID,
		"hotel_id", hotelID,
		"rating", rating,
		"average", average,
		"ratings", count,
	)

	return &model.RatingResult{
		Message:       submittedMessage,
		AverageRating: average,
		BookingID:     booking.ID,
	}, nil
}

func (s *ratingService) resolveBooking(ctx context.Context, userID, hotelID, bookingID string) (*model.Booking, error) {
	if bookingID == "" {
		booking, err := s.bookings.FindLatestRatable(ctx, userID, hotelID)
		if err != nil {
			if errors.Is(err, bookingserrors.ErrNotFound) {
				return nil, apperrors.InvalidInput("No eligible booking to rate")
			}
			return nil, apperrors.Internal("Failed to find booking to rate", err)
		}
		return booking, nil
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) || errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Booking")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	if booking.UserID != userID || booking.HotelID != hotelID {
		return nil, apperrors.NotFound("Booking")
	}
	if booking.Status != model.StatusCompleted {
		return nil, apperrors.InvalidInput("Only completed bookings can be rated")
	}
	if booking.IsRated() {
		return nil, apperrors.InvalidInput("Booking has already been rated")
	}
	return booking, nil
}
