package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/bookings/repository"
	"staybook/internal/bookings/validator"
	hotelserrors "staybook/internal/hotels/errors"
	"staybook/pkg/config"
	mongotx "staybook/pkg/db/mongo"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/events"
	"staybook/pkg/metrics"
	"staybook/pkg/model"
	"staybook/pkg/pricing"
	"staybook/pkg/sanitizer"
	"staybook/pkg/validation"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	lockTTL        = 10 * time.Second
	exportPageSize = 500
)

var errDuplicateBooking = errors.New("active booking exists for these dates")

// HotelReader is the part of the hotel store bookings need.
type HotelReader interface {
	FindByID(ctx context.Context, id string) (*model.Hotel, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*model.Hotel, error)
}

type BookingService interface {
	Create(ctx context.Context, userID string, req *model.BookingRequest) (*model.Booking, error)
	ListForUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.BookingView, int64, error)
	ListAll(ctx context.Context, filter model.BookingFilter, limit int, offset int64) ([]*model.BookingView, int64, error)
	Export(ctx context.Context, filter model.BookingFilter) ([]*model.BookingView, error)
	UpdateStatus(ctx context.Context, userID string, isAdmin bool, id, status string) (*model.BookingView, error)
	AdminUpdateStatus(ctx context.Context, adminID, id, status string) (*model.BookingView, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	hotels    HotelReader
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	hotels HotelReader,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	if publisher == nil {
		publisher = events.Nop()
	}
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		hotels:    hotels,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, userID string, req *model.BookingRequest) (*model.Booking, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("Unauthorized")
	}

	booking, err := s.buildBooking(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.validate(s.validator.Validate(booking)); err != nil {
		return nil, err
	}

	hotel, err := s.hotels.FindByID(ctx, booking.HotelID)
	if err != nil {
		if errors.Is(err, hotelserrors.ErrNotFound) || errors.Is(err, hotelserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Hotel")
		}
		return nil, apperrors.Internal("Failed to retrieve hotel", err)
	}

	nights := pricing.Nights(booking.CheckIn, booking.CheckOut)
	booking.TotalPrice = pricing.Total(hotel.Price, nights, booking.NumberOfGuests, s.cfg.PricingMode)

	lockID, err := s.acquireStayLock(ctx, booking)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := s.releaseStayLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Ctx(ctx).Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyDuplication(sessCtx, booking); err != nil {
			return err
		}
		return s.repo.Create(sessCtx, booking)
	})
	if err != nil {
		if errors.Is(err, errDuplicateBooking) {
			return nil, apperrors.InvalidInput("You already have a booking for these dates")
		}
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	metrics.IncBookingCreated()
	s.publisher.PublishBooking(ctx, events.BookingCreated, events.BookingEvent{
		BookingID:  booking.ID,
		HotelID:    booking.HotelID,
		UserID:     booking.UserID,
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		OccurredAt: booking.CreatedAt,
	})

	s.cfg.Log.Ctx(ctx).Info("Booking created successfully",
		"booking_id", booking.ID,
		"hotel_id", booking.HotelID,
		"user_id", booking.UserID,
		"nights", nights,
		"total_price", booking.TotalPrice,
	)
	return booking, nil
}

func (s *bookingService) ListForUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.BookingView, int64, error) {
	if userID == "" {
		return nil, 0, apperrors.Unauthorized("Unauthorized")
	}
	return s.list(ctx, model.BookingFilter{UserID: userID}, limit, offset)
}

func (s *bookingService) ListAll(ctx context.Context, filter model.BookingFilter, limit int, offset int64) ([]*model.BookingView, int64, error) {
	if filter.Status != "" {
		if err := s.validate(s.validator.ValidateStatus(filter.Status)); err != nil {
			return nil, 0, err
		}
	}
	return s.list(ctx, filter, limit, offset)
}

// Export pages through every booking matching filter.
func (s *bookingService) Export(ctx context.Context, filter model.BookingFilter) ([]*model.BookingView, error) {
	if filter.Status != "" {
		if err := s.validate(s.validator.ValidateStatus(filter.Status)); err != nil {
			return nil, err
		}
	}

	var all []*model.Booking
	for offset := int64(0); ; offset += exportPageSize {
		page, err := s.repo.FindAll(ctx, filter, exportPageSize, offset)
		if err != nil {
			return nil, apperrors.Internal("Failed to export bookings", err)
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	return s.populate(ctx, all)
}

func (s *bookingService) UpdateStatus(ctx context.Context, userID string, isAdmin bool, id, status string) (*model.BookingView, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("Unauthorized")
	}
	if isAdmin {
		return s.AdminUpdateStatus(ctx, userID, id, status)
	}

	id = sanitizer.NormalizeIdentifier(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID is required")
	}
	status = normalizeStatus(status)
	if err := s.validate(s.validator.ValidateStatus(status)); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) || errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, errNotOwned()
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	if existing.UserID != userID {
		return nil, errNotOwned()
	}
	if status != model.StatusCancelled {
		return nil, apperrors.Forbidden("You can only cancel your own bookings")
	}
	if existing.Status != model.StatusPending {
		return nil, apperrors.InvalidInput("Only pending bookings can be cancelled")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, model.StatusPending, status)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrStatusChanged) {
			return nil, apperrors.InvalidInput("Only pending bookings can be cancelled")
		}
		return nil, apperrors.Internal("Failed to update booking status", err)
	}

	return s.afterStatusChange(ctx, existing.Status, updated, userID)
}

func (s *bookingService) AdminUpdateStatus(ctx context.Context, adminID, id, status string) (*model.BookingView, error) {
	id = sanitizer.NormalizeIdentifier(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID is required")
	}
	status = normalizeStatus(status)
	if err := s.validate(s.validator.ValidateStatus(status)); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Failed to retrieve booking")
	}

	expected := ""
	if s.cfg.StrictStatusTransitions {
		if !CanTransition(existing.Status, status) {
			return nil, apperrors.Conflict(fmt.Sprintf("Cannot change booking status from %s to %s", existing.Status, status))
		}
		expected = existing.Status
	}

	updated, err := s.repo.UpdateStatus(ctx, id, expected, status)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrStatusChanged) {
			return nil, apperrors.Conflict("Booking status was changed by another request")
		}
		return nil, translate(err, "Failed to update booking status")
	}

	return s.afterStatusChange(ctx, existing.Status, updated, adminID)
}

// --- Helpers ---

func (s *bookingService) afterStatusChange(ctx context.Context, previous string, updated *model.Booking, actorID string) (*model.BookingView, error) {
	metrics.IncStatusChange(updated.Status)
	s.publisher.PublishBooking(ctx, events.BookingStatusChanged, events.BookingEvent{
		BookingID:      updated.ID,
		HotelID:        updated.HotelID,
		UserID:         updated.UserID,
		Status:         updated.Status,
		PreviousStatus: previous,
		ChangedBy:      actorID,
		OccurredAt:     updated.UpdatedAt,
	})

	s.cfg.Log.Ctx(ctx).Info("Booking status updated",
		"booking_id", updated.ID,
		"from", previous,
		"to", updated.Status,
		"changed_by", actorID,
	)

	views, err := s.populate(ctx, []*model.Booking{updated})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *bookingService) list(ctx context.Context, filter model.BookingFilter, limit int, offset int64) ([]*model.BookingView, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx, filter)
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, filter, limit, offset)
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, apperrors.Internal("Failed to count bookings", errCount)
	}
	if errFind != nil {
		return nil, 0, apperrors.Internal("Failed to retrieve bookings", errFind)
	}

	views, err := s.populate(ctx, bookings)
	if err != nil {
		return nil, 0, err
	}
	return views, count, nil
}

// populate joins bookings with their hotels in one lookup.
func (s *bookingService) populate(ctx context.Context, bookings []*model.Booking) ([]*model.BookingView, error) {
	views := make([]*model.BookingView, 0, len(bookings))
	if len(bookings) == 0 {
		return views, nil
	}

	seen := make(map[string]struct{}, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.HotelID]; ok {
			continue
		}
		seen[b.HotelID] = struct{}{}
		ids = append(ids, b.HotelID)
	}

	hotels, err := s.hotels.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	for _, b := range bookings {
		views = append(views, model.NewBookingView(b, hotels[b.HotelID]))
	}
	return views, nil
}

func (s *bookingService) buildBooking(userID string, req *model.BookingRequest) (*model.Booking, error) {
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid check-in date")
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid check-out date")
	}

	guests := 1
	switch {
	case req.NumberOfGuests != nil:
		guests = *req.NumberOfGuests
	case req.Guests != nil:
		guests = *req.Guests
	}

	return &model.Booking{
		HotelID:        sanitizer.NormalizeIdentifier(req.HotelID),
		UserID:         userID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: guests,
		Status:         model.StatusPending,
	}, nil
}

// parseDate accepts a calendar date or an RFC 3339 timestamp. An empty value
// yields the zero time so the required check reports it.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC().Truncate(time.Millisecond), nil
}

// errNotOwned does not reveal whether the booking exists.
func errNotOwned() error {
	return apperrors.New(apperrors.CodeNotFound, "Booking not found or unauthorized", http.StatusNotFound)
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func translate(err error, internalMsg string) error {
	switch {
	case errors.Is(err, bookingserrors.ErrNotFound):
		return apperrors.NotFound("Booking")
	case errors.Is(err, bookingserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid booking ID format")
	default:
		return apperrors.Internal(internalMsg, err)
	}
}

func (s *bookingService) validate(err error) error {
	if err == nil {
		return nil
	}
	s.cfg.Log.Warn("Booking validation failed", "error", err)
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.AppError()
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.InvalidInput(err.Error())
}

// verifyDuplication returns store errors unwrapped.
func (s *bookingService) verifyDuplication(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindActiveDuplicate(ctx, booking.UserID, booking.HotelID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return err
	}
	if existing != nil {
		return errDuplicateBooking
	}
	return nil
}

// acquireStayLock creates an advisory lock for the user, hotel and dates.
// A held lock means an identical request is in flight.
func (s *bookingService) acquireStayLock(ctx context.Context, booking *model.Booking) (string, error) {
	lockID := fmt.Sprintf("booking_lock_%s_%s_%d_%d",
		booking.UserID,
		booking.HotelID,
		booking.CheckIn.Unix(),
		booking.CheckOut.Unix(),
	)

	lock := &model.BookingLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(lockTTL),
	}

	if _, err := s.lockRepo.Create(ctx, lock); err != nil {
		if mongotx.IsDuplicateKey(err) {
			return "", apperrors.Conflict("This booking is already being processed. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire booking lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseStayLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(context.WithoutCancel(ctx), lockID)
}
