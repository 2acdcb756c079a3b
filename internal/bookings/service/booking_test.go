package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/bookings/validator"
	hotelserrors "staybook/internal/hotels/errors"
	"staybook/pkg/config"
	mongotx "staybook/pkg/db/mongo"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/events"
	"staybook/pkg/logger"
	"staybook/pkg/model"
	"staybook/pkg/pricing"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	hotelID   = "65a000000000000000000001"
	bookingID = "65b000000000000000000001"
)

// ────────────────────────────────────────────────
// Mocks
// ────────────────────────────────────────────────

type mockBookingRepository struct {
	createFunc          func(ctx context.Context, booking *model.Booking) error
	findByIDFunc        func(ctx context.Context, id string) (*model.Booking, error)
	findDuplicateFunc   func(ctx context.Context, userID, hotelID string, checkIn, checkOut time.Time) (*model.Booking, error)
	findAllFunc         func(ctx context.Context, filter model.BookingFilter, limit int, offset int64) ([]*model.Booking, error)
	countFunc           func(ctx context.Context, filter model.BookingFilter) (int64, error)
	updateStatusFunc    func(ctx context.Context, id, expected, status string) (*model.Booking, error)
	transactionsStarted int
	transactionErr      error
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = bookingID
	booking.CreatedAt = time.Now()
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindActiveDuplicate(ctx context.Context, userID, hotelID string, checkIn, checkOut time.Time) (*model.Booking, error) {
	if m.findDuplicateFunc != nil {
		return m.findDuplicateFunc(ctx, userID, hotelID, checkIn, checkOut)
	}
	return nil, nil
}

func (m *mockBookingRepository) FindAll(ctx context.Context, filter model.BookingFilter, limit int, offset int64) ([]*model.Booking, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, filter, limit, offset)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) Count(ctx context.Context, filter model.BookingFilter) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id, expected, status string) (*model.Booking, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, expected, status)
	}
	return &model.Booking{ID: id, HotelID: hotelID, Status: status}, nil
}

func (m *mockBookingRepository) FindLatestRatable(ctx context.Context, userID, hotelID string) (*model.Booking, error) {
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) SetRating(ctx context.Context, id string, rating int) (*model.Booking, error) {
	return nil, bookingserrors.ErrAlreadyRated
}

func (m *mockBookingRepository) AverageRating(ctx context.Context, hotelID string) (float64, int64, error) {
	return 0, 0, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	m.transactionsStarted++
	m.transactionErr = fn(mongo.NewSessionContext(ctx, nil))
	return m.transactionErr
}

type mockLockRepository struct {
	mu      sync.Mutex
	held    map[string]bool
	deleted []string
}

func (m *mockLockRepository) Create(ctx context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held == nil {
		m.held = map[string]bool{}
	}
	if m.held[lock.ID] {
		return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	}
	m.held[lock.ID] = true
	return lock, nil
}

func (m *mockLockRepository) Delete(ctx context.Context, lockID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, lockID)
	m.deleted = append(m.deleted, lockID)
	return nil
}

type mockHotels struct {
	hotels map[string]*model.Hotel
}

func (m *mockHotels) FindByID(ctx context.Context, id string) (*model.Hotel, error) {
	if h, ok := m.hotels[id]; ok {
		return h, nil
	}
	return nil, hotelserrors.ErrNotFound
}

func (m *mockHotels) FindByIDs(ctx context.Context, ids []string) (map[string]*model.Hotel, error) {
	out := map[string]*model.Hotel{}
	for _, id := range ids {
		if h, ok := m.hotels[id]; ok {
			out[id] = h
		}
	}
	return out, nil
}

type recordingPublisher struct {
	types  []string
	events []events.BookingEvent
}

func (p *recordingPublisher) PublishBooking(ctx context.Context, eventType string, event events.BookingEvent) {
	p.types = append(p.types, eventType)
	p.events = append(p.events, event)
}

type fixture struct {
	repo      *mockBookingRepository
	locks     *mockLockRepository
	publisher *recordingPublisher
	cfg       *config.Config
	svc       BookingService
}

func newFixture(t *testing.T, mutate func(cfg *config.Config)) *fixture {
	t.Helper()
	log := logger.Discard()
	cfg := &config.Config{Log: log, PricingMode: pricing.PerNight}
	if mutate != nil {
		mutate(cfg)
	}
	f := &fixture{
		repo:      &mockBookingRepository{},
		locks:     &mockLockRepository{},
		publisher: &recordingPublisher{},
		cfg:       cfg,
	}
	hotels := &mockHotels{hotels: map[string]*model.Hotel{
		hotelID: {ID: hotelID, Name: "Mountain View Lodge", Location: "Swiss Alps", Price: 199},
	}}
	f.svc = NewBookingService(f.repo, f.locks, hotels, validator.NewBookingValidator(log), f.publisher, cfg)
	return f
}

func intPtr(v int) *int { return &v }

func statusOf(err error) int {
	return apperrors.AsAppError(err).StatusCode()
}

func messageOf(err error) string {
	return apperrors.AsAppError(err).Message
}

// ────────────────────────────────────────────────
// Create
// ────────────────────────────────────────────────

func TestCreate_PricesStayAndPublishes(t *testing.T) {
	f := newFixture(t, nil)

	booking, err := f.svc.Create(context.Background(), "user_1", &model.BookingRequest{
		HotelID:  hotelID,
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-04",
		Guests:   intPtr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, bookingID, booking.ID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, 2, booking.NumberOfGuests)
	assert.Equal(t, 597.0, booking.TotalPrice)
	assert.Equal(t, 1, f.repo.transactionsStarted)
	assert.Len(t, f.locks.deleted, 1, "lock must be released")
	assert.Equal(t, []string{events.BookingCreated}, f.publisher.types)
	assert.Equal(t, "user_1", f.publisher.events[0].UserID)
}

func TestCreate_PerGuestPricing(t *testing.T) {
	f := newFixture(t, func(cfg *config.Config) { cfg.PricingMode = pricing.PerGuest })

	booking, err := f.svc.Create(context.Background(), "user_1", &model.BookingRequest{
		HotelID:        hotelID,
		CheckIn:        "2026-07-01T14:00:00Z",
		CheckOut:       "2026-07-03T11:00:00Z",
		NumberOfGuests: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 199.0*2*3, booking.TotalPrice)
}

func TestCreate_DefaultsToOneGuest(t *testing.T) {
	f := newFixture(t, nil)

	booking, err := f.svc.Create(context.Background(), "user_1", &model.BookingRequest{
		HotelID: hotelID, CheckIn: "2026-07-01", CheckOut: "2026-07-02",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, booking.NumberOfGuests)
}

func TestCreate_TransactionCallbackReturnsRawErrors(t *testing.T) {
	transient := mongo.CommandError{Code: 112, Name: "WriteConflict", Labels: []string{"TransientTransactionError"}}
	req := &model.BookingRequest{HotelID: hotelID, CheckIn: "2026-07-01", CheckOut: "2026-07-04"}

	tests := []struct {
		name       string
		duplicate  func(ctx context.Context, userID, hotelID string, checkIn, checkOut time.Time) (*model.Booking, error)
		wantTxErr  error
		wantStatus int
		wantMsg    string
	}{
		{
			name: "transient store error",
			duplicate: func(ctx context.Context, userID, hotelID string, checkIn, checkOut time.Time) (*model.Booking, error) {
				return nil, transient
			},
			wantTxErr:  transient,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to create booking",
		},
		{
			name: "active duplicate",
			duplicate: func(ctx context.Context, userID, hotelID string, checkIn, checkOut time.Time) (*model.Booking, error) {
				return &model.Booking{ID: "existing"}, nil
			},
			wantTxErr:  errDuplicateBooking,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "You already have a booking for these dates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.repo.findDuplicateFunc = tt.duplicate

			_, err := f.svc.Create(context.Background(), "user_1", req)
			require.Error(t, err)

			require.Error(t, f.repo.transactionErr)
			var appErr *apperrors.AppError
			assert.False(t, errors.As(f.repo.transactionErr, &appErr), "callback must not wrap store errors")
			assert.Equal(t, tt.wantTxErr, f.repo.transactionErr)
			assert.Equal(t, tt.wantStatus, statusOf(err))
			assert.Equal(t, tt.wantMsg, messageOf(err))
			assert.Len(t, f.locks.deleted, 1, "lock must be released")
			assert.Empty(t, f.publisher.types)
		})
	}
}

func TestCreate_ServerErrorsAreNotLoggedByService(t *testing.T) {
	var buf bytes.Buffer
	f := newFixture(t, func(cfg *config.Config) {
		cfg.Log = logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})
	})
	f.repo.createFunc = func(ctx context.Context, booking *model.Booking) error {
		return errors.New("connection reset")
	}

	_, err := f.svc.Create(context.Background(), "user_1", &model.BookingRequest{HotelID: hotelID, CheckIn: "2026-07-01", CheckOut: "2026-07-02"})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, statusOf(err))
	assert.NotContains(t, buf.String(), `"level":"ERROR"`)
}

func TestCreate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		req        model.BookingRequest
		duplicate  bool
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "anonymous",
			req:        model.BookingRequest{HotelID: hotelID, CheckIn: "2026-07-01", CheckOut: "2026-07-02"},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Unauthorized",
		},
		{
			name:       "missing hotel id",
			userID:     "user_1",
			req:        model.BookingRequest{CheckIn: "2026-07-01", CheckOut: "2026-07-02"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Hotel ID is required",
		},
		{
			name:       "missing check-in",
			userID:     "user_1",
			req:        model.BookingRequest{HotelID: hotelID, CheckOut: "2026-07-02"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Check-in date is required",
		},
		{
			name:       "missing check-out",
			userID:     "user_1",
			req:        model.BookingRequest{HotelID: hotelID, CheckIn: "2026-07-01"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Check-out date is required",
		},
		{
			name:       "check-out before check-in",
			userID:     "user_1",
			req:        model.BookingRequest{HotelID: hotelID, CheckIn: "2026-07-05", CheckOut: "2026-07-02"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Check-out must be after check-in",
		},
		{
			name:       "zero guests",
			userID:     "user_1",
			req:        model.BookingRequest{HotelID: hotelID, CheckIn: "2026-07-01", CheckOut: "2026-07-02", NumberOfGuests: intPtr(0)},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Number of guests must be at least 1",
		},
		{
			name:       "unparseable date",
			userID:     "user_1",
			req:        model.BookingRequest{HotelID: hotelID, CheckIn: "next week", CheckOut: "2026-07-02"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid check-in date",
		},
		{
			name:       "unknown hotel",
			userID:     "user_1",
			req:        model.BookingRequest{HotelID: "65a0000000000000000000ff", CheckIn: "2026-07-01", CheckOut: "2026-07-02"},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Hotel not found",
		},
		{
			name:       "duplicate stay",
			userID:     "user_1",
			req:        model.BookingRequest{HotelID: hotelID, CheckIn: "2026-07-01", CheckOut: "2026-07-02"},
			duplicate:  true,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "You already have a booking for these dates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			if tt.duplicate {
				f.repo.findDuplicateFunc = func(ctx context.Context, userID, hotelID string, checkIn, checkOut time.Time) (*model.Booking, error) {
					return &model.Booking{ID: "existing"}, nil
				}
			}

			_, err := f.svc.Create(context.Background(), tt.userID, &tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, statusOf(err))
			assert.Equal(t, tt.wantMsg, messageOf(err))
			assert.Empty(t, f.publisher.types)
		})
	}
}

func TestCreate_HeldLockConflicts(t *testing.T) {
	f := newFixture(t, nil)
	req := &model.BookingRequest{HotelID: hotelID, CheckIn: "2026-07-01", CheckOut: "2026-07-02"}

	checkIn, _ := time.Parse(time.DateOnly, "2026-07-01")
	checkOut, _ := time.Parse(time.DateOnly, "2026-07-02")
	lockID := fmt.Sprintf("booking_lock_user_1_%s_%d_%d", hotelID, checkIn.Unix(), checkOut.Unix())
	f.locks.held = map[string]bool{lockID: true}

	_, err := f.svc.Create(context.Background(), "user_1", req)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, statusOf(err))
	assert.Zero(t, f.repo.transactionsStarted)
}

// ────────────────────────────────────────────────
// Listings
// ────────────────────────────────────────────────

func TestListForUser_PopulatesHotels(t *testing.T) {
	f := newFixture(t, nil)
	var gotFilter model.BookingFilter
	f.repo.findAllFunc = func(ctx context.Context, filter model.BookingFilter, limit int, offset int64) ([]*model.Booking, error) {
		gotFilter = filter
		return []*model.Booking{
			{ID: "b2", HotelID: hotelID, UserID: "user_1", NumberOfGuests: 2, Status: model.StatusPending},
			{ID: "b1", HotelID: "65a0000000000000000000ff", UserID: "user_1", Status: model.StatusCancelled},
		}, nil
	}
	f.repo.countFunc = func(ctx context.Context, filter model.BookingFilter) (int64, error) { return 2, nil }

	views, total, err := f.svc.ListForUser(context.Background(), "user_1", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, "user_1", gotFilter.UserID)
	assert.EqualValues(t, 2, total)
	require.Len(t, views, 2)
	assert.Equal(t, "Mountain View Lodge", views[0].Hotel.Name)
	assert.Equal(t, 2, views[0].Guests)
	assert.Equal(t, model.PlaceholderHotelName, views[1].Hotel.Name)
	assert.Equal(t, model.PlaceholderHotelLocation, views[1].Hotel.Location)
}

func TestListForUser_Anonymous(t *testing.T) {
	f := newFixture(t, nil)
	_, _, err := f.svc.ListForUser(context.Background(), "", 10, 0)
	assert.Equal(t, http.StatusUnauthorized, statusOf(err))
}

func TestListAll_RejectsUnknownStatusFilter(t *testing.T) {
	f := newFixture(t, nil)
	_, _, err := f.svc.ListAll(context.Background(), model.BookingFilter{Status: "confirmed"}, 10, 0)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Equal(t, "Invalid status", messageOf(err))
}

func TestExport_PagesThroughEverything(t *testing.T) {
	f := newFixture(t, nil)
	var offsets []int64
	f.repo.findAllFunc = func(ctx context.Context, filter model.BookingFilter, limit int, offset int64) ([]*model.Booking, error) {
		offsets = append(offsets, offset)
		n := limit
		if offset > 0 {
			n = 3
		}
		page := make([]*model.Booking, n)
		for i := range page {
			page[i] = &model.Booking{HotelID: hotelID, Status: model.StatusPending}
		}
		return page, nil
	}

	views, err := f.svc.Export(context.Background(), model.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, views, exportPageSize+3)
	assert.Equal(t, []int64{0, exportPageSize}, offsets)
}

// ────────────────────────────────────────────────
// Status transitions
// ────────────────────────────────────────────────

func ownedBooking(status string) func(ctx context.Context, id string) (*model.Booking, error) {
	return func(ctx context.Context, id string) (*model.Booking, error) {
		return &model.Booking{ID: id, HotelID: hotelID, UserID: "user_1", Status: status}, nil
	}
}

func TestUpdateStatus_OwnerCancelsPending(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.findByIDFunc = ownedBooking(model.StatusPending)
	var gotExpected string
	f.repo.updateStatusFunc = func(ctx context.Context, id, expected, status string) (*model.Booking, error) {
		gotExpected = expected
		return &model.Booking{ID: id, HotelID: hotelID, UserID: "user_1", Status: status}, nil
	}

	view, err := f.svc.UpdateStatus(context.Background(), "user_1", false, bookingID, " Cancelled ")
	require.NoError(t, err)

	assert.Equal(t, model.StatusCancelled, view.Status)
	assert.Equal(t, "Mountain View Lodge", view.Hotel.Name)
	assert.Equal(t, model.StatusPending, gotExpected)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, model.StatusPending, f.publisher.events[0].PreviousStatus)
	assert.Equal(t, "user_1", f.publisher.events[0].ChangedBy)
}

func TestUpdateStatus_OwnerRules(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		current    string
		status     string
		lostRace   bool
		wantStatus int
		wantMsg    string
	}{
		{name: "other user's booking", userID: "user_2", current: model.StatusPending, status: model.StatusCancelled, wantStatus: http.StatusNotFound, wantMsg: "Booking not found or unauthorized"},
		{name: "owner approves", userID: "user_1", current: model.StatusPending, status: model.StatusApproved, wantStatus: http.StatusForbidden},
		{name: "cancel after approval", userID: "user_1", current: model.StatusApproved, status: model.StatusCancelled, wantStatus: http.StatusBadRequest, wantMsg: "Only pending bookings can be cancelled"},
		{name: "approved concurrently", userID: "user_1", current: model.StatusPending, status: model.StatusCancelled, lostRace: true, wantStatus: http.StatusBadRequest, wantMsg: "Only pending bookings can be cancelled"},
		{name: "unknown status", userID: "user_1", current: model.StatusPending, status: "archived", wantStatus: http.StatusBadRequest, wantMsg: "Invalid status"},
		{name: "anonymous", current: model.StatusPending, status: model.StatusCancelled, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.repo.findByIDFunc = ownedBooking(tt.current)
			if tt.lostRace {
				f.repo.updateStatusFunc = func(ctx context.Context, id, expected, status string) (*model.Booking, error) {
					return nil, bookingserrors.ErrStatusChanged
				}
			}

			_, err := f.svc.UpdateStatus(context.Background(), tt.userID, false, bookingID, tt.status)
			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, statusOf(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, messageOf(err))
			}
			assert.Empty(t, f.publisher.types)
		})
	}
}

func TestUpdateStatus_AdminThroughOwnerRoute(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.findByIDFunc = ownedBooking(model.StatusPending)

	view, err := f.svc.UpdateStatus(context.Background(), "admin_1", true, bookingID, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, view.Status)
}

func TestAdminUpdateStatus_LastWriteWins(t *testing.T) {
	f := newFixture(t, nil)
	f.repo.findByIDFunc = ownedBooking(model.StatusCancelled)
	var gotExpected = "unset"
	f.repo.updateStatusFunc = func(ctx context.Context, id, expected, status string) (*model.Booking, error) {
		gotExpected = expected
		return &model.Booking{ID: id, HotelID: hotelID, Status: status}, nil
	}

	view, err := f.svc.AdminUpdateStatus(context.Background(), "admin_1", bookingID, model.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, view.Status)
	assert.Empty(t, gotExpected)
}

func TestAdminUpdateStatus_StrictTransitions(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		next       string
		wantStatus int
	}{
		{name: "pending to approved", current: model.StatusPending, next: model.StatusApproved},
		{name: "approved to completed", current: model.StatusApproved, next: model.StatusCompleted},
		{name: "completed is terminal", current: model.StatusCompleted, next: model.StatusPending, wantStatus: http.StatusConflict},
		{name: "cancelled is terminal", current: model.StatusCancelled, next: model.StatusApproved, wantStatus: http.StatusConflict},
		{name: "approved cannot be rejected", current: model.StatusApproved, next: model.StatusRejected, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, func(cfg *config.Config) { cfg.StrictStatusTransitions = true })
			f.repo.findByIDFunc = ownedBooking(tt.current)
			var gotExpected string
			f.repo.updateStatusFunc = func(ctx context.Context, id, expected, status string) (*model.Booking, error) {
				gotExpected = expected
				return &model.Booking{ID: id, HotelID: hotelID, Status: status}, nil
			}

			_, err := f.svc.AdminUpdateStatus(context.Background(), "admin_1", bookingID, tt.next)
			if tt.wantStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantStatus, statusOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.current, gotExpected, "strict writes are conditional on the read status")
		})
	}
}

func TestAdminUpdateStatus_MissingBooking(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.svc.AdminUpdateStatus(context.Background(), "admin_1", bookingID, model.StatusApproved)
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	_, err = f.svc.AdminUpdateStatus(context.Background(), "admin_1", "", model.StatusApproved)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}
