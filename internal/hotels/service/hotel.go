package service

import (
	"context"
	"errors"
	hotelserrors "staybook/internal/hotels/errors"
	"staybook/internal/hotels/repository"
	"staybook/internal/hotels/validator"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/model"
	"staybook/pkg/sanitizer"
	"staybook/pkg/validation"
	"sync"
)

type HotelService interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	GetByID(ctx context.Context, id string) (*model.Hotel, error)
	GetAll(ctx context.Context, filter model.HotelFilter, limit int, offset int64) ([]*model.Hotel, int64, error)
	Update(ctx context.Context, id string, updates *model.HotelUpdate) (*model.Hotel, error)
	Delete(ctx context.Context, id string) error
}

type hotelService struct {
	repo      repository.HotelRepository
	validator *validator.HotelValidator
	cfg       *config.Config
}

func NewHotelService(repo repository.HotelRepository, validator *validator.HotelValidator, cfg *config.Config) HotelService {
	return &hotelService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *hotelService) Create(ctx context.Context, hotel *model.Hotel) error {
	s.sanitize(hotel)
	// rating is derived from booking ratings
	hotel.Rating = 0

	if err := s.validate(s.validator.Validate(hotel)); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, hotel); err != nil {
		return apperrors.Internal("Failed to create hotel", err)
	}

	hotel.Decorate()
	s.cfg.Log.Ctx(ctx).Info("Hotel created successfully",
		"hotel_id", hotel.ID,
		"name", hotel.Name,
	)
	return nil
}

func (s *hotelService) GetByID(ctx context.Context, id string) (*model.Hotel, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Hotel ID is required")
	}

	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Failed to retrieve hotel")
	}

	return hotel.Decorate(), nil
}

func (s *hotelService) GetAll(ctx context.Context, filter model.HotelFilter, limit int, offset int64) ([]*model.Hotel, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var hotels []*model.Hotel
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx, filter)
	}()

	go func() {
		defer wg.Done()
		hotels, errFind = s.repo.FindAll(ctx, filter, limit, offset)
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, apperrors.Internal("Failed to count hotels", errCount)
	}
	if errFind != nil {
		return nil, 0, apperrors.Internal("Failed to retrieve hotels", errFind)
	}

	for _, h := range hotels {
		h.Decorate()
	}
	return hotels, count, nil
}

func (s *hotelService) Update(ctx context.Context, id string, updates *model.HotelUpdate) (*model.Hotel, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Hotel ID is required")
	}

	s.sanitizeUpdate(updates)
	if err := s.validate(s.validator.ValidateUpdate(updates)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, translate(err, "Failed to update hotel")
	}

	hotel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Failed to retrieve hotel")
	}

	s.cfg.Log.Ctx(ctx).Info("Hotel updated successfully", "hotel_id", id)
	return hotel.Decorate(), nil
}

// Delete leaves bookings of the hotel in place; they render with
// placeholder hotel fields.
func (s *hotelService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Hotel ID is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "Failed to delete hotel")
	}

	s.cfg.Log.Ctx(ctx).Info("Hotel deleted successfully", "hotel_id", id)
	return nil
}

// --- Helpers ---

func translate(err error, internalMsg string) error {
	switch {
	case errors.Is(err, hotelserrors.ErrNotFound):
		return apperrors.NotFound("Hotel")
	case errors.Is(err, hotelserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid hotel ID format")
	default:
		return apperrors.Internal(internalMsg, err)
	}
}

func (s *hotelService) validate(err error) error {
	if err == nil {
		return nil
	}
	s.cfg.Log.Warn("Hotel validation failed", "error", err)
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.AppError()
	}
	return apperrors.InvalidInput(err.Error())
}

func (s *hotelService) sanitize(h *model.Hotel) {
	h.Name = sanitizer.NormalizeName(h.Name)
	h.Location = sanitizer.NormalizeLocation(h.Location)
	h.Description = sanitizer.NormalizeText(h.Description)
	h.Image = sanitizer.NormalizeURL(h.Image)
	h.DestinationID = sanitizer.NormalizeIdentifier(h.DestinationID)
	h.Price = sanitizer.NormalizeMoney(h.Price)
	h.Amenities = sanitizer.NormalizeAmenities(h.Amenities)
	for i := range h.Rooms {
		h.Rooms[i].Type = sanitizer.NormalizeName(h.Rooms[i].Type)
		h.Rooms[i].Description = sanitizer.NormalizeText(h.Rooms[i].Description)
		h.Rooms[i].Price = sanitizer.NormalizeMoney(h.Rooms[i].Price)
	}
}

func (s *hotelService) sanitizeUpdate(u *model.HotelUpdate) {
	if u.Name != nil {
		*u.Name = sanitizer.NormalizeName(*u.Name)
	}
	if u.Location != nil {
		*u.Location = sanitizer.NormalizeLocation(*u.Location)
	}
	if u.Description != nil {
		*u.Description = sanitizer.NormalizeText(*u.Description)
	}
	if u.Image != nil {
		*u.Image = sanitizer.NormalizeURL(*u.Image)
	}
	if u.DestinationID != nil {
		*u.DestinationID = sanitizer.NormalizeIdentifier(*u.DestinationID)
	}
	if u.Price != nil {
		*u.Price = sanitizer.NormalizeMoney(*u.Price)
	}
	if u.Amenities != nil {
		amenities := sanitizer.NormalizeAmenities(*u.Amenities)
		u.Amenities = &amenities
	}
}
