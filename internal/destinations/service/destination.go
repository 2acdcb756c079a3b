package service

import (
	"context"
	"errors"
	destinationserrors "staybook/internal/destinations/errors"
	"staybook/internal/destinations/repository"
	"staybook/internal/destinations/validator"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/model"
	"staybook/pkg/sanitizer"
	"staybook/pkg/validation"
	"sync"
)

type DestinationService interface {
	Create(ctx context.Context, destination *model.Destination) error
	GetByID(ctx context.Context, id string) (*model.Destination, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Destination, int64, error)
	Replace(ctx context.Context, id string, destination *model.Destination) (*model.Destination, error)
	Delete(ctx context.Context, id string) error
}

type destinationService struct {
	repo      repository.DestinationRepository
	validator *validator.DestinationValidator
	cfg       *config.Config
}

func NewDestinationService(repo repository.DestinationRepository, validator *validator.DestinationValidator, cfg *config.Config) DestinationService {
	return &destinationService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *destinationService) Create(ctx context.Context, d *model.Destination) error {
	s.sanitize(d)
	if err := s.validate(d); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return apperrors.Internal("Failed to create destination", err)
	}

	s.cfg.Log.Ctx(ctx).Info("Destination created successfully",
		"destination_id", d.ID,
		"name", d.Name,
	)
	return nil
}

func (s *destinationService) GetByID(ctx context.Context, id string) (*model.Destination, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Destination ID is required")
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Failed to retrieve destination")
	}
	return d, nil
}

func (s *destinationService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Destination, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	var count int64
	var destinations []*model.Destination
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
	}()

	go func() {
		defer wg.Done()
		destinations, errFind = s.repo.FindAll(ctx, limit, offset)
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, apperrors.Internal("Failed to count destinations", errCount)
	}
	if errFind != nil {
		return nil, 0, apperrors.Internal("Failed to fetch destinations", errFind)
	}

	return destinations, count, nil
}

func (s *destinationService) Replace(ctx context.Context, id string, d *model.Destination) (*model.Destination, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Destination ID is required")
	}

	s.sanitize(d)
	if err := s.validate(d); err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, id, d); err != nil {
		return nil, translate(err, "Failed to update destination")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Failed to retrieve destination")
	}

	s.cfg.Log.Ctx(ctx).Info("Destination updated successfully", "destination_id", id)
	return updated, nil
}

func (s *destinationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Destination ID is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "Failed to delete destination")
	}

	s.cfg.Log.Ctx(ctx).Info("Destination deleted successfully", "destination_id", id)
	return nil
}

func translate(err error, internalMsg string) error {
	switch {
	case errors.Is(err, destinationserrors.ErrNotFound):
		return apperrors.NotFound("Destination")
	case errors.Is(err, destinationserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid destination ID format")
	default:
		return apperrors.Internal(internalMsg, err)
	}
}

func (s *destinationService) validate(d *model.Destination) error {
	err := s.validator.Validate(d)
	if err == nil {
		return nil
	}
	s.cfg.Log.Warn("Destination validation failed", "error", err)
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.AppError()
	}
	return apperrors.InvalidInput(err.Error())
}

func (s *destinationService) sanitize(d *model.Destination) {
	d.Name = sanitizer.NormalizeName(d.Name)
	d.Country = sanitizer.NormalizeLocation(d.Country)
	d.Description = sanitizer.NormalizeText(d.Description)
	d.Image = sanitizer.NormalizeURL(d.Image)
	d.Climate = sanitizer.TrimAndNormalize(d.Climate)
	d.BestTimeToVisit = sanitizer.TrimAndNormalize(d.BestTimeToVisit)
	d.PopularAttractions = sanitizer.NormalizeAttractions(d.PopularAttractions)
}
