package repository

import (
	"context"
	"staybook/pkg/cache"
	"staybook/pkg/logger"
	"staybook/pkg/model"
)

// cachedHotelRepository serves FindByID from Redis and drops the entry on
// every write to the hotel. Cache failures fall through to the store.
type cachedHotelRepository struct {
	HotelRepository
	cache *cache.JSONCache
	log   *logger.Logger
}

func NewCachedHotelRepository(next HotelRepository, c *cache.JSONCache, log *logger.Logger) HotelRepository {
	return &cachedHotelRepository{HotelRepository: next, cache: c, log: log}
}

func (r *cachedHotelRepository) FindByID(ctx context.Context, id string) (*model.Hotel, error) {
	var hotel model.Hotel
	found, err := r.cache.Get(ctx, id, &hotel)
	if err != nil {
		r.log.Ctx(ctx).Warn("Hotel cache read failed", "hotel_id", id, "error", err)
	}
	if found {
		return &hotel, nil
	}

	h, err := r.HotelRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, id, h); err != nil {
		r.log.Ctx(ctx).Warn("Hotel cache write failed", "hotel_id", id, "error", err)
	}
	return h, nil
}

func (r *cachedHotelRepository) Update(ctx context.Context, id string, update *model.HotelUpdate) error {
	if err := r.HotelRepository.Update(ctx, id, update); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedHotelRepository) SetRating(ctx context.Context, id string, rating float64) error {
	if err := r.HotelRepository.SetRating(ctx, id, rating); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedHotelRepository) Delete(ctx context.Context, id string) error {
	if err := r.HotelRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedHotelRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, id); err != nil {
		r.log.Ctx(ctx).Warn("Hotel cache invalidation failed", "hotel_id", id, "error", err)
	}
}
