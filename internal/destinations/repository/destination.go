package repository

import (
	"context"
	"errors"
	"fmt"
	destinationserrors "staybook/internal/destinations/errors"
	"staybook/pkg/config"
	mongotx "staybook/pkg/db/mongo"
	"staybook/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Destinations"
)

type DestinationRepository interface {
	Create(ctx context.Context, destination *model.Destination) error
	FindByID(ctx context.Context, id string) (*model.Destination, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Destination, error)
	Count(ctx context.Context) (int64, error)
	Replace(ctx context.Context, id string, destination *model.Destination) error
	Delete(ctx context.Context, id string) error
}

type mongoDestinationRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoDestinationRepository(cfg *config.Config) DestinationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoDestinationRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", destinationserrors.ErrInvalidID, id)
	}
	return oid, nil
}

func (r *mongoDestinationRepository) Create(ctx context.Context, destination *model.Destination) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	destination.ID = ""
	destination.CreatedAt = now
	destination.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, destination)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		destination.ID = oid.Hex()
	}
	return nil
}

func (r *mongoDestinationRepository) FindByID(ctx context.Context, id string) (*model.Destination, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var destination model.Destination
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&destination); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, destinationserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find destination: %w", err)
	}
	return &destination, nil
}

func (r *mongoDestinationRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Destination, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find destinations: %w", err)
	}
	defer cursor.Close(ctx)

	destinations := []*model.Destination{}
	if err = cursor.All(ctx, &destinations); err != nil {
		return nil, fmt.Errorf("failed to decode destinations: %w", err)
	}
	return destinations, nil
}

func (r *mongoDestinationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count destinations: %w", err)
	}
	return count, nil
}

// Replace overwrites every mutable field. created_at is preserved.
func (r *mongoDestinationRepository) Replace(ctx context.Context, id string, d *model.Destination) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	d.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	update := bson.M{"$set": bson.M{
		"name":                d.Name,
		"country":             d.Country,
		"description":         d.Description,
		"image":               d.Image,
		"rating":              d.Rating,
		"hotel_count":         d.HotelCount,
		"popular_attractions": d.PopularAttractions,
		"climate":             d.Climate,
		"best_time_to_visit":  d.BestTimeToVisit,
		"updated_at":          d.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update destination: %w", err)
	}
	if result.MatchedCount == 0 {
		return destinationserrors.ErrNotFound
	}
	return nil
}

func (r *mongoDestinationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete destination: %w", err)
	}
	if result.DeletedCount == 0 {
		return destinationserrors.ErrNotFound
	}
	return nil
}
