package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

type AmenityRepository struct {
	col *mongo.Collection
}

func NewAmenityRepository(db *mongo.Database) *AmenityRepository {
	return &AmenityRepository{col: db.Collection(collectionAmenities)}
}

func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a.ID = uuid.NewString()
	ts := now()
	a.CreatedAt, a.UpdatedAt = ts, ts

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert amenity: %w", err)
	}
	return nil
}

// List returns every amenity ordered by name.
func (r *AmenityRepository) List(ctx context.Context) ([]*domain.Amenity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find amenities: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Amenity, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode amenities: %w", err)
	}
	return items, nil
}

// Update replaces the editable fields. Optional fields left empty are unset.
func (r *AmenityRepository) Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"name":       a.Name,
		"type":       string(a.Type),
		"address":    a.Address,
		"updated_at": now(),
	}
	unset := bson.M{}
	for field, value := range map[string]string{
		"contact":         a.Contact,
		"operating_hours": a.OperatingHours,
		"description":     a.Description,
	} {
		if value == "" {
			unset[field] = ""
		} else {
			set[field] = value
		}
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out domain.Amenity
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": a.ID}, update, opts).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update amenity: %w", err)
	}
	return &out, nil
}

func (r *AmenityRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete amenity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AmenityRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count amenities: %w", err)
	}
	return n, nil
}
