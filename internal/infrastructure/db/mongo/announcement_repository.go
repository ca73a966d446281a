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
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

type AnnouncementRepository struct {
	col *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{col: db.Collection(collectionAnnouncements)}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a.ID = uuid.NewString()
	ts := now()
	a.CreatedAt, a.UpdatedAt = ts, ts

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

func (r *AnnouncementRepository) FindByID(ctx context.Context, id string) (*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Announcement
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find announcement: %w", err)
	}
	return &a, nil
}

func (r *AnnouncementRepository) List(ctx context.Context, filter ports.AnnouncementFilter) ([]*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, activeQuery(filter), options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find announcements: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Announcement, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}
	return items, nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	update := bson.M{"$set": bson.M{
		"title":      a.Title,
		"content":    a.Content,
		"category":   string(a.Category),
		"is_active":  a.IsActive,
		"updated_at": now(),
	}}
	return r.findAndUpdate(ctx, a.ID, update)
}

// SetActive writes only is_active.
func (r *AnnouncementRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Announcement, error) {
	return r.findAndUpdate(ctx, id, bson.M{"$set": bson.M{"is_active": active}})
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AnnouncementRepository) Count(ctx context.Context, filter ports.AnnouncementFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, activeQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("count announcements: %w", err)
	}
	return n, nil
}

func (r *AnnouncementRepository) findAndUpdate(ctx context.Context, id string, update bson.M) (*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out domain.Announcement
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return &out, nil
}

func activeQuery(filter ports.AnnouncementFilter) bson.M {
	if filter.ActiveOnly {
		return bson.M{"is_active": true}
	}
	return bson.M{}
}
