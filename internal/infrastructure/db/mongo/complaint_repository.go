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

type ComplaintRepository struct {
	col *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{col: db.Collection(collectionComplaints)}
}

// Create assigns the id and timestamps, then inserts the complaint.
func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = uuid.NewString()
	ts := now()
	c.CreatedAt, c.UpdatedAt = ts, ts

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

// List returns complaints newest first, scoped to filter.CitizenID when set.
func (r *ComplaintRepository) List(ctx context.Context, filter ports.ComplaintFilter) ([]*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CitizenID != "" {
		query["citizen_id"] = filter.CitizenID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find complaints: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Complaint, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode complaints: %w", err)
	}
	return items, nil
}

// UpdateTriage writes status and admin_response and stamps updated_at.
// An empty response removes the field.
func (r *ComplaintRepository) UpdateTriage(ctx context.Context, id string, status domain.ComplaintStatus, response string) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": string(status), "updated_at": now()}
	update := bson.M{"$set": set}
	if response == "" {
		update["$unset"] = bson.M{"admin_response": ""}
	} else {
		set["admin_response"] = response
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c domain.Complaint
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update complaint: %w", err)
	}
	return &c, nil
}
