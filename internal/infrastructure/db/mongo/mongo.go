package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

const (
	collectionIdentities    = "auth_users"
	collectionProfiles      = "profiles"
	collectionComplaints    = "complaints"
	collectionAmenities     = "amenities"
	collectionAnnouncements = "announcements"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// NewRepositories wires every portal collection of db.
func NewRepositories(db *mongo.Database) *ports.Repositories {
	return &ports.Repositories{
		Identities:    NewIdentityRepository(db),
		Profiles:      NewProfileRepository(db),
		Complaints:    NewComplaintRepository(db),
		Amenities:     NewAmenityRepository(db),
		Announcements: NewAnnouncementRepository(db),
	}
}

// EnsureIndexes creates the indexes backing the portal's lookups and orderings.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	plan := map[string][]mongo.IndexModel{
		collectionIdentities: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionProfiles: {
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		collectionComplaints: {
			{Keys: bson.D{{Key: "citizen_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		collectionAmenities: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		collectionAnnouncements: {
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for name, indexes := range plan {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", name, err)
		}
	}
	return nil
}

// now truncates to the millisecond precision BSON dates can hold.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
