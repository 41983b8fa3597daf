package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studio-portal/backend/planner-service/models"
)

// MongoRosterRepository stores one roster document per user in the
// artists collection.
type MongoRosterRepository struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewMongoRosterRepository(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *MongoRosterRepository {
	return &MongoRosterRepository{collection: collection, breaker: breaker}
}

// Get returns the user's roster. A missing document is an empty roster,
// not an error; the caller decides whether to seed defaults.
func (r *MongoRosterRepository) Get(ctx context.Context, userID string) (models.Roster, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		var roster models.Roster
		filter := bson.M{"_id": models.RosterDocID, "userId": userID}
		err := r.collection.FindOne(ctx, filter).Decode(&roster)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Roster{ID: models.RosterDocID, UserID: userID, List: []string{}}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve roster: %v", err)
		}
		return roster, nil
	})
	if err != nil {
		return models.Roster{}, err
	}
	return result.(models.Roster), nil
}

func (r *MongoRosterRepository) Upsert(ctx context.Context, roster models.Roster) (models.Roster, error) {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		filter := bson.M{"_id": roster.ID, "userId": roster.UserID}
		opts := options.Replace().SetUpsert(true)
		if _, err := r.collection.ReplaceOne(ctx, filter, roster, opts); err != nil {
			return nil, fmt.Errorf("failed to upsert roster: %v", err)
		}
		return nil, nil
	})
	if err != nil {
		return models.Roster{}, err
	}
	return roster, nil
}
