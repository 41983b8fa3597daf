package repositories

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studio-portal/backend/planner-service/models"
)

// MongoIdeaRepository stores ideas in a Mongo collection.
type MongoIdeaRepository struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewMongoIdeaRepository(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *MongoIdeaRepository {
	return &MongoIdeaRepository{collection: collection, breaker: breaker}
}

func (r *MongoIdeaRepository) ListByUser(ctx context.Context, userID string) ([]models.Idea, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve ideas: %v", err)
		}
		defer cursor.Close(ctx)

		var ideas []models.Idea
		for cursor.Next(ctx) {
			var idea models.Idea
			if err := cursor.Decode(&idea); err != nil {
				return nil, fmt.Errorf("failed to decode idea: %v", err)
			}
			ideas = append(ideas, idea)
		}
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("cursor error: %v", err)
		}
		return ideas, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Idea), nil
}

func (r *MongoIdeaRepository) Upsert(ctx context.Context, idea models.Idea) (models.Idea, error) {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		filter := bson.M{"_id": idea.ID, "userId": idea.UserID}
		opts := options.Replace().SetUpsert(true)
		if _, err := r.collection.ReplaceOne(ctx, filter, idea, opts); err != nil {
			return nil, fmt.Errorf("failed to upsert idea: %v", err)
		}
		return nil, nil
	})
	if err != nil {
		return models.Idea{}, err
	}
	return idea, nil
}

func (r *MongoIdeaRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID}); err != nil {
			return nil, fmt.Errorf("failed to delete idea: %v", err)
		}
		return nil, nil
	})
	return err
}
