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

// MongoTaskRepository stores tasks in a Mongo collection. Every call
// runs through the circuit breaker so a dead store fails fast instead
// of queueing retries.
type MongoTaskRepository struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewMongoTaskRepository(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *MongoTaskRepository {
	return &MongoTaskRepository{collection: collection, breaker: breaker}
}

func (r *MongoTaskRepository) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	result, err := r.breaker.Execute(func() (interface{}, error) {
		cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve tasks: %v", err)
		}
		defer cursor.Close(ctx)

		var tasks []models.Task
		for cursor.Next(ctx) {
			var task models.Task
			if err := cursor.Decode(&task); err != nil {
				return nil, fmt.Errorf("failed to decode task: %v", err)
			}
			tasks = append(tasks, task)
		}
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("cursor error: %v", err)
		}
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Task), nil
}

func (r *MongoTaskRepository) Upsert(ctx context.Context, task models.Task) (models.Task, error) {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		filter := bson.M{"_id": task.ID, "userId": task.UserID}
		opts := options.Replace().SetUpsert(true)
		if _, err := r.collection.ReplaceOne(ctx, filter, task, opts); err != nil {
			return nil, fmt.Errorf("failed to upsert task: %v", err)
		}
		return nil, nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (r *MongoTaskRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID}); err != nil {
			return nil, fmt.Errorf("failed to delete task: %v", err)
		}
		return nil, nil
	})
	return err
}
