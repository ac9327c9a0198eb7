package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gallery-service/internal/models"
)

type ContactRepo struct {
	col *mongo.Collection
}

func NewContactRepo(col *mongo.Collection) *ContactRepo {
	return &ContactRepo{col: col}
}

func (r *ContactRepo) Insert(ctx context.Context, m *models.ContactMessage) error {
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *ContactRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	msgs := []models.ContactMessage{}
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
