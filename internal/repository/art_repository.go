package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gallery-service/internal/models"
)

type ArtRepo struct {
	col *mongo.Collection
}

func NewArtRepo(col *mongo.Collection) *ArtRepo {
	return &ArtRepo{col: col}
}

func (r *ArtRepo) Insert(ctx context.Context, a *models.Art) error {
	_, err := r.col.InsertOne(ctx, a)
	return err
}

// List returns every artwork, newest first.
func (r *ArtRepo) List(ctx context.Context) ([]models.Art, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	arts := []models.Art{}
	if err := cur.All(ctx, &arts); err != nil {
		return nil, err
	}
	return arts, nil
}

func (r *ArtRepo) GetByID(ctx context.Context, id string) (*models.Art, error) {
	var a models.Art
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes the artwork and returns the removed document. Bids, guard
// documents and blobs are left behind on purpose.
func (r *ArtRepo) Delete(ctx context.Context, id string) (*models.Art, error) {
	var a models.Art
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
