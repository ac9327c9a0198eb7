package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gallery-service/internal/models"
)

// PageRepo persists the singleton page documents. Every write is an upsert
// against a fixed _id so a replacement never leaves a window with no record.
type PageRepo struct {
	media *mongo.Collection // page_media: home + about docs
	about *mongo.Collection // about text
}

func NewPageRepo(media, about *mongo.Collection) *PageRepo {
	return &PageRepo{media: media, about: about}
}

func (r *PageRepo) UpsertHome(ctx context.Context, m *models.HomeMedia) error {
	m.ID = models.HomeMediaID
	opts := options.Replace().SetUpsert(true)
	_, err := r.media.ReplaceOne(ctx, bson.M{"_id": models.HomeMediaID}, m, opts)
	return err
}

func (r *PageRepo) GetHome(ctx context.Context) (*models.HomeMedia, error) {
	var m models.HomeMedia
	err := r.media.FindOne(ctx, bson.M{"_id": models.HomeMediaID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PageRepo) UpsertAboutMedia(ctx context.Context, m *models.AboutMedia) error {
	m.ID = models.AboutMediaID
	opts := options.Replace().SetUpsert(true)
	_, err := r.media.ReplaceOne(ctx, bson.M{"_id": models.AboutMediaID}, m, opts)
	return err
}

func (r *PageRepo) GetAboutMedia(ctx context.Context) (*models.AboutMedia, error) {
	var m models.AboutMedia
	err := r.media.FindOne(ctx, bson.M{"_id": models.AboutMediaID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PageRepo) UpsertAbout(ctx context.Context, a *models.About) (*models.About, error) {
	a.ID = models.AboutID
	update := bson.M{"$set": bson.M{"content": a.Content, "updated_at": a.UpdatedAt}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.About
	if err := r.about.FindOneAndUpdate(ctx, bson.M{"_id": models.AboutID}, update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PageRepo) GetAbout(ctx context.Context) (*models.About, error) {
	var a models.About
	err := r.about.FindOne(ctx, bson.M{"_id": models.AboutID}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
