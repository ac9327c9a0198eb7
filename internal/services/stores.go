package services

import (
	"context"
	"time"

	"gallery-service/internal/models"
)

// BlobStore is the capability contract for hosted media: store bytes, get a
// durable retrieval URL back.
type BlobStore interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

type ArtStore interface {
	Insert(ctx context.Context, a *models.Art) error
	List(ctx context.Context) ([]models.Art, error)
	GetByID(ctx context.Context, id string) (*models.Art, error)
	Delete(ctx context.Context, id string) (*models.Art, error)
}

type BidStore interface {
	Insert(ctx context.Context, b *models.Bid) error
	ClaimTop(ctx context.Context, artID, bidID string, amount float64, at time.Time) (bool, error)
	Leading(ctx context.Context, artID string) (*models.Bid, error)
	ListByArt(ctx context.Context, artID string) ([]models.Bid, error)
	ListAll(ctx context.Context) ([]models.Bid, error)
}

type PageStore interface {
	UpsertHome(ctx context.Context, m *models.HomeMedia) error
	GetHome(ctx context.Context) (*models.HomeMedia, error)
	UpsertAboutMedia(ctx context.Context, m *models.AboutMedia) error
	GetAboutMedia(ctx context.Context) (*models.AboutMedia, error)
	UpsertAbout(ctx context.Context, a *models.About) (*models.About, error)
	GetAbout(ctx context.Context) (*models.About, error)
}

type ContactStore interface {
	Insert(ctx context.Context, m *models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
}

// Upload is one in-memory multipart file on its way to the blob store.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}
