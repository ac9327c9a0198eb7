package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"gallery-service/internal/models"
	"gallery-service/internal/utils"
)

// ArtService owns the artwork catalog and the auction schedule rules.
type ArtService struct {
	arts  ArtStore
	store BlobStore
	log   *zap.SugaredLogger
}

func NewArtService(arts ArtStore, store BlobStore, log *zap.SugaredLogger) *ArtService {
	return &ArtService{arts: arts, store: store, log: log}
}

type CreateArtInput struct {
	Title       string
	Description string
	AuctionEnd  string
	Image       *Upload
	Video       *Upload
	Audio       *Upload
}

var auctionEndLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04", // datetime-local inputs
	"2006-01-02 15:04",
}

func parseAuctionEnd(s string) (time.Time, error) {
	for _, layout := range auctionEndLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, models.ErrInvalidSchedule
}

// Create validates, uploads each supplied payload in order (image, video,
// audio) and persists the artwork. Validation runs before any blob call so
// a rejected request never uploads anything. A failed upload aborts the
// whole create; blobs uploaded before the failure are not rolled back.
func (s *ArtService) Create(ctx context.Context, in CreateArtInput) (*models.Art, error) {
	if in.Image == nil {
		return nil, models.ErrMissingMedia
	}
	end, err := parseAuctionEnd(in.AuctionEnd)
	if err != nil {
		return nil, models.ErrInvalidSchedule
	}
	now := time.Now().UTC()
	if !end.After(now) {
		return nil, models.ErrInvalidSchedule
	}

	id := utils.NewID()
	imageURL, err := s.upload(ctx, id, in.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: image: %v", models.ErrMediaUpload, err)
	}

	// best effort, never fails the create
	thumbURL := s.uploadThumb(ctx, id, in.Image.Data)

	var videoURL, audioURL string
	if in.Video != nil {
		videoURL, err = s.upload(ctx, id, in.Video)
		if err != nil {
			return nil, fmt.Errorf("%w: video: %v", models.ErrMediaUpload, err)
		}
	}
	if in.Audio != nil {
		audioURL, err = s.upload(ctx, id, in.Audio)
		if err != nil {
			return nil, fmt.Errorf("%w: audio: %v", models.ErrMediaUpload, err)
		}
	}

	art := &models.Art{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    imageURL,
		ThumbURL:    thumbURL,
		VideoURL:    videoURL,
		AudioURL:    audioURL,
		AuctionEnd:  end,
		CreatedAt:   now,
	}
	if err := s.arts.Insert(ctx, art); err != nil {
		return nil, err
	}
	s.log.Infow("artwork created", "art_id", art.ID, "title", art.Title, "auction_end", art.AuctionEnd)
	return art, nil
}

func (s *ArtService) upload(ctx context.Context, artID string, u *Upload) (string, error) {
	key := "gallery/" + artID + "_" + u.Filename
	ct := u.ContentType
	if ct == "" {
		ct = http.DetectContentType(u.Data)
	}
	return s.store.Upload(ctx, key, ct, u.Data)
}

func (s *ArtService) uploadThumb(ctx context.Context, artID string, data []byte) string {
	thumbBytes, err := renderThumbnail(data)
	if err != nil {
		return ""
	}
	url, err := s.store.Upload(ctx, "gallery/"+artID+"_thumb.jpg", "image/jpeg", thumbBytes)
	if err != nil {
		s.log.Warnw("thumbnail upload failed", "art_id", artID, "err", err)
		return ""
	}
	return url
}

func renderThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ArtService) List(ctx context.Context) ([]models.ArtView, error) {
	arts, err := s.arts.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	views := make([]models.ArtView, 0, len(arts))
	for i := range arts {
		views = append(views, arts[i].View(now))
	}
	return views, nil
}

func (s *ArtService) Get(ctx context.Context, id string) (*models.ArtView, error) {
	art, err := s.arts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := art.View(time.Now().UTC())
	return &v, nil
}

// Delete removes the catalog entry only. Existing bids keep referencing the
// deleted id and blobs stay in the store.
func (s *ArtService) Delete(ctx context.Context, id string) (*models.Art, error) {
	art, err := s.arts.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Infow("artwork deleted", "art_id", id)
	return art, nil
}
