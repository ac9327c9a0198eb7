package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"gallery-service/internal/models"
	"gallery-service/internal/utils"
)

// PageService manages the singleton page documents (home background, about
// intro, about text) and the contact inbox.
type PageService struct {
	pages    PageStore
	contacts ContactStore
	store    BlobStore
	log      *zap.SugaredLogger
}

func NewPageService(pages PageStore, contacts ContactStore, store BlobStore, log *zap.SugaredLogger) *PageService {
	return &PageService{pages: pages, contacts: contacts, store: store, log: log}
}

func (s *PageService) SetHomeBackground(ctx context.Context, image *Upload) (*models.HomeMedia, error) {
	if image == nil {
		return nil, models.ErrMissingMedia
	}
	url, err := s.uploadPage(ctx, "home-background", image)
	if err != nil {
		return nil, err
	}
	media := &models.HomeMedia{
		BackgroundImageURL: url,
		UploadedAt:         time.Now().UTC(),
	}
	if err := s.pages.UpsertHome(ctx, media); err != nil {
		return nil, err
	}
	s.log.Infow("home background replaced", "url", url)
	return media, nil
}

func (s *PageService) HomeBackground(ctx context.Context) (*models.HomeMedia, error) {
	return s.pages.GetHome(ctx)
}

func (s *PageService) SetAboutIntro(ctx context.Context, video *Upload, introText string) (*models.AboutMedia, error) {
	if video == nil {
		return nil, models.ErrMissingMedia
	}
	url, err := s.uploadPage(ctx, "about-intro", video)
	if err != nil {
		return nil, err
	}
	media := &models.AboutMedia{
		IntroVideoURL: url,
		IntroText:     strings.TrimSpace(introText),
		UploadedAt:    time.Now().UTC(),
	}
	if err := s.pages.UpsertAboutMedia(ctx, media); err != nil {
		return nil, err
	}
	s.log.Infow("about intro replaced", "url", url)
	return media, nil
}

func (s *PageService) AboutIntro(ctx context.Context) (*models.AboutMedia, error) {
	return s.pages.GetAboutMedia(ctx)
}

func (s *PageService) UpdateAbout(ctx context.Context, content string) (*models.About, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.ErrValidation
	}
	return s.pages.UpsertAbout(ctx, &models.About{Content: content, UpdatedAt: time.Now().UTC()})
}

func (s *PageService) About(ctx context.Context) (*models.About, error) {
	return s.pages.GetAbout(ctx)
}

func (s *PageService) SendMessage(ctx context.Context, name, email, message string) (*models.ContactMessage, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" || message == "" {
		return nil, models.ErrValidation
	}
	email, ok := utils.Email(email)
	if !ok {
		return nil, models.ErrInvalidEmail
	}
	msg := &models.ContactMessage{
		ID:        utils.NewID(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contacts.Insert(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *PageService) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.contacts.List(ctx)
}

func (s *PageService) uploadPage(ctx context.Context, folder string, u *Upload) (string, error) {
	key := folder + "/" + utils.NewID() + "_" + u.Filename
	ct := u.ContentType
	if ct == "" {
		ct = http.DetectContentType(u.Data)
	}
	url, err := s.store.Upload(ctx, key, ct, u.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrMediaUpload, err)
	}
	return url, nil
}
