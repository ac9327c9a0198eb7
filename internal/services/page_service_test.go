package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gallery-service/internal/models"
	"gallery-service/internal/services"
)

func newPageService() (*services.PageService, *fakePages, *fakeContacts, *fakeBlob) {
	pages, contacts, blob := &fakePages{}, &fakeContacts{}, &fakeBlob{}
	return services.NewPageService(pages, contacts, blob, testLogger()), pages, contacts, blob
}

func TestHomeBackgroundRequiresImage(t *testing.T) {
	svc, _, _, blob := newPageService()
	if _, err := svc.SetHomeBackground(context.Background(), nil); !errors.Is(err, models.ErrMissingMedia) {
		t.Fatalf("want ErrMissingMedia, got %v", err)
	}
	if len(blob.keys) != 0 {
		t.Fatal("blob store must not be called")
	}
}

func TestHomeBackgroundReplaceKeepsOneRecord(t *testing.T) {
	svc, pages, _, _ := newPageService()

	if _, err := svc.SetHomeBackground(context.Background(), upload("first.png")); err != nil {
		t.Fatal(err)
	}
	second, err := svc.SetHomeBackground(context.Background(), upload("second.png"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.HomeBackground(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.BackgroundImageURL != second.BackgroundImageURL {
		t.Fatalf("current background should be the second upload, got %+v", got)
	}
	if !strings.Contains(got.BackgroundImageURL, "second.png") {
		t.Fatalf("unexpected URL %q", got.BackgroundImageURL)
	}
	if pages.homeWrites != 2 {
		t.Fatalf("want 2 upserts of the same record, got %d", pages.homeWrites)
	}
}

func TestAboutIntroUploadFailure(t *testing.T) {
	svc, pages, _, blob := newPageService()
	blob.failOn = "intro.mp4"

	_, err := svc.SetAboutIntro(context.Background(), &services.Upload{Filename: "intro.mp4", ContentType: "video/mp4", Data: []byte("v")}, "hi")
	if !errors.Is(err, models.ErrMediaUpload) {
		t.Fatalf("want ErrMediaUpload, got %v", err)
	}
	if pages.aboutMedia != nil {
		t.Fatal("failed upload must not persist a record")
	}
}

func TestAboutContentUpsert(t *testing.T) {
	svc, _, _, _ := newPageService()

	if _, err := svc.UpdateAbout(context.Background(), "   "); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("blank content: want ErrValidation, got %v", err)
	}

	about, err := svc.UpdateAbout(context.Background(), "Paintings and process.")
	if err != nil {
		t.Fatal(err)
	}
	if about.Content != "Paintings and process." {
		t.Fatalf("unexpected content %q", about.Content)
	}

	got, err := svc.About(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Content != about.Content {
		t.Fatalf("about read-back mismatch: %+v", got)
	}
}

func TestContactValidationAndListing(t *testing.T) {
	svc, _, contacts, _ := newPageService()

	if _, err := svc.SendMessage(context.Background(), "", "a@x.com", "hi"); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("missing name: want ErrValidation, got %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), "Ann", "nope", "hi"); !errors.Is(err, models.ErrInvalidEmail) {
		t.Fatalf("bad email: want ErrInvalidEmail, got %v", err)
	}

	if _, err := svc.SendMessage(context.Background(), "Ann", "a@x.com", "love the gallery"); err != nil {
		t.Fatal(err)
	}
	msgs, err := svc.Messages(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Name != "Ann" {
		t.Fatalf("unexpected inbox %+v", msgs)
	}
	if len(contacts.msgs) != 1 {
		t.Fatalf("store should hold one message, got %d", len(contacts.msgs))
	}
}
