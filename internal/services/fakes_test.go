package services_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gallery-service/internal/models"
)

// In-memory stand-ins for the Mongo repos and the S3 store. ClaimTop keeps
// the same atomicity contract as the real guard document: one compare-and-
// set under a single lock.

type fakeArts struct {
	mu   sync.Mutex
	arts map[string]models.Art
}

func newFakeArts() *fakeArts { return &fakeArts{arts: map[string]models.Art{}} }

func (f *fakeArts) Insert(_ context.Context, a *models.Art) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.arts[a.ID] = *a
	return nil
}

func (f *fakeArts) List(_ context.Context) ([]models.Art, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Art, 0, len(f.arts))
	for _, a := range f.arts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeArts) GetByID(_ context.Context, id string) (*models.Art, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.arts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &a, nil
}

func (f *fakeArts) Delete(_ context.Context, id string) (*models.Art, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.arts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	delete(f.arts, id)
	return &a, nil
}

type fakeBids struct {
	mu   sync.Mutex
	bids []models.Bid
	tops map[string]models.BidTop
}

func newFakeBids() *fakeBids { return &fakeBids{tops: map[string]models.BidTop{}} }

func (f *fakeBids) Insert(_ context.Context, b *models.Bid) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bids = append(f.bids, *b)
	return nil
}

func (f *fakeBids) ClaimTop(_ context.Context, artID, bidID string, amount float64, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if top, ok := f.tops[artID]; ok && top.Amount >= amount {
		return false, nil
	}
	f.tops[artID] = models.BidTop{ArtID: artID, Amount: amount, BidID: bidID, PlacedAt: at}
	return true, nil
}

func (f *fakeBids) Leading(_ context.Context, artID string) (*models.Bid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *models.Bid
	for i := range f.bids {
		b := f.bids[i]
		if b.ArtID != artID {
			continue
		}
		if best == nil || b.Amount > best.Amount ||
			(b.Amount == best.Amount && b.CreatedAt.Before(best.CreatedAt)) {
			best = &f.bids[i]
		}
	}
	if best == nil {
		return nil, nil
	}
	out := *best
	return &out, nil
}

func (f *fakeBids) ListByArt(_ context.Context, artID string) ([]models.Bid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Bid{}
	for _, b := range f.bids {
		if b.ArtID == artID {
			out = append(out, b)
		}
	}
	sortBids(out)
	return out, nil
}

func (f *fakeBids) ListAll(_ context.Context) ([]models.Bid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]models.Bid{}, f.bids...)
	sortBids(out)
	return out, nil
}

func sortBids(bids []models.Bid) {
	sort.Slice(bids, func(i, j int) bool {
		if bids[i].Amount != bids[j].Amount {
			return bids[i].Amount > bids[j].Amount
		}
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
}

type fakeBlob struct {
	mu     sync.Mutex
	keys   []string
	failOn string // keys containing this substring fail
}

func (f *fakeBlob) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && strings.Contains(key, f.failOn) {
		return "", fmt.Errorf("upload rejected: %s", key)
	}
	f.keys = append(f.keys, key)
	return "https://blob.test/" + key, nil
}

type fakePages struct {
	mu         sync.Mutex
	home       *models.HomeMedia
	aboutMedia *models.AboutMedia
	about      *models.About
	homeWrites int
}

func (f *fakePages) UpsertHome(_ context.Context, m *models.HomeMedia) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *m
	f.home = &cp
	f.homeWrites++
	return nil
}

func (f *fakePages) GetHome(_ context.Context) (*models.HomeMedia, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.home, nil
}

func (f *fakePages) UpsertAboutMedia(_ context.Context, m *models.AboutMedia) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *m
	f.aboutMedia = &cp
	return nil
}

func (f *fakePages) GetAboutMedia(_ context.Context) (*models.AboutMedia, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.aboutMedia, nil
}

func (f *fakePages) UpsertAbout(_ context.Context, a *models.About) (*models.About, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	cp.ID = models.AboutID
	f.about = &cp
	return &cp, nil
}

func (f *fakePages) GetAbout(_ context.Context) (*models.About, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.about, nil
}

type fakeContacts struct {
	mu   sync.Mutex
	msgs []models.ContactMessage
}

func (f *fakeContacts) Insert(_ context.Context, m *models.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, *m)
	return nil
}

func (f *fakeContacts) List(_ context.Context) ([]models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]models.ContactMessage{}, f.msgs...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
