package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gallery-service/internal/models"
	"gallery-service/internal/utils"
)

// BidService records bids and answers who is winning. The leading-bid
// comparison is delegated to the store's ClaimTop so it is atomic against
// concurrent placements on the same artwork.
type BidService struct {
	bids BidStore
	arts ArtStore
	log  *zap.SugaredLogger
}

func NewBidService(bids BidStore, arts ArtStore, log *zap.SugaredLogger) *BidService {
	return &BidService{bids: bids, arts: arts, log: log}
}

func (s *BidService) Place(ctx context.Context, artID, email string, amount float64) (*models.Bid, error) {
	if amount <= 0 {
		return nil, models.ErrInvalidAmount
	}
	email, ok := utils.Email(email)
	if !ok {
		return nil, models.ErrInvalidEmail
	}

	art, err := s.arts.GetByID(ctx, artID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if !art.OpenAt(now) {
		s.log.Warnw("bid rejected: auction closed", "art_id", artID, "amount", amount)
		return nil, models.ErrAuctionClosed
	}

	bid := &models.Bid{
		ID:        utils.NewID(),
		ArtID:     artID,
		Email:     email,
		Amount:    amount,
		CreatedAt: now,
	}

	claimed, err := s.bids.ClaimTop(ctx, artID, bid.ID, amount, now)
	if err != nil {
		return nil, err
	}
	if !claimed {
		s.log.Warnw("bid rejected: amount too low", "art_id", artID, "amount", amount)
		return nil, models.ErrBidTooLow
	}

	if err := s.bids.Insert(ctx, bid); err != nil {
		return nil, err
	}
	s.log.Infow("bid placed", "art_id", artID, "bid_id", bid.ID, "amount", amount)
	return bid, nil
}

// Leading returns the winning bid for the artwork, nil when none exist.
func (s *BidService) Leading(ctx context.Context, artID string) (*models.Bid, error) {
	return s.bids.Leading(ctx, artID)
}

// ForArt lists bids for one artwork, highest amount first.
func (s *BidService) ForArt(ctx context.Context, artID string) ([]models.Bid, error) {
	return s.bids.ListByArt(ctx, artID)
}

// All joins every bid with its artwork for administrative review. Bids
// whose artwork was deleted come back with a nil Art.
func (s *BidService) All(ctx context.Context) ([]models.BidWithArt, error) {
	bids, err := s.bids.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	arts, err := s.arts.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Art, len(arts))
	for i := range arts {
		byID[arts[i].ID] = &arts[i]
	}

	out := make([]models.BidWithArt, 0, len(bids))
	for _, b := range bids {
		out = append(out, models.BidWithArt{Bid: b, Art: byID[b.ArtID]})
	}
	return out, nil
}
