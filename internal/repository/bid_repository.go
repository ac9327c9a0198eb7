package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gallery-service/internal/models"
)

type BidRepo struct {
	col  *mongo.Collection // bids
	tops *mongo.Collection // bid_tops, one guard doc per artwork
}

func NewBidRepo(col, tops *mongo.Collection) *BidRepo {
	return &BidRepo{col: col, tops: tops}
}

func (r *BidRepo) Insert(ctx context.Context, b *models.Bid) error {
	_, err := r.col.InsertOne(ctx, b)
	return err
}

// ClaimTop atomically records amount as the leading amount for the artwork,
// returning false when an equal or higher amount already leads. The whole
// comparison happens inside one single-document conditional update, so two
// concurrent bids can never both claim the lead.
func (r *BidRepo) ClaimTop(ctx context.Context, artID, bidID string, amount float64, at time.Time) (bool, error) {
	filter := bson.M{"_id": artID, "amount": bson.M{"$lt": amount}}
	update := bson.M{"$set": bson.M{"amount": amount, "bid_id": bidID, "placed_at": at}}

	for attempt := 0; attempt < 2; attempt++ {
		res, err := r.tops.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			// Duplicate key: either another bid created the guard first, or
			// an existing guard holds an amount >= ours. Retrying once
			// settles which: the second pass sees the guard and either
			// matches the $lt filter or fails it cleanly.
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return false, err
		}
		if res.MatchedCount > 0 || res.UpsertedCount > 0 {
			return true, nil
		}
		return false, nil
	}
	return false, nil
}

// Leading returns the bid with the highest amount, earliest-placed on ties,
// or nil when the artwork has no bids.
func (r *BidRepo) Leading(ctx context.Context, artID string) (*models.Bid, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "amount", Value: -1}, {Key: "created_at", Value: 1}})
	var b models.Bid
	err := r.col.FindOne(ctx, bson.M{"art_id": artID}, opts).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BidRepo) ListByArt(ctx context.Context, artID string) ([]models.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "amount", Value: -1}, {Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"art_id": artID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	bids := []models.Bid{}
	if err := cur.All(ctx, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *BidRepo) ListAll(ctx context.Context) ([]models.Bid, error) {
	opts := options.Find().SetSort(bson.D{{Key: "amount", Value: -1}, {Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	bids := []models.Bid{}
	if err := cur.All(ctx, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}
