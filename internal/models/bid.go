package models

import "time"

// Bid records one (email, amount) offer against an artwork. Bids are never
// mutated or deleted; deleting the artwork leaves them behind.
type Bid struct {
	ID        string    `bson:"_id" json:"id"`
	ArtID     string    `bson:"art_id" json:"artId"`
	Email     string    `bson:"email" json:"email"`
	Amount    float64   `bson:"amount" json:"amount"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// BidTop is the per-artwork leading-bid guard document. Its _id is the
// artwork id, so a conditional update on it is the single atomic step that
// decides whether a candidate amount takes the lead.
type BidTop struct {
	ArtID    string    `bson:"_id" json:"artId"`
	Amount   float64   `bson:"amount" json:"amount"`
	BidID    string    `bson:"bid_id" json:"bidId"`
	PlacedAt time.Time `bson:"placed_at" json:"placedAt"`
}

// BidWithArt joins a bid with its artwork for the admin listing. Art is nil
// when the artwork has been deleted since the bid was placed.
type BidWithArt struct {
	Bid
	Art *Art `json:"art"`
}
