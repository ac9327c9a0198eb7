package models

import "time"

// Art is a catalog entry open for bidding until AuctionEnd.
// The open/closed status is never stored; call OpenAt with the reader's clock.
type Art struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url" json:"imageUrl"`
	ThumbURL    string    `bson:"thumb_url,omitempty" json:"thumbUrl,omitempty"`
	VideoURL    string    `bson:"video_url,omitempty" json:"videoUrl,omitempty"`
	AudioURL    string    `bson:"audio_url,omitempty" json:"audioUrl,omitempty"`
	AuctionEnd  time.Time `bson:"auction_end,omitempty" json:"auctionEnd"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// OpenAt reports whether the auction accepts bids at the given instant.
// A missing or zero AuctionEnd means the schedule is unknown, which is
// always treated as closed.
func (a *Art) OpenAt(now time.Time) bool {
	if a.AuctionEnd.IsZero() {
		return false
	}
	return now.Before(a.AuctionEnd)
}

// ArtView is the read representation handed to clients: the stored document
// plus the open flag computed at serialization time.
type ArtView struct {
	Art
	Open bool `json:"open"`
}

func (a *Art) View(now time.Time) ArtView {
	return ArtView{Art: *a, Open: a.OpenAt(now)}
}
