package models

import "time"

// Fixed document ids for the singleton page records. Replacing a record is
// an upsert against the fixed id, so there is never a window with zero
// documents during a swap.
const (
	HomeMediaID  = "home"
	AboutMediaID = "about"
	AboutID      = "about"
)

// HomeMedia holds the homepage background image. One document only.
type HomeMedia struct {
	ID                 string    `bson:"_id" json:"id"`
	BackgroundImageURL string    `bson:"background_image_url" json:"backgroundImageUrl"`
	UploadedAt         time.Time `bson:"uploaded_at" json:"uploadedAt"`
}

// AboutMedia holds the about-page intro video and optional text. One
// document only.
type AboutMedia struct {
	ID            string    `bson:"_id" json:"id"`
	IntroVideoURL string    `bson:"intro_video_url" json:"introVideoUrl"`
	IntroText     string    `bson:"intro_text,omitempty" json:"introText,omitempty"`
	UploadedAt    time.Time `bson:"uploaded_at" json:"uploadedAt"`
}

// About is the editable about-page text, upserted in place.
type About struct {
	ID        string    `bson:"_id" json:"id"`
	Content   string    `bson:"content" json:"content"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ContactMessage is a write-only submission from the public contact form.
type ContactMessage struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
