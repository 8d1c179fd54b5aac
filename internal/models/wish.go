package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxWishImages caps how many image attachments a single wish may carry.
const MaxWishImages = 3

var (
	ErrMissingFields = errors.New("name, message and sender are required")
	ErrTooManyImages = errors.New("a wish can have at most 3 images")
)

// Wish is a user-submitted greeting with optional media attachments.
// Images and Video hold absolute URLs into the upload store.
type Wish struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Message   string             `bson:"message" json:"message"`
	Sender    string             `bson:"sender" json:"sender"`
	Images    []string           `bson:"images" json:"images"`
	Video     *string            `bson:"video,omitempty" json:"video"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// Validate is the single schema boundary for wishes; the repository calls it
// before every insert.
func (w *Wish) Validate() error {
	if strings.TrimSpace(w.Name) == "" ||
		strings.TrimSpace(w.Message) == "" ||
		strings.TrimSpace(w.Sender) == "" {
		return ErrMissingFields
	}
	if len(w.Images) > MaxWishImages {
		return ErrTooManyImages
	}
	return nil
}
