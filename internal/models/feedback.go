package models

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrEmptyFeedback = errors.New("feedback must not be empty")

// Feedback is a free-text comment; write-only from this system's perspective.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Feedback  string             `bson:"feedback" json:"feedback"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// Validate checks the trimmed text; the repository calls it before insert.
func (f *Feedback) Validate() error {
	if strings.TrimSpace(f.Feedback) == "" {
		return ErrEmptyFeedback
	}
	return nil
}
