package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wishwall/internal/models"
)

// FeedbackRepository handles database operations related to feedback.
type FeedbackRepository struct {
	collection *mongo.Collection
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{collection: db.Collection("feedback")}
}

// CreateFeedback validates and inserts a feedback entry.
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, fb *models.Feedback) (*models.Feedback, error) {
	if err := fb.Validate(); err != nil {
		return nil, err
	}
	fb.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, fb)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert feedback")
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to cast inserted feedback ID")
	}
	fb.ID = insertedID

	logrus.WithField("feedback_id", fb.ID.Hex()).Info("Feedback created successfully")
	return fb, nil
}
