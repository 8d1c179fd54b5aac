package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wishwall/internal/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// WishRepository handles database operations related to wishes.
type WishRepository struct {
	collection *mongo.Collection
}

// NewWishRepository creates a new instance of WishRepository.
func NewWishRepository(db *mongo.Database) *WishRepository {
	return &WishRepository{collection: db.Collection("wishes")}
}

// CreateWish validates and inserts a new wish.
func (r *WishRepository) CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	if err := wish.Validate(); err != nil {
		return nil, err
	}
	wish.CreatedAt = time.Now()
	if wish.Images == nil {
		wish.Images = []string{}
	}

	result, err := r.collection.InsertOne(ctx, wish)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert wish")
		return nil, fmt.Errorf("failed to create wish: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to cast inserted wish ID")
	}
	wish.ID = insertedID

	logrus.WithField("wish_id", wish.ID.Hex()).Info("Wish created successfully")
	return wish, nil
}

// GetWishByID fetches a wish by its ID.
func (r *WishRepository) GetWishByID(ctx context.Context, id primitive.ObjectID) (*models.Wish, error) {
	var wish models.Wish
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&wish); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		logrus.WithError(err).WithField("wish_id", id.Hex()).Error("Failed to find wish by ID")
		return nil, fmt.Errorf("failed to get wish: %w", err)
	}
	return &wish, nil
}

// GetAllWishes fetches every wish, most recent first.
func (r *WishRepository) GetAllWishes(ctx context.Context) ([]models.Wish, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch wishes")
		return nil, fmt.Errorf("failed to get wishes: %w", err)
	}
	defer cursor.Close(ctx)

	wishes := []models.Wish{}
	for cursor.Next(ctx) {
		var wish models.Wish
		if err := cursor.Decode(&wish); err != nil {
			return nil, fmt.Errorf("failed to decode wish: %w", err)
		}
		wishes = append(wishes, wish)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wishes: %w", err)
	}

	return wishes, nil
}
