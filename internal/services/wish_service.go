package services

import (
	"context"
	"errors"
	"net/url"
	"os"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wishwall/internal/models"
	"wishwall/internal/storage"
)

var (
	// ErrInvalidID is returned for identifiers that are not valid object ids.
	// Malformed ids are rejected outright; there is no raw-id fallback lookup.
	ErrInvalidID = errors.New("invalid wish ID")
	// ErrNoVideo is returned when a wish has no video attachment.
	ErrNoVideo = errors.New("wish has no video")
	// ErrFileMissing is returned when a wish references a file that is no
	// longer present in the upload store.
	ErrFileMissing = errors.New("video file is missing from the upload store")
)

// WishRepository is the persistence surface the wish service depends on.
type WishRepository interface {
	CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error)
	GetWishByID(ctx context.Context, id primitive.ObjectID) (*models.Wish, error)
	GetAllWishes(ctx context.Context) ([]models.Wish, error)
}

// WishService exposes wish operations to the HTTP layer.
type WishService struct {
	repo  WishRepository
	store *storage.Store
}

// NewWishService creates a new instance of WishService.
func NewWishService(repo WishRepository, store *storage.Store) *WishService {
	return &WishService{
		repo:  repo,
		store: store,
	}
}

// CreateWish persists a new wish.
func (s *WishService) CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	return s.repo.CreateWish(ctx, wish)
}

// GetWishByID fetches a single wish by its hex id.
func (s *WishService) GetWishByID(ctx context.Context, id string) (*models.Wish, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetWishByID(ctx, objID)
}

// GetAllWishes returns every wish, most recent first.
func (s *WishService) GetAllWishes(ctx context.Context) ([]models.Wish, error) {
	return s.repo.GetAllWishes(ctx)
}

// GetWishVideoPath resolves the on-disk path of a wish's video attachment.
func (s *WishService) GetWishVideoPath(ctx context.Context, id string) (string, error) {
	wish, err := s.GetWishByID(ctx, id)
	if err != nil {
		return "", err
	}
	if wish.Video == nil || *wish.Video == "" {
		return "", ErrNoVideo
	}

	// Stored as an absolute URL; only the filename maps into the store.
	name := *wish.Video
	if u, err := url.Parse(name); err == nil && u.Path != "" {
		name = u.Path
	}

	path := s.store.FilePath(name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrFileMissing
	}
	return path, nil
}
