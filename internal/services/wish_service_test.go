package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wishwall/internal/models"
	"wishwall/internal/repository"
	"wishwall/internal/storage"
)

type stubWishRepo struct {
	wish *models.Wish
}

func (s *stubWishRepo) CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	wish.ID = primitive.NewObjectID()
	wish.CreatedAt = time.Now()
	return wish, nil
}

func (s *stubWishRepo) GetWishByID(ctx context.Context, id primitive.ObjectID) (*models.Wish, error) {
	if s.wish != nil && s.wish.ID == id {
		return s.wish, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubWishRepo) GetAllWishes(ctx context.Context) ([]models.Wish, error) {
	if s.wish == nil {
		return []models.Wish{}, nil
	}
	return []models.Wish{*s.wish}, nil
}

func newTestService(t *testing.T, repo WishRepository, dir string) *WishService {
	t.Helper()
	store, err := storage.NewStore(dir)
	require.NoError(t, err)
	return NewWishService(repo, store)
}

func TestGetWishByID_InvalidID(t *testing.T) {
	svc := newTestService(t, &stubWishRepo{}, t.TempDir())

	_, err := svc.GetWishByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestGetWishByID_NotFound(t *testing.T) {
	svc := newTestService(t, &stubWishRepo{}, t.TempDir())

	_, err := svc.GetWishByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetWishVideoPath_NoVideo(t *testing.T) {
	wish := &models.Wish{ID: primitive.NewObjectID()}
	svc := newTestService(t, &stubWishRepo{wish: wish}, t.TempDir())

	_, err := svc.GetWishVideoPath(context.Background(), wish.ID.Hex())
	assert.ErrorIs(t, err, ErrNoVideo)
}

func TestGetWishVideoPath_FileMissing(t *testing.T) {
	video := "http://example.com/uploads/gone.mp4"
	wish := &models.Wish{ID: primitive.NewObjectID(), Video: &video}
	svc := newTestService(t, &stubWishRepo{wish: wish}, t.TempDir())

	_, err := svc.GetWishVideoPath(context.Background(), wish.ID.Hex())
	assert.ErrorIs(t, err, ErrFileMissing)
}

func TestGetWishVideoPath_Resolves(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.mp4"), []byte("x"), 0o644))

	video := "http://example.com/uploads/clip.mp4"
	wish := &models.Wish{ID: primitive.NewObjectID(), Video: &video}
	svc := newTestService(t, &stubWishRepo{wish: wish}, dir)

	path, err := svc.GetWishVideoPath(context.Background(), wish.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "clip.mp4"), path)
}
