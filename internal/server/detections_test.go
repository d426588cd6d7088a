package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nutriscan/nutrition-scanner/constants"
	nutritionpb "github.com/nutriscan/nutrition-scanner/gen/proto/nutrition/v1"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/pipeline"
	"github.com/nutriscan/nutrition-scanner/internal/repository"
)

type fakeDetections struct {
	repository.DetectionRepository
	byID    map[uuid.UUID]*entity.Detection
	deleted []uuid.UUID
}

func (f *fakeDetections) GetByID(_ context.Context, id uuid.UUID) (*entity.Detection, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (f *fakeDetections) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func writeStoredImage(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, uuid.New().String()+".jpg")
	if err := os.WriteFile(path, []byte{0xFF, 0xD8}, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	return path
}

func TestDeleteDetectionRemovesStoredImage(t *testing.T) {
	dir := t.TempDir()
	path := writeStoredImage(t, dir)
	id := uuid.New()
	repo := &fakeDetections{byID: map[uuid.UUID]*entity.Detection{
		id: {ID: id, Status: constants.StatusCompleted, ImagePath: &path},
	}}
	s := NewDetectionServer(nil, repo, nil, pipeline.NewImageStore(dir, 0), nil)

	_, err := s.DeleteDetection(context.Background(), &nutritionpb.DeleteDetectionRequest{
		Id: id.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != id {
		t.Errorf("expected row delete for %s, got %v", id, repo.deleted)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("stored image not removed: %v", err)
	}
}

func TestDeleteDetectionWithoutImage(t *testing.T) {
	id := uuid.New()
	repo := &fakeDetections{byID: map[uuid.UUID]*entity.Detection{
		id: {ID: id, Status: constants.StatusCompleted},
	}}
	s := NewDetectionServer(nil, repo, nil, pipeline.NewImageStore(t.TempDir(), 0), nil)

	if _, err := s.DeleteDetection(context.Background(), &nutritionpb.DeleteDetectionRequest{
		Id: id.String(),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteDetectionForeignOwnerHidden(t *testing.T) {
	dir := t.TempDir()
	path := writeStoredImage(t, dir)
	owner := uuid.New()
	id := uuid.New()
	repo := &fakeDetections{byID: map[uuid.UUID]*entity.Detection{
		id: {ID: id, UserID: &owner, Status: constants.StatusCompleted, ImagePath: &path},
	}}
	s := NewDetectionServer(nil, repo, nil, pipeline.NewImageStore(dir, 0), nil)

	_, err := s.DeleteDetection(context.Background(), &nutritionpb.DeleteDetectionRequest{
		Id:     id.String(),
		UserId: uuid.New().String(),
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound for foreign record, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("image must survive a rejected delete: %v", statErr)
	}
}
