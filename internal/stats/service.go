package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/repository"
)

// Service aggregates a user's detection history. Day boundaries are
// midnight UTC.
type Service struct {
	detections repository.DetectionRepository
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(detections repository.DetectionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		detections: detections,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Service) Today(ctx context.Context, userID uuid.UUID) (*entity.DetectionStats, error) {
	from := midnight(s.now())
	to := from.Add(24 * time.Hour)
	return s.detections.Stats(ctx, userID, &from, &to)
}

// Weekly returns one bucket per day for the last seven days, today
// included, with no holes.
func (s *Service) Weekly(ctx context.Context, userID uuid.UUID) ([]*entity.DailyStat, error) {
	to := midnight(s.now()).Add(24 * time.Hour)
	from := to.Add(-7 * 24 * time.Hour)
	return s.detections.DailyCounts(ctx, userID, from, to)
}

func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*entity.DetectionStats, error) {
	return s.detections.Stats(ctx, userID, nil, nil)
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
