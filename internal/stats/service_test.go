package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/repository"
)

type windowRecorder struct {
	repository.DetectionRepository
	from, to         *time.Time
	dailyFrom        time.Time
	dailyTo          time.Time
	dailyCountsCalls int
}

func (w *windowRecorder) Stats(_ context.Context, _ uuid.UUID, from, to *time.Time) (*entity.DetectionStats, error) {
	w.from, w.to = from, to
	return &entity.DetectionStats{}, nil
}

func (w *windowRecorder) DailyCounts(_ context.Context, _ uuid.UUID, from, to time.Time) ([]*entity.DailyStat, error) {
	w.dailyFrom, w.dailyTo = from, to
	w.dailyCountsCalls++
	return nil, nil
}

func newTestService(rec *windowRecorder, now time.Time) *Service {
	s := NewService(rec, nil)
	s.now = func() time.Time { return now }
	return s
}

func TestTodayWindow(t *testing.T) {
	rec := &windowRecorder{}
	now := time.Date(2026, 8, 29, 15, 42, 7, 0, time.UTC)
	s := newTestService(rec, now)

	if _, err := s.Today(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantFrom := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if rec.from == nil || !rec.from.Equal(wantFrom) {
		t.Errorf("expected from %v, got %v", wantFrom, rec.from)
	}
	if rec.to == nil || !rec.to.Equal(wantFrom.Add(24*time.Hour)) {
		t.Errorf("expected to at next midnight, got %v", rec.to)
	}
}

func TestTodayWindowNonUTCClock(t *testing.T) {
	rec := &windowRecorder{}
	loc := time.FixedZone("UTC+8", 8*3600)
	// 02:00 on Aug 30 in UTC+8 is still Aug 29 in UTC.
	now := time.Date(2026, 8, 30, 2, 0, 0, 0, loc)
	s := newTestService(rec, now)

	if _, err := s.Today(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantFrom := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if rec.from == nil || !rec.from.Equal(wantFrom) {
		t.Errorf("expected UTC day boundary %v, got %v", wantFrom, rec.from)
	}
}

func TestWeeklyWindow(t *testing.T) {
	rec := &windowRecorder{}
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	s := newTestService(rec, now)

	if _, err := s.Weekly(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantTo := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !rec.dailyTo.Equal(wantTo) {
		t.Errorf("expected to %v, got %v", wantTo, rec.dailyTo)
	}
	if !rec.dailyFrom.Equal(wantTo.Add(-7 * 24 * time.Hour)) {
		t.Errorf("expected seven-day span, got from %v", rec.dailyFrom)
	}
	if rec.dailyCountsCalls != 1 {
		t.Errorf("expected one repository call, got %d", rec.dailyCountsCalls)
	}
}

func TestSummaryUnbounded(t *testing.T) {
	rec := &windowRecorder{}
	s := newTestService(rec, time.Now())

	if _, err := s.Summary(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.from != nil || rec.to != nil {
		t.Errorf("summary must query the full history, got from=%v to=%v", rec.from, rec.to)
	}
}
