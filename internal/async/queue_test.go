package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/pipeline"
)

type fakeIngestor struct {
	mu    sync.Mutex
	seen  []pipeline.Input
	block chan struct{} // when non-nil, Ingest waits on it
	err   error
}

func (f *fakeIngestor) Ingest(_ context.Context, in pipeline.Input) (*entity.Detection, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.seen = append(f.seen, in)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Detection{ID: uuid.New(), Status: constants.StatusCompleted}, nil
}

func (f *fakeIngestor) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}

func TestQueueProcessesJobs(t *testing.T) {
	ing := &fakeIngestor{}
	q := NewIngestQueue(ing, nil, WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		err := q.Enqueue(context.Background(), Job{
			Input: pipeline.Input{Type: constants.TypeManualInput, RawText: "能量 100kJ"},
		})
		if err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := ing.count(); got != 5 {
		t.Errorf("expected 5 processed jobs, got %d", got)
	}
}

func TestQueueProcessingErrorsDoNotStopWorkers(t *testing.T) {
	ing := &fakeIngestor{err: errors.New("boom")}
	q := NewIngestQueue(ing, nil, WithWorkers(1), WithQueueSize(8))

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(context.Background(), Job{}); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := ing.count(); got != 3 {
		t.Errorf("expected all jobs attempted, got %d", got)
	}
}

func TestQueueFull(t *testing.T) {
	ing := &fakeIngestor{block: make(chan struct{})}
	q := NewIngestQueue(ing, nil, WithWorkers(1), WithQueueSize(1))

	// First job occupies the worker, second fills the buffer.
	if err := q.Enqueue(context.Background(), Job{}); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	// The worker may not have picked up the first job yet; fill until
	// the buffer rejects.
	deadline := time.Now().Add(2 * time.Second)
	var err error
	for time.Now().Before(deadline) {
		err = q.Enqueue(context.Background(), Job{})
		if errors.Is(err, ErrQueueFull) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	close(ing.block)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	q := NewIngestQueue(&fakeIngestor{}, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{}); !errors.Is(err, ErrShutdown) {
		t.Errorf("expected ErrShutdown, got %v", err)
	}
}

func TestEnqueueConcurrentWithShutdown(t *testing.T) {
	ing := &fakeIngestor{}
	q := NewIngestQueue(ing, nil, WithWorkers(2), WithQueueSize(4))

	// Hammer Enqueue from several goroutines while Shutdown closes the
	// channel. Any send on the closed channel would panic and fail the
	// run; after shutdown every enqueue must report ErrShutdown.
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 200; j++ {
				err := q.Enqueue(context.Background(), Job{})
				if errors.Is(err, ErrShutdown) {
					return
				}
			}
		}()
	}
	close(start)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	wg.Wait()

	if err := q.Enqueue(context.Background(), Job{}); !errors.Is(err, ErrShutdown) {
		t.Errorf("expected ErrShutdown after shutdown, got %v", err)
	}
}

func TestEnqueueStampsDefaults(t *testing.T) {
	ing := &fakeIngestor{}
	q := NewIngestQueue(ing, nil, WithWorkers(1))

	job := Job{Input: pipeline.Input{Type: constants.TypeManualInput, RawText: "x"}}
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if ing.count() != 1 {
		t.Fatalf("expected 1 processed job, got %d", ing.count())
	}
}
