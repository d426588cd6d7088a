package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/pipeline"
)

// Job is one queued ingestion.
type Job struct {
	Input       pipeline.Input
	SubmittedAt time.Time
	TraceID     string
}

// Ingestor runs one detection to a terminal status. Satisfied by
// *pipeline.Controller.
type Ingestor interface {
	Ingest(ctx context.Context, in pipeline.Input) (*entity.Detection, error)
}

// ErrQueueFull is returned when the buffer cannot take another job.
var ErrQueueFull = errors.New("ingest queue is full")

// ErrShutdown is returned for enqueues after Shutdown began.
var ErrShutdown = errors.New("ingest queue is shut down")

type Option func(*IngestQueue)

func WithWorkers(n int) Option {
	return func(q *IngestQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *IngestQueue) {
		if n > 0 {
			q.size = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *IngestQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// IngestQueue fans queued detections out to a fixed worker pool. Used
// by the batch scanner; the server path stays synchronous.
type IngestQueue struct {
	ingestor Ingestor
	logger   *slog.Logger

	workers int
	size    int
	timeout time.Duration

	mu     sync.Mutex
	jobs   chan Job
	wg     sync.WaitGroup
	closed bool
}

func NewIngestQueue(ingestor Ingestor, logger *slog.Logger, opts ...Option) *IngestQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &IngestQueue{
		ingestor: ingestor,
		logger:   logger,
		workers:  4,
		size:     256,
		timeout:  2 * time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan Job, q.size)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Enqueue adds a job without blocking. A full buffer is reported, not
// waited out, so callers can decide whether to retry. The send happens
// under the same mutex Shutdown closes the channel under, so an
// enqueue racing a shutdown gets ErrShutdown instead of a send on a
// closed channel.
func (q *IngestQueue) Enqueue(ctx context.Context, job Job) error {
	if job.TraceID == "" {
		job.TraceID = uuid.NewString()
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrShutdown
	}

	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Shutdown stops intake and waits for in-flight jobs, bounded by ctx.
func (q *IngestQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("async.shutdown.timeout")
	}
}

func (q *IngestQueue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		det, err := q.ingestor.Ingest(ctx, job.Input)
		cancel()
		if err != nil {
			q.logger.Error("async.ingest.failed",
				"trace_id", job.TraceID,
				"detection_type", job.Input.Type,
				"error", err,
			)
			continue
		}
		q.logger.Info("async.ingest.done",
			"trace_id", job.TraceID,
			"detection_id", det.ID,
			"status", det.Status,
			"wait_ms", time.Since(job.SubmittedAt).Milliseconds(),
		)
	}
}
