// Package async runs submitted parse jobs on a bounded worker pool so
// statement uploads can return before decoding finishes. Jobs sit QUEUED
// until a worker picks them up; the per-job timeout bounds one full
// decode-and-parse pass.
package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
)

// ErrShutdown is returned by Enqueue once the queue stopped accepting work.
var ErrShutdown = errors.New("queue is shut down")

// Job identifies one submitted parse: the document to decode and the QUEUED
// job row that tracks it.
type Job struct {
	DocumentID  uuid.UUID
	JobID       uuid.UUID
	SubmittedAt time.Time
}

// Queue accepts parse jobs and drains them on Shutdown.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Processor is the slice of the pipeline the workers invoke.
type Processor interface {
	Process(ctx context.Context, documentID, jobID uuid.UUID) (*ent.ParseResult, *extraction.Result, error)
}

// ProcessorQueue fans jobs out to a fixed set of workers over a bounded
// channel. A full channel applies backpressure to Enqueue rather than
// dropping work.
type ProcessorQueue struct {
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go q.work(i + 1)
		}
	})
}

func (q *ProcessorQueue) work(id int) {
	defer q.wg.Done()
	q.logger.Info("async.worker.started", "worker_id", id)

	for job := range q.ch {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		_, _, err := q.proc.Process(ctx, job.DocumentID, job.JobID)
		cancel()

		if err != nil {
			q.logger.Error("async.job.failed",
				"worker_id", id, "job_id", job.JobID, "document_id", job.DocumentID, "error", err)
			continue
		}
		q.logger.Info("async.job.done",
			"worker_id", id, "job_id", job.JobID,
			"waited", time.Since(job.SubmittedAt).Round(time.Millisecond))
	}

	q.logger.Info("async.worker.stopped", "worker_id", id)
}

// Enqueue hands a job to the pool. It blocks when the channel is full and
// fails once Shutdown has begun.
func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrShutdown
	}
	select {
	case q.ch <- job:
	default:
		q.logger.Warn("async.queue.full", "job_id", job.JobID)
		q.ch <- job
	}
	q.logger.Info("async.queued", "job_id", job.JobID, "document_id", job.DocumentID)
	return nil
}

// Shutdown stops intake and waits for in-flight jobs until ctx expires.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		q.wg.Wait()
	}()

	select {
	case <-ctx.Done():
		q.logger.Warn("async.shutdown.interrupted")
	case <-done:
		q.logger.Info("async.shutdown.drained")
	}
}
