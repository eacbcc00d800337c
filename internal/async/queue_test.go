package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubh2310-developer/cc-statement-parser/gen/ent"
	"github.com/Shubh2310-developer/cc-statement-parser/internal/extraction"
)

type recordingProcessor struct {
	mu           sync.Mutex
	jobs         []uuid.UUID
	hadDeadlines bool
}

func (p *recordingProcessor) Process(ctx context.Context, documentID, jobID uuid.UUID) (*ent.ParseResult, *extraction.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, hasDeadline := ctx.Deadline()
	p.hadDeadlines = hasDeadline
	p.jobs = append(p.jobs, jobID)
	return nil, nil, nil
}

func (p *recordingProcessor) processed() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uuid.UUID(nil), p.jobs...)
}

func newTestQueue(p Processor, opts ...Option) *ProcessorQueue {
	logger := slog.New(slog.DiscardHandler)
	return NewProcessorQueue(p, logger, opts...)
}

func TestQueue_DrainsAllJobs(t *testing.T) {
	proc := &recordingProcessor{}
	q := newTestQueue(proc, WithWorkers(3), WithQueueSize(8))

	want := make(map[uuid.UUID]bool)
	for i := 0; i < 20; i++ {
		job := Job{DocumentID: uuid.New(), JobID: uuid.New(), SubmittedAt: time.Now()}
		want[job.JobID] = true
		require.NoError(t, q.Enqueue(context.Background(), job))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	got := proc.processed()
	require.Len(t, got, len(want))
	for _, id := range got {
		assert.True(t, want[id], "unexpected job %s", id)
	}
}

func TestQueue_WorkersGetBoundedContext(t *testing.T) {
	proc := &recordingProcessor{}
	q := newTestQueue(proc, WithWorkers(1), WithJobTimeout(time.Minute))

	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.Len(t, proc.processed(), 1)
	assert.True(t, proc.hadDeadlines, "worker context must carry the job timeout")
}

func TestQueue_EnqueueAfterShutdownFails(t *testing.T) {
	proc := &recordingProcessor{}
	q := newTestQueue(proc, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	err := q.Enqueue(context.Background(), Job{JobID: uuid.New()})
	assert.ErrorIs(t, err, ErrShutdown)
	assert.Empty(t, proc.processed())
}

func TestQueue_ShutdownIsIdempotent(t *testing.T) {
	q := newTestQueue(&recordingProcessor{}, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // second call must not close the channel again
}
