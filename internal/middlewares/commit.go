package middlewares

import (
	"context"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
)

type commitHooksKey struct{}

type commitHooks struct {
	mu  sync.Mutex
	fns []func(context.Context)
}

func (h *commitHooks) add(fn func(context.Context)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *commitHooks) run(ctx context.Context) {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

// AfterCommit defers fn until the request transaction commits. A rolled back
// transaction drops fn. Outside TxMiddleware fn runs immediately.
func AfterCommit(ctx context.Context, fn func(context.Context)) {
	hooks, ok := ctx.Value(commitHooksKey{}).(*commitHooks)
	if !ok {
		fn(ctx)
		return
	}
	hooks.add(fn)
}

// MessageWriter is the part of *kafka.Writer the services publish through.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// CommitAwareWriter holds back Kafka messages written inside a request
// transaction until that transaction commits.
type CommitAwareWriter struct {
	next MessageWriter
}

// NewCommitAwareWriter wraps next.
func NewCommitAwareWriter(next MessageWriter) *CommitAwareWriter {
	return &CommitAwareWriter{next: next}
}

// WriteMessages writes immediately outside a transaction. Inside one the
// messages are queued, and a publish failure after commit is only logged.
func (w *CommitAwareWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if _, ok := ctx.Value(commitHooksKey{}).(*commitHooks); !ok {
		return w.next.WriteMessages(ctx, msgs...)
	}

	AfterCommit(ctx, func(ctx context.Context) {
		if err := w.next.WriteMessages(ctx, msgs...); err != nil {
			logger.Log.Errorw("failed to publish messages after commit",
				"request_id", RequestIDFromContext(ctx),
				"count", len(msgs),
				"error", err,
			)
		}
	})
	return nil
}

func (w *CommitAwareWriter) Close() error {
	return w.next.Close()
}
