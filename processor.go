package swift

import (
	"context"
	"log/slog"
	"sync"
)

// Processor decodes batches of raw messages concurrently. Decoding is
// pure, so messages fan out across workers with no shared state
// beyond the bounded-concurrency semaphore; per-message failures are
// reported in the result, never aborting the batch.
type Processor struct {
	workers int
	lenient bool
	logger  *slog.Logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithWorkers bounds the number of concurrent decodes. Values below 1
// are ignored.
func WithWorkers(n int) ProcessorOption {
	return func(p *Processor) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithLenientDecoding decodes batch messages in lenient mode.
func WithLenientDecoding() ProcessorOption {
	return func(p *Processor) {
		p.lenient = true
	}
}

// WithLogger sets the structured logger used for per-message decode
// failures.
func WithLogger(l *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProcessor creates a processor with 4 workers by default.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{
		workers: 4,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the outcome of decoding one message of a batch, at the
// same index as its input.
type Result struct {
	Index   int
	Message *Message
	Err     error
}

// DecodeBatch decodes every raw message, preserving input order in
// the results. It returns early with the context's error when the
// context is cancelled; already-finished results are discarded at
// that point since the batch is incomplete.
func (p *Processor) DecodeBatch(ctx context.Context, raws []string) ([]Result, error) {
	results := make([]Result, len(raws))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	var opts []DecodeOption
	if p.lenient {
		opts = append(opts, WithLenient())
	}

	for i, raw := range raws {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}

		wg.Add(1)
		go func(i int, raw string) {
			defer wg.Done()
			defer func() { <-sem }()

			msg, err := Decode(raw, opts...)
			if err != nil {
				p.logger.WarnContext(ctx, "message decode failed",
					slog.Int("index", i),
					slog.String("error", err.Error()))
			}
			results[i] = Result{Index: i, Message: msg, Err: err}
		}(i, raw)
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// EncodeBatch encodes every message, preserving order. Encoding never
// fails, so the output is plain strings.
func (p *Processor) EncodeBatch(ctx context.Context, msgs []*Message) ([]string, error) {
	out := make([]string, len(msgs))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, msg := range msgs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}

		wg.Add(1)
		go func(i int, msg *Message) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = msg.Encode()
		}(i, msg)
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
