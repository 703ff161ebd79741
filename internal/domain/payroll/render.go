package payroll

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"
)

// Renderer bounds concurrent slip generation. PDF layout is CPU-bound, so a
// small fixed pool keeps a burst of downloads from starving the rest of the
// server.
type Renderer struct {
	slots   *semaphore.Weighted
	timeout time.Duration
}

func NewRenderer(maxConcurrent int, timeout time.Duration) *Renderer {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Renderer{
		slots:   semaphore.NewWeighted(int64(maxConcurrent)),
		timeout: timeout,
	}
}

type renderResult struct {
	pdf []byte
	err error
}

// Render produces the slip PDF within the configured deadline. Callers get
// ErrRenderBusy when no slot frees up in time and ErrRenderTimeout when the
// render itself overruns; both are retryable. A cancellation on the caller's
// own context is propagated as-is, never dressed up as capacity pressure.
func (r *Renderer) Render(parent context.Context, data SlipData) ([]byte, error) {
	ctx, cancel := context.WithTimeout(parent, r.timeout)
	defer cancel()

	if err := r.slots.Acquire(ctx, 1); err != nil {
		if parentErr := parent.Err(); parentErr != nil {
			return nil, parentErr
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrRenderBusy
		}
		return nil, err
	}

	results := make(chan renderResult, 1)
	go func() {
		defer r.slots.Release(1)
		pdf, err := RenderSlip(data)
		results <- renderResult{pdf: pdf, err: err}
	}()

	select {
	case res := <-results:
		return res.pdf, res.err
	case <-ctx.Done():
		if parentErr := parent.Err(); parentErr != nil {
			return nil, parentErr
		}
		return nil, ErrRenderTimeout
	}
}
