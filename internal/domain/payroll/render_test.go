package payroll

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRendererRendersWithinLimits(t *testing.T) {
	renderer := NewRenderer(2, 5*time.Second)
	pdf, err := renderer.Render(context.Background(), slipFixture())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected PDF bytes")
	}
}

func TestRendererBusyWhenSaturated(t *testing.T) {
	renderer := NewRenderer(1, 50*time.Millisecond)

	// Hold the only slot so the next caller cannot acquire in time.
	if err := renderer.slots.Acquire(context.Background(), 1); err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	defer renderer.slots.Release(1)

	_, err := renderer.Render(context.Background(), slipFixture())
	if !errors.Is(err, ErrRenderBusy) {
		t.Fatalf("expected ErrRenderBusy, got %v", err)
	}
}

func TestRendererPropagatesCallerCancellation(t *testing.T) {
	renderer := NewRenderer(1, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := renderer.Render(ctx, slipFixture())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, ErrRenderBusy) || errors.Is(err, ErrRenderTimeout) {
		t.Fatalf("caller cancellation must not be reported as renderer pressure: %v", err)
	}
}

func TestRendererCancelledWhileSaturated(t *testing.T) {
	renderer := NewRenderer(1, time.Minute)

	if err := renderer.slots.Acquire(context.Background(), 1); err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	defer renderer.slots.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := renderer.Render(ctx, slipFixture())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled while waiting for a slot, got %v", err)
	}
}
