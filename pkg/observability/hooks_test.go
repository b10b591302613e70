package observability

import (
	"context"
	"testing"
	"time"
)

// recordingPipelineHooks counts events for assertions.
type recordingPipelineHooks struct {
	NoopPipelineHooks
	buildStarts int
	buildDones  int
}

func (h *recordingPipelineHooks) OnBuildStart(ctx context.Context, vertexCount int) {
	h.buildStarts++
}

func (h *recordingPipelineHooks) OnBuildComplete(ctx context.Context, vertexCount int, d time.Duration, err error) {
	h.buildDones++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *recordingCacheHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.hits++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	ctx := context.Background()
	Pipeline().OnBuildStart(ctx, 3)
	Pipeline().OnBuildComplete(ctx, 3, time.Millisecond, nil)
	Pipeline().OnEmitStart(ctx, 3)
	Pipeline().OnEmitComplete(ctx, 9, time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, []string{"svg"})
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 128)
}

func TestSetPipelineHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingPipelineHooks{}
	SetPipelineHooks(h)

	ctx := context.Background()
	Pipeline().OnBuildStart(ctx, 5)
	Pipeline().OnBuildComplete(ctx, 5, time.Millisecond, nil)

	if h.buildStarts != 1 || h.buildDones != 1 {
		t.Errorf("recorded starts=%d dones=%d, want 1/1", h.buildStarts, h.buildDones)
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingCacheHooks{}
	SetCacheHooks(h)
	Cache().OnCacheHit(context.Background(), "artifact")

	if h.hits != 1 {
		t.Errorf("recorded hits=%d, want 1", h.hits)
	}
}

func TestSetNilHooksKeepsDefaults(t *testing.T) {
	t.Cleanup(Reset)

	Reset()
	SetPipelineHooks(nil)
	SetCacheHooks(nil)

	if Pipeline() == nil || Cache() == nil {
		t.Error("nil registration should keep the no-op defaults")
	}
}

func TestReset(t *testing.T) {
	h := &recordingPipelineHooks{}
	SetPipelineHooks(h)
	Reset()

	Pipeline().OnBuildStart(context.Background(), 1)
	if h.buildStarts != 0 {
		t.Error("Reset should detach registered hooks")
	}
}
