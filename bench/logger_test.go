package bench_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvsearch/bench"
)

// TestLogger_Levels checks records are filtered by level and tagged.
func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := bench.NewTextLogger(&buf, slog.LevelInfo).WithCase("public1/баз")
	ctx := context.Background()

	l.LogMeasure(ctx, bench.KMP, 3, time.Millisecond)
	assert.Empty(t, buf.String(), "measure records are debug-level")

	l.LogCase(ctx, 3, true)
	assert.Contains(t, buf.String(), "case completed")
	assert.Contains(t, buf.String(), "case=public1/баз")

	buf.Reset()
	l.LogRun(ctx, 1, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "run failed")
	assert.Contains(t, buf.String(), "error=boom")
}

// TestNoopLogger discards everything without panicking.
func TestNoopLogger(t *testing.T) {
	l := bench.NoopLogger()
	l.LogCase(context.Background(), 0, false)
	l.LogRun(context.Background(), 0, 0, nil)
	assert.NotNil(t, bench.NewLogger(nil))
}
