package growvec

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).WithName("ids")
	v := New[int](WithInitialCapacity(2), WithLogger(logger))

	v.Add(1)
	v.Add(2)
	require.Zero(t, buf.Len())

	v.Add(3)
	v.Clear()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var grown map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &grown))
	assert.Equal(t, "vector grown", grown["msg"])
	assert.Equal(t, "ids", grown["vector"])
	assert.EqualValues(t, 2, grown["old_capacity"])
	assert.EqualValues(t, 4, grown["new_capacity"])
	assert.EqualValues(t, 2, grown["length"])

	var cleared map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &cleared))
	assert.Equal(t, "vector cleared", cleared["msg"])
	assert.EqualValues(t, 3, cleared["dropped"])
}

func TestWithLogger_InfoLevelIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	v := New[int](WithInitialCapacity(1), WithLogger(logger))

	for i := 0; i < 10; i++ {
		v.Add(i)
	}

	assert.Zero(t, buf.Len())
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()

	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
}

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	v := New[string](WithInitialCapacity(2), WithMetricsCollector(mc))

	v.Add("a")
	v.Add("b")
	v.Add("c")                           // 2 -> 4
	require.NoError(t, v.Insert(0, "z")) // moves 3
	require.NoError(t, v.Remove(0))      // moves 3
	require.NoError(t, v.Remove(2))      // last element, moves nothing
	v.Clear()

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.Growths)
	assert.Equal(t, int64(2), stats.SlotsGrown)
	assert.Equal(t, int64(4), stats.MaxCapacity)
	assert.Equal(t, int64(2), stats.Shifts)
	assert.Equal(t, int64(6), stats.ElementsMoved)
	assert.Equal(t, int64(3), stats.AvgMoved)
	assert.Equal(t, int64(1), stats.Clears)
}

func TestBasicMetricsCollector_Shared(t *testing.T) {
	mc := &BasicMetricsCollector{}
	a := New[int](WithInitialCapacity(1), WithMetricsCollector(mc))
	b := New[int](WithInitialCapacity(1), WithMetricsCollector(mc))

	for i := 0; i < 5; i++ {
		a.Add(i)
	}
	b.Add(1)
	b.Add(2)

	stats := mc.GetStats()
	assert.Equal(t, int64(4), stats.Growths) // a: 1->2->4->8, b: 1->2
	assert.Equal(t, int64(8), stats.MaxCapacity)
}
