package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PmergeMe/FordJohnson/chain"
)

func newRunner() *Runner {
	return &Runner{
		Sizes:    []int{1, 50, 301},
		Runs:     2,
		Seed:     42,
		MaxValue: 1000,
		Kinds:    []chain.Kind{chain.KindVector, chain.KindDeque},
	}
}

func TestRunProducesEveryTrial(t *testing.T) {
	s, err := newRunner().Run(context.Background())
	require.NoError(t, err)

	// 3 sizes x 2 runs x (2 containers + stdlib)
	require.Len(t, s.Results, 18)
	assert.Equal(t, int64(42), s.Seed)
	assert.Zero(t, s.ID)

	first := s.Results[0]
	assert.Equal(t, "fordjohnson/vector", first.Name())
	assert.Equal(t, 1, first.DataSize)
	assert.Equal(t, 1, first.Run)
	assert.Zero(t, first.Comparisons, "one element needs no comparison")

	for _, r := range s.Results {
		if r.Algorithm == AlgorithmStdlib {
			assert.Empty(t, r.Container)
			assert.Zero(t, r.Comparisons)
			continue
		}
		if r.DataSize > 1 {
			assert.Positive(t, r.Comparisons, r.Name())
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := newRunner().Run(context.Background())
	require.NoError(t, err)
	b, err := newRunner().Run(context.Background())
	require.NoError(t, err)
	for i := range a.Results {
		assert.Equal(t, a.Results[i].Comparisons, b.Results[i].Comparisons)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newRunner().Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGenerateRandomData(t *testing.T) {
	a := generateRandomData(rand.New(rand.NewSource(1)), 100, 10)
	b := generateRandomData(rand.New(rand.NewSource(1)), 100, 10)
	assert.Equal(t, a, b)
	for _, v := range a {
		assert.True(t, v >= 0 && v < 10)
	}
}

func sampleSession() *Session {
	return &Session{
		StartedAt: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
		Seed:      42,
		Results: []Result{
			{Algorithm: AlgorithmFordJohnson, Container: "vector", DataSize: 10, Run: 1, Duration: 2 * time.Microsecond, Comparisons: 22, MemoryBytes: 100},
			{Algorithm: AlgorithmStdlib, DataSize: 10, Run: 1, Duration: time.Microsecond, MemoryBytes: 80},
			{Algorithm: AlgorithmFordJohnson, Container: "vector", DataSize: 10, Run: 2, Duration: 4 * time.Microsecond, Comparisons: 24, MemoryBytes: 300},
			{Algorithm: AlgorithmStdlib, DataSize: 10, Run: 2, Duration: 3 * time.Microsecond, MemoryBytes: 80},
			{Algorithm: AlgorithmFordJohnson, Container: "vector", DataSize: 20, Run: 1, Duration: 9 * time.Microsecond, Comparisons: 60, MemoryBytes: 500},
		},
	}
}

func TestAverages(t *testing.T) {
	got := Averages(sampleSession().Results)
	want := []Average{
		{Name: "fordjohnson/vector", DataSize: 10, Runs: 2, Duration: 3 * time.Microsecond, Comparisons: 23, MemoryBytes: 200},
		{Name: "stdlib", DataSize: 10, Runs: 2, Duration: 2 * time.Microsecond, MemoryBytes: 80},
		{Name: "fordjohnson/vector", DataSize: 20, Runs: 1, Duration: 9 * time.Microsecond, Comparisons: 60, MemoryBytes: 500},
	}
	assert.Equal(t, want, got)
	assert.Empty(t, Averages(nil))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleSession()))

	var back Session
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, sampleSession().Results, back.Results)
	assert.Contains(t, buf.String(), `"algorithm": "stdlib"`)
	assert.NotContains(t, buf.String(), `"container": ""`)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleSession()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Merge-insertion sort benchmark\n"))
	assert.Contains(t, out, "## 10 elements")
	assert.Contains(t, out, "## 20 elements")
	assert.Contains(t, out, "| fordjohnson/vector | 2 | 4µs | 24 | 300 bytes |")
	assert.Contains(t, out, "| stdlib | 1 | 1µs | - | 80 bytes |")
	assert.Contains(t, out, "| 10 | fordjohnson/vector | 3µs | 23 | 200 bytes |")
}
