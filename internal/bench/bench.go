// Package bench times merge-insertion sort on each container against the
// standard library sort over seeded random data.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"PmergeMe/FordJohnson"
	"PmergeMe/FordJohnson/chain"
)

const (
	AlgorithmFordJohnson = "fordjohnson"
	AlgorithmStdlib      = "stdlib"
)

var ErrNotSorted = errors.New("result not sorted")

// Result is one timed sort.
type Result struct {
	Algorithm   string        `json:"algorithm"`
	Container   string        `json:"container,omitempty"`
	DataSize    int           `json:"data_size"`
	Run         int           `json:"run"`
	Duration    time.Duration `json:"duration"`
	Comparisons int           `json:"comparisons,omitempty"`
	MemoryBytes uint64        `json:"memory_bytes"`
}

func (r Result) Name() string {
	if r.Container == "" {
		return r.Algorithm
	}
	return r.Algorithm + "/" + r.Container
}

// Session is one invocation of the benchmark. ID is assigned by the history
// store and is zero until the session is saved.
type Session struct {
	ID        uint64    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Seed      int64     `json:"seed"`
	Results   []Result  `json:"results"`
}

type Runner struct {
	Sizes    []int
	Runs     int
	Seed     int64
	MaxValue int
	Kinds    []chain.Kind
	Logger   *zap.Logger
}

// Run sorts every size Runs times with each algorithm. Every trial of a size
// sorts a copy of the same data. ctx is only checked between trials.
func (r *Runner) Run(ctx context.Context) (*Session, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{StartedAt: time.Now().UTC(), Seed: r.Seed}
	for _, size := range r.Sizes {
		data := generateRandomData(rand.New(rand.NewSource(r.Seed)), size, r.MaxValue)
		for run := 1; run <= r.Runs; run++ {
			for _, kind := range r.Kinds {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				res, err := r.trial(data, run, AlgorithmFordJohnson, kind)
				if err != nil {
					return nil, err
				}
				logger.Info("trial", zap.String("algorithm", res.Name()), zap.Int("size", size),
					zap.Int("run", run), zap.Duration("duration", res.Duration), zap.Int("comparisons", res.Comparisons))
				s.Results = append(s.Results, res)
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := r.trial(data, run, AlgorithmStdlib, 0)
			if err != nil {
				return nil, err
			}
			logger.Info("trial", zap.String("algorithm", res.Name()), zap.Int("size", size),
				zap.Int("run", run), zap.Duration("duration", res.Duration))
			s.Results = append(s.Results, res)
		}
	}
	return s, nil
}

func (r *Runner) trial(data []int, run int, algorithm string, kind chain.Kind) (Result, error) {
	res := Result{Algorithm: algorithm, DataSize: len(data), Run: run}
	work := slices.Clone(data)

	stats := startStats()
	switch algorithm {
	case AlgorithmFordJohnson:
		res.Container = kind.String()
		res.Comparisons = FordJohnson.SortWith(work, kind).Comparisons
	default:
		slices.Sort(work)
	}
	res.Duration, res.MemoryBytes = stats.end()

	if !FordJohnson.IsSorted(work) {
		return res, fmt.Errorf("%s size %d run %d: %w", res.Name(), len(data), run, ErrNotSorted)
	}
	return res, nil
}

func generateRandomData(rng *rand.Rand, size, maxValue int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = rng.Intn(maxValue)
	}
	return data
}

type systemStats struct {
	start    time.Time
	startMem runtime.MemStats
}

func startStats() *systemStats {
	runtime.GC()
	s := &systemStats{}
	runtime.ReadMemStats(&s.startMem)
	s.start = time.Now()
	return s
}

// end returns the elapsed time and the bytes allocated since startStats.
func (s *systemStats) end() (time.Duration, uint64) {
	d := time.Since(s.start)
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return d, m.TotalAlloc - s.startMem.TotalAlloc
}
