package bench

import (
	"context"
	"flag"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// Runnable is a declared suite the Runner can execute.
// *Suite[C] implements it for any C.
type Runnable interface {
	Name() string
	CaseNames() []string
	Bench(name string) (func(b *testing.B), error)
}

// Result is the measurement of one case run.
type Result struct {
	Suite       string  `json:"suite"`
	Case        string  `json:"case"`
	N           int     `json:"n"`
	NsPerOp     float64 `json:"ns_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
	BytesPerOp  int64   `json:"bytes_per_op"`
}

// Runner executes suites outside "go test" using testing.Benchmark.
//
// Cases run one at a time. Cancellation is checked between cases only; a
// case that has started is always measured to completion.
type Runner struct {
	// Benchtime is passed to the testing package as -test.benchtime,
	// e.g. "1s" or "100000x", for the duration of Run. Empty uses the
	// value the flag had when Run started.
	Benchtime string

	// Count repeats every case. Values below 1 run each case once.
	Count int

	// Cases restricts the run to the named cases, in the given order.
	// Each name may appear once. Empty runs all.
	Cases []string

	Logger *zap.Logger
}

var initTesting sync.Once

const benchtimeFlag = "test.benchtime"

// setBenchtime sets the testing package's benchtime flag and returns a
// function restoring the previous value. testing.Init must be called
// before the flags exist outside a test binary.
func setBenchtime(v string) (restore func(), err error) {
	initTesting.Do(testing.Init)
	if v == "" {
		return func() {}, nil
	}
	prev := flag.Lookup(benchtimeFlag).Value.String()
	if err := flag.Set(benchtimeFlag, v); err != nil {
		return nil, fmt.Errorf("invalid benchtime %q: %w", v, err)
	}
	return func() { _ = flag.Set(benchtimeFlag, prev) }, nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Runner) selected(s Runnable) ([]string, error) {
	if len(r.Cases) == 0 {
		return s.CaseNames(), nil
	}
	known := make(map[string]bool)
	for _, n := range s.CaseNames() {
		known[n] = true
	}
	seen := make(map[string]bool, len(r.Cases))
	for _, n := range r.Cases {
		if !known[n] {
			return nil, fmt.Errorf("%w: %q in suite %q", ErrUnknownCase, n, s.Name())
		}
		if seen[n] {
			return nil, fmt.Errorf("%w: %q selected twice", ErrDuplicateCase, n)
		}
		seen[n] = true
	}
	return r.Cases, nil
}

// Run measures the selected cases of s and returns one Result per case
// per repetition. On cancellation the results gathered so far are
// returned together with ctx.Err().
func (r *Runner) Run(ctx context.Context, s Runnable) ([]Result, error) {
	restore, err := setBenchtime(r.Benchtime)
	if err != nil {
		return nil, err
	}
	defer restore()

	names, err := r.selected(s)
	if err != nil {
		return nil, err
	}

	count := r.Count
	if count < 1 {
		count = 1
	}

	logger := r.logger().With(zap.String("suite", s.Name()))
	results := make([]Result, 0, len(names)*count)

	for rep := 0; rep < count; rep++ {
		for _, name := range names {
			if err := ctx.Err(); err != nil {
				logger.Warn("run cancelled", zap.Int("completed", len(results)))
				return results, err
			}

			fn, err := s.Bench(name)
			if err != nil {
				return results, err
			}

			start := time.Now()
			br := testing.Benchmark(fn)
			res := newResult(s.Name(), name, br)
			results = append(results, res)

			logger.Info("case measured",
				zap.String("case", name),
				zap.Int("run", rep+1),
				zap.Int("n", res.N),
				zap.Float64("ns_per_op", res.NsPerOp),
				zap.Int64("allocs_per_op", res.AllocsPerOp),
				zap.Duration("time", time.Since(start)),
			)
		}
	}

	return results, nil
}

func newResult(suite, name string, br testing.BenchmarkResult) Result {
	res := Result{
		Suite:       suite,
		Case:        name,
		N:           br.N,
		AllocsPerOp: br.AllocsPerOp(),
		BytesPerOp:  br.AllocedBytesPerOp(),
	}
	if br.N > 0 {
		res.NsPerOp = float64(br.T.Nanoseconds()) / float64(br.N)
	}
	return res
}
