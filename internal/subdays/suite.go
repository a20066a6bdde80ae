package subdays

import (
	"time"

	"github.com/randomizedcoder/subdays-benchmarks/internal/bench"
	"github.com/randomizedcoder/subdays-benchmarks/internal/moment"
)

const (
	// SuiteName is the name the suite is registered under.
	SuiteName = "subDays"

	// Offset is the number of days every case subtracts.
	Offset = 14

	// CaseDateFns names the case timing SubDays on a time.Time.
	CaseDateFns = "date-fns"
	// CaseMoment names the case timing an in-place Moment.Subtract.
	CaseMoment = "Moment.js"
)

// Context holds the inputs of one measurement.
type Context struct {
	Date   time.Time
	Moment *moment.Moment
}

// Setup returns a fresh context for the current instant. Date and Moment
// refer to the same point in time.
func Setup() *Context {
	now := time.Now()
	return &Context{
		Date:   now,
		Moment: moment.FromTime(now),
	}
}

// Define declares the suite's cases on r.
//
// The "Moment.js" case subtracts in place: under bench.PerBatch its
// context moves Offset days further back on every iteration of a batch,
// while "date-fns" always reads the same untouched Date.
func Define(r bench.Registrar[Context]) {
	bench.Benchmark(r, CaseDateFns, func(ctx *Context) time.Time {
		return SubDays(ctx.Date, Offset)
	})

	bench.Benchmark(r, CaseMoment, func(ctx *Context) *moment.Moment {
		return ctx.Moment.Subtract(Offset, "days")
	})
}

// NewSuite declares the subDays suite with the given setup mode.
func NewSuite(mode bench.SetupMode) (*bench.Suite[Context], error) {
	return bench.Define(SuiteName, Define, bench.Options[Context]{
		Setup: Setup,
		Mode:  mode,
	})
}
