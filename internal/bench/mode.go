package bench

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned by ParseSetupMode for an unrecognised mode.
var ErrUnknownMode = errors.New("bench: unknown setup mode")

// SetupMode selects how often a suite's setup runs while a case is timed.
type SetupMode int

const (
	// PerBatch runs setup once per batch of b.N timed calls. A case that
	// mutates its context sees the effect of every earlier call in the
	// same batch; a subtract-in-place case drifts further back on each
	// iteration. This is what is measured and must not be "fixed".
	PerBatch SetupMode = iota + 1

	// PerIteration runs setup before every timed call with the timer
	// stopped. Each call sees a fresh context, at the cost of timer
	// start/stop overhead per iteration.
	PerIteration
)

// ParseSetupMode parses "per-batch" or "per-iteration".
func ParseSetupMode(s string) (SetupMode, error) {
	switch s {
	case "", "per-batch":
		return PerBatch, nil
	case "per-iteration":
		return PerIteration, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m SetupMode) String() string {
	switch m {
	case PerBatch:
		return "per-batch"
	case PerIteration:
		return "per-iteration"
	}
	return fmt.Sprintf("SetupMode(%d)", int(m))
}
