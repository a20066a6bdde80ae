// Package bench declares benchmark suites: a named group of cases that
// share one setup routine.
//
// A suite body receives a Registrar instead of relying on global
// functions, so the declaration can be exercised without a running
// benchmark:
//
//	s, err := bench.Define("subDays", func(r bench.Registrar[Ctx]) {
//		bench.Benchmark(r, "fast", func(c *Ctx) int { return c.n + 1 })
//	}, bench.Options[Ctx]{Setup: newCtx})
//
// Declaring a suite never calls a case. Cases run later, one at a time,
// through Suite.RunB inside a Go benchmark or through a Runner.
package bench

import (
	"errors"
	"fmt"
)

// Errors returned by Define, by case lookups and by Runner.Run.
var (
	// ErrEmptySuiteName is returned by Define for a suite without a name.
	ErrEmptySuiteName = errors.New("bench: empty suite name")
	// ErrNoSetup is returned by Define when Options.Setup is nil.
	ErrNoSetup = errors.New("bench: suite has no setup")
	// ErrEmptyCaseName is returned by Define when a case has no name.
	ErrEmptyCaseName = errors.New("bench: empty case name")
	// ErrDuplicateCase is returned when a case name is declared or
	// selected twice.
	ErrDuplicateCase = errors.New("bench: duplicate case name")
	// ErrNoCases is returned by Define when the body registers nothing.
	ErrNoCases = errors.New("bench: suite has no cases")
	// ErrUnknownCase is returned when a name matches no declared case.
	ErrUnknownCase = errors.New("bench: unknown case")
)

// Case is one named, independently timed unit of work.
type Case[C any] struct {
	Name string

	// run is the timed body; its result is stored in a sink so the
	// compiler cannot drop the call.
	run func(ctx *C)
	// eval is the same body returning its result, for inspection.
	eval func(ctx *C) any
}

// NewCase builds a case from fn. The value fn returns is discarded by the
// timing loop but always computed.
func NewCase[C, R any](name string, fn func(ctx *C) R) Case[C] {
	sink := new(R)
	return Case[C]{
		Name: name,
		run: func(ctx *C) {
			*sink = fn(ctx)
		},
		eval: func(ctx *C) any {
			return fn(ctx)
		},
	}
}

// Registrar accepts case declarations from a suite body.
type Registrar[C any] interface {
	Register(c Case[C])
}

// Benchmark registers fn on r as a case called name.
func Benchmark[C, R any](r Registrar[C], name string, fn func(ctx *C) R) {
	r.Register(NewCase(name, fn))
}

// Options configure a suite.
type Options[C any] struct {
	// Setup builds a fresh context before measurement. Required.
	Setup func() *C

	// Mode selects how often Setup runs. Defaults to PerBatch.
	Mode SetupMode
}

// Suite is a declared, immutable set of cases.
type Suite[C any] struct {
	name  string
	cases []Case[C]
	setup func() *C
	mode  SetupMode
}

// collector is the Registrar handed to a suite body by Define.
type collector[C any] struct {
	cases []Case[C]
	seen  map[string]struct{}
	err   error
}

func (c *collector[C]) Register(cs Case[C]) {
	if c.err != nil {
		return
	}
	if cs.Name == "" {
		c.err = ErrEmptyCaseName
		return
	}
	if _, ok := c.seen[cs.Name]; ok {
		c.err = fmt.Errorf("%w: %q", ErrDuplicateCase, cs.Name)
		return
	}
	c.seen[cs.Name] = struct{}{}
	c.cases = append(c.cases, cs)
}

// Define runs body once to collect its cases and returns the suite.
//
// Case names must be unique and non-empty. No case body is called.
func Define[C any](name string, body func(r Registrar[C]), opts Options[C]) (*Suite[C], error) {
	if name == "" {
		return nil, ErrEmptySuiteName
	}
	if opts.Setup == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoSetup, name)
	}

	col := &collector[C]{seen: make(map[string]struct{})}
	body(col)
	if col.err != nil {
		return nil, fmt.Errorf("suite %q: %w", name, col.err)
	}
	if len(col.cases) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoCases, name)
	}

	mode := opts.Mode
	if mode == 0 {
		mode = PerBatch
	}

	return &Suite[C]{
		name:  name,
		cases: col.cases,
		setup: opts.Setup,
		mode:  mode,
	}, nil
}

// Name returns the suite name.
func (s *Suite[C]) Name() string {
	return s.name
}

// Mode returns the setup mode.
func (s *Suite[C]) Mode() SetupMode {
	return s.mode
}

// CaseNames returns the case names in declaration order.
func (s *Suite[C]) CaseNames() []string {
	names := make([]string, len(s.cases))
	for i, c := range s.cases {
		names[i] = c.Name
	}
	return names
}

func (s *Suite[C]) lookup(name string) (Case[C], error) {
	for _, c := range s.cases {
		if c.Name == name {
			return c, nil
		}
	}
	return Case[C]{}, fmt.Errorf("%w: %q in suite %q", ErrUnknownCase, name, s.name)
}

// Setup builds a fresh context using the suite's setup routine.
func (s *Suite[C]) Setup() *C {
	return s.setup()
}

// Call runs the named case once on ctx, untimed, and returns its result.
func (s *Suite[C]) Call(name string, ctx *C) (any, error) {
	c, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return c.eval(ctx), nil
}

// Invoke runs setup and then the named case once, untimed.
func (s *Suite[C]) Invoke(name string) (any, error) {
	c, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return c.eval(s.setup()), nil
}
