package subdays_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/subdays-benchmarks/internal/bench"
	"github.com/randomizedcoder/subdays-benchmarks/internal/moment"
	"github.com/randomizedcoder/subdays-benchmarks/internal/subdays"
)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func newSuite(t *testing.T) *bench.Suite[subdays.Context] {
	t.Helper()
	s, err := subdays.NewSuite(bench.PerBatch)
	require.NoError(t, err)
	return s
}

func TestNewSuite(t *testing.T) {
	s := newSuite(t)

	assert.Equal(t, "subDays", s.Name())
	assert.Equal(t, []string{"date-fns", "Moment.js"}, s.CaseNames())
	assert.Equal(t, bench.PerBatch, s.Mode())
}

func TestSetup_SameInstant(t *testing.T) {
	for i := 0; i < 10; i++ {
		ctx := subdays.Setup()

		require.NotNil(t, ctx.Moment)
		assert.True(t, sameDay(ctx.Date, ctx.Moment.ToDate()),
			"date %v and moment %v differ at day precision", ctx.Date, ctx.Moment)
		assert.WithinDuration(t, ctx.Date, ctx.Moment.ToDate(), time.Millisecond)
	}
}

func TestSetup_Fresh(t *testing.T) {
	a, b := subdays.Setup(), subdays.Setup()
	assert.NotSame(t, a, b)
	assert.NotSame(t, a.Moment, b.Moment)
}

func TestCase_DateFns(t *testing.T) {
	s := newSuite(t)
	d := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	ctx := &subdays.Context{Date: d, Moment: moment.FromTime(d)}

	got, err := s.Call(subdays.CaseDateFns, ctx)
	require.NoError(t, err)

	res, ok := got.(time.Time)
	require.True(t, ok, "result is %T", got)
	assert.Equal(t, "2024-03-01", res.Format("2006-01-02"))
	assert.True(t, ctx.Date.Equal(d), "input date changed to %v", ctx.Date)
}

func TestCase_Moment_MutatesReceiver(t *testing.T) {
	s := newSuite(t)
	d := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	m := moment.FromTime(d)
	ctx := &subdays.Context{Date: d, Moment: m}

	got, err := s.Call(subdays.CaseMoment, ctx)
	require.NoError(t, err)

	res, ok := got.(*moment.Moment)
	require.True(t, ok, "result is %T", got)
	assert.Same(t, m, res)
	assert.Equal(t, "2024-03-01", m.ToDate().Format("2006-01-02"))

	_, err = s.Call(subdays.CaseMoment, ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-16", m.ToDate().Format("2006-01-02"))
}

func TestCases_NoLeakAcrossSetup(t *testing.T) {
	s := newSuite(t)

	for i := 0; i < 3; i++ {
		ctx := s.Setup()
		want := ctx.Date.AddDate(0, 0, -subdays.Offset)

		got, err := s.Call(subdays.CaseDateFns, ctx)
		require.NoError(t, err)
		assert.True(t, got.(time.Time).Equal(want))

		got, err = s.Call(subdays.CaseMoment, ctx)
		require.NoError(t, err)
		res := got.(*moment.Moment).ToDate()
		assert.True(t, res.Equal(want), "got %v, want %v", res, want)
	}
}

func TestInvoke(t *testing.T) {
	s := newSuite(t)

	before := time.Now()
	got, err := s.Invoke(subdays.CaseDateFns)
	require.NoError(t, err)

	assert.WithinDuration(t, before.AddDate(0, 0, -14), got.(time.Time), time.Second)
}

type recorder struct {
	names []string
}

func (r *recorder) Register(c bench.Case[subdays.Context]) {
	r.names = append(r.names, c.Name)
}

// Define only declares cases; running the Moment.js body here would
// dereference a nil Moment.
func TestDefine_DoesNotRunCases(t *testing.T) {
	rec := &recorder{}

	require.NotPanics(t, func() { subdays.Define(rec) })
	assert.Equal(t, []string{subdays.CaseDateFns, subdays.CaseMoment}, rec.names)
}
