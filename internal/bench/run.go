package bench

import "testing"

// RunB runs every case of s as a sub-benchmark of b, in declaration order.
//
//	func BenchmarkSubDays(b *testing.B) {
//		suite.RunB(b)
//	}
func (s *Suite[C]) RunB(b *testing.B) {
	for _, c := range s.cases {
		b.Run(c.Name, s.measure(c))
	}
}

// Bench returns the benchmark function for the named case, suitable for
// testing.Benchmark or b.Run.
func (s *Suite[C]) Bench(name string) (func(b *testing.B), error) {
	c, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return s.measure(c), nil
}

func (s *Suite[C]) measure(c Case[C]) func(b *testing.B) {
	if s.mode == PerIteration {
		return func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				b.StopTimer()
				ctx := s.setup()
				b.StartTimer()
				c.run(ctx)
			}
		}
	}

	return func(b *testing.B) {
		ctx := s.setup()
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			c.run(ctx)
		}
	}
}
