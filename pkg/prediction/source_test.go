package prediction_test

import "time"

// sequenceSource replays fixed values, cycling when exhausted.
type sequenceSource struct {
	floats []float64
	ints   func(n int) int
	fi     int
}

func (s *sequenceSource) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *sequenceSource) IntN(n int) int {
	if s.ints == nil {
		return 0
	}
	return s.ints(n)
}

func constant(v float64) *sequenceSource {
	return &sequenceSource{floats: []float64{v}}
}

func clockAt(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 10, 14, hour, 42, 0, 0, time.Local)
	}
}
