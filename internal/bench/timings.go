package bench

import (
	"iter"
	"time"
)

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Total         time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d
	t.Total += d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// Mean returns the average duration over all measurements.
func (t Timings) Mean() time.Duration {
	if t.Count == 0 {
		return 0
	}

	return t.Total / time.Duration(t.Count)
}

// Stats collects Timings per named phase, in the order phases were first measured.
type Stats struct {
	byPhase map[string]Timings
	order   []string

	// replaced in tests
	now func() time.Time
}

func NewStats() *Stats {
	return &Stats{
		byPhase: map[string]Timings{},
		now:     time.Now,
	}
}

func (s *Stats) Measure(phase string) Stopwatch {
	startTime := s.now()

	if _, ok := s.byPhase[phase]; !ok {
		s.order = append(s.order, phase)
		s.byPhase[phase] = Timings{}
	}

	return Stopwatch{
		Stop: func() {
			duration := s.now().Sub(startTime)
			s.byPhase[phase] = s.byPhase[phase].Add(duration)
		},
	}
}

func (s *Stats) Phase(phase string) (Timings, bool) {
	timings, ok := s.byPhase[phase]
	return timings, ok
}

func (s *Stats) All() iter.Seq2[string, Timings] {
	return func(yield func(string, Timings) bool) {
		for _, phase := range s.order {
			if !yield(phase, s.byPhase[phase]) {
				return
			}
		}
	}
}

type Stopwatch struct {
	Stop func()
}
