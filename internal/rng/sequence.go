package rng

import "sync"

// Sequence replays a fixed list of values, wrapping around at the end. It is meant for
// deterministic tests and replays.
type Sequence struct {
	mtx    sync.Mutex
	values []float64
	pos    int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Push appends more values to replay.
func (s *Sequence) Push(values ...float64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.values = append(s.values, values...)
}

// Consumed returns how many values have been drawn.
func (s *Sequence) Consumed() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.pos
}
