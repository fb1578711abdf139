package builder

import "container/list"

func newStateMachine(kind ...stepKind) *stateMachine {
	machine := &stateMachine{
		transitions: list.New(),
	}

	if len(kind) > 0 {
		machine.max = kind[len(kind)-1]
		machine.min = kind[0]

		for i := range kind {
			machine.transitions.PushBack(kind[i])
		}

		machine.front()
	}

	return machine
}

type stateMachine struct {
	min, max    stepKind
	state       stepKind
	transitions *list.List
}

func (s *stateMachine) curr() stepKind {
	return s.state
}

func (s *stateMachine) front() {
	s.state = s.transitions.Front().Value.(stepKind)
}

func (s *stateMachine) isMax() bool {
	return s.state == s.max
}

func (s *stateMachine) isMin() bool {
	return s.state == s.min
}

func (s *stateMachine) next() bool {
	if s.isMax() {
		return false
	}

	for e := s.transitions.Front(); e != nil; e = e.Next() {
		if e.Value == s.state {
			s.state = e.Next().Value.(stepKind)
			break
		}
	}

	return true
}

func (s *stateMachine) prev() bool {
	if s.isMin() {
		return false
	}

	for e := s.transitions.Front(); e != nil; e = e.Next() {
		if e.Value == s.state {
			s.state = e.Prev().Value.(stepKind)
			break
		}
	}

	return true
}
