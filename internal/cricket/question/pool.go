// Package question hands out trivia questions without repeats until the pool runs dry.
package question

import (
	"errors"

	"github.com/bloops-games/quizcricket/internal/cricket/catalog"
	"github.com/bloops-games/quizcricket/internal/rng"
)

var ErrEmptyPool = errors.New("question pool is empty")

type Pool struct {
	questions []catalog.Question
	used      map[int]struct{}
	src       rng.Source
}

func NewPool(questions []catalog.Question, src rng.Source) (*Pool, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyPool
	}

	return &Pool{
		questions: questions,
		used:      make(map[int]struct{}, len(questions)),
		src:       src,
	}, nil
}

// Next draws uniformly among indices not yet returned. Once every index has been used
// the used set is cleared first, so the draw after a reset covers the whole pool again
// and may repeat the question returned just before it.
func (p *Pool) Next() (int, catalog.Question) {
	if len(p.used) >= len(p.questions) {
		p.used = make(map[int]struct{}, len(p.questions))
	}

	available := make([]int, 0, len(p.questions)-len(p.used))
	for i := range p.questions {
		if _, ok := p.used[i]; !ok {
			available = append(available, i)
		}
	}

	idx := available[rng.Intn(p.src, len(available))]
	p.used[idx] = struct{}{}
	return idx, p.questions[idx]
}

func (p *Pool) Used() int {
	return len(p.used)
}

func (p *Pool) Len() int {
	return len(p.questions)
}

func (p *Pool) Reset() {
	p.used = make(map[int]struct{}, len(p.questions))
}
