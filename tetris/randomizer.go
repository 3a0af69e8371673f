package tetris

import "math/rand/v2"

// Randomizer chooses the kind of each newly spawned piece.
type Randomizer interface {
	Next() Kind
}

// Uniform picks each kind with equal probability.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a uniform randomizer seeded with seed. The same seed
// always yields the same sequence of kinds.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (u *Uniform) Next() Kind {
	return Kind(u.rng.IntN(NumKinds))
}

// Sequence replays a fixed list of kinds, wrapping around at the end.
// An empty Sequence always yields KindI.
type Sequence struct {
	kinds []Kind
	pos   int
}

func NewSequence(kinds ...Kind) *Sequence {
	return &Sequence{kinds: kinds}
}

func (s *Sequence) Next() Kind {
	if len(s.kinds) == 0 {
		return KindI
	}
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}
