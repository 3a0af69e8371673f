package tetris

import "github.com/kamstrup/intmap"

// Stats summarizes what has happened in a game so far.
type Stats struct {
	Ticks        int64
	GravitySteps int64
	Locks        int
	LinesCleared int
	// Spawned counts spawned pieces per kind, including the first one.
	Spawned [NumKinds]int
	// Clears maps rows-cleared-per-lock to how often that happened. Locks that
	// cleared nothing are not recorded.
	Clears map[int]int
}

type statsCollector struct {
	ticks        int64
	gravitySteps int64
	locks        int
	lines        int
	spawned      *intmap.Map[Kind, int]
	clears       *intmap.Map[int, int]
}

func newStatsCollector() *statsCollector {
	return &statsCollector{
		spawned: intmap.New[Kind, int](NumKinds),
		clears:  intmap.New[int, int](4),
	}
}

func (s *statsCollector) recordSpawn(kind Kind) {
	n, _ := s.spawned.Get(kind)
	s.spawned.Put(kind, n+1)
}

func (s *statsCollector) recordLock(cleared int) {
	s.locks++
	if cleared == 0 {
		return
	}
	s.lines += cleared
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

func (s *statsCollector) snapshot() Stats {
	out := Stats{
		Ticks:        s.ticks,
		GravitySteps: s.gravitySteps,
		Locks:        s.locks,
		LinesCleared: s.lines,
		Clears:       make(map[int]int, s.clears.Len()),
	}
	s.spawned.ForEach(func(k Kind, v int) bool {
		out.Spawned[k] = v
		return true
	})
	s.clears.ForEach(func(k int, v int) bool {
		out.Clears[k] = v
		return true
	})
	return out
}

// TotalSpawned returns the number of pieces spawned across all kinds.
func (s Stats) TotalSpawned() int {
	total := 0
	for _, n := range s.Spawned {
		total += n
	}
	return total
}
