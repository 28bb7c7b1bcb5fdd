package prim

import "fmt"

// FlushReason records why the batch submitted its pending vertices.
type FlushReason int

const (
	// FlushTopology: a vertex of a different topology arrived.
	FlushTopology FlushReason = iota
	// FlushCapacity: the vertex buffer reached its capacity.
	FlushCapacity
	// FlushStrip: a line strip started or finished.
	FlushStrip
	// FlushTransform: the transforms changed with vertices pending.
	FlushTransform
	// FlushExplicit: the caller asked for a flush.
	FlushExplicit
	// FlushEnd: the batch scope closed.
	FlushEnd

	numFlushReasons
)

func (r FlushReason) String() string {
	switch r {
	case FlushTopology:
		return "topology"
	case FlushCapacity:
		return "capacity"
	case FlushStrip:
		return "strip"
	case FlushTransform:
		return "transform"
	case FlushExplicit:
		return "explicit"
	case FlushEnd:
		return "end"
	default:
		return fmt.Sprintf("FlushReason(%d)", int(r))
	}
}

// Stats summarizes the work a Batch submitted since it was created or
// last reset.
type Stats struct {
	DrawCalls  int
	Vertices   int
	Primitives int
	Flushes    [numFlushReasons]int
}

func (s Stats) String() string {
	return fmt.Sprintf("draw calls %d, vertices %d, primitives %d", s.DrawCalls, s.Vertices, s.Primitives)
}

// FlushCount returns how many flushes happened for reason r.
func (s Stats) FlushCount(r FlushReason) int {
	if r < 0 || r >= numFlushReasons {
		return 0
	}
	return s.Flushes[r]
}

// Merge adds the counts of o to s.
func (s *Stats) Merge(o Stats) {
	s.DrawCalls += o.DrawCalls
	s.Vertices += o.Vertices
	s.Primitives += o.Primitives
	for i := range s.Flushes {
		s.Flushes[i] += o.Flushes[i]
	}
}

func (s *Stats) record(t Topology, n int, reason FlushReason) {
	s.DrawCalls++
	s.Vertices += n
	s.Primitives += PrimitiveCount(t, n)
	s.Flushes[reason]++
}
