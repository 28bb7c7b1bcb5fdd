package prim

import "github.com/gogpu/gputypes"

// Topology is the primitive-assembly mode a run of vertices is drawn with.
// It is the WebGPU topology type so that GPU backends can pass it straight
// into a pipeline descriptor.
type Topology = gputypes.PrimitiveTopology

// Topologies used by the batch.
const (
	PointList    = gputypes.PrimitiveTopologyPointList
	LineList     = gputypes.PrimitiveTopologyLineList
	LineStrip    = gputypes.PrimitiveTopologyLineStrip
	TriangleList = gputypes.PrimitiveTopologyTriangleList
)

// primitiveSize returns how many vertices make up one primitive of t.
// Strips return 1: any prefix of a strip is itself a valid strip.
func primitiveSize(t Topology) int {
	switch t {
	case LineList:
		return 2
	case TriangleList:
		return 3
	default:
		return 1
	}
}

// PrimitiveCount returns the number of primitives n vertices form under t.
func PrimitiveCount(t Topology, n int) int {
	switch t {
	case LineList:
		return n / 2
	case TriangleList:
		return n / 3
	case LineStrip:
		if n < 2 {
			return 0
		}
		return n - 1
	default:
		return n
	}
}
