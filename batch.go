package prim

import "fmt"

// Batch accumulates vertices of a single topology and submits them to a
// Device in as few draw calls as possible.
//
// A batch is used inside a Begin/End scope. Pending vertices are flushed
// when a vertex of a different topology arrives, when the buffer reaches
// its capacity, and when the scope ends. Draw order is submission order.
//
// A Batch is not safe for concurrent use; it belongs to the goroutine that
// owns the device.
type Batch struct {
	device     Device
	capacity   int
	transforms Transforms

	open     bool
	topology Topology
	vertices []Vertex

	stats Stats
}

// NewBatch creates a closed batch drawing into device.
func NewBatch(device Device, opts ...BatchOption) *Batch {
	o := defaultBatchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Batch{
		device:     device,
		capacity:   o.capacity,
		transforms: o.transforms,
		vertices:   make([]Vertex, 0, o.capacity),
	}
}

// Begin opens the batch scope.
func (b *Batch) Begin() error {
	if b.device == nil {
		return ErrNilDevice
	}
	if b.open {
		Logger().Warn("batch already open")
		return ErrBatchAlreadyOpen
	}
	b.open = true
	b.vertices = b.vertices[:0]
	return nil
}

// End flushes any pending vertices and closes the scope. The scope is
// closed even when the final flush fails.
func (b *Batch) End() error {
	if !b.open {
		Logger().Warn("batch end without begin")
		return ErrBatchNotOpen
	}
	err := b.flush(FlushEnd)
	b.open = false
	b.vertices = b.vertices[:0]
	return err
}

// IsOpen reports whether the scope is open.
func (b *Batch) IsOpen() bool { return b.open }

// Pending returns the number of buffered vertices.
func (b *Batch) Pending() int { return len(b.vertices) }

// Capacity returns the maximum number of buffered vertices.
func (b *Batch) Capacity() int { return b.capacity }

// Stats returns the counters accumulated since the last ResetStats.
func (b *Batch) Stats() Stats { return b.stats }

// ResetStats clears the counters.
func (b *Batch) ResetStats() { b.stats = Stats{} }

// Transforms returns the transforms bound for the next draw call.
func (b *Batch) Transforms() Transforms { return b.transforms }

// SetTransforms replaces the projection/view/world state. Vertices already
// pending were submitted under the old state, so they are flushed first.
func (b *Batch) SetTransforms(t Transforms) error {
	if b.open && len(b.vertices) > 0 && t != b.transforms {
		if err := b.flush(FlushTransform); err != nil {
			return err
		}
	}
	b.transforms = t
	return nil
}

// AddVertex appends one vertex drawn with the given topology.
//
// If the topology differs from the pending one, or the buffer is full,
// the pending vertices are flushed first. A full line strip carries its
// last vertex into the next draw call so the strip stays connected.
// If that flush fails the vertex is not appended.
func (b *Batch) AddVertex(v Vertex, topology Topology) error {
	if !b.open {
		Logger().Warn("vertex added outside batch scope", "topology", topology)
		return ErrBatchNotOpen
	}
	if len(b.vertices) > 0 && topology != b.topology {
		if err := b.flush(FlushTopology); err != nil {
			return err
		}
	}
	if len(b.vertices) >= b.limit(topology) {
		last := b.vertices[len(b.vertices)-1]
		if err := b.flush(FlushCapacity); err != nil {
			return err
		}
		if topology == LineStrip {
			b.vertices = append(b.vertices, last)
		}
	}
	b.topology = topology
	b.vertices = append(b.vertices, v)
	return nil
}

// AddStrip submits vertices as one connected line strip. Pending vertices
// are flushed first and the strip is flushed on return, so consecutive
// strips are never joined.
func (b *Batch) AddStrip(vertices []Vertex) error {
	if !b.open {
		Logger().Warn("strip added outside batch scope")
		return ErrBatchNotOpen
	}
	if len(vertices) < 2 {
		return fmt.Errorf("line strip with %d vertices: %w", len(vertices), ErrTooFewPoints)
	}
	reason := FlushStrip
	if len(b.vertices) > 0 && b.topology != LineStrip {
		reason = FlushTopology
	}
	if err := b.flush(reason); err != nil {
		return err
	}
	for _, v := range vertices {
		if err := b.AddVertex(v, LineStrip); err != nil {
			return err
		}
	}
	return b.flush(FlushStrip)
}

// Flush submits the pending vertices now.
func (b *Batch) Flush() error {
	if !b.open {
		return ErrBatchNotOpen
	}
	return b.flush(FlushExplicit)
}

// limit returns the buffer capacity rounded down to whole primitives of t,
// so a flush never splits a line or triangle across draw calls.
func (b *Batch) limit(t Topology) int {
	return b.capacity - b.capacity%primitiveSize(t)
}

func (b *Batch) flush(reason FlushReason) error {
	n := len(b.vertices)
	if n == 0 {
		return nil
	}
	defer func() { b.vertices = b.vertices[:0] }()

	Logger().Debug("flush", "topology", b.topology, "vertices", n, "reason", reason)

	b.device.SetTransforms(b.transforms)
	passes := b.device.Effect().Passes()
	if len(passes) == 0 {
		// Nothing reaches the device, so nothing is counted.
		Logger().Warn("flush with an effect that has no passes", "topology", b.topology, "vertices", n)
		return nil
	}
	for _, pass := range passes {
		if err := pass.Apply(); err != nil {
			return fmt.Errorf("prim: apply effect pass: %w", err)
		}
		if err := b.device.DrawPrimitives(b.topology, b.vertices); err != nil {
			return fmt.Errorf("prim: draw %v: %w", b.topology, err)
		}
	}
	b.stats.record(b.topology, n, reason)
	return nil
}
