package prim

// DefaultCapacity is the vertex capacity of a batch created without
// WithCapacity.
const DefaultCapacity = 1024

// minCapacity keeps room for one whole triangle.
const minCapacity = 3

// BatchOption configures a Batch during creation.
//
// Example:
//
//	b := prim.NewBatch(dev,
//		prim.WithCapacity(4096),
//		prim.WithTransforms(prim.Ortho2D(800, 600)),
//	)
type BatchOption func(*batchOptions)

type batchOptions struct {
	capacity   int
	transforms Transforms
}

func defaultBatchOptions() batchOptions {
	return batchOptions{
		capacity:   DefaultCapacity,
		transforms: IdentityTransforms(),
	}
}

// WithCapacity sets the maximum number of vertices buffered before the
// batch flushes on its own. Values below 3 are raised to 3.
func WithCapacity(n int) BatchOption {
	return func(o *batchOptions) {
		o.capacity = max(n, minCapacity)
	}
}

// WithTransforms sets the initial projection/view/world state.
func WithTransforms(t Transforms) BatchOption {
	return func(o *batchOptions) {
		o.transforms = t
	}
}

// DrawState is the per-scope drawing configuration read by the Drawer at
// call time.
type DrawState struct {
	// Color is used by calls that take no explicit color.
	Color RGBA

	// PointSize is the side length used by DrawPointDefault.
	PointSize float64

	// ContentScale converts logical units to device pixels. Every position
	// a Drawer submits is multiplied by it.
	ContentScale float64
}

// DefaultDrawState returns opaque white, 3 unit points and a content scale of 1.
func DefaultDrawState() DrawState {
	return DrawState{
		Color:        White,
		PointSize:    3,
		ContentScale: 1,
	}
}

// DrawerOption configures a Drawer during creation.
type DrawerOption func(*drawerOptions)

type drawerOptions struct {
	state DrawState
	batch []BatchOption
}

// WithDefaultColor sets the color used by calls that take no explicit color.
func WithDefaultColor(c RGBA) DrawerOption {
	return func(o *drawerOptions) {
		o.state.Color = c
	}
}

// WithPointSize sets the default point size.
func WithPointSize(size float64) DrawerOption {
	return func(o *drawerOptions) {
		o.state.PointSize = size
	}
}

// WithContentScale sets the content-scale factor.
func WithContentScale(f float64) DrawerOption {
	return func(o *drawerOptions) {
		o.state.ContentScale = f
	}
}

// WithBatchOptions forwards options to the Drawer's underlying Batch.
func WithBatchOptions(opts ...BatchOption) DrawerOption {
	return func(o *drawerOptions) {
		o.batch = append(o.batch, opts...)
	}
}
