package vstack

// RecycleKey classifies containers into recycle pools. The empty key means the
// container is not poolable and is destroyed when it leaves the window.
type RecycleKey string

// Collection is the ordered item source a Panel virtualizes.
type Collection[T any] interface {
	Len() int
	At(index int) T
}

// Container is a visual unit bound to one item at a time. Implementations
// must be comparable; pointer types are the norm.
type Container interface {
	// Measure returns the desired size for the given available size. An
	// infinite width means the container may be as wide as it likes.
	Measure(available Size) Size
	// Arrange positions the container in panel coordinates.
	Arrange(r Rect)
	// SetHidden toggles visibility. Pooled containers are hidden.
	SetHidden(hidden bool)
	// BringIntoView asks the hosting scroll region to make the container
	// visible.
	BringIntoView()
}

// Factory creates and binds containers for items.
type Factory[T any] interface {
	// NeedsContainer reports whether item needs a dedicated container and, if
	// so, which pool that container belongs to. When it returns false the item
	// itself must implement Container.
	NeedsContainer(item T, index int) (bool, RecycleKey)
	CreateContainer(item T, index int, key RecycleKey) Container
	PrepareContainer(c Container, item T, index int)
	ContainerPrepared(c Container, item T, index int)
	ClearContainer(c Container)
}

// Viewport is the scrollable region hosting the panel. Only the vertical
// offset takes part in virtualization.
type Viewport interface {
	Offset() Point
	Size() Size
	SetOffset(p Point)
}

// ScrollBarReserver is implemented by viewports with a permanently visible
// horizontal scroll bar. ScrollIntoView adds its height when aligning a row
// to the bottom edge.
type ScrollBarReserver interface {
	HorizontalScrollBarHeight() float64
}

// Observer receives container lifecycle events. All methods are called on the
// panel's goroutine.
type Observer interface {
	ContainerCreated(key RecycleKey)
	ContainerReused(key RecycleKey)
	ContainerRecycled(key RecycleKey)
	ContainerDestroyed()
	Measured(first, last int)
}

type nopObserver struct{}

func (nopObserver) ContainerCreated(RecycleKey)  {}
func (nopObserver) ContainerReused(RecycleKey)   {}
func (nopObserver) ContainerRecycled(RecycleKey) {}
func (nopObserver) ContainerDestroyed()          {}
func (nopObserver) Measured(int, int)            {}
