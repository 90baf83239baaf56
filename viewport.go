package vaporgrid

// ViewportSize is the logical size of the host display surface, along with the pixel ratio to render it at.
type ViewportSize struct {
	Width, Height int
	PixelRatio    float64
}

// Viewport tracks the host's display size and notifies subscribers when it changes.
// Viewport isn't safe for concurrent use; it's meant to be driven from the game loop.
type Viewport struct {
	size        ViewportSize
	initialized bool
	nextID      int
	subscribers map[int]func(ViewportSize)
	order       []int
}

// NewViewport returns a new, empty Viewport.
func NewViewport() *Viewport {
	return &Viewport{subscribers: map[int]func(ViewportSize){}}
}

// Subscription is the handle returned by Viewport.Subscribe.
type Subscription struct {
	viewport *Viewport
	id       int
}

// Release unsubscribes the handler. It's safe to call more than once.
func (sub *Subscription) Release() {
	if sub == nil || sub.viewport == nil {
		return
	}
	sub.viewport.unsubscribe(sub.id)
	sub.viewport = nil
}

// Active returns true if the Subscription hasn't been released.
func (sub *Subscription) Active() bool {
	return sub != nil && sub.viewport != nil
}

// Subscribe registers a handler to be called with the new size whenever the size changes. If the Viewport already has a size,
// the handler is called with it immediately, so subscribers never start out of date.
func (viewport *Viewport) Subscribe(handler func(ViewportSize)) *Subscription {
	id := viewport.nextID
	viewport.nextID++
	viewport.subscribers[id] = handler
	viewport.order = append(viewport.order, id)
	if viewport.initialized {
		handler(viewport.size)
	}
	return &Subscription{viewport: viewport, id: id}
}

func (viewport *Viewport) unsubscribe(id int) {
	delete(viewport.subscribers, id)
	for i, existing := range viewport.order {
		if existing == id {
			viewport.order = append(viewport.order[:i], viewport.order[i+1:]...)
			break
		}
	}
}

// Subscribers returns how many handlers are currently subscribed.
func (viewport *Viewport) Subscribers() int {
	return len(viewport.subscribers)
}

// Size returns the most recent size given to Update.
func (viewport *Viewport) Size() ViewportSize {
	return viewport.size
}

// Update records the host's current size. Subscribers are notified, in subscription order, only if the size differs from the last one.
// It returns true if the size changed.
func (viewport *Viewport) Update(width, height int, pixelRatio float64) bool {

	size := ViewportSize{Width: width, Height: height, PixelRatio: pixelRatio}

	if viewport.initialized && size == viewport.size {
		return false
	}

	viewport.size = size
	viewport.initialized = true

	for _, id := range append([]int(nil), viewport.order...) {
		if handler, ok := viewport.subscribers[id]; ok {
			handler(size)
		}
	}

	return true

}
