package prefetch

// Handle is the caller's view of an eventual cache entry. Handles fan in:
// every Request for a key with a fetch already in flight returns the same
// handle, so at most one underlying fetch exists per key.
type Handle struct {
	index int
	done  chan struct{}
	entry Entry // written once before done is closed
}

func newHandle(index int) *Handle {
	return &Handle{index: index, done: make(chan struct{})}
}

// resolvedHandle wraps an already-cached entry in a completed handle.
func resolvedHandle(e Entry) *Handle {
	h := &Handle{index: e.Index, done: make(chan struct{}), entry: e}
	close(h.done)
	return h
}

// Index returns the normalized content index this handle resolves.
func (h *Handle) Index() int { return h.index }

// Done returns a channel closed when the entry is available.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Entry returns the resolved entry. The second return is false until the
// Done channel is closed.
func (h *Handle) Entry() (Entry, bool) {
	select {
	case <-h.done:
		return h.entry, true
	default:
		return Entry{}, false
	}
}

// resolve publishes the entry and wakes all waiters. Called exactly once.
func (h *Handle) resolve(e Entry) {
	h.entry = e
	close(h.done)
}
