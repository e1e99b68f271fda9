// Package fifomap provides a generic map that remembers insertion order.
//
// Unlike an LRU container, lookups never reorder entries: the oldest entry
// is always the first inserted, which is exactly the eviction order the
// prefetch cache wants for its capacity cap.
package fifomap

// node is one entry in the insertion-order doubly-linked list.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// Map is a key-value map with stable insertion order.
// The zero value is not usable; create with New.
//
// Map is not safe for concurrent use; callers synchronize.
type Map[K comparable, V any] struct {
	entries map[K]*node[K, V]
	head    *node[K, V] // oldest
	tail    *node[K, V] // newest
}

// New creates an empty map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]*node[K, V])}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.entries) }

// Get returns the value for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n, ok := m.entries[key]; ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key. A new key is appended at the newest end;
// updating an existing key keeps its original insertion position.
func (m *Map[K, V]) Set(key K, value V) {
	if n, ok := m.entries[key]; ok {
		n.value = value
		return
	}
	n := &node[K, V]{key: key, value: value, prev: m.tail}
	if m.tail != nil {
		m.tail.next = n
	} else {
		m.head = n
	}
	m.tail = n
	m.entries[key] = n
}

// Delete removes key. Returns true if the entry existed.
func (m *Map[K, V]) Delete(key K) bool {
	n, ok := m.entries[key]
	if !ok {
		return false
	}
	m.unlink(n)
	delete(m.entries, key)
	return true
}

// Oldest returns the key of the oldest-inserted entry.
func (m *Map[K, V]) Oldest() (K, bool) {
	if m.head == nil {
		var zero K
		return zero, false
	}
	return m.head.key, true
}

// PopOldest removes and returns the oldest-inserted entry.
func (m *Map[K, V]) PopOldest() (K, V, bool) {
	if m.head == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	n := m.head
	m.unlink(n)
	delete(m.entries, n.key)
	return n.key, n.value, true
}

// Keys returns all keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for n := m.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
// fn must not mutate the map.
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	for n := m.head; n != nil; n = n.next {
		if !fn(n.key, n.value) {
			return
		}
	}
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.entries = make(map[K]*node[K, V])
	m.head = nil
	m.tail = nil
}

// unlink removes a node from the list without touching the map.
func (m *Map[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		m.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		m.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
