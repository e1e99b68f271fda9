package prefetch

// Distance returns the cyclic distance between two indices in a circular
// index space of the given size: the minimum of |a-b|, |a-b+size| and
// |a-b-size|. It is symmetric, zero for equal indices and never exceeds
// size/2. A non-positive size yields zero.
func Distance(a, b, size int) int {
	if size <= 0 {
		return 0
	}
	d := a - b
	return min(abs(d), abs(d+size), abs(d-size))
}

// normalize maps an arbitrary index into [0, size). Negative indices wrap
// from the top.
func normalize(index, size int) int {
	if size <= 0 {
		return index
	}
	n := index % size
	if n < 0 {
		n += size
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
