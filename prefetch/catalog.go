package prefetch

// Catalog maps content indices to fetchable sources. Implementations are
// consulted with indices already normalized to [0, Len()).
type Catalog interface {
	// SourceURL returns the URL backing a content index.
	SourceURL(index int) string

	// Len returns the catalog size, the period of the cyclic content space.
	Len() int
}

// StaticCatalog is a fixed list of source URLs.
type StaticCatalog []string

// SourceURL returns the URL at index.
func (c StaticCatalog) SourceURL(index int) string {
	if index < 0 || index >= len(c) {
		return ""
	}
	return c[index]
}

// Len returns the number of URLs.
func (c StaticCatalog) Len() int { return len(c) }
