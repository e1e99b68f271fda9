// Package prefetch implements the speculative image cache behind an
// endless tile grid.
//
// # Overview
//
// The cache owns a bounded key→entry map and an in-flight fetch table.
// Keys live in a cyclic content space the size of the catalog; requesting
// a key that is already cached or in flight never starts a second fetch
// (fan-in, at most one outstanding fetch per key system-wide). A fetch
// that fails or exceeds its deadline resolves to a synthesized fallback
// entry that is cached exactly like a success, so callers never
// special-case failure.
//
// Eviction runs in two passes: first by cyclic distance from the viewer's
// current center index, then oldest-inserted-first down to the capacity
// cap. Lookups never reorder entries; insertion order alone decides what
// the cap pass removes.
//
// # Quick Start
//
//	cache := prefetch.New(prefetch.Config{
//	    Catalog: prefetch.StaticCatalog{"https://example.com/a.jpg", "https://example.com/b.jpg"},
//	    Fetcher: prefetch.NewHTTPFetcher(nil),
//	})
//
//	h := cache.Request(3)
//	<-h.Done()
//	entry, _ := h.Entry()
//
// # Concurrency
//
// All cache methods are safe for concurrent use. Fetches run on background
// goroutines; their results are merged into the cache on completion and are
// observed by readers from the next lookup on.
package prefetch
