package prefetch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"

	// Register decoders for the content formats tile sources serve.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Fetch errors. Both are recovered inside the cache by substituting a
// fallback entry; they never surface past the cache manager.
var (
	// ErrFetchFailed is returned when a fetch fails for any reason other
	// than the deadline (network error, bad status, undecodable payload).
	ErrFetchFailed = errors.New("prefetch: fetch failed")

	// ErrFetchTimeout is returned when a fetch exceeds its deadline.
	ErrFetchTimeout = errors.New("prefetch: fetch timed out")
)

// Fetcher retrieves and decodes one image. The context carries the fetch
// deadline; implementations must honor cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// HTTPFetcher fetches images over HTTP using net/http.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTP fetcher. Pass nil to use a default client;
// per-fetch deadlines come from the context, so the client itself carries
// no timeout.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPFetcher{client: client}
}

// Fetch downloads and decodes the image at url.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrFetchTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrFetchTimeout
		}
		return nil, fmt.Errorf("%w: decode: %v", ErrFetchFailed, err)
	}
	return img, nil
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (image.Image, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, url string) (image.Image, error) {
	return f(ctx, url)
}

// isTimeout reports whether a fetch error or context state indicates the
// deadline was exceeded rather than an ordinary failure.
func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, ErrFetchTimeout) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded)
}
