package scrape

import (
	"net/http"
	"sync"

	"github.com/rosubs/rosubs/config"
)

// Subtitle sites answer differently to obvious bots, so every outbound
// request carries a desktop browser User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	clientOnce sync.Once
	client     *http.Client
)

type uaTransport struct {
	base http.RoundTripper
}

func (t *uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", userAgent)
	}
	return t.base.RoundTrip(r)
}

// GetClient returns the shared HTTP client used by all scrapers.
// Connection reuse across sources is the only state they share.
func GetClient() *http.Client {
	clientOnce.Do(func() {
		client = &http.Client{
			Transport: &uaTransport{base: http.DefaultTransport},
			Timeout:   config.Get().Timeout(),
		}
	})
	return client
}
