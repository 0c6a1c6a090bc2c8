package providers

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rosubs/rosubs/stremio"
)

// Aggregator fans a subtitle search out over every configured source,
// sequentially and in a fixed order. Sources are isolated from each
// other: one failing or panicking contributes nothing and the rest still
// run. Construct one at startup and share it; there is no global registry.
type Aggregator struct {
	searchers []Searcher
	limiters  []*rate.Limiter
}

// NewAggregator builds an aggregator over searchers, throttling each
// source independently to one call per interval.
func NewAggregator(interval time.Duration, searchers ...Searcher) *Aggregator {
	limiters := make([]*rate.Limiter, len(searchers))
	for i := range searchers {
		limiters[i] = rate.NewLimiter(rate.Every(interval), 1)
	}
	return &Aggregator{searchers: searchers, limiters: limiters}
}

// Searchers returns the configured sources in query order.
func (a *Aggregator) Searchers() []Searcher {
	return a.searchers
}

// SearchSubtitles validates the id, then queries every source in order
// and concatenates their results without deduplication or ranking. When
// ctx expires mid-flight, whatever has accumulated so far is returned.
func (a *Aggregator) SearchSubtitles(ctx context.Context, videoID stremio.VideoID, contentType string) ([]stremio.Subtitle, error) {
	if !strings.HasPrefix(videoID.IMDB, "tt") {
		return nil, stremio.ErrInvalidID
	}

	var all []stremio.Subtitle
	for i, searcher := range a.searchers {
		if err := a.limiters[i].Wait(ctx); err != nil {
			log.Warningf("Abandoning search before %s: %s", searcher.Name(), err)
			break
		}
		all = append(all, a.searchOne(ctx, searcher, videoID, contentType)...)
	}

	log.Infof("Found %d subtitles for %s", len(all), videoID.IMDB)
	return all, nil
}

func (a *Aggregator) searchOne(ctx context.Context, searcher Searcher, videoID stremio.VideoID, contentType string) (subtitles []stremio.Subtitle) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Source %s panicked: %v", searcher.Name(), r)
			subtitles = nil
		}
	}()
	return searcher.SearchSubtitles(ctx, videoID, contentType)
}
