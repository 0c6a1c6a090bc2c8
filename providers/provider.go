package providers

import (
	"context"

	"github.com/op/go-logging"

	"github.com/rosubs/rosubs/stremio"
)

var log = logging.MustGetLogger("providers")

// Searcher queries one external subtitle source. Implementations are
// total: every internal failure degrades to an empty result, so callers
// never have to handle a per-source error.
type Searcher interface {
	Name() string
	SearchSubtitles(ctx context.Context, videoID stremio.VideoID, contentType string) []stremio.Subtitle
}
