package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/op/go-logging"

	"github.com/rosubs/rosubs/providers"
	"github.com/rosubs/rosubs/stremio"
)

var subLog = logging.MustGetLogger("subtitles")

type subtitlesResponse struct {
	Subtitles []stremio.Subtitle `json:"subtitles"`
}

// SubtitlesIndex serves /subtitles/:contentType/:videoId. A malformed
// IMDB id is the only client error; everything else, including every
// source coming back empty, is a 200 with the list found.
func SubtitlesIndex(agg *providers.Aggregator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		contentType := ctx.Params("contentType")
		rawID := strings.TrimSuffix(ctx.Params("videoId"), ".json")

		subLog.Infof("Subtitle request - Type: %s, ID: %s", contentType, rawID)

		videoID, err := stremio.ParseVideoID(rawID)
		if err != nil {
			ctx.Status(fiber.StatusBadRequest)
			return ctx.JSON(fiber.Map{"detail": "Invalid IMDB ID format"})
		}

		subtitles, err := agg.SearchSubtitles(ctx.UserContext(), videoID, contentType)
		if err != nil {
			ctx.Status(fiber.StatusBadRequest)
			return ctx.JSON(fiber.Map{"detail": err.Error()})
		}
		if subtitles == nil {
			subtitles = []stremio.Subtitle{}
		}

		return ctx.JSON(subtitlesResponse{Subtitles: subtitles})
	}
}
