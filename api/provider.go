package api

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rosubs/rosubs/providers"
	"github.com/rosubs/rosubs/stremio"
)

type providerDebugResponse struct {
	Payload any `json:"payload"`
	Results any `json:"results"`
}

// ProviderList ...
func ProviderList(agg *providers.Aggregator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		names := make([]string, 0, len(agg.Searchers()))
		for _, searcher := range agg.Searchers() {
			names = append(names, searcher.Name())
		}
		return ctx.JSON(names)
	}
}

// ProviderSearch runs a single source and returns its raw output. Useful
// when one site's markup changes and its selectors need retuning.
func ProviderSearch(agg *providers.Aggregator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		name := ctx.Params("provider")
		rawID := strings.TrimSuffix(ctx.Params("videoId"), ".json")

		videoID, err := stremio.ParseVideoID(rawID)
		if err != nil {
			ctx.Status(fiber.StatusBadRequest)
			return ctx.JSON(fiber.Map{"detail": err.Error()})
		}

		var searcher providers.Searcher
		for _, s := range agg.Searchers() {
			if s.Name() == name {
				searcher = s
				break
			}
		}
		if searcher == nil {
			ctx.Status(fiber.StatusNotFound)
			return ctx.JSON(fiber.Map{"detail": "unknown provider: " + name})
		}

		log.Infof("Debug search on %s for %s", name, videoID.IMDB)
		results := searcher.SearchSubtitles(ctx.UserContext(), videoID, ctx.Query("type", "movie"))

		data, err := json.MarshalIndent(providerDebugResponse{
			Payload: videoID,
			Results: results,
		}, "", "    ")
		if err != nil {
			return err
		}

		ctx.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
		return ctx.Send(data)
	}
}
