package api

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/op/go-logging"

	"github.com/rosubs/rosubs/providers"
)

var log = logging.MustGetLogger("api")

// Routes ...
func Routes(app *fiber.App, agg *providers.Aggregator) {
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: os.Stdout,
	}))
	// Stremio clients are browsers; the addon must answer cross-origin.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "*",
	}))

	app.Get("/", Index)
	app.Get("/manifest.json", ManifestHandler)
	app.Get("/health", Health)

	app.Get("/subtitles/:contentType/:videoId", SubtitlesIndex(agg))

	provider := app.Group("/provider")
	{
		provider.Get("/", ProviderList(agg))
		provider.Get("/:provider/search/:videoId", ProviderSearch(agg))
	}
}
