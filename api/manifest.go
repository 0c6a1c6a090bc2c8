package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rosubs/rosubs/stremio"
	"github.com/rosubs/rosubs/util"
)

// Manifest is the static addon descriptor. Stremio matches the addon to
// playable items through Resources, Types and IDPrefixes.
var Manifest = stremio.Manifest{
	ID:          "ro.subtitles.romanian",
	Version:     util.GetVersion(),
	Name:        "Romanian Subtitles",
	Description: "Comprehensive Romanian subtitle addon supporting subtitrari.ro, subs.ro, and titrari.ro",
	Logo:        "https://www.stremio.com/website/stremio-logo-small.png",
	Resources:   []string{"subtitles"},
	Types:       []string{"movie", "series"},
	IDPrefixes:  []string{"tt"},
	Catalogs:    []stremio.CatalogItem{},
}

// ManifestHandler ...
func ManifestHandler(ctx *fiber.Ctx) error {
	return ctx.JSON(Manifest)
}
