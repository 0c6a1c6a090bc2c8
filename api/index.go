package api

import (
	"github.com/gofiber/fiber/v2"
)

// Index ...
func Index(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message": "Romanian Subtitles Stremio Addon",
		"version": Manifest.Version,
	})
}

// Health answers liveness probes with a fixed payload.
func Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status": "healthy",
		"addon":  Manifest.Name,
	})
}
