// Package docs serves the OpenAPI description of the HTTP API.
package docs

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Schema returns the embedded OpenAPI document.
func Schema(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/yaml")
	return c.Send(openapiSpec)
}
