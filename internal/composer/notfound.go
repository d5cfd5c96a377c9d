package composer

import (
	"bytes"
)

// RenderNotFound composes the generic page served when no published
// project matches the inbound hostname
func (c *Composer) RenderNotFound(host string) string {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "notfound", notFoundPage{Host: host}); err != nil {
		// The template is static; execution can only fail on writer errors,
		// which bytes.Buffer never returns
		c.log.Error().Err(err).Msg("Failed to render not-found page")
		return "<!DOCTYPE html><html><body><h1>404 - Site not found</h1></body></html>"
	}
	return buf.String()
}
