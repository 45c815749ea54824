package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// PublicPrefixes is the ordered list of path prefixes the API is reachable
// under: the direct serverless function path and the rewritten /api path.
var PublicPrefixes = []string{
	"/.netlify/functions/api",
	"/api",
}

// StripPrefixes rewrites the request path before routing, removing the first
// matching prefix. Unrecognized prefixes pass through unchanged. Must be
// registered with e.Pre so it runs before the router matches.
func StripPrefixes(prefixes ...string) echo.MiddlewareFunc {
	if len(prefixes) == 0 {
		prefixes = PublicPrefixes
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path
			for _, prefix := range prefixes {
				if path == prefix || strings.HasPrefix(path, prefix+"/") {
					trimmed := strings.TrimPrefix(path, prefix)
					if trimmed == "" {
						trimmed = "/"
					}
					req.URL.Path = trimmed
					break
				}
			}
			return next(c)
		}
	}
}
