package middleware

// identity.go holds the request identity helpers shared by the rate
// limiter and the cache key builders.

import "github.com/labstack/echo/v4"

// subject returns the authenticated subject stored by JWTAuth, or "anon"
// for unauthenticated requests.  Reservation routes are public, so most
// requests are keyed by IP instead.
func subject(c echo.Context) string {
    if s, ok := c.Get("user_id").(string); ok && s != "" {
        return s
    }
    return "anon"
}

// clientIP returns the caller address as seen by Echo.
func clientIP(c echo.Context) string {
    if ip := c.RealIP(); ip != "" {
        return ip
    }
    return "unknown"
}
