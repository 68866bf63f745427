// Package cookie formats HTTP cookies into Set-Cookie header values.
//
// A Cookie is built once with functional options and rendered with String.
// SameSite is validated at construction time; a malformed Expires date is
// silently replaced with the current GMT time when rendering.
//
// Basic usage:
//
//	c, err := cookie.New("session", "abc123",
//		cookie.WithPath("/"),
//		cookie.WithMaxAge(3600),
//		cookie.WithHTTPOnly(),
//		cookie.WithSameSite(cookie.SameSiteLax),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	header := c.String() // "session=abc123; Max-Age=3600; Path=/; HttpOnly; SameSite=Lax"
package cookie
