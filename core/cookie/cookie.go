package cookie

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SameSite is the SameSite cookie attribute policy.
type SameSite string

const (
	SameSiteStrict SameSite = "Strict"
	SameSiteLax    SameSite = "Lax"
	SameSiteNone   SameSite = "None"
)

// expiresPattern matches the fixed 'Ddd, DD Mon YYYY HH:MM:SS GMT' format.
var expiresPattern = regexp.MustCompile(`^[A-Za-z]{3}, \d{2} [A-Za-z]{3} \d{4} \d{2}:\d{2}:\d{2} GMT$`)

// Cookie represents a single HTTP cookie with its attributes.
// Construct it with New and render it with String.
type Cookie struct {
	Name      string
	Value     string
	expires   string
	maxAge    int
	hasMaxAge bool
	path      string
	domain    string
	httpOnly  bool
	secure    bool
	sameSite  SameSite
}

// Option configures a cookie attribute.
type Option func(*Cookie)

// WithExpires sets the Expires attribute.
// The value must match 'Ddd, DD Mon YYYY HH:MM:SS GMT'; any other value is
// replaced with the current GMT time when the cookie is rendered.
func WithExpires(expires string) Option {
	return func(c *Cookie) {
		c.expires = expires
	}
}

// WithExpiresAt sets the Expires attribute from a time instant.
func WithExpiresAt(t time.Time) Option {
	return func(c *Cookie) {
		c.expires = t.UTC().Format(http.TimeFormat)
	}
}

// WithMaxAge sets the Max-Age attribute in seconds.
// Zero is a valid value and is emitted as "Max-Age=0".
func WithMaxAge(seconds int) Option {
	return func(c *Cookie) {
		c.maxAge = seconds
		c.hasMaxAge = true
	}
}

// WithPath sets the Path attribute.
func WithPath(path string) Option {
	return func(c *Cookie) {
		c.path = path
	}
}

// WithDomain sets the Domain attribute.
func WithDomain(domain string) Option {
	return func(c *Cookie) {
		c.domain = domain
	}
}

// WithHTTPOnly marks the cookie as inaccessible to client-side scripts.
func WithHTTPOnly() Option {
	return func(c *Cookie) {
		c.httpOnly = true
	}
}

// WithSecure restricts the cookie to HTTPS connections.
func WithSecure() Option {
	return func(c *Cookie) {
		c.secure = true
	}
}

// WithSameSite sets the SameSite policy.
// The value is validated by New.
func WithSameSite(s SameSite) Option {
	return func(c *Cookie) {
		c.sameSite = s
	}
}

// New creates a cookie with the given name, value, and attributes.
// It fails if the name is empty or the SameSite value is not one of
// Strict, Lax, or None.
func New(name, value string, opts ...Option) (*Cookie, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	c := &Cookie{Name: name, Value: value}
	for _, opt := range opts {
		opt(c)
	}

	switch c.sameSite {
	case "", SameSiteStrict, SameSiteLax, SameSiteNone:
	default:
		return nil, ErrInvalidSameSite
	}

	return c, nil
}

// String renders the cookie as a Set-Cookie header value.
func (c *Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)

	if c.expires != "" {
		expires := c.expires
		if !expiresPattern.MatchString(expires) {
			expires = time.Now().UTC().Format(http.TimeFormat)
		}
		b.WriteString("; Expires=")
		b.WriteString(expires)
	}
	if c.hasMaxAge {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(c.maxAge))
	}
	if c.path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.path)
	}
	if c.domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.domain)
	}
	if c.httpOnly {
		b.WriteString("; HttpOnly")
	}
	if c.secure {
		b.WriteString("; Secure")
	}
	if c.sameSite != "" {
		b.WriteString("; SameSite=")
		b.WriteString(string(c.sameSite))
	}

	return b.String()
}
