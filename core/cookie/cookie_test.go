package cookie_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vldk-exists/maya/core/cookie"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("name and value only", func(t *testing.T) {
		t.Parallel()
		c, err := cookie.New("session", "abc123")
		require.NoError(t, err)
		assert.Equal(t, "session=abc123", c.String())
	})

	t.Run("empty name fails", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New("", "value")
		assert.ErrorIs(t, err, cookie.ErrEmptyName)
	})

	t.Run("empty value is allowed", func(t *testing.T) {
		t.Parallel()
		c, err := cookie.New("cleared", "")
		require.NoError(t, err)
		assert.Equal(t, "cleared=", c.String())
	})

	t.Run("invalid samesite fails at construction", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New("a", "b", cookie.WithSameSite("Sorta"))
		assert.ErrorIs(t, err, cookie.ErrInvalidSameSite)
	})
}

func TestCookie_String(t *testing.T) {
	t.Parallel()

	t.Run("all attributes in fixed order", func(t *testing.T) {
		t.Parallel()
		c, err := cookie.New("id", "42",
			cookie.WithExpires("Wed, 21 Oct 2026 07:28:00 GMT"),
			cookie.WithMaxAge(3600),
			cookie.WithPath("/app"),
			cookie.WithDomain("example.com"),
			cookie.WithHTTPOnly(),
			cookie.WithSecure(),
			cookie.WithSameSite(cookie.SameSiteStrict),
		)
		require.NoError(t, err)
		assert.Equal(t,
			"id=42; Expires=Wed, 21 Oct 2026 07:28:00 GMT; Max-Age=3600; Path=/app; Domain=example.com; HttpOnly; Secure; SameSite=Strict",
			c.String())
	})

	t.Run("zero max-age is emitted", func(t *testing.T) {
		t.Parallel()
		c, err := cookie.New("gone", "", cookie.WithMaxAge(0))
		require.NoError(t, err)
		assert.Equal(t, "gone=; Max-Age=0", c.String())
	})

	t.Run("malformed expires replaced with current GMT time", func(t *testing.T) {
		t.Parallel()
		c, err := cookie.New("a", "b", cookie.WithExpires("tomorrow-ish"))
		require.NoError(t, err)

		out := c.String()
		require.True(t, strings.HasPrefix(out, "a=b; Expires="))

		got, parseErr := time.Parse(http.TimeFormat, strings.TrimPrefix(out, "a=b; Expires="))
		require.NoError(t, parseErr)
		assert.WithinDuration(t, time.Now().UTC(), got, 5*time.Second)
	})

	t.Run("expires from time instant", func(t *testing.T) {
		t.Parallel()
		at := time.Date(2026, time.March, 1, 12, 30, 0, 0, time.UTC)
		c, err := cookie.New("a", "b", cookie.WithExpiresAt(at))
		require.NoError(t, err)
		assert.Equal(t, "a=b; Expires=Sun, 01 Mar 2026 12:30:00 GMT", c.String())
	})

	t.Run("samesite variants", func(t *testing.T) {
		t.Parallel()
		for _, s := range []cookie.SameSite{cookie.SameSiteStrict, cookie.SameSiteLax, cookie.SameSiteNone} {
			c, err := cookie.New("a", "b", cookie.WithSameSite(s))
			require.NoError(t, err)
			assert.Equal(t, "a=b; SameSite="+string(s), c.String())
		}
	})
}
