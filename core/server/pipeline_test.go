package server

import (
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vldk-exists/maya/core/handler"
	"github.com/vldk-exists/maya/core/response"
)

// exchange writes one raw request into the pipeline and returns everything
// the server wrote back before closing the connection.
func exchange(t *testing.T, s *Server, raw string) string {
	t.Helper()

	client, srvConn := net.Pipe()
	done := make(chan struct{})
	go func() {
		s.handleConn(srvConn)
		close(done)
	}()

	go func() {
		_, _ = client.Write([]byte(raw))
	}()

	out, err := io.ReadAll(client)
	require.NoError(t, err)
	<-done
	client.Close()
	return string(out)
}

func okHandler(body string) handler.Func {
	return func(ctx *handler.Context) (*response.Response, error) {
		return response.New().SetBody(body), nil
	}
}

func TestHandleConn_Routing(t *testing.T) {
	t.Parallel()

	t.Run("literal route", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/hello", okHandler("hi")))

		out := exchange(t, s, "GET /hello HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.Equal(t, "HTTP/1.1 200\r\n\r\nhi", out)
	})

	t.Run("typed parameter reaches the handler", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/items/<int:id>", func(ctx *handler.Context) (*response.Response, error) {
			assert.Equal(t, 42, ctx.Params().Int("id"))
			return response.New().SetBody("found"), nil
		}))

		out := exchange(t, s, "GET /items/42 HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasSuffix(out, "found"), out)
	})

	t.Run("no match yields generic 404 page", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/known", okHandler("x")))

		out := exchange(t, s, "GET /unknown HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasPrefix(out, "HTTP/1.1 404\r\n"), out)
		assert.Contains(t, out, "<h1>Not Found</h1>")
	})

	t.Run("coercion failure is a handler fault", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/items/<int:id>", okHandler("never")))

		out := exchange(t, s, "GET /items/abc HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasPrefix(out, "HTTP/1.1 500\r\n"), out)
		assert.NotContains(t, out, "never")
	})

	t.Run("query args match literal route", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/search", func(ctx *handler.Context) (*response.Response, error) {
			return response.New().SetBody(ctx.Request().Args.Get("q")), nil
		}))

		out := exchange(t, s, "GET /search?q=maya HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasSuffix(out, "maya"), out)
	})
}

func TestHandleConn_Methods(t *testing.T) {
	t.Parallel()

	t.Run("head never invokes the handler", func(t *testing.T) {
		t.Parallel()
		invoked := false
		s := newTestServer(t)
		require.NoError(t, s.Route("/page", func(ctx *handler.Context) (*response.Response, error) {
			invoked = true
			return response.New().SetBody("body"), nil
		}))

		out := exchange(t, s, "HEAD /page HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.Equal(t, "HTTP/1.1 200\r\n", out)
		assert.False(t, invoked)
	})

	t.Run("trace echoes the raw request", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/page", okHandler("x")))

		raw := "TRACE /page HTTP/1.1\r\nHost: x\r\n\r\n"
		out := exchange(t, s, raw)
		assert.Contains(t, out, "Content-Type: message/http\r\n")
		assert.True(t, strings.HasSuffix(out, raw), out)
	})
}

func TestHandleConn_Errors(t *testing.T) {
	t.Parallel()

	t.Run("malformed request yields 400", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		out := exchange(t, s, "NONSENSE\r\n\r\n")
		assert.True(t, strings.HasPrefix(out, "HTTP/1.1 400\r\n"), out)
		assert.Contains(t, out, "<h1>Bad Request</h1>")
	})

	t.Run("handler error yields 500 without detail", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/boom", func(ctx *handler.Context) (*response.Response, error) {
			return nil, errors.New("database exploded: secret dsn")
		}))

		out := exchange(t, s, "GET /boom HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasPrefix(out, "HTTP/1.1 500\r\n"), out)
		assert.NotContains(t, out, "secret dsn")
	})

	t.Run("handler panic yields 500", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/panic", func(ctx *handler.Context) (*response.Response, error) {
			panic("kaboom")
		}))

		out := exchange(t, s, "GET /panic HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasPrefix(out, "HTTP/1.1 500\r\n"), out)
	})

	t.Run("nil response without error yields 500", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/nil", func(ctx *handler.Context) (*response.Response, error) {
			return nil, nil
		}))

		out := exchange(t, s, "GET /nil HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasPrefix(out, "HTTP/1.1 500\r\n"), out)
	})

	t.Run("registered status handler replaces generic page", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.HandleStatus(404, func() *response.Response {
			resp, err := response.FromString("<h1>Nothing here</h1>", nil, response.WithStatus(404))
			require.NoError(t, err)
			return resp
		}))

		out := exchange(t, s, "GET /missing HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasPrefix(out, "HTTP/1.1 404\r\n"), out)
		assert.Contains(t, out, "Nothing here")
	})
}

func TestHandleConn_Hooks(t *testing.T) {
	t.Parallel()

	t.Run("before hook short-circuits routing", func(t *testing.T) {
		t.Parallel()
		invoked := false
		s := newTestServer(t)
		require.NoError(t, s.Route("/page", func(ctx *handler.Context) (*response.Response, error) {
			invoked = true
			return response.New().SetBody("handler"), nil
		}))
		s.Before(func(ctx *handler.Context) *response.Response {
			return response.New().SetBody("blocked").AddHeader("X-Hook", "before")
		})
		afterRan := false
		s.After(func(ctx *handler.Context, resp *response.Response) (*response.Response, error) {
			afterRan = true
			return resp, nil
		})

		out := exchange(t, s, "GET /page HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasSuffix(out, "blocked"), out)
		assert.Contains(t, out, "X-Hook: before\r\n")
		assert.False(t, invoked)
		assert.False(t, afterRan)
	})

	t.Run("before hooks run in registration order", func(t *testing.T) {
		t.Parallel()
		var order []string
		s := newTestServer(t)
		require.NoError(t, s.Route("/page", okHandler("x")))
		s.Before(func(ctx *handler.Context) *response.Response {
			order = append(order, "first")
			return nil
		})
		s.Before(func(ctx *handler.Context) *response.Response {
			order = append(order, "second")
			return nil
		})

		exchange(t, s, "GET /page HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("after hooks mutate the response in order", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/page", okHandler("body")))
		s.After(func(ctx *handler.Context, resp *response.Response) (*response.Response, error) {
			return resp.AddHeader("X-First", "1"), nil
		})
		s.After(func(ctx *handler.Context, resp *response.Response) (*response.Response, error) {
			return resp.AddHeader("X-Second", "2"), nil
		})

		out := exchange(t, s, "GET /page HTTP/1.1\r\nHost: x\r\n\r\n")
		first := strings.Index(out, "X-First: 1\r\n")
		second := strings.Index(out, "X-Second: 2\r\n")
		require.GreaterOrEqual(t, first, 0, out)
		require.GreaterOrEqual(t, second, 0, out)
		assert.Less(t, first, second)
	})

	t.Run("after hooks run for error statuses", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		s.After(func(ctx *handler.Context, resp *response.Response) (*response.Response, error) {
			return resp.AddHeader("X-Seen", "yes"), nil
		})

		out := exchange(t, s, "GET /missing HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.True(t, strings.HasPrefix(out, "HTTP/1.1 404\r\n"), out)
		assert.Contains(t, out, "X-Seen: yes\r\n")
	})

	t.Run("after hook fault closes without a response", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/page", okHandler("x")))
		s.After(func(ctx *handler.Context, resp *response.Response) (*response.Response, error) {
			return nil, nil
		})

		out := exchange(t, s, "GET /page HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.Empty(t, out)
	})
}

func TestHandleConn_Noise(t *testing.T) {
	t.Parallel()

	t.Run("favicon probe closed silently", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/favicon.ico", okHandler("icon")))

		out := exchange(t, s, "GET /favicon.ico HTTP/1.1\r\nHost: x\r\n\r\n")
		assert.Empty(t, out)
	})

	t.Run("prefetch closed silently", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/page", okHandler("x")))

		out := exchange(t, s, "GET /page HTTP/1.1\r\nHost: x\r\nPurpose: prefetch\r\n\r\n")
		assert.Empty(t, out)
	})

	t.Run("empty frame closed silently", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		client, srvConn := net.Pipe()
		done := make(chan struct{})
		go func() {
			s.handleConn(srvConn)
			close(done)
		}()
		go client.Close()

		<-done
	})

	t.Run("bare separator closed silently", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		out := exchange(t, s, "\r\n\r\n")
		assert.Empty(t, out)
	})
}

func TestHandleConn_Body(t *testing.T) {
	t.Parallel()

	t.Run("json body reaches handler", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		require.NoError(t, s.Route("/echo", func(ctx *handler.Context) (*response.Response, error) {
			doc := ctx.Request().Body.JSON().(map[string]any)
			return response.JSON(doc)
		}))

		body := `{"name":"maya"}`
		raw := "POST /echo HTTP/1.1\r\nHost: x\r\nContent-Type: application/json\r\n" +
			"Content-Length: " + strconv.Itoa(len(body)) + "\r\n\r\n" + body
		out := exchange(t, s, raw)
		assert.True(t, strings.HasSuffix(out, `{"name":"maya"}`), out)
	})
}
