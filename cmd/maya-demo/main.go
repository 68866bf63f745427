package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/vldk-exists/maya/core/config"
	"github.com/vldk-exists/maya/core/cookie"
	"github.com/vldk-exists/maya/core/handler"
	"github.com/vldk-exists/maya/core/response"
	"github.com/vldk-exists/maya/core/server"
)

const homePage = `<html>
<head><title>maya demo</title></head>
<body>
<h1>Hello from maya</h1>
<p>Visitor id: {{.visitor}}</p>
</body>
</html>`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	var cfg server.Config
	if err := config.Load(&cfg); err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	srv, err := server.NewFromConfig(cfg, server.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	// Every request gets a request id before routing runs.
	srv.Before(func(ctx *handler.Context) *response.Response {
		ctx.SetValue("request_id", uuid.NewString())
		return nil
	})

	// Every outgoing response is stamped with the server name.
	srv.After(func(ctx *handler.Context, resp *response.Response) (*response.Response, error) {
		return resp.AddHeader("Server", "maya-demo"), nil
	})

	must(srv.Route("/", func(ctx *handler.Context) (*response.Response, error) {
		visitor, verr := cookie.New("visitor", uuid.NewString(),
			cookie.WithPath("/"),
			cookie.WithMaxAge(int((24 * time.Hour).Seconds())),
			cookie.WithHTTPOnly(),
		)
		if verr != nil {
			return nil, verr
		}
		return response.FromString(homePage,
			map[string]any{"visitor": ctx.Value("request_id")},
			response.WithCookies(visitor),
		)
	}))

	must(srv.Route("/api/time", func(ctx *handler.Context) (*response.Response, error) {
		return response.JSON(map[string]any{
			"now":        time.Now().UTC().Format(time.RFC3339),
			"request_id": ctx.Value("request_id"),
		})
	}))

	must(srv.Route("/users/<int:id>/posts/<uuid:post>", func(ctx *handler.Context) (*response.Response, error) {
		return response.JSON(map[string]any{
			"user": ctx.Params().Int("id"),
			"post": ctx.Params().UUID("post").String(),
		})
	}))

	must(srv.Route("/echo", func(ctx *handler.Context) (*response.Response, error) {
		body := ctx.Request().Body
		if body.IsEmpty() {
			return response.JSON(map[string]any{"echo": nil})
		}
		return response.JSON(map[string]any{"echo": body.Text()})
	}))

	must(srv.Route("/old-home", func(ctx *handler.Context) (*response.Response, error) {
		return response.Redirect("/"), nil
	}))

	must(srv.HandleStatus(404, func() *response.Response {
		resp, rerr := response.FromString("<h1>This page wandered off</h1>", nil,
			response.WithStatus(404))
		if rerr != nil {
			return nil
		}
		return resp
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
