// Package server accepts raw TCP connections and drives each one through
// the request pipeline: framing, parsing, before hooks, routing, the route
// handler, after hooks, and rendering.
//
// Each accepted connection is handled by its own goroutine and closed after
// a single response; there is no keep-alive. The accept loop polls with a
// short deadline so cancellation of the context passed to Run is observed
// promptly, but in-flight connections always run to completion.
//
// Routes, status handlers, and hooks are owned by the Server instance and
// must be registered before Run is called; registering concurrently with
// serving is the caller's responsibility to avoid.
//
//	srv, err := server.New("127.0.0.1", 8080)
//	if err != nil {
//		log.Fatal(err)
//	}
//	srv.Route("/items/<int:id>", func(ctx *handler.Context) (*response.Response, error) {
//		return response.JSON(map[string]int{"id": ctx.Params().Int("id")})
//	})
//	srv.Run(context.Background())
package server
