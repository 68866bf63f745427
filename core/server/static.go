package server

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vldk-exists/maya/core/handler"
	"github.com/vldk-exists/maya/core/response"
)

// StaticFile reads the file's bytes once and registers a route serving
// them verbatim under "/<path>" with a Content-Type guessed from the
// extension.
func (s *Server) StaticFile(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read static file %q: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.Route("/"+path, func(ctx *handler.Context) (*response.Response, error) {
		resp := response.New().SetBody(body)
		resp.AddHeader("Content-Type", contentType).
			AddHeader("Content-Length", strconv.Itoa(len(body))).
			AddHeader("Connection", "close")
		return resp, nil
	})
}
