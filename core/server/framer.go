package server

import (
	"bytes"
	"net"
	"strconv"
	"strings"
	"time"
)

var crlfcrlf = []byte("\r\n\r\n")

// readRequest frames one HTTP message off the connection: it reads in
// fixed-size chunks until the header/body separator appears, then keeps
// reading until the body reaches the declared Content-Length.
//
// Every read during the header phase carries a short deadline; a timeout,
// or a peer that closes before a complete header block, yields nil and the
// caller treats the connection as a no-op. Body reads carry no deadline.
func (s *Server) readRequest(conn net.Conn) []byte {
	buf := make([]byte, 0, s.chunkSize)
	chunk := make([]byte, s.chunkSize)

	for !bytes.Contains(buf, crlfcrlf) {
		_ = conn.SetReadDeadline(time.Now().Add(s.chunkTimeout))
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			// A reader may deliver the final chunk together with io.EOF;
			// the separator can complete the frame on that same read.
			if bytes.Contains(buf, crlfcrlf) {
				break
			}
			return nil
		}
	}

	sep := bytes.Index(buf, crlfcrlf)
	contentLength := parseContentLength(buf[:sep])
	bodyStart := sep + len(crlfcrlf)

	_ = conn.SetReadDeadline(time.Time{})
	for len(buf)-bodyStart < contentLength {
		n, err := conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}

	return buf
}

// parseContentLength scans the header block for the first Content-Length
// header, case-insensitively, defaulting to 0 when absent or unparseable.
func parseContentLength(headerBlock []byte) int {
	for _, line := range strings.Split(string(headerBlock), "\r\n") {
		if !strings.HasPrefix(strings.ToLower(line), "content-length:") {
			continue
		}
		_, value, _ := strings.Cut(line, ":")
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	return 0
}
