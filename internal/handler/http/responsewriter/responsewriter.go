// Package responsewriter records what a postboard handler sent back: the status,
// the body size, and whether the connection was upgraded to a websocket.
//
// The logging, metrics, tracing and SLO middleware all wrap the same request, so the
// wrapper keeps the upgrade path intact: Hijack and Flush reach the innermost writer
// through http.ResponseController, and a hijacked connection reports 101.
package responsewriter

import (
	"bufio"
	"net"
	"net/http"
)

// ResponseWriter is an http.ResponseWriter that remembers the outcome of a request.
type ResponseWriter struct {
	http.ResponseWriter
	status   int
	size     int
	sent     bool
	upgraded bool
}

// Wrap starts recording w. The status reads 200 until a header is sent.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status only; later calls are dropped.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.sent {
		return
	}
	w.status = status
	w.sent = true
	if status == http.StatusSwitchingProtocols {
		w.upgraded = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.sent {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// StatusCode is the status sent to the client, or 101 after a hijack.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten counts body bytes. Frames on a hijacked connection are not included.
func (w *ResponseWriter) BytesWritten() int { return w.size }

// Upgraded reports whether the request left HTTP, either by hijack or by a 101 status.
func (w *ResponseWriter) Upgraded() bool { return w.upgraded }

// Unwrap exposes the inner writer to http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Hijack lets the websocket upgrader take the connection.
func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, rw, err := http.NewResponseController(w.ResponseWriter).Hijack()
	if err != nil {
		return nil, nil, err
	}
	if !w.sent {
		w.status = http.StatusSwitchingProtocols
		w.sent = true
	}
	w.upgraded = true
	return conn, rw, nil
}

// Flush is a no-op when the inner writer cannot flush.
func (w *ResponseWriter) Flush() {
	_ = http.NewResponseController(w.ResponseWriter).Flush()
}
