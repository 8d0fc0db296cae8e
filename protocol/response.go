package protocol

import (
	"fmt"
	"io"
	"time"

	httperrors "github.com/nareshv/http-server/errors"
)

// Status codes emitted by the server. Anything else never appears on
// the wire.
const (
	StatusOK                 = 200
	StatusBadRequest         = 400
	StatusForbidden          = 403
	StatusNotFound           = 404
	StatusMethodNotAllowed   = 405
	StatusServiceUnavailable = 503
)

// httpTimeLayout is the HTTP-date format used in Date and Last-Modified
// headers, always rendered in UTC.
const httpTimeLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

var reasonPhrases = map[int]string{
	StatusOK:                 "OK",
	StatusBadRequest:         "Bad Request",
	StatusForbidden:          "Forbidden",
	StatusNotFound:           "Not Found",
	StatusMethodNotAllowed:   "Method Not Allowed",
	StatusServiceUnavailable: "Service Unavailable",
}

var errorBodies = map[int]string{
	StatusBadRequest: "<!doctype html><html><head><meta charset='utf-8'><title>400</title></head><body style='background-color:#9800cf;color:#fff;'>" +
		"<h1>400 - Bad Request</h1><hr style='border: 1px solid #fff; height: 0'></body></html>",
	StatusForbidden: "<!doctype html><html><head><meta charset='utf-8'><title>403</title></head><body style='background-color:#0098cf;color:#fff;'>" +
		"<h1>403 - Forbidden</h1><hr style='border: 1px solid #fff; height: 0'></body></html>",
	StatusNotFound: "<!doctype html><html><head><meta charset='utf-8'><title>404</title></head><body style='background-color:#0098cf;color:#fff;'>" +
		"<h1>404 - Page Not Found</h1><hr style='border: 1px solid #fff; height: 0'></body></html>",
	StatusMethodNotAllowed: "<!doctype html><html><head><meta charset='utf-8'><title>405</title></head><body style='background-color:#0098cf;color:#fff;'>" +
		"<h1>405 - Method Not Allowed</h1><hr style='border: 1px solid #fff; height: 0'></body></html>",
	StatusServiceUnavailable: "<!doctype html><html><head><meta charset='utf-8'><title>503</title></head><body style='background-color:#cf9800;color:#fff;'>" +
		"<h1>503 - Service Unavailable</h1><hr style='border: 1px solid #fff; height: 0'></body></html>",
}

// ReasonPhrase returns the reason phrase for a supported status code.
func ReasonPhrase(status int) string {
	return reasonPhrases[status]
}

// ErrorBody returns the fixed HTML body for a non-200 status code.
func ErrorBody(status int) string {
	return errorBodies[status]
}

// HTTPTime formats t as an HTTP-date.
func HTTPTime(t time.Time) string {
	return t.UTC().Format(httpTimeLayout)
}

// ResponseWriter formats complete HTTP responses onto one output
// stream. Exactly one status line and one blank-line terminator is
// written per response; header order is fixed.
type ResponseWriter struct {
	out        io.Writer
	serverName string

	// Now supplies the Date header value. Overridable so tests can pin
	// exact response bytes.
	Now func() time.Time
}

// NewResponseWriter creates a ResponseWriter emitting onto out with the
// given Server header identity.
func NewResponseWriter(out io.Writer, serverName string) *ResponseWriter {
	return &ResponseWriter{
		out:        out,
		serverName: serverName,
		Now:        time.Now,
	}
}

// WriteFileHeaders emits the 200 response head for a regular file of
// the given size and modification time. The body, if any, is streamed
// by the caller afterwards.
func (rw *ResponseWriter) WriteFileHeaders(size int64, modTime time.Time) error {
	head := fmt.Sprintf("HTTP/1.1 200 OK\r\n"+
		"Date: %s\r\n"+
		"Last-Modified: %s\r\n"+
		"Content-Length: %d\r\n"+
		"Server: %s\r\n\r\n",
		HTTPTime(rw.Now()), HTTPTime(modTime), size, rw.serverName)
	if _, err := io.WriteString(rw.out, head); err != nil {
		return wrapWriteError(err)
	}
	return nil
}

// WriteError emits a complete non-200 response: status line,
// Connection: close, Server, terminator and the fixed HTML body for the
// status code.
func (rw *ResponseWriter) WriteError(status int) error {
	resp := fmt.Sprintf("HTTP/1.1 %d %s\r\n"+
		"Connection: close\r\n"+
		"Server: %s\r\n\r\n%s",
		status, ReasonPhrase(status), rw.serverName, ErrorBody(status))
	if _, err := io.WriteString(rw.out, resp); err != nil {
		return wrapWriteError(err)
	}
	return nil
}

// wrapWriteError classifies a write failure. An error the transport
// layer already classified is passed through untouched instead of being
// wrapped a second time.
func wrapWriteError(err error) error {
	if e, ok := err.(*httperrors.Error); ok {
		return e
	}
	return httperrors.NewSocketError(httperrors.SocketWriteFailure, err)
}
