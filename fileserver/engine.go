// Package fileserver orchestrates path resolution and response
// formatting to serve one GET or HEAD target.
package fileserver

import (
	"io"
	"os"

	"github.com/nareshv/http-server/config"
	httperrors "github.com/nareshv/http-server/errors"
	"github.com/nareshv/http-server/protocol"
	"github.com/nareshv/http-server/resolver"
)

// TransferFailed is returned as the byte count when the body transfer
// failed after the 200 headers were already written. The client sees a
// 200 status followed by a truncated body; nothing can be retracted at
// that point.
const TransferFailed = -1

// Engine serves filesystem targets under a fixed document root.
type Engine struct {
	root       string
	indexFile  string
	serveIndex bool
	hardened   bool
	serverName string
}

// New creates an Engine from a validated configuration.
func New(cfg config.Config) *Engine {
	return &Engine{
		root:       cfg.Root,
		indexFile:  cfg.IndexFile,
		serveIndex: cfg.ServeIndex,
		hardened:   cfg.Hardened,
		serverName: cfg.ServerName,
	}
}

// Serve writes exactly one complete response for the given request
// target onto out. includeBody is false for HEAD requests, which
// receive the 200 headers with no body. The return value is the number
// of body bytes transferred: 0 for HEAD and for every non-200 response,
// TransferFailed if the stream broke mid-body. The returned error
// carries the serve taxonomy for logging; the response on the wire is
// already complete (or as complete as it can get) either way.
func (e *Engine) Serve(out io.Writer, target string, includeBody bool) (int64, error) {
	rw := protocol.NewResponseWriter(out, e.serverName)
	t := resolver.Resolve(e.root, target, e.hardened)
	return e.serveTarget(rw, out, t, includeBody, true)
}

func (e *Engine) serveTarget(rw *protocol.ResponseWriter, out io.Writer, t resolver.Target, includeBody, allowIndexRetry bool) (int64, error) {
	switch t.Kind {
	case resolver.KindFile:
		return e.transferFile(rw, out, t, includeBody)

	case resolver.KindDir:
		if !e.serveIndex {
			return 0, rw.WriteError(protocol.StatusForbidden)
		}
		if !allowIndexRetry {
			// Index file resolved to a directory again; one fallback
			// hop only.
			return 0, rw.WriteError(protocol.StatusNotFound)
		}
		index := resolver.Probe(t.Path + "/" + e.indexFile)
		if index.Kind != resolver.KindFile {
			return 0, rw.WriteError(protocol.StatusNotFound)
		}
		return e.serveTarget(rw, out, index, includeBody, false)

	case resolver.KindDenied:
		return 0, rw.WriteError(protocol.StatusForbidden)

	case resolver.KindMissing:
		if err := rw.WriteError(protocol.StatusNotFound); err != nil {
			return 0, err
		}
		return 0, httperrors.NewServeError(httperrors.ResolutionMissing, nil)

	default: // resolver.KindError
		if err := rw.WriteError(protocol.StatusNotFound); err != nil {
			return 0, err
		}
		return 0, httperrors.NewServeError(httperrors.ResolutionError, t.Err)
	}
}

// transferFile opens a probed regular file and streams it. The open can
// still fail (the entry may have changed since the probe, or the
// process may be out of descriptors); that answers 503.
func (e *Engine) transferFile(rw *protocol.ResponseWriter, out io.Writer, t resolver.Target, includeBody bool) (int64, error) {
	f, err := os.Open(t.Path)
	if err != nil {
		if werr := rw.WriteError(protocol.StatusServiceUnavailable); werr != nil {
			return 0, werr
		}
		return 0, httperrors.NewServeError(httperrors.OpenFailure, err)
	}
	defer f.Close()

	if err := rw.WriteFileHeaders(t.Size, t.ModTime); err != nil {
		return 0, err
	}
	if !includeBody {
		return 0, nil
	}

	// Content-Length was taken from the probe, so send exactly that
	// many bytes even if the file has grown since.
	sent, err := io.CopyN(out, f, t.Size)
	if err != nil {
		return TransferFailed, httperrors.NewServeError(httperrors.TransferFailure, err)
	}
	return sent, nil
}
