package transport

import (
	"errors"
	"io"
	"net"
	"syscall"

	httperrors "github.com/nareshv/http-server/errors"
)

// Conn wraps one accepted connection and classifies its I/O errors into
// the socket error taxonomy. Each Conn is owned by exactly one
// connection handler and closed exactly once.
type Conn struct {
	conn net.Conn
}

// NewConn wraps an accepted net.Conn.
func NewConn(c net.Conn) *Conn {
	return &Conn{conn: c}
}

// Read receives data from the peer. A closed or reset peer is reported
// as ConnectionClosed, everything else as SocketReadFailure.
func (c *Conn) Read(buf []byte) (int, error) {
	n, err := c.conn.Read(buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, syscall.ECONNRESET) {
			return n, httperrors.NewSocketError(httperrors.ConnectionClosed, err)
		}
		return n, httperrors.NewSocketError(httperrors.SocketReadFailure, err)
	}
	return n, nil
}

// Write sends data to the peer. A peer that went away mid-response is
// reported as ConnectionClosed, everything else as SocketWriteFailure.
func (c *Conn) Write(buf []byte) (int, error) {
	n, err := c.conn.Write(buf)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
			return n, httperrors.NewSocketError(httperrors.ConnectionClosed, err)
		}
		return n, httperrors.NewSocketError(httperrors.SocketWriteFailure, err)
	}
	return n, nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	if err := c.conn.Close(); err != nil {
		return httperrors.NewSocketError(httperrors.SocketCloseFailure, err)
	}
	return nil
}

// RemoteAddr returns the peer address, for logging.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// NetConn exposes the underlying net.Conn so the transfer engine can
// use the sendfile fast path on *net.TCPConn. Writes through it bypass
// this Conn, so 200-path write errors are not classified into the
// socket taxonomy; the engine reports them as TransferFailure instead.
func (c *Conn) NetConn() net.Conn {
	return c.conn
}
