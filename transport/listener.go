// Package transport owns the raw socket layer: building the listening
// socket with the options the stdlib listener does not expose, and
// classifying I/O errors on accepted connections.
package transport

import (
	"net"
	"os"

	"golang.org/x/sys/unix"

	httperrors "github.com/nareshv/http-server/errors"
)

// Listen creates a TCP listening socket on the given port, bound to all
// interfaces, with SO_REUSEADDR set before bind and an explicit
// listen(2) backlog. The descriptor is handed to the runtime poller via
// net.FileListener. Port 0 asks the kernel for a free port.
func Listen(port, backlog int) (net.Listener, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, httperrors.NewSocketError(httperrors.SocketCreateFailure, err)
	}
	unix.CloseOnExec(fd)

	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return nil, httperrors.NewSocketError(httperrors.SocketCreateFailure, err)
	}

	// Defer accept until the client has sent data, where supported.
	// Best effort; the server works the same without it.
	setDeferAccept(fd)

	sa := &unix.SockaddrInet4{Port: port}
	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return nil, httperrors.NewSocketError(httperrors.BindFailure, err)
	}
	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		return nil, httperrors.NewSocketError(httperrors.ListenFailure, err)
	}

	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, httperrors.NewSocketError(httperrors.ListenFailure, err)
	}

	f := os.NewFile(uintptr(fd), "http-listener")
	ln, err := net.FileListener(f)
	// FileListener dups the descriptor; the original is ours to close.
	f.Close()
	if err != nil {
		return nil, httperrors.NewSocketError(httperrors.ListenFailure, err)
	}
	return ln, nil
}
