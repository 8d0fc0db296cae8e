//go:build linux

package transport

import "golang.org/x/sys/unix"

func setDeferAccept(fd int) {
	_ = unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_DEFER_ACCEPT, 1)
}
