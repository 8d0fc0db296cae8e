//go:build !linux

package transport

// TCP_DEFER_ACCEPT is Linux-only.
func setDeferAccept(fd int) {}
