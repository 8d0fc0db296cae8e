package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// dropPrivileges switches to the given credentials when the process was
// started as root, then verifies that root cannot be regained. A no-op
// for unprivileged processes.
func dropPrivileges(uid, gid int) error {
	if os.Getuid() != 0 {
		return nil
	}
	if err := unix.Setgid(gid); err != nil {
		return fmt.Errorf("setgid(%d): %w", gid, err)
	}
	if err := unix.Setuid(uid); err != nil {
		return fmt.Errorf("setuid(%d): %w", uid, err)
	}
	if err := unix.Setuid(0); err == nil {
		return fmt.Errorf("privilege drop did not take")
	}
	return nil
}
