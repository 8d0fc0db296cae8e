// Package config holds the immutable server configuration. A Config is
// built and validated once at startup and never mutated afterwards, so
// connection handlers read it without synchronization.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultServerName = "Route5/1.0"
	DefaultBacklog    = 100
	DefaultIndexFile  = "index.html"
)

// Config is the complete server configuration.
type Config struct {
	// Port is the TCP port to listen on.
	Port int
	// Root is the document root; Validate makes it absolute.
	Root string
	// IndexFile is served when a request resolves to a directory.
	IndexFile string
	// ServeIndex enables the directory → index-file fallback. When off,
	// directory requests are answered 403.
	ServeIndex bool
	// ServerName is the Server header identity string.
	ServerName string
	// Backlog is the listen(2) backlog depth.
	Backlog int
	// RequireHost rejects requests without a Host header with 400.
	RequireHost bool
	// Hardened canonicalizes request paths and denies traversal out of
	// Root. When off, paths are joined with no normalization at all
	// (compatibility mode).
	Hardened bool
	// Serialize handles one connection at a time instead of spawning a
	// detached goroutine per connection.
	Serialize bool
	// UID and GID are the credentials to drop to when started as root.
	// Zero values mean no drop is attempted.
	UID int
	GID int
}

// Default returns a Config with the standard defaults filled in. Port
// and Root still have to be set by the caller.
func Default() Config {
	return Config{
		IndexFile:   DefaultIndexFile,
		ServeIndex:  true,
		ServerName:  DefaultServerName,
		Backlog:     DefaultBacklog,
		RequireHost: true,
		Hardened:    true,
	}
}

// Validate checks the configuration and makes Root absolute. It must
// pass before any socket is opened; a failure terminates startup.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", c.Port)
	}
	if c.Root == "" {
		return fmt.Errorf("document root not set")
	}
	abs, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("document root %q: %w", c.Root, err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("document root %q: %w", c.Root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("document root %q is not a directory", c.Root)
	}
	c.Root = abs
	if c.IndexFile == "" {
		return fmt.Errorf("index filename not set")
	}
	if c.ServerName == "" {
		c.ServerName = DefaultServerName
	}
	if c.Backlog <= 0 {
		c.Backlog = DefaultBacklog
	}
	return nil
}
