// Package resolver maps request targets to classified filesystem
// targets under a document root.
package resolver

import (
	"os"
	"path"
	"strings"
	"time"
)

// Kind classifies the result of a filesystem probe.
type Kind int

const (
	// KindFile is a regular file that can be opened and streamed.
	KindFile Kind = iota
	// KindDir is a directory; the caller decides between index
	// fallback and denial.
	KindDir
	// KindMissing means the probe reported that no entry exists.
	KindMissing
	// KindDenied means the request path escapes the document root
	// (hardened mode only).
	KindDenied
	// KindError covers every other probe failure, and entries that are
	// neither regular files nor directories.
	KindError
)

// Target is the classification of one probe. Size and ModTime are only
// meaningful for KindFile, Err only for KindError. Targets are never
// cached; an index-fallback retry probes again.
type Target struct {
	Kind    Kind
	Path    string
	Size    int64
	ModTime time.Time
	Err     error
}

// StripQuery removes the query component of a request target: everything
// from the first '?' on.
func StripQuery(target string) string {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i]
	}
	return target
}

// escapesRoot walks the path segments with a depth counter and reports
// whether any ".." steps above the document root.
func escapesRoot(p string) bool {
	depth := 0
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return true
			}
		default:
			depth++
		}
	}
	return false
}

// Resolve turns a request target into a classified filesystem target
// under root. The query component is discarded first. In hardened mode
// the path is canonicalized and a traversal escaping root classifies as
// KindDenied; in compatibility mode the target is joined to root with
// no normalization at all.
func Resolve(root, requestTarget string, hardened bool) Target {
	p := StripQuery(requestTarget)

	var full string
	if hardened {
		if escapesRoot(p) {
			return Target{Kind: KindDenied, Path: p}
		}
		full = root + path.Clean("/"+p)
	} else {
		full = root + "/" + p
	}

	return Probe(full)
}

// Probe classifies the filesystem entry at an already-resolved path.
// One lstat, no caching: the index-fallback retry goes through here
// again, so the entry may change between a probe and the open that
// follows it. Callers handle the open failure instead of preventing it.
func Probe(full string) Target {
	fi, err := os.Lstat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return Target{Kind: KindMissing, Path: full}
		}
		return Target{Kind: KindError, Path: full, Err: err}
	}

	switch {
	case fi.Mode().IsRegular():
		return Target{Kind: KindFile, Path: full, Size: fi.Size(), ModTime: fi.ModTime()}
	case fi.IsDir():
		return Target{Kind: KindDir, Path: full}
	default:
		// Symlinks, devices and the like are not served.
		return Target{Kind: KindError, Path: full}
	}
}
