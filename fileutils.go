package main

import (
	"os"
	"strings"
)

// shouldSkip reports whether a local file already satisfies a remote entry.
// The check is size-only: a regular file with the exact expected byte count
// counts as present. A same-sized file with different content is not
// detected; that is a documented limitation of the tool.
func shouldSkip(localPath string, size int64, sizeKnown bool) bool {
	if !sizeKnown {
		return false
	}
	info, err := os.Stat(localPath)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Size() == size
}

// childPath joins a child name onto a remote directory path. Remote paths
// are slash-separated and never start or end with a slash; root is "".
func childPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return strings.TrimSuffix(dir, "/") + "/" + name
}

// parentPath returns the parent of a remote path, "" for top-level entries.
func parentPath(p string) string {
	p = strings.Trim(p, "/")
	if i := strings.LastIndex(p, "/"); i > 0 {
		return p[:i]
	}
	return ""
}

// safeEntryName rejects listing names that could escape the local target
// directory when joined onto it.
func safeEntryName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}
