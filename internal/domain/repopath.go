package domain

import (
	"path"
	"strings"
)

// Repository paths are slash separated and absolute ("/project/trunk").
// Relative offsets ("src/text") never carry a leading slash, and "" is the empty offset.

// CleanRepoPath normalizes a repository path to its absolute, slash-separated form
func CleanRepoPath(p string) string {
	if p == "" {
		return "/"
	}
	return path.Clean("/" + strings.TrimSpace(p))
}

// CleanSubpath normalizes a relative offset; "." and "/" collapse to ""
func CleanSubpath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return p
}

// JoinRepoPath appends relative offsets to a repository path, skipping empty offsets
func JoinRepoPath(base string, rel ...string) string {
	parts := []string{CleanRepoPath(base)}
	for _, r := range rel {
		if r = CleanSubpath(r); r != "" {
			parts = append(parts, r)
		}
	}
	return path.Join(parts...)
}

// JoinSubpath composes two relative offsets
func JoinSubpath(a, b string) string {
	a, b = CleanSubpath(a), CleanSubpath(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "/" + b
}

// AncestorPaths returns every proper ancestor of p, nearest the root first.
// AncestorPaths("/a/b/c") is ["/", "/a", "/a/b"].
func AncestorPaths(p string) []string {
	p = CleanRepoPath(p)
	if p == "/" {
		return nil
	}
	var out []string
	for parent := path.Dir(p); ; parent = path.Dir(parent) {
		out = append(out, parent)
		if parent == "/" {
			break
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// IsSubpath reports whether p equals parent or lies below it
func IsSubpath(p, parent string) bool {
	p, parent = CleanRepoPath(p), CleanRepoPath(parent)
	if parent == "/" || p == parent {
		return true
	}
	return strings.HasPrefix(p, parent+"/")
}

// IsRelated reports whether a and b are the same path or one contains the other
func IsRelated(a, b string) bool {
	return IsSubpath(a, b) || IsSubpath(b, a)
}

// TailPath returns the offset of p below prefix. ok is false when p is not under prefix.
func TailPath(p, prefix string) (tail string, ok bool) {
	p, prefix = CleanRepoPath(p), CleanRepoPath(prefix)
	if !IsSubpath(p, prefix) {
		return "", false
	}
	if prefix == "/" {
		return CleanSubpath(p), true
	}
	return CleanSubpath(strings.TrimPrefix(p, prefix)), true
}

// BaseName returns the last element of a repository path
func BaseName(p string) string {
	p = CleanRepoPath(p)
	if p == "/" {
		return ""
	}
	return path.Base(p)
}

// ParentPath returns the parent of a repository path ("/" for "/")
func ParentPath(p string) string {
	return path.Dir(CleanRepoPath(p))
}
