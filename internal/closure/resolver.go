package closure

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Default bound on the number of links followed in a single chain.
//
// Matches the kernel's ELOOP limit, so any chain a program could actually
// execute through resolves within it.
const DefaultMaxDepth = 40

// Exclusion policy consulted by the resolver and the path set.
//
// Satisfied by [github.com/rootpack/rootpack/internal/exclude.Ruleset].
type Rules interface {
	// Reports whether a file path falls under an excluded prefix.
	File(path string) bool

	// Reports whether a folder path falls under an excluded prefix.
	Folder(path string) bool
}

// Resolves a path to the set of paths required to make it usable.
type Resolver struct {
	rules    Rules
	maxDepth int
}

// Creates a [Resolver] with the given exclusion policy.
//
// maxDepth bounds the length of a symlink chain; values below one fall
// back to [DefaultMaxDepth].
func NewResolver(rules Rules, maxDepth int) *Resolver {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &Resolver{rules: rules, maxDepth: maxDepth}
}

// Returns the closure of a path: the normalized path itself plus, when it
// is a symbolic link, the closure of its target, recursively.
//
// Excluded candidates resolve to an empty set, so exclusion absorbs an
// entire chain suffix once it lands in a forbidden tree. A candidate that
// cannot be stat'd (e.g. a dangling link target) is skipped with a
// warning. A chain longer than the configured maximum depth, which in
// practice means a self-referential link, fails with [ErrLinkDepth].
func (r *Resolver) Resolve(path string) ([]string, error) {
	return r.resolve(path, 0)
}

func (r *Resolver) resolve(path string, depth int) ([]string, error) {
	if depth > r.maxDepth {
		return nil, fmt.Errorf("%w: %s", ErrLinkDepth, path)
	}

	path = filepath.Clean(path)

	// The exclusion check runs after normalization on every recursion
	// level, so a link target landing in an excluded tree is dropped
	// even when the link itself was admitted.
	if r.rules.File(path) {
		slog.Debug("excluded", "path", path)
		return nil, nil
	}

	info, err := os.Lstat(path)
	if err != nil {
		slog.Warn("skipping unresolvable path", "path", path, "error", err)
		return nil, nil
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return []string{path}, nil
	}

	target, err := os.Readlink(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadLink, path, err)
	}

	// A relative target lives in the directory of the link itself.
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}

	slog.Debug("following link", "path", path, "target", target)

	rest, err := r.resolve(target, depth+1)
	if err != nil {
		return nil, err
	}

	return append([]string{path}, rest...), nil
}
