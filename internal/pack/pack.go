package pack

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/rootpack/rootpack/internal/archive"
	"github.com/rootpack/rootpack/internal/closure"
	"github.com/rootpack/rootpack/internal/exclude"
	"github.com/rootpack/rootpack/internal/interp"
	"github.com/rootpack/rootpack/internal/pkginfo"
)

// Controls a packing run.
type Options struct {
	Input    string           // Input list file, one path or bare name per line.
	Output   string           // Output archive path (.tar, .tar.gz, .tgz).
	Rules    closure.Rules    // Exclusion policy. Defaults to the built-in roots.
	Interp   string           // ELF binary to read the dynamic loader from. Empty skips loader discovery.
	MaxDepth int              // Symlink chain bound. Zero means the resolver default.
	Provider pkginfo.Provider // Attribution backend. Defaults to no attribution.
	PathEnv  string           // Search path for bare names. Defaults to $PATH.
}

// Returned after a successful run.
type Result struct {
	Output  string          // Archive path, as given.
	Entries int             // Number of top-level entries written.
	Digest  digest.Digest   // Content digest of the written archive.
	Report  *pkginfo.Report // Attribution results, empty without a backend.
}

// Executes the packing pipeline.
//
// ctx is consulted between archive entries only, so an interrupt stops
// the run cleanly at an entry boundary.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Rules == nil {
		opts.Rules = exclude.New(nil, nil)
	}
	if opts.Provider == nil {
		opts.Provider = pkginfo.None{}
	}
	if opts.PathEnv == "" {
		opts.PathEnv = os.Getenv("PATH")
	}

	resolver := closure.NewResolver(opts.Rules, opts.MaxDepth)
	set := closure.NewPathSet(opts.Rules)

	if err := collectInput(opts, resolver, set); err != nil {
		return nil, err
	}

	if opts.Interp != "" {
		loader, err := interp.Loader(opts.Interp)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInterp, err)
		}
		slog.Debug("dynamic loader", "source", opts.Interp, "loader", loader)
		if err := addClosure(loader, resolver, set); err != nil {
			return nil, err
		}
	}

	entries := set.Entries()
	report := pkginfo.NewReport()

	w, err := archive.Create(opts.Output)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			w.Close()
			return nil, err
		}
		if pkg := opts.Provider.Owner(entry); pkg != "" {
			report.Record(pkg, entry)
		}
		if err := w.Add(entry); err != nil {
			w.Close()
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	slog.Info("archive written",
		"path", opts.Output,
		"entries", len(entries),
		"digest", w.Digest(),
	)

	return &Result{
		Output:  opts.Output,
		Entries: len(entries),
		Digest:  w.Digest(),
		Report:  report,
	}, nil
}

// Reads the input list and accumulates closures into the path set.
func collectInput(opts Options, resolver *closure.Resolver, set *closure.PathSet) error {
	f, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInputList, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := collectLine(line, opts.PathEnv, resolver, set); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInputList, err)
	}
	return nil
}

// Handles one input line: an existing directory becomes a folder
// candidate, any other existing path goes through the closure resolver,
// and a bare name is searched on PATH. Lines matching nothing are skipped
// silently.
func collectLine(line, pathEnv string, resolver *closure.Resolver, set *closure.PathSet) error {
	info, err := os.Lstat(line)
	if err != nil {
		if os.IsNotExist(err) && !strings.Contains(line, "/") {
			if found, ok := lookPath(line, pathEnv); ok {
				return addClosure(found, resolver, set)
			}
		}
		slog.Debug("skipping input line", "line", line)
		return nil
	}

	if info.IsDir() {
		set.AddFolder(line)
		return nil
	}

	return addClosure(line, resolver, set)
}

func addClosure(path string, resolver *closure.Resolver, set *closure.PathSet) error {
	paths, err := resolver.Resolve(path)
	if err != nil {
		return err
	}
	set.Add(paths)
	return nil
}

// Searches the PATH components in order for a regular file named name.
// The first hit wins; no hit is not an error.
func lookPath(name, pathEnv string) (string, bool) {
	for _, dir := range strings.Split(pathEnv, ":") {
		if dir == "" {
			continue
		}
		candidate := dir + "/" + name
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}
