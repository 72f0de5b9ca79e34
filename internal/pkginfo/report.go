package pkginfo

import (
	"fmt"
	"io"
)

// Accumulates the attribution results of a single run.
//
// Package identities keep their discovery order, as do the paths recorded
// under each identity.
type Report struct {
	order []string
	paths map[string][]string
}

// Creates an empty [Report].
func NewReport() *Report {
	return &Report{paths: make(map[string][]string)}
}

// Appends path to the bucket for pkg, creating the bucket on first use.
func (r *Report) Record(pkg, path string) {
	if _, ok := r.paths[pkg]; !ok {
		r.order = append(r.order, pkg)
	}
	r.paths[pkg] = append(r.paths[pkg], path)
}

// Whether no attribution was recorded.
func (r *Report) Empty() bool { return len(r.order) == 0 }

// Writes the report as grouped sections, one per package identity, each
// listing its owned paths followed by a blank line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, pkg := range r.order {
		n, err := fmt.Fprintf(w, "%s:\n", pkg)
		written += int64(n)
		if err != nil {
			return written, err
		}
		for _, path := range r.paths[pkg] {
			n, err := fmt.Fprintln(w, path)
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		n, err = fmt.Fprintln(w)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
