package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/opencontainers/go-digest"
)

var ErrArchive = errors.New("archive write failed")

// Writes filesystem entries into a tar archive, optionally gzipped.
type Writer struct {
	file     *os.File
	gz       *gzip.Writer
	tw       *tar.Writer
	digester digest.Digester
}

// Creates the archive file at path.
//
// A .gz or .tgz suffix enables gzip compression; anything else produces a
// plain tar stream.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	w := &Writer{file: f, digester: digest.Canonical.Digester()}
	out := io.MultiWriter(f, w.digester.Hash())

	if strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".tgz") {
		w.gz = gzip.NewWriter(out)
		w.tw = tar.NewWriter(w.gz)
	} else {
		w.tw = tar.NewWriter(out)
	}

	return w, nil
}

// Adds a single path to the archive.
//
// Directories are expanded recursively; everything else becomes a single
// entry.
func (w *Writer) Add(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}

	if info.IsDir() {
		return w.addTree(path)
	}
	return w.addEntry(path, info)
}

// Walks a directory tree and writes every entry beneath it.
func (w *Writer) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrArchive, err)
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrArchive, err)
		}
		return w.addEntry(path, info)
	})
}

// Writes one file, directory, or symlink entry.
func (w *Writer) addEntry(path string, info fs.FileInfo) error {
	var link string
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrArchive, err)
		}
		link = target
	}

	header, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	header.Name = entryName(path, info.IsDir())

	if err := w.tw.WriteHeader(header); err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}

	if !info.Mode().IsRegular() {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	defer f.Close()

	if _, err := io.Copy(w.tw, f); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrArchive, path, err)
	}
	return nil
}

// Converts a source path to its archive entry name: leading slash
// stripped, trailing slash appended for directories.
func entryName(path string, dir bool) string {
	name := strings.TrimPrefix(filepath.ToSlash(path), "/")
	if dir && !strings.HasSuffix(name, "/") {
		name += "/"
	}
	return name
}

// Returns the digest of the bytes written so far.
//
// Stable only after [Writer.Close] has flushed the stream.
func (w *Writer) Digest() digest.Digest {
	return w.digester.Digest()
}

// Flushes and closes the archive.
func (w *Writer) Close() error {
	err := w.tw.Close()
	if w.gz != nil {
		if cerr := w.gz.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchive, err)
	}
	return nil
}
