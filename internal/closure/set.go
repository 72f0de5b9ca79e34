package closure

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Accumulates the files and folders to pack for a single run.
//
// The two sets are disjoint: every admitted path lands in exactly one of
// them, decided by the filesystem-object kind at the time it is added.
type PathSet struct {
	rules   Rules
	files   map[string]struct{}
	folders map[string]struct{}
}

// Creates an empty [PathSet] governed by the given exclusion policy.
func NewPathSet(rules Rules) *PathSet {
	return &PathSet{
		rules:   rules,
		files:   make(map[string]struct{}),
		folders: make(map[string]struct{}),
	}
}

// Routes resolved paths into the file or folder set by their kind.
//
// Directories go through the folder exclusion policy; everything else
// (regular files, symlinks, device nodes) through the file policy. A path
// that cannot be stat'd is skipped with a warning.
func (s *PathSet) Add(paths []string) {
	for _, path := range paths {
		info, err := os.Lstat(path)
		if err != nil {
			slog.Warn("skipping unresolvable path", "path", path, "error", err)
			continue
		}

		if info.IsDir() {
			s.AddFolder(path)
			continue
		}

		if s.rules.File(path) {
			slog.Debug("excluded file", "path", path)
			continue
		}
		s.files[path] = struct{}{}
	}
}

// Adds a folder entry, normalized and checked against the folder
// exclusion policy.
func (s *PathSet) AddFolder(path string) {
	path = filepath.Clean(path)
	if s.rules.Folder(path) {
		slog.Debug("excluded folder", "path", path)
		return
	}
	s.folders[path] = struct{}{}
}

// Returns the final pack list: the needed folders united with the files,
// sorted for deterministic emission.
//
// Folders implied by a more specific entry are pruned here.
func (s *PathSet) Entries() []string {
	entries := make([]string, 0, len(s.files)+len(s.folders))

	for folder := range s.folders {
		if needed(folder, s.files, s.folders) {
			entries = append(entries, folder)
		} else {
			slog.Debug("pruned redundant folder", "path", folder)
		}
	}

	for file := range s.files {
		entries = append(entries, file)
	}

	sort.Strings(entries)
	return entries
}

// Reports whether a folder entry must be archived explicitly.
//
// A folder is redundant when some file has it as a string prefix (its
// contents are being handled file by file) or when another folder entry
// has it as a string prefix (a more specific subfolder is tracked). The
// folder is never compared against itself. Prefix matching is the same
// loose string test used by the exclusion policy.
func needed(folder string, files, folders map[string]struct{}) bool {
	for file := range files {
		if strings.HasPrefix(file, folder) {
			return false
		}
	}
	for other := range folders {
		if other != folder && strings.HasPrefix(other, folder) {
			return false
		}
	}
	return true
}
