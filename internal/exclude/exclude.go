package exclude

import "strings"

// Built-in roots that are never part of a running container image.
// /var/lib/docker/ covers Docker-in-Docker data and trace noise.
var builtinRoots = []string{
	"/dev/",
	"/proc/",
	"/sys/",
	"/tmp/",
	"/var/lib/docker/",
}

// Holds the file and folder exclusion prefixes for a single run.
//
// A Ruleset is built once at startup and never modified afterwards, so it
// can be shared freely between the resolver and the pruner.
type Ruleset struct {
	files   []string
	folders []string
}

// Creates a [Ruleset] from the built-in roots extended with user-supplied
// prefixes.
//
// File prefixes keep their trailing separator; the built-in folder
// prefixes are the same roots with the trailing separator trimmed, so an
// exact-root folder entry like "/tmp" is also excluded. User-supplied
// prefixes are used verbatim in their respective list.
func New(extraFiles, extraFolders []string) *Ruleset {
	r := &Ruleset{
		files:   make([]string, 0, len(builtinRoots)+len(extraFiles)),
		folders: make([]string, 0, len(builtinRoots)+len(extraFolders)),
	}

	for _, root := range builtinRoots {
		r.files = append(r.files, root)
		r.folders = append(r.folders, strings.TrimSuffix(root, "/"))
	}

	r.files = append(r.files, extraFiles...)
	r.folders = append(r.folders, extraFolders...)

	return r
}

// Reports whether a file path falls under an excluded prefix.
func (r *Ruleset) File(path string) bool {
	return hasAnyPrefix(path, r.files)
}

// Reports whether a folder path falls under an excluded prefix.
func (r *Ruleset) Folder(path string) bool {
	return hasAnyPrefix(path, r.folders)
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
