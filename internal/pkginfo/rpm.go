package pkginfo

import (
	"fmt"
	"path/filepath"

	rpmdb "github.com/knqyf263/go-rpmdb/pkg"
)

// RPM database locations, newest format first. sqlite is the default on
// current Fedora and RHEL, ndb on SUSE, Berkeley DB on older releases.
var rpmDatabases = []string{
	"var/lib/rpm/rpmdb.sqlite",
	"var/lib/rpm/Packages.db",
	"var/lib/rpm/Packages",
}

// Attributes paths using the RPM package database.
//
// The installed-file index is built once at construction by listing every
// package and its recorded file names, mirroring an rpm basenames query
// per path without reopening the database for each lookup.
type RPM struct {
	owners map[string][]string
}

// Creates an [RPM] provider from the package database under root
// (normally "/").
func NewRPM(root string) (*RPM, error) {
	db, err := openRPMDatabase(root)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	pkgs, err := db.ListPackages()
	if err != nil {
		return nil, fmt.Errorf("listing RPM packages: %w", err)
	}

	owners := make(map[string][]string)
	for _, pkg := range pkgs {
		identity := fmt.Sprintf("%s-%s-%s (%s)", pkg.Name, pkg.Version, pkg.Release, pkg.License)

		files, err := pkg.InstalledFileNames()
		if err != nil {
			// Header without a file list (e.g. gpg-pubkey entries).
			continue
		}
		for _, file := range files {
			file = filepath.Clean(file)
			owners[file] = append(owners[file], identity)
		}
	}

	return &RPM{owners: owners}, nil
}

func openRPMDatabase(root string) (*rpmdb.RpmDB, error) {
	var firstErr error
	for _, candidate := range rpmDatabases {
		db, err := rpmdb.Open(filepath.Join(root, candidate))
		if err == nil {
			return db, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, fmt.Errorf("opening RPM database under %s: %w", root, firstErr)
}

// Returns the identity of the single package owning path.
//
// Zero matches and multiple matches both land in the [UnknownRPM]
// sentinel bucket. Directories are skipped.
func (r *RPM) Owner(path string) string {
	if isDir(path) {
		return ""
	}

	if ids := r.owners[filepath.Clean(path)]; len(ids) == 1 {
		return ids[0]
	}
	return UnknownRPM
}
