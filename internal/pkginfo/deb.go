package pkginfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pault.ag/go/debian/control"
)

// Attributes paths using the dpkg database.
//
// License retrieval is not implemented for DEB systems; identities carry
// a literal "?" placeholder instead.
type DEB struct {
	entries []debEntry
}

// One installed package with its recorded file list, in dpkg status-file
// order.
type debEntry struct {
	identity string
	files    map[string]struct{}
}

// Creates a [DEB] provider from the dpkg database under root (normally
// "/").
func NewDEB(root string) (*DEB, error) {
	statusPath := filepath.Join(root, "var/lib/dpkg/status")
	f, err := os.Open(statusPath)
	if err != nil {
		return nil, fmt.Errorf("opening dpkg status: %w", err)
	}
	defer f.Close()

	decoder, err := control.NewDecoder(f, nil)
	if err != nil {
		return nil, fmt.Errorf("reading dpkg status: %w", err)
	}

	d := &DEB{}
	for {
		var para struct {
			Package      string
			Status       string
			Version      string
			Architecture string
		}
		if err := decoder.Decode(&para); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parsing dpkg status: %w", err)
		}

		if !strings.HasSuffix(para.Status, " installed") {
			continue
		}

		files, err := installedFiles(root, para.Package, para.Architecture)
		if err != nil {
			// No file list for this package; it can never match.
			continue
		}

		d.entries = append(d.entries, debEntry{
			identity: fmt.Sprintf("%s-%s-%s (?)", para.Package, para.Version, para.Architecture),
			files:    files,
		})
	}

	return d, nil
}

// Reads the installed-file list dpkg keeps for a package.
//
// Multi-arch packages record their list under "name:arch.list"; older
// entries under plain "name.list".
func installedFiles(root, name, arch string) (map[string]struct{}, error) {
	infoDir := filepath.Join(root, "var/lib/dpkg/info")

	f, err := os.Open(filepath.Join(infoDir, name+":"+arch+".list"))
	if err != nil {
		f, err = os.Open(filepath.Join(infoDir, name+".list"))
		if err != nil {
			return nil, err
		}
	}
	defer f.Close()

	files := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			files[line] = struct{}{}
		}
	}
	return files, scanner.Err()
}

// Returns the identity of the first installed package whose file list
// contains path, scanning packages in status-file order.
//
// No match lands in the [UnknownDEB] sentinel bucket. Directories are
// skipped.
func (d *DEB) Owner(path string) string {
	if isDir(path) {
		return ""
	}

	path = filepath.Clean(path)
	for _, entry := range d.entries {
		if _, ok := entry.files[path]; ok {
			return entry.identity
		}
	}
	return UnknownDEB
}
