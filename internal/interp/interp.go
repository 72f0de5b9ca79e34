package interp

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"io"
)

var ErrNoInterp = errors.New("no PT_INTERP segment")

// Returns the dynamic loader path embedded in the ELF binary at path.
//
// The PT_INTERP segment stores the loader path NUL-terminated; the
// terminator is stripped. Fails when the file is not ELF or carries no
// interpreter segment (statically linked binaries).
func Loader(path string) (string, error) {
	f, err := elf.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading ELF %s: %w", path, err)
	}
	defer f.Close()

	for _, prog := range f.Progs {
		if prog.Type != elf.PT_INTERP {
			continue
		}

		data := make([]byte, prog.Filesz)
		if _, err := io.ReadFull(prog.Open(), data); err != nil {
			return "", fmt.Errorf("reading PT_INTERP of %s: %w", path, err)
		}

		loader := string(bytes.TrimRight(data, "\x00"))
		if loader == "" {
			return "", fmt.Errorf("%w: %s: empty segment", ErrNoInterp, path)
		}
		return loader, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoInterp, path)
}
