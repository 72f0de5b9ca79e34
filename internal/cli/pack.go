package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/rootpack/rootpack/internal/exclude"
	"github.com/rootpack/rootpack/internal/pack"
	"github.com/rootpack/rootpack/internal/pkginfo"
)

// Interpreter source used when neither the flag nor the config file
// names one. /bin/sh is dynamically linked on every mainstream distro.
const defaultInterp = "/bin/sh"

// Represents the 'rootpack pack' command.
type PackCmd struct {
	Input      string   `short:"i" required:"" type:"existingfile" placeholder:"LIST" help:"Input list file, one path or bare executable name per line."`
	Output     string   `short:"o" required:"" placeholder:"ARCHIVE" help:"Output archive path (.tar, .tar.gz, .tgz)."`
	ExclFile   []string `name:"excl-file" placeholder:"PREFIX" help:"Additional file exclusion prefix (repeatable)."`
	ExclFolder []string `name:"excl-folder" placeholder:"PREFIX" help:"Additional folder exclusion prefix (repeatable)."`
	Interp     string   `placeholder:"PATH" help:"ELF binary to read the dynamic loader from (default /bin/sh)."`
	MaxDepth   int      `name:"max-depth" default:"40" help:"Maximum symlink chain length before giving up."`
	Config     string   `short:"c" placeholder:"FILE" help:"YAML config file extending the built-in exclusions."`
	RPM        bool     `xor:"backend" help:"Attribute packed paths using the RPM database."`
	DEB        bool     `xor:"backend" help:"Attribute packed paths using the dpkg database."`
}

// Executes the pack command.
func (c *PackCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	rules := exclude.New(
		append(cfg.Exclude.Files, c.ExclFile...),
		append(cfg.Exclude.Folders, c.ExclFolder...),
	)

	interpSrc := c.Interp
	if interpSrc == "" {
		interpSrc = cfg.Interp
	}
	if interpSrc == "" {
		interpSrc = defaultInterp
	}

	result, err := pack.Run(ctx, pack.Options{
		Input:    c.Input,
		Output:   c.Output,
		Rules:    rules,
		Interp:   interpSrc,
		MaxDepth: c.MaxDepth,
		Provider: c.provider(),
	})
	if err != nil {
		return err
	}

	if c.RPM || c.DEB {
		if _, err := result.Report.WriteTo(os.Stdout); err != nil {
			return err
		}
	}

	return nil
}

// Returns the attribution provider for the requested backend.
//
// A backend that cannot be loaded is reported and attribution degrades
// to none; packing itself is never blocked.
func (c *PackCmd) provider() pkginfo.Provider {
	switch {
	case c.RPM:
		p, err := pkginfo.NewRPM("/")
		if err != nil {
			slog.Warn("RPM attribution unavailable", "error", err)
			return pkginfo.None{}
		}
		return p

	case c.DEB:
		p, err := pkginfo.NewDEB("/")
		if err != nil {
			slog.Warn("DEB attribution unavailable", "error", err)
			return pkginfo.None{}
		}
		return p
	}

	return pkginfo.None{}
}
