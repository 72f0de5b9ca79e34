// Package pkginfo attributes packed paths to the installed system
// packages that own them.
//
// A [Provider] maps a path to a package identity string. The RPM variant
// reads the host RPM database and answers by exact installed-file lookup;
// the DEB variant scans the dpkg status file and the per-package
// installed-file lists. Paths whose owner cannot be determined fall into
// a per-backend sentinel bucket instead of failing the run. Directories
// are never attributed.
//
// Attribution results accumulate in a [Report], grouped by package
// identity in discovery order, and are printed at the end of a run.
package pkginfo
