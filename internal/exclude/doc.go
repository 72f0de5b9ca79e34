// Package exclude decides which filesystem paths never belong in a
// packed root filesystem.
//
// A [Ruleset] holds two prefix lists: one matched against file paths and
// one against folder paths. The built-in prefixes cover trees that are
// virtual, ephemeral, or Docker-in-Docker noise and are always present;
// user-supplied prefixes extend them for a run. Matching is a plain
// string prefix test, not segment-aware: "/tmpfoo" matches the folder
// prefix "/tmp". Downstream tooling depends on this loose behavior, so
// it is kept as-is rather than hardened to segment boundaries.
package exclude
