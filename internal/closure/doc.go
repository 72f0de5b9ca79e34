// Package closure computes the transitive set of filesystem paths needed
// to make a given path usable at runtime.
//
// A [Resolver] follows symbolic links depth-first: resolving a symlink
// yields the link itself plus the closure of its target, so a chain like
// /usr/bin/java -> /etc/alternatives/java -> /usr/lib/jvm/.../java
// contributes all three entries. Every candidate is normalized and checked
// against the exclusion policy before it is admitted, including targets
// reached through a link, so a link pointing into an excluded tree is
// dropped even when the link itself is not.
//
// Resolved paths accumulate in a [PathSet], which keeps files and folders
// in disjoint sets routed by the filesystem-object kind, prunes folder
// entries already implied by a more specific file or subfolder, and yields
// the final entries in sorted order for reproducible archives.
package closure
