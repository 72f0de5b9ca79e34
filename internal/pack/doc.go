// Package pack runs the end-to-end packing pipeline.
//
// A run reads the input list of observed file references, resolves each
// entry through the symlink closure resolver, adds the dynamic loader
// discovered from an ELF binary, prunes redundant folder entries, and
// writes the final sorted set into the output archive while attributing
// every entry to its owning system package.
//
// The pipeline is a single-threaded linear pass: input list, closure,
// prune, emit. Nonexistent or excluded inputs are skipped silently;
// unreadable input lists, missing interpreter segments, link cycles, and
// archive write failures abort the run.
//
// Example usage:
//
//	result, err := pack.Run(ctx, pack.Options{
//	    Input:    "filelist.txt",
//	    Output:   "rootfs.tar",
//	    Interp:   "/bin/sh",
//	    Provider: pkginfo.None{},
//	})
//	if err != nil {
//	    return err
//	}
package pack
