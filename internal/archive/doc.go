// Package archive writes resolved paths into the output tar archive.
//
// A [Writer] is opened once per run, written sequentially, and closed
// exactly once. File entries preserve their metadata and content, symlink
// entries carry their raw link target so reconstructed chains resolve the
// same way, and folder entries are expanded recursively. Entry names are
// the source paths with the leading slash stripped, the usual tar
// convention, which keeps the output consumable by docker import.
//
// Output ending in .gz or .tgz is gzip-compressed transparently. The
// writer also digests every byte it emits, so a run can report a content
// digest of the archive it produced.
package archive
