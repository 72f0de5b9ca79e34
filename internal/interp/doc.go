// Package interp discovers the dynamic loader path recorded in an ELF
// binary.
//
// Every dynamically linked executable carries a PT_INTERP program header
// naming the loader (e.g. /lib64/ld-linux-x86-64.so.2) that the kernel
// maps before the program itself. The packer reads it from a known
// dynamically linked binary, /bin/sh by default, so the loader and its
// link chain always end up in the packed root filesystem.
package interp
