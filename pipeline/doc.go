// Package pipeline wires the volume, attout and attin stages into one
// synchronous run: three input files in, two output files out, with no
// state shared between runs. Concurrent runs are independent as long as
// each gets its own output directory; guarding a shared directory is
// the caller's job (the CLI takes a lock file for this).
package pipeline
