// Package attout parses the AutoCAD ATTOUT attribute export: a
// tab-delimited text file with one header line and one line per block
// reference. The parser keeps the header verbatim for re-emission,
// records which movement-code columns the header declares and in what
// order, and tolerates the short rows AutoCAD produces when trailing
// attributes are empty.
package attout
