// Package attin turns the merged volume table and a parsed ATTOUT
// document into the two run outputs: the standalone merged-volume CSV
// and the ATTIN import file consumed by the drawing tooling. It also
// hosts the warning aggregator that summarizes non-fatal anomalies from
// every stage of a run.
package attin
