package utils

// Warning is one non-fatal anomaly observed while processing a run:
// a dropped geometry line, an unmatched node ID, a duplicate handle.
// Warnings are returned as values by the stage that saw them and
// aggregated once at the end of the run; they never abort processing.
type Warning struct {
	Kind    string
	Subject string
}
