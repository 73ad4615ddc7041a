package attin

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/utdf-to-attin/attout"
	"github.com/theoremus-urban-solutions/utdf-to-attin/utils"
)

// Warning kinds produced during ATTIN assembly.
const (
	WarningMissingRequired = "attin_missing_required"
	WarningDuplicateHandle = "attin_duplicate_handle"
	WarningNodeNotFound    = "attin_node_not_found"
	WarningUnknownMovement = "attin_unknown_movement_column"
)

// warningInfo holds aggregated information about a specific warning kind
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects non-fatal anomalies from every pipeline
// stage and outputs consolidated per-kind summaries at the end of a
// run, instead of one log line per bad row.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example subject
func (w *WarningAggregator) Add(warning utils.Warning) {
	if w.warnings[warning.Kind] == nil {
		w.warnings[warning.Kind] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warning.Kind]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, warning.Subject)
	}
}

// AddAll records a batch of warnings returned by a pipeline stage.
func (w *WarningAggregator) AddAll(warnings []utils.Warning) {
	for _, warning := range warnings {
		w.Add(warning)
	}
}

// Counts returns the number of occurrences per warning kind.
func (w *WarningAggregator) Counts() map[string]int {
	counts := make(map[string]int, len(w.warnings))
	for kind, info := range w.warnings {
		counts[kind] = info.count
	}
	return counts
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(scenario string) {
	if len(w.warnings) == 0 {
		return
	}

	kinds := make([]string, 0, len(w.warnings))
	for kind := range w.warnings {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		log.Printf("%s", w.formatWarningMessage(kind, scenario, w.warnings[kind]))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(kind, scenario string, info *warningInfo) string {
	var description, action string

	switch kind {
	case attout.WarningLineTooShort:
		description = "ATTOUT lines with fewer than 3 fields"
		action = "Dropping these lines"
	case attout.WarningLinePadded:
		description = "ATTOUT lines shorter than the header"
		action = "Right-padding with empty fields"
	case attout.WarningFewMovementColumns:
		description = "fewer movement columns in the ATTOUT header than expected"
		action = "Generating ATTIN with the columns that are present"
	case WarningMissingRequired:
		description = "ATTOUT rows missing HANDLE, BLOCKNAME or NODE_ID"
		action = "Skipping these rows"
	case WarningDuplicateHandle:
		description = "duplicate HANDLEs in ATTOUT"
		action = "Keeping the first occurrence only"
	case WarningNodeNotFound:
		description = "NODE_IDs with no entry in the merged volume table"
		action = "Skipping these rows"
	case WarningUnknownMovement:
		description = "movement columns with no merged data"
		action = "Emitting empty fields"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Scenario %s has %s (%d occurrences). %s. Examples: %s",
		scenario, description, info.count, action, examplesStr)
}
