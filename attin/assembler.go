package attin

import (
	"strings"

	"github.com/theoremus-urban-solutions/utdf-to-attin/attout"
	"github.com/theoremus-urban-solutions/utdf-to-attin/utils"
	"github.com/theoremus-urban-solutions/utdf-to-attin/volume"
)

// Assemble builds the ATTIN data lines for a parsed ATTOUT document.
// Records are processed in file order. A record is skipped, with a
// warning, when it lacks any of the three required attributes, repeats
// a HANDLE already seen in this run, or names a NODE_ID the merged
// table does not contain. Movement values follow the ATTOUT header's
// column order; a cell with no count in either period becomes a blank
// field rather than the "-(-)" placeholder.
func Assemble(doc *attout.Document, merged volume.MergedTable) ([]string, []utils.Warning) {
	lines := make([]string, 0, len(doc.Records))
	var warnings []utils.Warning
	seen := make(map[string]struct{}, len(doc.Records))

	for _, rec := range doc.Records {
		if rec.Handle == "" || rec.BlockName == "" || rec.NodeID == "" {
			subject := rec.Handle
			if subject == "" {
				subject = "UNKNOWN"
			}
			warnings = append(warnings, utils.Warning{Kind: WarningMissingRequired, Subject: subject})
			continue
		}
		if _, dup := seen[rec.Handle]; dup {
			warnings = append(warnings, utils.Warning{Kind: WarningDuplicateHandle, Subject: rec.Handle})
			continue
		}
		seen[rec.Handle] = struct{}{}

		row, ok := merged.Rows[rec.NodeID]
		if !ok {
			warnings = append(warnings, utils.Warning{Kind: WarningNodeNotFound, Subject: rec.NodeID})
			continue
		}

		parts := make([]string, 0, 3+len(doc.MovementOrder))
		parts = append(parts, rec.Handle, rec.BlockName, rec.NodeID)
		for _, m := range doc.MovementOrder {
			cell, ok := row.Cells[m]
			if !ok {
				warnings = append(warnings, utils.Warning{Kind: WarningUnknownMovement, Subject: string(m)})
				parts = append(parts, "")
				continue
			}
			if cell.Empty() {
				parts = append(parts, "")
			} else {
				parts = append(parts, cell.Display(m))
			}
		}
		lines = append(lines, strings.Join(parts, "\t"))
	}
	return lines, warnings
}
