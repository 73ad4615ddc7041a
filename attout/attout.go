package attout

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/theoremus-urban-solutions/utdf-to-attin/utils"
	"github.com/theoremus-urban-solutions/utdf-to-attin/volume"
)

// Required attribute columns. NODE_ID is the join key against the
// merged volume table; HANDLE identifies the drawing entity.
const (
	ColHandle    = "HANDLE"
	ColBlockName = "BLOCKNAME"
	ColNodeID    = "NODE_ID"
)

// Warning kinds produced while parsing.
const (
	WarningLineTooShort       = "attout_line_too_short"
	WarningLinePadded         = "attout_line_padded"
	WarningFewMovementColumns = "attout_few_movement_columns"
)

// FormatError reports a structural problem with the ATTOUT export:
// an empty file, a header without tabs, or missing required columns.
type FormatError struct {
	Detail string
}

func (e *FormatError) Error() string {
	return "ATTOUT file: " + e.Detail
}

// Record is one data row, zipped against the header. Handle, BlockName
// and NodeID are pulled out through the header index map built at parse
// start; Fields keeps every column value verbatim, aligned with
// Document.Columns.
type Record struct {
	Handle    string
	BlockName string
	NodeID    string
	Fields    []string
}

// Document is a parsed ATTOUT export.
type Document struct {
	// RawHeader is the header line exactly as read (trimmed of the
	// line terminator); the ATTIN file re-emits it verbatim.
	RawHeader string
	Columns   []string
	// MovementOrder lists the header columns that name a movement
	// code, in header order. This order, not the canonical one,
	// drives the ATTIN movement columns.
	MovementOrder []volume.MovementCode
	Records       []Record
}

// Parse reads a tab-delimited ATTOUT attribute export. The header must
// be tab-delimited and contain HANDLE, BLOCKNAME and NODE_ID. Data
// lines are tolerated generously: blank lines are skipped, lines with
// fewer than 3 fields are dropped with a warning, and lines shorter
// than the header are right-padded with empty fields (AutoCAD omits
// trailing tabs for empty attributes).
func Parse(path string) (*Document, []utils.Warning, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open ATTOUT file")
	}
	if len(b) == 0 {
		return nil, nil, &FormatError{Detail: "file is empty"}
	}

	lines := strings.Split(string(b), "\n")
	rawHeader := strings.TrimSpace(lines[0])
	if !strings.Contains(rawHeader, "\t") {
		return nil, nil, &FormatError{Detail: "header is not tab-delimited"}
	}

	cols := splitFields(rawHeader)
	colIdx := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, ok := colIdx[c]; !ok {
			colIdx[c] = i
		}
	}
	var missing []string
	for _, req := range []string{ColHandle, ColBlockName, ColNodeID} {
		if _, ok := colIdx[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &FormatError{
			Detail: "header missing required columns: " + strings.Join(missing, ", "),
		}
	}

	doc := &Document{RawHeader: rawHeader, Columns: cols}
	var warnings []utils.Warning

	for _, c := range cols {
		if volume.IsMovementCode(c) {
			doc.MovementOrder = append(doc.MovementOrder, volume.MovementCode(c))
		}
	}
	if len(doc.MovementOrder) != len(volume.MovementCodes) {
		warnings = append(warnings, utils.Warning{
			Kind:    WarningFewMovementColumns,
			Subject: fmt.Sprintf("%d of %d recognized", len(doc.MovementOrder), len(volume.MovementCodes)),
		})
	}

	for i, line := range lines[1:] {
		content := strings.TrimSpace(line)
		if content == "" {
			continue
		}
		lineNo := i + 2 // physical line number, header is line 1

		parts := splitFields(content)
		if len(parts) < 3 {
			warnings = append(warnings, utils.Warning{
				Kind:    WarningLineTooShort,
				Subject: fmt.Sprintf("line %d (%d fields)", lineNo, len(parts)),
			})
			continue
		}
		if len(parts) < len(cols) {
			warnings = append(warnings, utils.Warning{
				Kind:    WarningLinePadded,
				Subject: fmt.Sprintf("line %d", lineNo),
			})
			padded := make([]string, len(cols))
			copy(padded, parts)
			parts = padded
		}

		doc.Records = append(doc.Records, Record{
			Handle:    parts[colIdx[ColHandle]],
			BlockName: parts[colIdx[ColBlockName]],
			NodeID:    parts[colIdx[ColNodeID]],
			Fields:    parts,
		})
	}
	return doc, warnings, nil
}

// splitFields splits on tab and trims whitespace from each field.
func splitFields(line string) []string {
	parts := strings.Split(line, "\t")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
