package attin

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/theoremus-urban-solutions/utdf-to-attin/volume"
)

// MergedCSVNodeColumn is the key-column header of the merged CSV.
const MergedCSVNodeColumn = "Node ID"

// WriteMergedCSV renders the merged volume table to a CSV file: a
// "Node ID" column followed by the 16 movements in canonical order, one
// row per intersection in sorted node-ID order. Every cell carries its
// combined display string, including the "-(-)" placeholder when both
// periods are absent; only the ATTIN file blanks those out.
func WriteMergedCSV(path string, merged volume.MergedTable) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, 1+len(volume.MovementCodes))
	header = append(header, MergedCSVNodeColumn)
	for _, m := range volume.MovementCodes {
		header = append(header, string(m))
	}
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "render merged CSV header")
	}

	for _, id := range merged.NodeIDs {
		row := merged.Rows[id]
		record := make([]string, 0, len(header))
		record = append(record, id)
		for _, m := range volume.MovementCodes {
			record = append(record, row.Cells[m].Display(m))
		}
		if err := w.Write(record); err != nil {
			return errors.Wrap(err, "render merged CSV row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "render merged CSV")
	}
	return writeFileAtomic(path, buf.Bytes())
}

// WriteATTIN writes the ATTIN file: the original ATTOUT header line
// verbatim, then the assembled data lines joined by newlines with no
// trailing blank line.
func WriteATTIN(path string, rawHeader string, lines []string) error {
	content := rawHeader + "\n" + strings.Join(lines, "\n")
	return writeFileAtomic(path, []byte(content))
}

// writeFileAtomic writes to a temp file in the destination directory
// and renames it into place, so a failed run never leaves a partial
// file under the final name.
func writeFileAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+base+"-*")
	if err != nil {
		return errors.Wrapf(err, "create temp file for %s", base)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "write %s", base)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "close %s", base)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "chmod %s", base)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "rename %s into place", base)
	}
	return nil
}
