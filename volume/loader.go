package volume

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Column names of the Synchro UTDF volume export.
const (
	colRecordName = "RECORDNAME"
	colIntID      = "INTID"

	// volumeRecordName marks the rows that carry counts; lane, timing
	// and phasing rows share the same file and are skipped.
	volumeRecordName = "Volume"
)

// Record is one intersection's counts for a single period. IntID is an
// opaque string: it joins against the ATTOUT NODE_ID by exact string
// equality, so leading zeros and formatting are preserved as-is.
type Record struct {
	IntID   string
	Volumes map[MovementCode]Volume
}

// Table is a keyed set of Records for one period.
type Table map[string]Record

// LoadTable parses a UTDF volume export. The first physical line is
// metadata and is skipped without inspection; the second line is the
// real column header and must contain RECORDNAME, INTID and all 16
// movement columns. Only RECORDNAME=="Volume" rows are kept.
//
// A repeated INTID silently overwrites the earlier row (last wins),
// matching the keyed-table build; callers should not rely on it.
func LoadTable(path string, period string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s volume file", period)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "read %s volume file", period)
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s volume file", period)
	}
	if len(rows) == 0 {
		return nil, &FormatError{Period: period, Detail: "no header line after metadata row"}
	}

	header := rows[0]
	idx := func(col string) int {
		for i, h := range header {
			if strings.TrimSpace(h) == col {
				return i
			}
		}
		return -1
	}

	recordIdx := idx(colRecordName)
	intIdx := idx(colIntID)
	moveIdx := make(map[MovementCode]int, len(MovementCodes))
	var missing []string
	if recordIdx < 0 {
		missing = append(missing, colRecordName)
	}
	if intIdx < 0 {
		missing = append(missing, colIntID)
	}
	for _, m := range MovementCodes {
		i := idx(string(m))
		if i < 0 {
			missing = append(missing, string(m))
			continue
		}
		moveIdx[m] = i
	}
	if len(missing) > 0 {
		return nil, &FormatError{
			Period: period,
			Detail: "missing required columns: " + strings.Join(missing, ", "),
		}
	}

	table := make(Table)
	for _, row := range rows[1:] {
		if field(row, recordIdx) != volumeRecordName {
			continue
		}
		rec := Record{
			IntID:   field(row, intIdx),
			Volumes: make(map[MovementCode]Volume, len(MovementCodes)),
		}
		for m, i := range moveIdx {
			rec.Volumes[m] = parseVolume(field(row, i))
		}
		table[rec.IntID] = rec
	}
	return table, nil
}

// field returns row[i], or "" when the row is too short to have it.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseVolume coerces a cell to a Volume. Blank or unparsable cells are
// absent, never zero and never fatal.
func parseVolume(cell string) Volume {
	s := strings.TrimSpace(cell)
	if s == "" {
		return NoVolume()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NoVolume()
	}
	return SomeVolume(v)
}
