// Package helpers provides fixture builders shared by the integration
// tests: minimal but structurally complete UTDF volume exports and
// ATTOUT attribute exports written to temp directories.
package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/utdf-to-attin/volume"
)

// VolumeHeader is the real column header of a UTDF volume export
// (line 2 of the file; line 1 is free-form metadata).
func VolumeHeader() string {
	cols := []string{"RECORDNAME", "INTID"}
	for _, m := range volume.MovementCodes {
		cols = append(cols, string(m))
	}
	return strings.Join(cols, ",")
}

// VolumeRow renders one Volume data row. moves maps movement code to
// the literal cell content; movements not in the map stay blank.
func VolumeRow(intID string, moves map[volume.MovementCode]string) string {
	fields := []string{"Volume", intID}
	for _, m := range volume.MovementCodes {
		fields = append(fields, moves[m])
	}
	return strings.Join(fields, ",")
}

// WriteVolumeFile writes a UTDF volume export with a metadata first
// line, the real header, and the given data rows.
func WriteVolumeFile(t *testing.T, dir, name string, rows ...string) string {
	t.Helper()
	lines := append([]string{"UTDF volume export", VolumeHeader()}, rows...)
	return WriteFile(t, dir, name, strings.Join(lines, "\n")+"\n")
}

// ATTOUTHeader builds a tab-delimited ATTOUT header with the given
// movement columns after HANDLE, BLOCKNAME and NODE_ID.
func ATTOUTHeader(moves ...volume.MovementCode) string {
	cols := []string{"HANDLE", "BLOCKNAME", "NODE_ID"}
	for _, m := range moves {
		cols = append(cols, string(m))
	}
	return strings.Join(cols, "\t")
}

// WriteFile writes content under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
