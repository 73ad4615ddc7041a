package volume

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const volumeHeader = "RECORDNAME,INTID,EBU,EBL,EBT,EBR,WBU,WBL,WBT,WBR,NBU,NBL,NBT,NBR,SBU,SBL,SBT,SBR"

func writeVolumeFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "volumes.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeVolumeFile(t,
		"UTDF volume export, metadata line is not a header",
		volumeHeader,
		"Lanes,101,0,1,2,1,0,1,2,1,0,1,2,1,0,1,2,1",
		"Volume,101,,10,250.7,,,,,,,,,,,,,",
		"Volume,0042,5,,,,,,,,,,,,,,,",
	)

	table, err := LoadTable(path, "AM")
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 volume records, got %d", len(table))
	}

	rec, ok := table["101"]
	if !ok {
		t.Fatal("intersection 101 missing")
	}
	if v := rec.Volumes[EBL]; !v.Valid || v.Value != 10 {
		t.Errorf("EBL = %+v, expected valid 10", v)
	}
	if v := rec.Volumes[EBT]; !v.Valid || v.Value != 250.7 {
		t.Errorf("EBT = %+v, expected valid 250.7", v)
	}
	if v := rec.Volumes[EBU]; v.Valid {
		t.Errorf("blank EBU should be absent, got %+v", v)
	}

	// Leading zeros survive: the key is an opaque string.
	if _, ok := table["0042"]; !ok {
		t.Error("intersection key 0042 should keep its leading zero")
	}
	if _, ok := table["42"]; ok {
		t.Error("intersection key must not be numerically normalized")
	}
}

func TestLoadTableSkipsNonVolumeRows(t *testing.T) {
	path := writeVolumeFile(t,
		"metadata",
		volumeHeader,
		"Lanes,7,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1",
		"Timing,7,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1",
	)
	table, err := LoadTable(path, "AM")
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("expected no records from non-Volume rows, got %d", len(table))
	}
}

func TestLoadTableUnparsableCellsBecomeAbsent(t *testing.T) {
	path := writeVolumeFile(t,
		"metadata",
		volumeHeader,
		"Volume,5,n/a,12,,xx, 7 ,,,,,,,,,,,",
	)
	table, err := LoadTable(path, "PM")
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	rec := table["5"]
	if rec.Volumes[EBU].Valid {
		t.Error("n/a should be absent, not an error")
	}
	if rec.Volumes[EBR].Valid {
		t.Error("xx should be absent")
	}
	if v := rec.Volumes[WBU]; !v.Valid || v.Value != 7 {
		t.Errorf("whitespace-wrapped number should parse, got %+v", v)
	}
}

func TestLoadTableDuplicateKeyLastWins(t *testing.T) {
	path := writeVolumeFile(t,
		"metadata",
		volumeHeader,
		"Volume,9,1,,,,,,,,,,,,,,,",
		"Volume,9,2,,,,,,,,,,,,,,,",
	)
	table, err := LoadTable(path, "AM")
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("expected 1 record, got %d", len(table))
	}
	if v := table["9"].Volumes[EBU]; !v.Valid || v.Value != 2 {
		t.Errorf("expected later row to win, got %+v", v)
	}
}

func TestLoadTableMissingColumns(t *testing.T) {
	path := writeVolumeFile(t,
		"metadata",
		"RECORDNAME,INTID,EBL,WBT", // 14 movement columns missing
		"Volume,1,10,20",
	)
	_, err := LoadTable(path, "PM")
	if err == nil {
		t.Fatal("expected FormatError for missing columns")
	}
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T: %v", err, err)
	}
	if fe.Period != "PM" {
		t.Errorf("FormatError should name the PM load, got %q", fe.Period)
	}
	if !strings.Contains(fe.Error(), "EBU") {
		t.Errorf("error should name missing columns, got %q", fe.Error())
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.csv"), "AM")
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if !strings.Contains(err.Error(), "AM") {
		t.Errorf("error should identify the AM load, got %q", err.Error())
	}
}

func TestLoadTableFirstLineNeverValidated(t *testing.T) {
	// The metadata line may contain anything, including stray quotes
	// that are not valid CSV.
	path := writeVolumeFile(t,
		`"unbalanced quote metadata`,
		volumeHeader,
		"Volume,3,,,,,,,,,,,,,,,,",
	)
	table, err := LoadTable(path, "AM")
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if _, ok := table["3"]; !ok {
		t.Error("record after skipped metadata line should load")
	}
}
