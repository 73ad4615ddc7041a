package volume

import "strconv"

// MovementCode identifies one turning movement at an intersection:
// approach direction (E/W/N/S + "B" for "bound") plus movement type
// (U-turn, Left, Through, Right).
type MovementCode string

const (
	EBU MovementCode = "EBU"
	EBL MovementCode = "EBL"
	EBT MovementCode = "EBT"
	EBR MovementCode = "EBR"
	WBU MovementCode = "WBU"
	WBL MovementCode = "WBL"
	WBT MovementCode = "WBT"
	WBR MovementCode = "WBR"
	NBU MovementCode = "NBU"
	NBL MovementCode = "NBL"
	NBT MovementCode = "NBT"
	NBR MovementCode = "NBR"
	SBU MovementCode = "SBU"
	SBL MovementCode = "SBL"
	SBT MovementCode = "SBT"
	SBR MovementCode = "SBR"
)

// MovementCodes is the canonical movement order used for the merged CSV
// columns. The ATTIN file instead follows whatever order the ATTOUT
// header declares.
var MovementCodes = []MovementCode{
	EBU, EBL, EBT, EBR,
	WBU, WBL, WBT, WBR,
	NBU, NBL, NBT, NBR,
	SBU, SBL, SBT, SBR,
}

// IsMovementCode reports whether s is one of the 16 recognized codes.
func IsMovementCode(s string) bool {
	switch MovementCode(s) {
	case EBU, EBL, EBT, EBR, WBU, WBL, WBT, WBR,
		NBU, NBL, NBT, NBR, SBU, SBL, SBT, SBR:
		return true
	}
	return false
}

// PMFirst reports whether the combined display string for this movement
// leads with the parenthesized PM value. Eastbound and southbound
// approaches render "(PM)AM"; westbound and northbound render "AM(PM)".
// This grouping is a fixed convention of the downstream tooling.
func (m MovementCode) PMFirst() bool {
	return len(m) > 0 && (m[0] == 'E' || m[0] == 'S')
}

// Volume is a single movement count that may be absent. Blank or
// unparsable cells in the input stay absent; they are never coerced to
// zero.
type Volume struct {
	Value float64
	Valid bool
}

// SomeVolume returns a present Volume.
func SomeVolume(v float64) Volume { return Volume{Value: v, Valid: true} }

// NoVolume returns the absent Volume.
func NoVolume() Volume { return Volume{} }

// display renders the volume as a whole number, truncating any
// fractional part, or "-" when absent.
func (v Volume) display() string {
	if !v.Valid {
		return "-"
	}
	return strconv.Itoa(int(v.Value))
}

// CombinedVolume pairs the AM and PM counts for one movement at one
// intersection. The pair is carried as tagged values until output time;
// nothing downstream re-parses display strings to find out whether a
// value was present.
type CombinedVolume struct {
	AM Volume
	PM Volume
}

// EmptyCell is the display string of a pair with no count in either
// period. It is the same literal for both direction groupings, so a
// reader of the merged CSV sees one placeholder, not two.
const EmptyCell = "-(-)"

// Display renders the combined string for the given movement:
// "(PM)AM" for E/S approaches, "AM(PM)" for W/N. An absent value
// renders as "-"; a pair absent on both sides renders as EmptyCell
// regardless of grouping.
func (c CombinedVolume) Display(m MovementCode) string {
	if c.Empty() {
		return EmptyCell
	}
	am, pm := c.AM.display(), c.PM.display()
	if m.PMFirst() {
		return "(" + pm + ")" + am
	}
	return am + "(" + pm + ")"
}

// Empty reports whether both periods are absent. Empty cells become
// blank fields in the ATTIN file rather than the "-(-)" placeholder.
func (c CombinedVolume) Empty() bool {
	return !c.AM.Valid && !c.PM.Valid
}
