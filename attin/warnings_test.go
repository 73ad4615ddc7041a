package attin

import (
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/utdf-to-attin/utils"
)

func TestWarningAggregatorCounts(t *testing.T) {
	agg := NewWarningAggregator()
	agg.Add(utils.Warning{Kind: WarningNodeNotFound, Subject: "101"})
	agg.Add(utils.Warning{Kind: WarningNodeNotFound, Subject: "102"})
	agg.AddAll([]utils.Warning{
		{Kind: WarningNodeNotFound, Subject: "103"},
		{Kind: WarningNodeNotFound, Subject: "104"},
		{Kind: WarningDuplicateHandle, Subject: "H1"},
	})

	counts := agg.Counts()
	if counts[WarningNodeNotFound] != 4 {
		t.Errorf("node-not-found count = %d, expected 4", counts[WarningNodeNotFound])
	}
	if counts[WarningDuplicateHandle] != 1 {
		t.Errorf("duplicate-handle count = %d, expected 1", counts[WarningDuplicateHandle])
	}

	// Examples are capped at 3 even though 4 occurrences were added.
	info := agg.warnings[WarningNodeNotFound]
	if len(info.examples) != 3 {
		t.Errorf("examples = %v, expected cap of 3", info.examples)
	}
}

func TestWarningAggregatorMessage(t *testing.T) {
	agg := NewWarningAggregator()
	agg.Add(utils.Warning{Kind: WarningDuplicateHandle, Subject: "H1"})
	msg := agg.formatWarningMessage(WarningDuplicateHandle, "Downtown", agg.warnings[WarningDuplicateHandle])
	for _, want := range []string{"Downtown", "duplicate HANDLE", "1 occurrences", "H1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}
}
