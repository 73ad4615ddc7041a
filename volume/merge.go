package volume

import "sort"

// MergedRow holds the combined AM/PM counts for one intersection.
type MergedRow struct {
	IntID string
	Cells map[MovementCode]CombinedVolume
}

// MergedTable is the outer join of an AM and a PM table. NodeIDs lists
// the union of keys in sorted order and fixes the merged CSV row order.
type MergedTable struct {
	Rows    map[string]MergedRow
	NodeIDs []string
}

// Merge outer-joins the two period tables on intersection key. Every
// key present in either input appears in the result; the side missing a
// key contributes absent volumes for all 16 movements.
func Merge(am, pm Table) MergedTable {
	keys := make(map[string]struct{}, len(am)+len(pm))
	for k := range am {
		keys[k] = struct{}{}
	}
	for k := range pm {
		keys[k] = struct{}{}
	}

	merged := MergedTable{
		Rows:    make(map[string]MergedRow, len(keys)),
		NodeIDs: make([]string, 0, len(keys)),
	}
	for k := range keys {
		merged.NodeIDs = append(merged.NodeIDs, k)
	}
	sort.Strings(merged.NodeIDs)

	for _, k := range merged.NodeIDs {
		row := MergedRow{
			IntID: k,
			Cells: make(map[MovementCode]CombinedVolume, len(MovementCodes)),
		}
		amRec, amOK := am[k]
		pmRec, pmOK := pm[k]
		for _, m := range MovementCodes {
			var c CombinedVolume
			if amOK {
				c.AM = amRec.Volumes[m]
			}
			if pmOK {
				c.PM = pmRec.Volumes[m]
			}
			row.Cells[m] = c
		}
		merged.Rows[k] = row
	}
	return merged
}
