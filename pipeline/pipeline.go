package pipeline

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/theoremus-urban-solutions/utdf-to-attin/attin"
	"github.com/theoremus-urban-solutions/utdf-to-attin/attout"
	"github.com/theoremus-urban-solutions/utdf-to-attin/utils"
	"github.com/theoremus-urban-solutions/utdf-to-attin/volume"
)

// Output filename suffixes, appended to the sanitized scenario name.
const (
	MergedCSVSuffix = "_Merged.csv"
	ATTINSuffix     = "_ATTIN.txt"
)

// Options identifies one processing run. OutputDir must already exist
// and be writable; the pipeline does not create directories. Callers
// running scenarios concurrently must give each run its own OutputDir.
type Options struct {
	AMPath       string
	PMPath       string
	ATTOUTPath   string
	OutputDir    string
	ScenarioName string
}

// Result reports a completed run: the two absolute output paths, the
// record counts of each stage and the aggregated warning counts by
// kind. Warnings never fail a run; a non-nil Result means both files
// were fully written.
type Result struct {
	MergedCSVPath string
	ATTINPath     string

	AMRecords     int
	PMRecords     int
	MergedNodes   int
	ATTOUTRecords int
	ATTINLines    int

	WarningCounts map[string]int
}

// Run executes the four pipeline stages: load the AM and PM volume
// tables, merge them, parse the ATTOUT export, and emit the merged CSV
// and ATTIN files. Any fatal error aborts the run and leaves no output
// file under its final name; if the ATTIN stage fails after the merged
// CSV was already written, the CSV is removed again so a failed run
// never looks half-successful.
func Run(opts Options) (*Result, error) {
	res, err := run(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %q", opts.ScenarioName)
	}
	return res, nil
}

func run(opts Options) (*Result, error) {
	log.Printf("Starting processing for scenario: %s", opts.ScenarioName)
	log.Printf("AM: %s PM: %s ATTOUT: %s -> %s", opts.AMPath, opts.PMPath, opts.ATTOUTPath, opts.OutputDir)

	if info, err := os.Stat(opts.OutputDir); err != nil {
		return nil, errors.Wrap(err, "output directory")
	} else if !info.IsDir() {
		return nil, errors.Errorf("output directory %s is not a directory", opts.OutputDir)
	}

	am, err := volume.LoadTable(opts.AMPath, "AM")
	if err != nil {
		return nil, err
	}
	log.Printf("Read %d AM volume records", len(am))

	pm, err := volume.LoadTable(opts.PMPath, "PM")
	if err != nil {
		return nil, err
	}
	log.Printf("Read %d PM volume records", len(pm))

	merged := volume.Merge(am, pm)
	log.Printf("Merged data has %d nodes", len(merged.NodeIDs))

	stem := utils.SanitizeName(opts.ScenarioName)
	mergedPath, err := filepath.Abs(filepath.Join(opts.OutputDir, stem+MergedCSVSuffix))
	if err != nil {
		return nil, errors.Wrap(err, "resolve merged CSV path")
	}
	attinPath, err := filepath.Abs(filepath.Join(opts.OutputDir, stem+ATTINSuffix))
	if err != nil {
		return nil, errors.Wrap(err, "resolve ATTIN path")
	}

	if err := attin.WriteMergedCSV(mergedPath, merged); err != nil {
		return nil, err
	}
	log.Printf("Merged CSV saved to: %s", mergedPath)

	agg := attin.NewWarningAggregator()

	doc, parseWarnings, err := attout.Parse(opts.ATTOUTPath)
	if err != nil {
		os.Remove(mergedPath)
		return nil, err
	}
	agg.AddAll(parseWarnings)
	log.Printf("Read %d data rows from ATTOUT", len(doc.Records))

	lines, assembleWarnings := attin.Assemble(doc, merged)
	agg.AddAll(assembleWarnings)

	if err := attin.WriteATTIN(attinPath, doc.RawHeader, lines); err != nil {
		os.Remove(mergedPath)
		return nil, err
	}
	log.Printf("ATTIN file saved to: %s", attinPath)

	agg.LogAll(opts.ScenarioName)
	log.Printf("Processing complete for scenario: %s", opts.ScenarioName)

	return &Result{
		MergedCSVPath: mergedPath,
		ATTINPath:     attinPath,
		AMRecords:     len(am),
		PMRecords:     len(pm),
		MergedNodes:   len(merged.NodeIDs),
		ATTOUTRecords: len(doc.Records),
		ATTINLines:    len(lines),
		WarningCounts: agg.Counts(),
	}, nil
}
