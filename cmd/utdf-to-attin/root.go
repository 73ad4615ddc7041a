package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/utdf-to-attin/config"
	"github.com/theoremus-urban-solutions/utdf-to-attin/pipeline"
	"github.com/theoremus-urban-solutions/utdf-to-attin/utils"
)

const lockFileName = ".utdf-to-attin.lock"

func newRootCommand() *cobra.Command {
	var (
		amPath     string
		pmPath     string
		attoutPath string
		outputDir  string
		name       string
		configPath string
		scenario   string
	)

	rootCmd := &cobra.Command{
		Use:           "utdf-to-attin",
		Short:         "Merge AM/PM UTDF volume exports onto an ATTOUT attribute export",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.InitLogging()

			opts := pipeline.Options{
				AMPath:       amPath,
				PMPath:       pmPath,
				ATTOUTPath:   attoutPath,
				OutputDir:    outputDir,
				ScenarioName: name,
			}
			if configPath != "" || scenario != "" {
				if err := config.LoadAppConfig(configPath); err != nil {
					return err
				}
				sc, ok := config.SelectScenario(scenario)
				if !ok {
					return errors.Errorf("scenario %q not found in config", scenario)
				}
				opts = applyScenario(opts, sc)
			}
			if opts.AMPath == "" || opts.PMPath == "" || opts.ATTOUTPath == "" || opts.OutputDir == "" {
				return errors.New("need --am, --pm, --attout and --out (or --config/--scenario)")
			}
			if opts.ScenarioName == "" {
				opts.ScenarioName = "scenario"
			}

			// One run per output directory at a time. Two concurrent
			// runs sharing a directory and name would overwrite each
			// other mid-write; the lock makes that a refusal instead.
			lock := flock.New(filepath.Join(opts.OutputDir, lockFileName))
			locked, err := lock.TryLock()
			if err != nil {
				return errors.Wrap(err, "acquire output directory lock")
			}
			if !locked {
				return errors.Errorf("another run is already writing to %s", opts.OutputDir)
			}
			defer lock.Unlock()

			runID := uuid.NewString()
			log.Printf("Run %s: scenario %s", runID, opts.ScenarioName)

			res, err := pipeline.Run(opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), summaryTable(res))
			return nil
		},
	}

	rootCmd.Flags().StringVar(&amPath, "am", "", "AM volume CSV path")
	rootCmd.Flags().StringVar(&pmPath, "pm", "", "PM volume CSV path")
	rootCmd.Flags().StringVar(&attoutPath, "attout", "", "ATTOUT TXT path")
	rootCmd.Flags().StringVar(&outputDir, "out", "", "Existing output directory")
	rootCmd.Flags().StringVar(&name, "name", "", "Scenario name used for output filenames")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&scenario, "scenario", "", "Scenario name from config.scenarios[]")

	return rootCmd
}

// applyScenario fills in options from a config scenario, keeping any
// value already set by an explicit flag.
func applyScenario(opts pipeline.Options, sc config.Scenario) pipeline.Options {
	if opts.AMPath == "" {
		opts.AMPath = sc.AMPath
	}
	if opts.PMPath == "" {
		opts.PMPath = sc.PMPath
	}
	if opts.ATTOUTPath == "" {
		opts.ATTOUTPath = sc.ATTOUTPath
	}
	if opts.OutputDir == "" {
		opts.OutputDir = sc.OutputDir
	}
	if opts.ScenarioName == "" {
		opts.ScenarioName = sc.Name
	}
	return opts
}

func summaryTable(res *pipeline.Result) string {
	rows := [][]string{
		{"AM volume records", strconv.Itoa(res.AMRecords)},
		{"PM volume records", strconv.Itoa(res.PMRecords)},
		{"Merged nodes", strconv.Itoa(res.MergedNodes)},
		{"ATTOUT data rows", strconv.Itoa(res.ATTOUTRecords)},
		{"ATTIN lines written", strconv.Itoa(res.ATTINLines)},
		{"Merged CSV", res.MergedCSVPath},
		{"ATTIN file", res.ATTINPath},
	}

	kinds := make([]string, 0, len(res.WarningCounts))
	for kind := range res.WarningCounts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		rows = append(rows, []string{"warning: " + kind, strconv.Itoa(res.WarningCounts[kind])})
	}

	return renderTable(
		[]string{"Run summary", ""},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}
