package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/harcmp/internal/compare"
	"github.com/roach88/harcmp/internal/har"
	"github.com/roach88/harcmp/internal/record"
	"github.com/roach88/harcmp/internal/report"
	"github.com/roach88/harcmp/internal/store"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Output          string
	DB              string
	NoDB            bool
	TimeThresholdMs float64
	ConfigPath      string
}

// CompareSummary is the machine-readable result of a compare invocation.
type CompareSummary struct {
	BaselineRecords  int    `json:"baseline_records"`
	CandidateRecords int    `json:"candidate_records"`
	Added            int    `json:"added"`
	Removed          int    `json:"removed"`
	Matched          int    `json:"matched"`
	ChangedPairs     int    `json:"changed_pairs"`
	Report           string `json:"report"`
	BaselineRunID    string `json:"baseline_run_id,omitempty"`
	CandidateRunID   string `json:"candidate_run_id,omitempty"`
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <baseline.har> <candidate.har>",
		Short: "Compare two HAR captures and write an HTML report",
		Long: `Compare a baseline capture against a candidate capture.

Both captures are normalized, stored in the run database, paired by
endpoint signature (REST) or operation and query (GraphQL), and diffed.
The result is written as a standalone HTML report.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "compare.html", "output HTML file")
	cmd.Flags().StringVar(&opts.DB, "db", "harcmp.db", "SQLite database for storing runs")
	cmd.Flags().BoolVar(&opts.NoDB, "no-db", false, "skip run persistence")
	cmd.Flags().Float64Var(&opts.TimeThresholdMs, "time-threshold", compare.DefaultTimeThresholdMs, "duration delta in ms above which a pair counts as time-changed")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")

	return cmd
}

func runCompare(opts *CompareOptions, baselinePath, candidatePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	log := NewLogger(cmd.ErrOrStderr(), opts.Verbose)

	if opts.ConfigPath != "" {
		cfg, err := LoadConfig(opts.ConfigPath)
		if err != nil {
			formatter.Error("E_CONFIG", err.Error(), nil)
			return WrapExitError(ExitCommandError, "config", err)
		}
		applyConfig(opts, cfg, cmd)
	}

	baseline, err := loadCapture(baselinePath, formatter)
	if err != nil {
		return err
	}
	candidate, err := loadCapture(candidatePath, formatter)
	if err != nil {
		return err
	}
	log.Debug().Int("baseline", len(baseline)).Int("candidate", len(candidate)).Msg("captures loaded")

	baseRecs := record.NormalizeAll(baseline)
	candRecs := record.NormalizeAll(candidate)

	summary := CompareSummary{
		BaselineRecords:  len(baseRecs),
		CandidateRecords: len(candRecs),
		Report:           opts.Output,
	}

	if !opts.NoDB {
		ids, err := persistRuns(cmd, opts.DB, baselinePath, candidatePath, baseRecs, candRecs)
		if err != nil {
			formatter.Error("E_STORE", err.Error(), nil)
			return WrapExitError(ExitCommandError, "persist runs", err)
		}
		summary.BaselineRunID, summary.CandidateRunID = ids[0], ids[1]
		log.Debug().Str("baseline_run", ids[0]).Str("candidate_run", ids[1]).Msg("runs stored")
	}

	res := compare.Records(baseRecs, candRecs, compare.Options{TimeThresholdMs: opts.TimeThresholdMs})
	summary.Added = len(res.Added)
	summary.Removed = len(res.Removed)
	summary.Matched = len(res.Changed)
	for _, row := range res.Changed {
		if row.Badges.AnyChanged {
			summary.ChangedPairs++
		}
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		formatter.Error("E_REPORT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "create report", err)
	}
	defer out.Close()
	if err := report.Render(out, res); err != nil {
		formatter.Error("E_REPORT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "write report", err)
	}

	return formatter.Successf(summary,
		"%d added, %d removed, %d changed of %d matched pairs; report written to %s",
		summary.Added, summary.Removed, summary.ChangedPairs, summary.Matched, summary.Report)
}

// applyConfig fills options from the config file for flags the user did not
// set explicitly. Command-line flags always win.
func applyConfig(opts *CompareOptions, cfg Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if cfg.Output != "" && !flags.Changed("output") {
		opts.Output = cfg.Output
	}
	if cfg.DB != "" && !flags.Changed("db") {
		opts.DB = cfg.DB
	}
	if cfg.TimeThresholdMs > 0 && !flags.Changed("time-threshold") {
		opts.TimeThresholdMs = cfg.TimeThresholdMs
	}
}

func loadCapture(path string, formatter *OutputFormatter) ([]record.RawEntry, error) {
	entries, err := har.Load(path)
	if err != nil {
		formatter.Error("E_CAPTURE", err.Error(), map[string]string{"path": path})
		return nil, WrapExitError(ExitCommandError, "load capture", err)
	}
	formatter.VerboseLog("Loaded %d entries from %s", len(entries), path)
	return entries, nil
}

// persistRuns stores both capture sides and returns their run IDs in
// baseline, candidate order.
func persistRuns(cmd *cobra.Command, dbPath, baselineFile, candidateFile string, baseline, candidate []record.TransactionRecord) ([2]string, error) {
	var ids [2]string

	st, err := store.Open(dbPath)
	if err != nil {
		return ids, err
	}
	defer st.Close()

	ctx := cmd.Context()
	absBase, _ := filepath.Abs(baselineFile)
	absCand, _ := filepath.Abs(candidateFile)

	if ids[0], err = st.SaveRun(ctx, "baseline", absBase, baseline); err != nil {
		return ids, err
	}
	if ids[1], err = st.SaveRun(ctx, "candidate", absCand, candidate); err != nil {
		return ids, err
	}
	return ids, nil
}
