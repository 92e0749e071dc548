package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/catalog"
	"mercator-hq/ganymede/pkg/cli"
)

var runsFlags struct {
	runID      string
	status     string
	pathPrefix string
	since      string
	limit      int
	format     string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Query recorded parse outcomes",
	Long: `Query the parse catalog for recorded outcomes.

The --since flag accepts either an RFC3339 timestamp or a relative duration
such as "24h".

Examples:
  # Last 20 records
  ganymede runs --limit 20

  # Failures from the last day
  ganymede runs --status syntax --since 24h

  # Everything one scan run produced, as CSV
  ganymede runs --run 2f9c... --format csv`,
	RunE: runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().StringVar(&runsFlags.runID, "run", "", "filter by scan run id")
	runsCmd.Flags().StringVar(&runsFlags.status, "status", "", "filter by outcome (ok, syntax, truncated, resource, depth, io)")
	runsCmd.Flags().StringVar(&runsFlags.pathPrefix, "path-prefix", "", "filter by path prefix")
	runsCmd.Flags().StringVar(&runsFlags.since, "since", "", "filter by record age (RFC3339 or duration like 24h)")
	runsCmd.Flags().IntVar(&runsFlags.limit, "limit", 50, "maximum number of records (0 for all)")
	runsCmd.Flags().StringVarP(&runsFlags.format, "format", "f", "text", "output format (text, json, csv)")
}

// recordList renders catalog records as a table for text and CSV output.
type recordList []*catalog.Record

func (recordList) TableHeader() []string {
	return []string{"RECORDED", "STATUS", "PATH", "SIZE", "NODES", "DEPTH", "DURATION", "RUN"}
}

func (l recordList) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, r := range l {
		rows = append(rows, []string{
			r.RecordedAt.Format(time.RFC3339),
			string(r.Status),
			r.Path,
			strconv.FormatInt(r.Size, 10),
			strconv.Itoa(r.NodeCount),
			strconv.Itoa(r.TreeDepth),
			r.Duration.String(),
			r.RunID,
		})
	}
	return rows
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	query := catalog.Query{
		RunID:      runsFlags.runID,
		Status:     catalog.Status(runsFlags.status),
		PathPrefix: runsFlags.pathPrefix,
		Limit:      runsFlags.limit,
	}

	if runsFlags.since != "" {
		since, err := parseSince(runsFlags.since)
		if err != nil {
			return cli.NewCommandError("runs", err)
		}
		query.Since = since
	}

	store, err := openStorage(cfg)
	if err != nil {
		return cli.NewCommandError("runs", err)
	}
	defer store.Close()

	ctx := cli.SetupSignalHandler()
	records, err := store.Query(ctx, query)
	if err != nil {
		return cli.NewCommandError("runs", err)
	}

	if len(records) == 0 && runsFlags.format == "text" {
		fmt.Println("no records")
		return nil
	}

	formatter := cli.NewFormatter(cli.OutputFormat(runsFlags.format))
	return formatter.FormatTo(os.Stdout, recordList(records))
}

// parseSince accepts an RFC3339 timestamp or a relative duration.
func parseSince(value string) (time.Time, error) {
	if d, err := time.ParseDuration(value); err == nil {
		return time.Now().Add(-d), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since value %q: want RFC3339 or a duration", value)
	}
	return t, nil
}
