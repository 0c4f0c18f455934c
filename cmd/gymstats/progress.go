package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/analytics"
	"github.com/2beens/gymstats/internal/gymstats/stats"

	"github.com/spf13/cobra"
)

func newProgressCmd(opts *rootOptions) *cobra.Command {
	var (
		exerciseIDs []string
		from, to    string
		period      string
	)

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Max, total and average statistics per exercise over a lookback period",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(exerciseIDs) == 0 {
				return fmt.Errorf("at least one --exercise is required")
			}
			for _, d := range []string{from, to} {
				if d == "" {
					continue
				}
				if _, err := time.Parse(time.DateOnly, d); err != nil {
					return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", d)
				}
			}

			rt, err := opts.bootstrap(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			p := rt.cfg.Period()
			if period != "" {
				if p, err = analytics.ParsePeriod(period); err != nil {
					return err
				}
			}

			report, err := rt.service.Progress(cmd.Context(), stats.ProgressParams{
				UserID:      opts.userID,
				ExerciseIDs: exerciseIDs,
				From:        from,
				To:          to,
				Period:      p,
			})
			if err != nil {
				return fmt.Errorf("progress: %w", err)
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return printProgress(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringSliceVar(&exerciseIDs, "exercise", nil, "exercise ids to report on (repeatable)")
	cmd.Flags().StringVar(&from, "from", "", "start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&period, "period", "", "averages window [1week | 1month | 2months | 3months | all]")

	return cmd
}

func printProgress(out io.Writer, report *stats.ProgressReport) error {
	if len(report.Exercises) == 0 {
		_, err := fmt.Fprintln(out, "no sets found for the requested exercises")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "EXERCISE\tMAX\tTOTAL\tSETS\tAVG (%s)\tAVG SETS/DAY\n", report.Period)
	for _, ex := range report.Exercises {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%.1f\n",
			ex.Name,
			analytics.FormatAmount(ex.MaxValue, ex.Type),
			analytics.FormatAmount(ex.TotalValue, ex.Type),
			ex.TotalSets,
			analytics.FormatAmount(ex.AverageValue, ex.Type),
			ex.AverageSets,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, ex := range report.Exercises {
		fmt.Fprintf(out, "\n%s per day\n", ex.Name)
		tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, d := range ex.Daily {
			fmt.Fprintf(tw, "  %s\t%s\t%d sets\n", d.Date, analytics.FormatAmount(d.MaxValue, ex.Type), d.Sets)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if dist := report.Distribution; dist != nil {
		fmt.Fprintf(out, "\ndistribution (%s)\n", report.Period)
		var total float64
		for _, v := range dist.Values {
			total += v
		}
		tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for i, label := range dist.Labels {
			fmt.Fprintf(tw, "  %s\t%g\t%d sets\t%s\n", label, dist.Values[i], dist.Sets[i], analytics.FormatPercentage(dist.Values[i]/total*100))
		}
		return tw.Flush()
	}

	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
