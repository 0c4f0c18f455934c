package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/2beens/gymstats/internal/gymstats/analytics"

	"github.com/spf13/cobra"
)

func newWorkoutCmd(opts *rootOptions) *cobra.Command {
	var workoutID string

	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Density and intensity of a single workout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workoutID == "" {
				return fmt.Errorf("--id is required")
			}

			rt, err := opts.bootstrap(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			summary, err := rt.service.WorkoutSummary(cmd.Context(), opts.userID, workoutID)
			if err != nil {
				return fmt.Errorf("workout summary: %w", err)
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			return printWorkoutSummary(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().StringVar(&workoutID, "id", "", "workout id")

	return cmd
}

func printWorkoutSummary(out io.Writer, s *analytics.WorkoutSummary) error {
	fmt.Fprintf(out, "%s (%s, %s)\n", s.Name, s.Date.Format(time.DateOnly), analytics.FormatWorkoutDuration(s.DurationMinutes))
	fmt.Fprintf(out, "density: %.3f/s  intensity: %s (%s)\n\n", s.Density, analytics.FormatPercentage(s.Intensity), s.IntensityTier)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EXERCISE\tSETS\tTOTAL\tBEST\tDENSITY\tINTENSITY")
	for _, ex := range s.Exercises {
		intensity := "-"
		if ex.Intensity != nil {
			intensity = fmt.Sprintf("%s (%s)", analytics.FormatPercentage(*ex.Intensity), ex.Tier)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d %s/min\t%s\n",
			ex.Name,
			ex.Sets,
			analytics.FormatAmount(ex.Total, ex.Type),
			analytics.FormatAmount(ex.Best, ex.Type),
			ex.DensityDisplay.PerMinute,
			ex.DensityDisplay.Unit,
			intensity,
		)
	}
	return tw.Flush()
}
