package cli

import (
	"fmt"
	"strconv"

	"github.com/RMahshie/freqplan/internal/bounds"
	"github.com/RMahshie/freqplan/internal/explorer"
	"github.com/RMahshie/freqplan/internal/render"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/spf13/cobra"
)

func newBandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "List band designations and their bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bands := bounds.Default().Bands()
			if jsonMode(cmd) {
				return writeJSON(cmd.OutOrStdout(), bands)
			}
			rows := make([][]string, len(bands))
			for i, b := range bands {
				rows[i] = []string{b.Label, render.FormatHz(b.Lower), render.FormatHz(b.Upper)}
			}
			writeTable(cmd.OutOrStdout(), []string{"Band", "Lower (Hz)", "Upper (Hz)"}, rows)
			return nil
		},
	}
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List translation targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := bounds.Default().Languages()
			if jsonMode(cmd) {
				return writeJSON(cmd.OutOrStdout(), langs)
			}
			rows := make([][]string, len(langs))
			for i, l := range langs {
				rows[i] = []string{l.Name, l.Code}
			}
			writeTable(cmd.OutOrStdout(), []string{"Language", "Code"}, rows)
			return nil
		},
	}
}

func newSliderCmd() *cobra.Command {
	var (
		start, end int
		axis       string
	)
	cmd := &cobra.Command{
		Use:   "slider",
		Short: "Show the records selected by a slider range",
		Long:  "Positions run from 0 to 110 in steps of 10; each selects one segment of the spectrum.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExplorer(cmd.Context(), func(exp explorer.Explorer) error {
				res, err := exp.SliderView(start, end, models.Axis(axis))
				if err != nil {
					return err
				}
				if jsonMode(cmd) {
					return writeJSON(cmd.OutOrStdout(), res)
				}
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, headline(res.Headline))
				fmt.Fprintf(w, "%d records\n", res.Count)
				writeAllocationRows(w, res.Rows)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&start, "start", bounds.SliderMin, "start position")
	cmd.Flags().IntVar(&end, "end", bounds.SliderMax, "end position")
	cmd.Flags().StringVar(&axis, "axis", string(models.AxisBoth), "lower, upper or both")
	return cmd
}

func newSearchCmd() *cobra.Command {
	var (
		q           explorer.BandQuery
		status      string
		orientation string
		html        bool
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a band for allocations with translated terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Status = models.Status(status)
			q.Orientation = models.Orientation(orientation)
			return withExplorer(cmd.Context(), func(exp explorer.Explorer) error {
				res, err := exp.BandSearch(cmd.Context(), q)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				switch {
				case jsonMode(cmd):
					return writeJSON(w, res)
				case res.Empty:
					fmt.Fprintln(w, failure(res.Message))
					return nil
				case html:
					fmt.Fprint(w, res.HTML)
					return nil
				}

				rows := make([][]string, len(res.Blocks))
				for i, b := range res.Blocks {
					term := b.TranslatedTerm
					if b.Fallback {
						term += " (untranslated)"
					}
					rows[i] = []string{term, render.FormatHz(b.Lower), render.FormatHz(b.Upper), b.Color}
				}
				fmt.Fprintln(w, headline(fmt.Sprintf("%s: %d allocations", res.Band, res.Count)))
				writeTable(w, []string{"Term", "Lower (Hz)", "Upper (Hz)", "Colour"}, rows)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&q.Band, "band", bounds.AllBands, "band designation")
	cmd.Flags().StringVar(&q.Term, "term", explorer.AllTerms, "term to keep")
	cmd.Flags().StringVar(&q.Language, "language", "English", "translation target")
	cmd.Flags().StringVar(&status, "status", string(models.StatusPrimary), "primary or secondary")
	cmd.Flags().StringVar(&orientation, "orientation", string(models.OrientationHorizontal), "horizontal or vertical (with --html)")
	cmd.Flags().BoolVar(&html, "html", false, "print the styled block markup")
	return cmd
}

func newLookupCmd() *cobra.Command {
	var unit, edge string
	cmd := &cobra.Command{
		Use:   "lookup NUMBER",
		Short: "Check whether a frequency is used as a lower or upper bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", explorer.ErrInvalidNumber, args[0])
			}
			return withExplorer(cmd.Context(), func(exp explorer.Explorer) error {
				res, err := exp.Lookup(number, unit, models.Edge(edge))
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if jsonMode(cmd) {
					return writeJSON(w, res)
				}
				if res.Free {
					fmt.Fprintln(w, success(res.Message))
					return nil
				}
				fmt.Fprintln(w, headline(res.Message))
				writeAllocationRows(w, res.Rows)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "KHz", "KHz, MHz or GHz")
	cmd.Flags().StringVar(&edge, "edge", string(models.EdgeLower), "lower or upper")
	return cmd
}

func newGroupCmd() *cobra.Command {
	group := &cobra.Command{
		Use:   "group",
		Short: "Group the table on a term or a status",
	}
	group.AddCommand(
		newGroupSubcommand("term TERM", "List every record with a term", func(exp explorer.Explorer, key string) (*explorer.GroupResult, error) {
			return exp.GroupByTerm(key)
		}),
		newGroupSubcommand("status STATUS", "List every record with a status", func(exp explorer.Explorer, key string) (*explorer.GroupResult, error) {
			return exp.GroupByStatus(key)
		}),
	)
	return group
}

func newGroupSubcommand(use, short string, view func(explorer.Explorer, string) (*explorer.GroupResult, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExplorer(cmd.Context(), func(exp explorer.Explorer) error {
				res, err := view(exp, args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if jsonMode(cmd) {
					return writeJSON(w, res)
				}
				if res.Empty {
					fmt.Fprintln(w, failure(explorer.MessageNoData))
					return nil
				}
				fmt.Fprintln(w, headline(fmt.Sprintf("%s: %d records", res.Key, res.Count)))
				writeAllocationRows(w, res.Rows)
				return nil
			})
		},
	}
}
