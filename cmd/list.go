package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/boxoffice-cli/internal/movie"
	"github.com/KaramelBytes/boxoffice-cli/internal/pipeline"
	"github.com/KaramelBytes/boxoffice-cli/internal/utils"
)

var (
	listJSON  bool
	listLimit int
)

var listCmd = &cobra.Command{
	Use:   "list [source]",
	Short: "List filtered records sorted by opening date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := sourceArg(args)
		if src == "" {
			return fmt.Errorf("no source given and none configured")
		}
		opt, err := pipelineOptions(cmd)
		if err != nil {
			return err
		}
		res, err := pipeline.Run(cmd.Context(), src, fetchOptions(sheetName()), opt)
		if err != nil {
			return err
		}
		recs := res.Kept.Records()
		if listLimit > 0 && len(recs) > listLimit {
			recs = recs[:listLimit]
		}
		out := cmd.OutOrStdout()
		if listJSON {
			b, err := utils.PrettyJSON(recs)
			if err != nil {
				return fmt.Errorf("encode records: %w", err)
			}
			_, err = fmt.Fprintln(out, string(b))
			return err
		}
		if len(recs) == 0 {
			fmt.Fprintln(out, "(no records)")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RANK\tTITLE\tTOTAL GROSS\tTHEATERS\tOPENING\tRATING")
		for _, r := range recs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", rankCell(r), titleCell(r), grossCell(r), theatersCell(r), openingCell(r), ratingCell(r))
		}
		return tw.Flush()
	},
}

func rankCell(r movie.Record) string {
	if n, ok := r.Rank(); ok {
		return strconv.Itoa(n)
	}
	return "-"
}

func titleCell(r movie.Record) string {
	if t, ok := r.Title(); ok {
		return t
	}
	return "(untitled)"
}

func grossCell(r movie.Record) string {
	if g, ok := r.TotalGross(); ok {
		return utils.Monetize(float64(g), 0)
	}
	return "-"
}

func theatersCell(r movie.Record) string {
	if n, ok := r.MaxTheaters(); ok {
		return strconv.Itoa(n)
	}
	return "-"
}

func openingCell(r movie.Record) string {
	if d, ok := r.OpeningDate(); ok {
		return movie.FormatDate(d)
	}
	return "-"
}

func ratingCell(r movie.Record) string {
	if v, ok := r.SimplePressRating(); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return "-"
}

func init() {
	rootCmd.AddCommand(listCmd)
	addFilterFlags(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print records as JSON")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "print at most this many records")
}
