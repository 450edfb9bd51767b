package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/boxoffice-cli/internal/analysis"
	"github.com/KaramelBytes/boxoffice-cli/internal/pipeline"
	"github.com/KaramelBytes/boxoffice-cli/internal/utils"
)

var (
	sumOutputPath string
	sumTopN       int
	sumOutliers   bool
	sumOutlierThr float64
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [source]",
	Short: "Produce a Markdown summary of the filtered dataset and its trend",
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
		ropt := analysis.DefaultOptions()
		if sumTopN > 0 {
			ropt.TopN = sumTopN
		}
		if cmd.Flags().Changed("outliers") {
			ropt.Outliers = sumOutliers
		}
		if sumOutlierThr > 0 {
			ropt.OutlierThreshold = sumOutlierThr
		}

		res, err := pipeline.Run(cmd.Context(), src, fetchOptions(sheetName()), opt)
		if err != nil {
			return err
		}
		rep := res.Report(ropt)

		if strings.EqualFold(filepath.Ext(sumOutputPath), ".pdf") {
			title := "Box office summary"
			if cfg != nil && cfg.Title != "" {
				title = cfg.Title
			}
			var buf bytes.Buffer
			if err := rep.WritePDF(&buf, title); err != nil {
				return err
			}
			if err := utils.SafeWriteFile(sumOutputPath, buf.Bytes()); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote PDF summary to %s\n", sumOutputPath)
			return nil
		}
		md := rep.Markdown()
		if sumOutputPath != "" {
			if err := utils.SafeWriteFile(sumOutputPath, []byte(md)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote summary to %s\n", sumOutputPath)
			return nil
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	addFilterFlags(summarizeCmd)
	summarizeCmd.Flags().StringVarP(&sumOutputPath, "output", "o", "", "write the report to this path instead of stdout; .pdf writes a PDF")
	summarizeCmd.Flags().IntVar(&sumTopN, "top", 0, "number of top grossers to list (default 10)")
	summarizeCmd.Flags().BoolVar(&sumOutliers, "outliers", true, "count robust-z outliers per metric")
	summarizeCmd.Flags().Float64Var(&sumOutlierThr, "outlier-threshold", 0, "robust |z| threshold (default 3.5)")
}
