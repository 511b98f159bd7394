package cmd

import (
	"fmt"
	"os"

	"riskcalc/pkg/reports"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSampleCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the sample report PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.renderer().RenderFile(reports.SampleRecord(), out); err != nil {
				return fmt.Errorf("sample report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample PDF: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "sample_report.pdf", "output path")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Validate a PDF report",
		Long:  `Checks that a PDF is structurally valid and prints its page count.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			if err := pdfapi.Validate(f, nil); err != nil {
				return fmt.Errorf("invalid PDF %s: %w", path, err)
			}
			if _, err := f.Seek(0, 0); err != nil {
				return err
			}
			pages, err := pdfapi.PageCount(f, nil)
			if err != nil {
				return fmt.Errorf("count pages of %s: %w", path, err)
			}

			a.log.Debug("pdf verified", zap.String("path", path), zap.Int("pages", pages))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid PDF, %d page(s)\n", path, pages)
			return nil
		},
	}
}
