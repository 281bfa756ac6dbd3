package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/promaxdigital/casestudy/internal/convert"
)

func newConvertCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Write every sheet of the source workbook as a CSV file",
		Long: `Reads the configured workbook (default "public/Data/EA - Group04.xlsx")
and writes one <sheet name>.csv per sheet into the source data directory
(default "public/Data/source_data"). Any failure aborts the whole run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := convert.NewService(c.logger)
			result, err := svc.Convert(cmd.Context(), c.cfg.Workbook, c.cfg.SourceDataDir)
			if err != nil {
				c.logger.Error("conversion failed", zap.Error(err))
				return err
			}

			out := cmd.OutOrStdout()
			for _, sh := range result.Sheets {
				fmt.Fprintf(out, "Converted sheet %q -> %s\n", sh.Sheet, sh.Path)
			}
			fmt.Fprintf(out, "All %d sheets processed.\n", len(result.Sheets))
			return nil
		},
	}
}
