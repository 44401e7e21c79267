package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-seed/internal/pipeline"
)

func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show row counts of all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			counts, err := pipeline.Status(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-20s  %-8s  %8s\n", "Table", "Status", "Rows")
			for _, c := range counts {
				status := "Missing"
				if c.Exists {
					status = "Present"
				}
				fmt.Fprintf(out, "%-20s  %-8s  %8d\n", c.Table, status, c.Rows)
			}
			return nil
		},
	}

	storeFlags(cmd)
	return cmd
}
