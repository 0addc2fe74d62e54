package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"titkee.com/techradar/loader"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the tech radar as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		records, err := loader.LoadRecords(cfg.CSVPath)
		if err != nil {
			return err
		}
		logger.WithField("records", len(records)).Debug("tech radar loaded")

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
