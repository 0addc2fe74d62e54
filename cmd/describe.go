package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describePrompt string

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Ask the model about one technology on the radar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		svc, err := newRadarService(cfg, logger)
		if err != nil {
			return err
		}

		records, err := svc.Snapshot()
		if err != nil {
			return err
		}

		answer, err := svc.DescribeOne(cmd.Context(), records, args[0], describePrompt)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
		return err
	},
}

func init() {
	describeCmd.Flags().StringVarP(&describePrompt, "prompt", "p", "", "instruction for the model (default: an amusing description)")
	rootCmd.AddCommand(describeCmd)
}
