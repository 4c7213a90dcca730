package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] [-- build arguments...]",
		Short: "Run the build under test with the declared properties",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := buildOptions(cmd, args)
			opts.ExpectFailure, _ = cmd.Flags().GetBool("expect-failure")
			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				opts.Output = cmd.OutOrStdout()
			}

			_, err := c.app.Run(cmd.Context(), opts)
			return err
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().Bool("expect-failure", false, "Expect the build to fail")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print the build tool's output")
	return cmd
}
