package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newArgsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "args [flags] [-- build arguments...]",
		Short: "Print the arguments a run would pass to the build tool, one per line",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := c.app.Arguments(cmd.Context(), buildOptions(cmd, args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, arg := range final {
				_, _ = fmt.Fprintln(out, arg)
			}
			return nil
		},
	}
	addBuildFlags(cmd)
	return cmd
}
