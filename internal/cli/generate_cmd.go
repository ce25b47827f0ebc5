package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(root *rootFlags) *cobra.Command {
	flags := &siteFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write robots.txt into the build output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := flags.rawOptions(cmd)
			if err != nil {
				return err
			}
			runner, err := flags.runner(cmd, root)
			if err != nil {
				return err
			}

			res, err := runner.Run(cmd.Context(), flags.site(), raw)
			if err != nil {
				return classify(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes, env %s)\n", res.Path, len(res.Content), res.Environment)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
