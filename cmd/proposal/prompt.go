package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/proposal-backend/internal/proposal"
)

func promptCmd() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt without calling the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), proposal.BuildPrompt(req))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
