package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/proposal-backend/internal/config"
	"github.com/ignatzorin/proposal-backend/internal/render"
	"github.com/ignatzorin/proposal-backend/internal/usecase/saved"
)

func savedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Work with locally saved proposals",
	}
	cmd.AddCommand(savedListCmd())
	return cmd
}

func savedListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved proposals, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			repo, closeRepo, err := openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			items, err := saved.NewListSavedProposalsUseCase(repo).Execute(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			r := render.Renderer{}
			fmt.Fprint(cmd.OutOrStdout(), r.Saved(items))
			fmt.Fprint(cmd.OutOrStdout(), r.Note(fmt.Sprintf("Saved: %d", len(items))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the list as JSON")
	return cmd
}
