package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/proposal-backend/internal/client"
	"github.com/ignatzorin/proposal-backend/internal/config"
	"github.com/ignatzorin/proposal-backend/internal/domain/entity"
	"github.com/ignatzorin/proposal-backend/internal/proposal"
	"github.com/ignatzorin/proposal-backend/internal/render"
	"github.com/ignatzorin/proposal-backend/internal/tui"
	"github.com/ignatzorin/proposal-backend/internal/usecase/saved"
)

// resultOutput формат --json для generate и parse.
type resultOutput struct {
	Result   string                `json:"result"`
	Kind     string                `json:"kind"`
	Sections *proposal.SectionMap  `json:"sections"`
	Saved    *entity.SavedProposal `json:"saved,omitempty"`
}

func newResultOutput(text string, res proposal.ParseResult) resultOutput {
	out := resultOutput{Result: text, Kind: res.Kind.String()}
	if sections, ok := res.Sections(); ok {
		out.Sections = sections
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func generateCmd() *cobra.Command {
	var (
		flags     requestFlags
		save      bool
		asJSON    bool
		noSpinner bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a proposal via the proxy server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			prompt := proposal.BuildPrompt(req)
			c := client.New(cfg.ServerURL, cfg.Timeout)
			task := func(ctx context.Context) (string, error) {
				return c.Generate(ctx, prompt)
			}

			var text string
			if noSpinner || asJSON {
				text, err = task(ctx)
			} else {
				text, err = tui.RunWithSpinner(ctx, cmd.ErrOrStderr(), "Generating proposal...", task)
			}
			if err != nil {
				return err
			}

			res := proposal.ParseSections(text)
			out := newResultOutput(text, res)
			r := render.Renderer{}

			var count int
			if save {
				repo, closeRepo, err := openRepository(ctx, cfg)
				if err != nil {
					return err
				}
				defer closeRepo()

				out.Saved, count, err = saved.NewSaveProposalUseCase(repo).Execute(ctx, req, text)
				if err != nil {
					return err
				}
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			fmt.Fprint(cmd.OutOrStdout(), r.Result(res, text))
			if save {
				fmt.Fprint(cmd.ErrOrStderr(), r.Note(fmt.Sprintf("Saved locally. Saved: %d", count)))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&save, "save", false, "Save the generated text to local storage")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Do not show the progress spinner")

	return cmd
}
