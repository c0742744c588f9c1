// Command proposal собирает промпт, отправляет его на сервер и показывает предложение по разделам.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/proposal-backend/internal/pkg/apperror"
	"github.com/ignatzorin/proposal-backend/internal/render"
)

const (
	Version = "0.1.0"
	appName = "proposal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprint(os.Stderr, render.Renderer{}.Error(userError(err)))
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "AI client proposal generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		generateCmd(),
		parseCmd(),
		promptCmd(),
		savedCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

// userError убирает коды AppError из текста, пользователю нужен только смысл.
func userError(err error) error {
	appErr, ok := apperror.As(err)
	if !ok {
		return err
	}
	if appErr.Cause != nil {
		return fmt.Errorf("%s: %w", appErr.Message, appErr.Cause)
	}
	return errors.New(appErr.Message)
}
