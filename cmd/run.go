package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/statpick/internal/app"
)

// runApp launches the terminal UI, or the line-based wizard when stdin or
// stdout is not a terminal.
func runApp(cmd *cobra.Command) error {
	if !isInteractive() {
		rt.logger.Info("no terminal attached, using line mode")
		return runConsole(cmd)
	}
	rt.logger.Info("launching terminal ui", zap.String("locale", rt.cfg.Locale))
	return app.Run(app.Options{
		Catalog: rt.catalog,
		Logger:  rt.logger,
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func isInteractive() bool {
	return isTerminal(os.Stdout) && isTerminal(os.Stdin)
}
