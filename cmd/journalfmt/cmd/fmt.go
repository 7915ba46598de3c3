package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/journal"
)

var writeInPlace bool

// fmtCmd represents the fmt command.
var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format journal files",
	Long: `Format journal files deterministically.

Dates are normalized, transaction headers are re-spaced, and posting
amounts are aligned on their first digit. Without file arguments the
command formats standard input. With --write files are rewritten in
place; otherwise formatted text goes to standard output.

Example:
  journalfmt fmt ledger.journal
  journalfmt fmt --write *.journal
  cat ledger.journal | journalfmt fmt`,
	Run: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "rewrite files in place instead of printing")
}

func runFmt(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	exitOnError(err, "failed to load configuration")

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		exitOnError(err, "failed to read stdin")
		fmt.Print(journal.Format(string(data), cfg.Options))
		return
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		exitOnError(err, "failed to read file")

		formatted := journal.Format(string(data), cfg.Options)
		if !writeInPlace {
			fmt.Print(formatted)
			continue
		}
		if formatted == string(data) {
			slog.Debug("already formatted", "path", path)
			continue
		}
		err = os.WriteFile(path, []byte(formatted), 0o644)
		exitOnError(err, "failed to write file")
		slog.Info("formatted", "path", path)
	}
}
