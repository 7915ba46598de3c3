package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/journal"
)

var sortWriteInPlace bool

// sortCmd represents the sort command.
var sortCmd = &cobra.Command{
	Use:   "sort [files...]",
	Short: "Sort transactions chronologically",
	Long: `Sort the transactions in journal files by date.

The sort is stable: transactions sharing a date keep their original
order, and each transaction's own text, including its date formatting,
is left untouched. Content before the first transaction stays at the
top of the file.

Example:
  journalfmt sort ledger.journal
  journalfmt sort --write ledger.journal`,
	Run: runSort,
}

func init() {
	sortCmd.Flags().BoolVarP(&sortWriteInPlace, "write", "w", false, "rewrite files in place instead of printing")
}

func runSort(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		exitOnError(err, "failed to read stdin")
		fmt.Print(journal.Sort(string(data)))
		return
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		exitOnError(err, "failed to read file")

		sorted := journal.Sort(string(data))
		if !sortWriteInPlace {
			fmt.Print(sorted)
			continue
		}
		if sorted == string(data) {
			slog.Debug("already sorted", "path", path)
			continue
		}
		err = os.WriteFile(path, []byte(sorted), 0o644)
		exitOnError(err, "failed to write file")
		slog.Info("sorted", "path", path)
	}
}
