package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/journal"
)

var (
	toggleStart int
	toggleEnd   int
)

// toggleCmd represents the toggle command.
var toggleCmd = &cobra.Command{
	Use:   "toggle [file]",
	Short: "Toggle comments on a range of lines",
	Long: `Toggle comment markers on an inclusive range of lines.

If any line in the range is uncommented, every non-blank line in the
range is commented; otherwise one level of comment marker is removed
from each line. Line numbers are zero-based. Without a file argument
the command reads standard input. The result goes to standard output.

Example:
  journalfmt toggle --start 3 --end 5 ledger.journal`,
	Args: cobra.MaximumNArgs(1),
	Run:  runToggle,
}

func init() {
	toggleCmd.Flags().IntVar(&toggleStart, "start", 0, "first line of the range (zero-based)")
	toggleCmd.Flags().IntVar(&toggleEnd, "end", 0, "last line of the range (zero-based, inclusive)")

	toggleCmd.MarkFlagRequired("start")
	toggleCmd.MarkFlagRequired("end")
}

func runToggle(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	exitOnError(err, "failed to load configuration")

	var data []byte
	if len(args) == 0 {
		data, err = io.ReadAll(os.Stdin)
		exitOnError(err, "failed to read stdin")
	} else {
		data, err = os.ReadFile(args[0])
		exitOnError(err, "failed to read file")
	}

	fmt.Print(journal.ToggleComments(string(data), toggleStart, toggleEnd, cfg.Options))
}
