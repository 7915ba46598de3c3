package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/journal"
)

var (
	balanceAccount string
	balanceLine    int
	balanceCursor  int
)

// balanceCmd represents the balance command.
var balanceCmd = &cobra.Command{
	Use:   "balance [file]",
	Short: "Suggest the balancing amount for an incomplete transaction",
	Long: `Compute the amount that balances the transaction at a given line.

The transaction must have exactly one posting without an amount and all
its amounts must share one currency. The suggestion is printed together
with the whitespace padding that aligns it with the other postings, so
an editor can insert it verbatim. Without a file argument the command
reads standard input.

Example:
  journalfmt balance --account assets:cash --line 3 ledger.journal
  journalfmt balance --account assets:cash --line 3 --cursor 16 ledger.journal`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBalance,
}

func init() {
	balanceCmd.Flags().StringVar(&balanceAccount, "account", "", "account of the posting missing an amount (required)")
	balanceCmd.Flags().IntVar(&balanceLine, "line", 0, "zero-based line inside the transaction (required)")
	balanceCmd.Flags().IntVar(&balanceCursor, "cursor", -1, "cursor column used for alignment (default is after the account name)")

	balanceCmd.MarkFlagRequired("account")
	balanceCmd.MarkFlagRequired("line")
}

func runBalance(cmd *cobra.Command, args []string) {
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

	tx, ok := journal.TransactionAt(string(data), balanceLine)
	if !ok {
		fmt.Fprintln(os.Stderr, "no transaction at that line")
		os.Exit(1)
	}

	var ctx *journal.BalanceContext
	if balanceCursor >= 0 {
		ctx = &journal.BalanceContext{
			CurrentLineText: balanceAccount,
			CursorColumn:    balanceCursor,
		}
	}

	suggestion, ok := journal.CalculateBalancingAmount(tx, cfg.Options, balanceAccount, ctx)
	if !ok {
		fmt.Fprintln(os.Stderr, "no balancing amount to suggest")
		os.Exit(1)
	}
	fmt.Println(suggestion)
}
