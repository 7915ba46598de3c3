// Package cmd provides CLI commands for journalfmt.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/config"
)

var (
	cfgFile string
	envFile string
	debug   bool

	flagAmountColumn  int
	flagAlignment     string
	flagIndentWidth   int
	flagNegativeStyle string
	flagDateFormat    string
	flagCommentChar   string
	flagWorkspace     string
	flagCacheDB       string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "journalfmt",
	Short: "Format and inspect plain-text accounting journals",
	Long: `journalfmt is a deterministic formatter for hledger-style journal
files. It aligns posting amounts, normalizes dates and transaction headers,
sorts transactions chronologically, toggles comments, and suggests balancing
amounts for incomplete transactions.

Example:
  journalfmt fmt --write ledger.journal
  journalfmt sort ledger.journal
  journalfmt balance --account assets:cash --line 3 ledger.journal
  journalfmt accounts --prefix expenses:`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .journalfmt.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "env file to load (default is .env when present)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Formatting option flags shadow the config file and environment.
	rootCmd.PersistentFlags().IntVar(&flagAmountColumn, "amount-column", 0, "target column for fixed alignment")
	rootCmd.PersistentFlags().StringVar(&flagAlignment, "alignment", "", "alignment mode: widest or fixed")
	rootCmd.PersistentFlags().IntVar(&flagIndentWidth, "indent-width", 0, "posting indentation in spaces")
	rootCmd.PersistentFlags().StringVar(&flagNegativeStyle, "negative-style", "", "negative amount style: symbol-before-sign or sign-before-symbol")
	rootCmd.PersistentFlags().StringVar(&flagDateFormat, "date-format", "", "date format: YYYY-MM-DD, YYYY/MM/DD or YYYY.MM.DD")
	rootCmd.PersistentFlags().StringVar(&flagCommentChar, "comment-char", "", "comment character used when commenting lines")
	rootCmd.PersistentFlags().StringVar(&flagWorkspace, "workspace", "", "workspace root scanned for account names")
	rootCmd.PersistentFlags().StringVar(&flagCacheDB, "cache-db", "", "account cache database path")

	// Add subcommands
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(accountsCmd)
}

// loadConfig resolves configuration with any changed flags as overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("amount-column") {
		o.AmountColumn = &flagAmountColumn
	}
	if flags.Changed("alignment") {
		o.Alignment = &flagAlignment
	}
	if flags.Changed("indent-width") {
		o.IndentWidth = &flagIndentWidth
	}
	if flags.Changed("negative-style") {
		o.NegativeStyle = &flagNegativeStyle
	}
	if flags.Changed("date-format") {
		o.DateFormat = &flagDateFormat
	}
	if flags.Changed("comment-char") {
		o.CommentChar = &flagCommentChar
	}
	if flags.Changed("workspace") {
		o.Workspace = &flagWorkspace
	}
	if flags.Changed("cache-db") {
		o.CacheDB = &flagCacheDB
	}
	return config.Load(o, cfgFile, envFile)
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
