package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/accounts"
	"github.com/shunichi-ikebuchi/journalfmt/pkg/db"
	"github.com/shunichi-ikebuchi/journalfmt/pkg/pathutil"
)

var (
	accountsPrefix  string
	accountsNoCache bool
)

// accountsCmd represents the accounts command.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List account names used in the workspace",
	Long: `List every account name found in the workspace's journal files.

The workspace is scanned recursively for journal files and include
directives are followed. Results are sorted and can be narrowed with a
prefix, which is how editors request completion candidates.

Example:
  journalfmt accounts --workspace ~/ledger
  journalfmt accounts --workspace ~/ledger --prefix expenses:`,
	Run: runAccounts,
}

func init() {
	accountsCmd.Flags().StringVar(&accountsPrefix, "prefix", "", "only list accounts starting with this prefix")
	accountsCmd.Flags().BoolVar(&accountsNoCache, "no-cache", false, "skip the SQLite account cache")
}

func runAccounts(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	exitOnError(err, "failed to load configuration")

	if cfg.Workspace == "" {
		exitOnError(fmt.Errorf("no workspace configured"), "set --workspace, JOURNALFMT_WORKSPACE or the config file")
	}

	resolver := pathutil.New(pathutil.Config{
		WorkspaceRoot: cfg.Workspace,
		CachePath:     cfg.CacheDB,
	})

	var store *db.AccountStore
	if !accountsNoCache {
		conn, err := db.Open(resolver.GetCachePath())
		if err != nil {
			// The cache only speeds up later runs; a scan works without it.
			slog.Warn("account cache unavailable", "error", err)
		} else {
			defer conn.Close()
			store = db.NewAccountStore(conn)
		}
	}

	index := accounts.NewIndex(resolver, store, cfg.RefreshInterval)
	err = index.Refresh()
	exitOnError(err, "failed to scan workspace")

	for _, name := range index.Accounts(accountsPrefix) {
		fmt.Println(name)
	}
}
