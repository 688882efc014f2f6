// Package cmd implements the rwallet CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rwallet/internal/cli"
	"rwallet/internal/config"
	"rwallet/internal/ledger"
	"rwallet/internal/model"
	"rwallet/internal/settle"
	"rwallet/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "rwallet",
	Short: "Driver daily cash ledger",
	Long:  "Track a driving day's cash flow: earnings, owner share, fuel, purchases, and savings goals, with an automatic nightly sweep of net profit into the vault.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Wallet data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress settlement notices")
}

func dbPath(cfg config.Config) string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "wallet.db")
	}
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "wallet.db")
	}
	return store.DBPath()
}

// openWallet is the shared loading path used by all commands: load config,
// open the store, run the day-boundary reconcile, and persist its outcome.
// The caller closes the returned store.
func openWallet() (*ledger.Controller, config.Config, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, nil, err
	}

	st, err := store.Open(dbPath(cfg))
	if err != nil {
		return nil, cfg, nil, err
	}

	persisted, found, err := st.Load()
	if err != nil {
		_ = st.Close()
		return nil, cfg, nil, err
	}

	var prev *model.AppState
	if found {
		prev = &persisted
	}

	defaults := model.Settings{
		DailyGoal: cfg.General.DefaultGoal,
		VaultPIN:  cfg.Vault.PIN,
	}
	res := settle.Reconcile(prev, time.Now(), cfg.General.BoundaryHour, defaults)
	if res.FirstRun || res.Settled {
		if err := st.Save(res.State); err != nil {
			_ = st.Close()
			return nil, cfg, nil, fmt.Errorf("persisting settlement: %w", err)
		}
	}

	if !flagQuiet {
		switch {
		case res.Swept != nil:
			fmt.Fprintf(os.Stderr, "  Day %s closed: %s swept to vault\n",
				res.Swept.Date, cli.FormatMoney(res.Swept.Amount, cfg.General.Currency))
		case res.Settled:
			fmt.Fprintf(os.Stderr, "  Previous day closed with no profit to sweep\n")
		}
	}

	return ledger.New(st, res.State), cfg, st, nil
}
