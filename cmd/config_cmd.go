package cmd

import (
	"fmt"

	"rwallet/internal/cli"
	"rwallet/internal/config"
	"rwallet/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default goal:  %s\n", cli.FormatMoney(cfg.General.DefaultGoal, cfg.General.Currency))
	fmt.Printf("    Boundary hour: %02d:00\n", cfg.General.BoundaryHour)
	fmt.Printf("    Currency:      %s\n", cfg.General.Currency)
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data dir:      %s\n", cfg.General.DataDir)
	} else {
		fmt.Printf("    Data dir:      %s\n", store.DataDir())
	}
	fmt.Println()

	fmt.Println("  [Vault]")
	fmt.Printf("    PIN: %s\n", maskPIN(cfg.Vault.PIN))
	fmt.Println()

	fmt.Println("  Run `rwallet setup` to reconfigure.")
	return nil
}
