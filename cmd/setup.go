package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"rwallet/internal/cli"
	"rwallet/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to rwallet!")
	fmt.Println()

	// 1. Daily goal
	fmt.Println("  1. Daily goal")
	fmt.Printf("     How much do you aim to clear per day? Current: %s\n",
		cli.FormatMoney(cfg.General.DefaultGoal, cfg.General.Currency))
	fmt.Print("     > ")
	goalIn, _ := reader.ReadString('\n')
	goalIn = strings.TrimSpace(goalIn)
	if goalIn != "" {
		cfg.General.DefaultGoal = cli.ParseAmount(goalIn)
	}
	fmt.Println()

	// 2. Vault PIN
	fmt.Println("  2. Vault PIN")
	fmt.Println("     Gates the savings vault screen. Digits only recommended.")
	fmt.Printf("     Current: %s\n", maskPIN(cfg.Vault.PIN))
	fmt.Print("     > ")
	pinIn, _ := reader.ReadString('\n')
	pinIn = strings.TrimSpace(pinIn)
	if pinIn != "" {
		cfg.Vault.PIN = pinIn
	}
	fmt.Println()

	// 3. Day boundary
	fmt.Println("  3. Day rollover time")
	fmt.Println("     (1) 06:00 — late-night shifts count toward the day driven [default]")
	fmt.Println("     (2) midnight")
	fmt.Println("     (3) custom hour")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.BoundaryHour = 0
	case "3":
		fmt.Print("     Hour (0-23) > ")
		hourIn, _ := reader.ReadString('\n')
		if h, err := strconv.Atoi(strings.TrimSpace(hourIn)); err == nil && h >= 0 && h <= 23 {
			cfg.General.BoundaryHour = h
		}
	default:
		cfg.General.BoundaryHour = 6
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `rwallet setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func maskPIN(pin string) string {
	if pin == "" {
		return "(none)"
	}
	return strings.Repeat("*", len(pin))
}
