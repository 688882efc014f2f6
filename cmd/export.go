package cmd

import (
	"fmt"
	"os"

	"rwallet/internal/store"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a JSON backup of the full wallet state",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default: rider-wallet-backup-<day>.json)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	ctl, _, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	snap := ctl.State()
	out := flagExportOut
	if out == "" {
		out = fmt.Sprintf("rider-wallet-backup-%s.json", snap.CurrentDay.DayMarker)
	}

	f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating backup file: %w", err)
	}
	defer f.Close()

	if err := store.ExportJSON(f, snap); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}

	fmt.Printf("  Backup written to %s\n", out)
	return nil
}
