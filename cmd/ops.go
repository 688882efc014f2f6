package cmd

import (
	"fmt"
	"strings"

	"rwallet/internal/cli"
	"rwallet/internal/model"

	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List today's operations",
	RunE:  runOpsList,
}

var opsEditCmd = &cobra.Command{
	Use:   "edit <id> <amount>",
	Short: "Change an operation's amount",
	Args:  cobra.ExactArgs(2),
	RunE:  runOpsEdit,
}

var opsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an operation, reversing its effect on today's totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpsRm,
}

func init() {
	opsCmd.AddCommand(opsEditCmd)
	opsCmd.AddCommand(opsRmCmd)
	rootCmd.AddCommand(opsCmd)
}

// resolveOperation accepts a full id or a unique prefix (as shown by `ops`).
func resolveOperation(st model.AppState, idOrPrefix string) (model.Operation, error) {
	var match model.Operation
	found := 0
	for _, op := range st.CurrentDay.Operations {
		if op.ID == idOrPrefix {
			return op, nil
		}
		if strings.HasPrefix(op.ID, idOrPrefix) {
			match = op
			found++
		}
	}
	switch found {
	case 0:
		return model.Operation{}, model.ErrNotFound
	case 1:
		return match, nil
	default:
		return model.Operation{}, fmt.Errorf("id prefix %q is ambiguous", idOrPrefix)
	}
}

func runOpsList(_ *cobra.Command, _ []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	snap := ctl.State()
	ops := snap.CurrentDay.Operations
	if len(ops) == 0 {
		fmt.Println("\n  No operations logged today.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{
			cli.ShortID(op.ID),
			string(op.Type),
			op.Label,
			cli.FormatMoney(op.Amount, cfg.General.Currency),
			op.Timestamp.Format("15:04"),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("OPERATIONS  %s", snap.CurrentDay.DayMarker),
		Headers: []string{"ID", "Type", "Label", "Amount", "At"},
		Rows:    rows,
	}))
	return nil
}

func runOpsEdit(_ *cobra.Command, args []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	op, err := resolveOperation(ctl.State(), args[0])
	if err != nil {
		return err
	}
	amount := cli.ParseAmount(args[1])
	if err := ctl.EditOperation(op.ID, amount); err != nil {
		return err
	}
	fmt.Printf("  Operation %s set to %s\n", cli.ShortID(op.ID), cli.FormatMoney(amount, cfg.General.Currency))
	return nil
}

func runOpsRm(_ *cobra.Command, args []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	op, err := resolveOperation(ctl.State(), args[0])
	if err != nil {
		return err
	}
	if err := ctl.DeleteOperation(op.ID); err != nil {
		return err
	}
	fmt.Printf("  Deleted %s operation of %s\n", op.Type, cli.FormatMoney(op.Amount, cfg.General.Currency))
	return nil
}
