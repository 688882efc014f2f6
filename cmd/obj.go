package cmd

import (
	"fmt"
	"strings"

	"rwallet/internal/cli"
	"rwallet/internal/model"

	"github.com/spf13/cobra"
)

var objCmd = &cobra.Command{
	Use:   "obj",
	Short: "List savings objectives",
	RunE:  runObjList,
}

var objAddCmd = &cobra.Command{
	Use:   "add <title> <target>",
	Short: "Create a savings objective",
	Args:  cobra.ExactArgs(2),
	RunE:  runObjAdd,
}

var objPayCmd = &cobra.Command{
	Use:   "pay <id> <amount>",
	Short: "Pay toward an objective (counts against today's net)",
	Args:  cobra.ExactArgs(2),
	RunE:  runObjPay,
}

var objEditCmd = &cobra.Command{
	Use:   "edit <id> <target>",
	Short: "Change an objective's target amount",
	Args:  cobra.ExactArgs(2),
	RunE:  runObjEdit,
}

var objRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an objective (logged payments stay in the ledger)",
	Args:  cobra.ExactArgs(1),
	RunE:  runObjRm,
}

func init() {
	objCmd.AddCommand(objAddCmd)
	objCmd.AddCommand(objPayCmd)
	objCmd.AddCommand(objEditCmd)
	objCmd.AddCommand(objRmCmd)
	rootCmd.AddCommand(objCmd)
}

// resolveObjective accepts a full id, a unique id prefix, or an exact title.
func resolveObjective(st model.AppState, key string) (model.Objective, error) {
	var match model.Objective
	found := 0
	for _, o := range st.Objectives {
		if o.ID == key || o.Title == key {
			return o, nil
		}
		if strings.HasPrefix(o.ID, key) {
			match = o
			found++
		}
	}
	switch found {
	case 0:
		return model.Objective{}, model.ErrNotFound
	case 1:
		return match, nil
	default:
		return model.Objective{}, fmt.Errorf("id prefix %q is ambiguous", key)
	}
}

func runObjList(_ *cobra.Command, _ []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	snap := ctl.State()
	if len(snap.Objectives) == 0 {
		fmt.Println("\n  No objectives yet. Add one with `rwallet obj add <title> <target>`.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(snap.Objectives))
	for _, o := range snap.Objectives {
		status := ""
		if o.Completed {
			status = "done"
		}
		rows = append(rows, []string{
			cli.ShortID(o.ID),
			o.Title,
			cli.FormatMoney(o.Paid, cfg.General.Currency),
			cli.FormatMoney(o.Target, cfg.General.Currency),
			cli.FormatPercent(o.Progress()),
			status,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "OBJECTIVES",
		Headers: []string{"ID", "Title", "Paid", "Target", "Progress", ""},
		Rows:    rows,
	}))
	return nil
}

func runObjAdd(_ *cobra.Command, args []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	obj, err := ctl.AddObjective(args[0], cli.ParseAmount(args[1]))
	if err != nil {
		return err
	}
	fmt.Printf("  Objective %q added with target %s (id %s)\n",
		obj.Title, cli.FormatMoney(obj.Target, cfg.General.Currency), cli.ShortID(obj.ID))
	return nil
}

func runObjPay(_ *cobra.Command, args []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	obj, err := resolveObjective(ctl.State(), args[0])
	if err != nil {
		return err
	}
	amount := cli.ParseAmount(args[1])
	if err := ctl.PayObjective(obj.ID, amount); err != nil {
		return err
	}

	snap := ctl.State()
	paid := snap.Objectives[snap.FindObjective(obj.ID)]
	fmt.Printf("  Paid %s toward %q: %s of %s (%s)\n",
		cli.FormatMoney(amount, cfg.General.Currency), paid.Title,
		cli.FormatMoney(paid.Paid, cfg.General.Currency),
		cli.FormatMoney(paid.Target, cfg.General.Currency),
		cli.FormatPercent(paid.Progress()))
	if paid.Completed {
		fmt.Printf("  %q is complete.\n", paid.Title)
	}
	return nil
}

func runObjEdit(_ *cobra.Command, args []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	obj, err := resolveObjective(ctl.State(), args[0])
	if err != nil {
		return err
	}
	target := cli.ParseAmount(args[1])
	if err := ctl.EditObjectiveTarget(obj.ID, target); err != nil {
		return err
	}
	fmt.Printf("  Target for %q set to %s\n", obj.Title, cli.FormatMoney(target, cfg.General.Currency))
	return nil
}

func runObjRm(_ *cobra.Command, args []string) error {
	ctl, _, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	obj, err := resolveObjective(ctl.State(), args[0])
	if err != nil {
		return err
	}
	if err := ctl.DeleteObjective(obj.ID); err != nil {
		return err
	}
	fmt.Printf("  Objective %q deleted\n", obj.Title)
	return nil
}
