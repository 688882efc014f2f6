// Package tui provides the interactive Bubble Tea wallet.
package tui

import (
	"fmt"

	"rwallet/internal/cli"
	"rwallet/internal/config"
	"rwallet/internal/ledger"
	"rwallet/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenHome screen = iota
	screenVault
	screenObjectives
)

// inputKind identifies what the keypad overlay is currently capturing.
type inputKind int

const (
	inputNone inputKind = iota
	inputEarnings   // step one of the earnings flow
	inputOwnerShare // step two, pending earnings carried
	inputShare      // standalone owner-share deduction
	inputFuel
	inputPurchases
	inputGoal
	inputPIN
	inputWithdraw
	inputObjPay
)

// App is the root Bubble Tea model.
type App struct {
	ctl *ledger.Controller
	cfg config.Config

	width  int
	height int
	screen screen

	// Keypad overlay state. pending is non-nil only between the two
	// earnings steps; cancelling drops it without touching the ledger.
	input   textinput.Model
	kind    inputKind
	pending *ledger.PendingEarnings

	payObjID  string
	objCursor int

	vaultUnlocked bool

	notice string
	errMsg string
}

// NewApp creates the wallet TUI over an already-reconciled controller.
func NewApp(ctl *ledger.Controller, cfg config.Config) App {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 12
	ti.Width = 20

	return App{
		ctl:   ctl,
		cfg:   cfg,
		input: ti,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a *App) openInput(kind inputKind, title string) {
	a.kind = kind
	a.errMsg = ""
	a.notice = title
	a.input.SetValue("")
	if kind == inputPIN {
		a.input.EchoMode = textinput.EchoPassword
		a.input.EchoCharacter = '*'
	} else {
		a.input.EchoMode = textinput.EchoNormal
	}
	a.input.Focus()
}

// closeInput dismisses the keypad. Any pending earnings amount is discarded,
// so an abandoned flow has zero observable effect.
func (a *App) closeInput() {
	a.kind = inputNone
	a.pending = nil
	a.notice = ""
	a.input.Blur()
	a.input.SetValue("")
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.kind != inputNone {
			return a.updateInput(msg)
		}
		return a.updateScreen(msg)
	}

	return a, nil
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		a.closeInput()
		return a, nil

	case "enter":
		return a.confirmInput()
	}

	// The keypad only accepts digits.
	if msg.Type == tea.KeyRunes {
		digits := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' {
				digits = append(digits, r)
			}
		}
		if len(digits) == 0 {
			return a, nil
		}
		msg.Runes = digits
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) confirmInput() (tea.Model, tea.Cmd) {
	value := a.input.Value()
	amount := cli.ParseAmount(value)

	var err error
	switch a.kind {
	case inputEarnings:
		p := a.ctl.BeginEarnings(amount)
		a.pending = &p
		a.openInput(inputOwnerShare, "Owner share for this earning")
		return a, nil

	case inputOwnerShare:
		if a.pending != nil {
			err = a.ctl.CommitEarnings(*a.pending, amount)
		}

	case inputShare:
		err = a.ctl.RecordDeduction(model.OpOwnerShare, amount, "owner share")

	case inputFuel:
		err = a.ctl.RecordDeduction(model.OpFuel, amount, "fuel")

	case inputPurchases:
		err = a.ctl.RecordDeduction(model.OpPurchases, amount, "purchases")

	case inputGoal:
		err = a.ctl.SetGoal(amount)

	case inputWithdraw:
		err = a.ctl.WithdrawFromVault(amount)

	case inputObjPay:
		err = a.ctl.PayObjective(a.payObjID, amount)

	case inputPIN:
		if a.ctl.VerifyVaultPIN(value) {
			a.vaultUnlocked = true
			a.screen = screenVault
			a.closeInput()
		} else {
			// Rejection, not an error: clear and let the user retry
			a.errMsg = "Wrong PIN"
			a.input.SetValue("")
		}
		return a, nil
	}

	a.closeInput()
	if err != nil {
		a.errMsg = err.Error()
	}
	return a, nil
}

func (a App) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.screen {
	case screenHome:
		switch key {
		case "e":
			a.openInput(inputEarnings, "Add earnings")
		case "s":
			a.openInput(inputShare, "Deduct owner share")
		case "f":
			a.openInput(inputFuel, "Deduct fuel spend")
		case "p":
			a.openInput(inputPurchases, "Deduct purchases")
		case "g":
			a.openInput(inputGoal, "Change daily goal")
		case "v":
			a.vaultUnlocked = false
			a.openInput(inputPIN, "Enter vault PIN")
		case "o":
			a.objCursor = 0
			a.screen = screenObjectives
		}

	case screenVault:
		switch key {
		case "esc":
			// Vault locks again on leave
			a.vaultUnlocked = false
			a.screen = screenHome
		case "w":
			a.openInput(inputWithdraw, "Withdraw from vault")
		}

	case screenObjectives:
		snap := a.ctl.State()
		switch key {
		case "esc":
			a.screen = screenHome
		case "j", "down":
			if a.objCursor < len(snap.Objectives)-1 {
				a.objCursor++
			}
		case "k", "up":
			if a.objCursor > 0 {
				a.objCursor--
			}
		case "p", "enter":
			if a.objCursor < len(snap.Objectives) {
				obj := snap.Objectives[a.objCursor]
				a.payObjID = obj.ID
				a.openInput(inputObjPay, fmt.Sprintf("Pay toward %q", obj.Title))
			}
		}
	}

	return a, nil
}
