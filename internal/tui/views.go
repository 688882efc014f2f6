package tui

import (
	"fmt"
	"strings"

	"rwallet/internal/cli"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
	accentStyle = lipgloss.NewStyle().Foreground(cli.ColorAccent)
	errStyle    = lipgloss.NewStyle().Foreground(cli.ColorRed).Bold(true)
	netStyle    = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.ColorBorder).
			Padding(0, 2).
			Width(24)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(cli.ColorAccent).
			Padding(1, 3)
)

// View implements tea.Model.
func (a App) View() string {
	var body string
	switch a.screen {
	case screenVault:
		body = a.viewVault()
	case screenObjectives:
		body = a.viewObjectives()
	default:
		body = a.viewHome()
	}

	if a.kind != inputNone {
		body += "\n" + a.viewKeypad()
	}
	if a.errMsg != "" && a.kind == inputNone {
		body += "\n  " + errStyle.Render(a.errMsg)
	}
	return body + "\n"
}

func (a App) goalBar(pct int, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(cli.ProgressColor(pct))),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	pctStyle := lipgloss.NewStyle().Foreground(cli.ProgressColor(pct)).Bold(true)
	return bar.ViewAs(float64(pct)/100) + " " + pctStyle.Render(fmt.Sprintf("%d%%", pct))
}

func (a App) card(label string, amount int64) string {
	return cardStyle.Render(
		mutedStyle.Render(label) + "\n" +
			titleStyle.Render(cli.FormatMoney(amount, a.cfg.General.Currency)))
}

func (a App) viewHome() string {
	snap := a.ctl.State()
	day := snap.CurrentDay
	currency := a.cfg.General.Currency

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("RIDER WALLET"))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(day.DayMarker))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", mutedStyle.Render("Daily goal"),
		cli.FormatMoney(day.Goal, currency)))
	b.WriteString("  " + a.goalBar(day.GoalProgress(), 36) + "\n\n")

	b.WriteString("  " + mutedStyle.Render("Net balance") + "\n")
	b.WriteString("  " + netStyle.Render(cli.FormatMoney(day.Net(), currency)) + "\n\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		a.card("Earnings", day.Earnings),
		" ",
		a.card("Owner share", day.OwnerShare),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		a.card("Fuel", day.Fuel),
		" ",
		a.card("Purchases", day.Purchases),
	)
	b.WriteString(indent(top, 2))
	b.WriteString("\n")
	b.WriteString(indent(bottom, 2))
	b.WriteString("\n\n")

	b.WriteString("  " + dimStyle.Render(
		"e earn   s share   f fuel   p purchases   g goal   v vault   o objectives   q quit"))
	return b.String()
}

func (a App) viewVault() string {
	snap := a.ctl.State()
	currency := a.cfg.General.Currency

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("VAULT"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s  %s\n\n",
		mutedStyle.Render("Total savings"),
		netStyle.Render(cli.FormatMoney(snap.VaultBalance(), currency)),
		dimStyle.Render(fmt.Sprintf("(%d entries)", len(snap.Vault)))))

	if len(snap.Vault) == 0 {
		b.WriteString("  " + dimStyle.Render("No vault history yet.") + "\n")
	}
	// Newest first
	for i := len(snap.Vault) - 1; i >= 0; i-- {
		e := snap.Vault[i]
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			mutedStyle.Render(e.Date),
			cli.FormatSigned(e.Amount, currency)))
	}

	b.WriteString("\n  " + dimStyle.Render("w withdraw   esc back   q quit"))
	return b.String()
}

func (a App) viewObjectives() string {
	snap := a.ctl.State()
	currency := a.cfg.General.Currency

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("OBJECTIVES"))
	b.WriteString("\n\n")

	if len(snap.Objectives) == 0 {
		b.WriteString("  " + dimStyle.Render("No objectives yet. Add one with `rwallet obj add`.") + "\n")
	}
	for i, o := range snap.Objectives {
		cursor := "  "
		if i == a.objCursor {
			cursor = accentStyle.Render("> ")
		}
		status := ""
		if o.Completed {
			status = accentStyle.Render("  done")
		}
		b.WriteString(fmt.Sprintf("%s%s  %s / %s%s\n",
			cursor,
			titleStyle.Render(o.Title),
			cli.FormatMoney(o.Paid, currency),
			cli.FormatMoney(o.Target, currency),
			status))
		b.WriteString("    " + a.goalBar(o.Progress(), 28) + "\n")
	}

	b.WriteString("\n  " + dimStyle.Render("j/k move   p pay   esc back   q quit"))
	return b.String()
}

func (a App) viewKeypad() string {
	var b strings.Builder
	b.WriteString(accentStyle.Render(a.notice))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	if a.errMsg != "" {
		b.WriteString("\n" + errStyle.Render(a.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter confirm   esc cancel"))
	return indent(overlayStyle.Render(b.String()), 2)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
