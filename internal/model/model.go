// Package model defines domain types for the rider wallet ledger.
package model

import (
	"errors"
	"math"
	"time"
)

// ErrNotFound is returned when an operation or objective id does not resolve.
// Callers may ignore it; state is never modified on a failed lookup.
var ErrNotFound = errors.New("id not found")

// OpType identifies the ledger effect of an Operation.
type OpType string

const (
	OpEarnings         OpType = "earnings"
	OpOwnerShare       OpType = "ownerShare"
	OpFuel             OpType = "fuel"
	OpPurchases        OpType = "purchases"
	OpObjectivePayment OpType = "objectivePayment"
)

// Deduction reports whether the type reduces the day's net balance.
func (t OpType) Deduction() bool {
	return t != OpEarnings
}

// Valid reports whether t is a known operation type.
func (t OpType) Valid() bool {
	switch t {
	case OpEarnings, OpOwnerShare, OpFuel, OpPurchases, OpObjectivePayment:
		return true
	}
	return false
}

// Operation is one atomic ledger event. Amounts are stored positive;
// the sign is implied by the type. The timestamp is display-only.
type Operation struct {
	ID        string    `json:"id"`
	Type      OpType    `json:"type"`
	Amount    int64     `json:"amount"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// LedgerDay is the active accounting period: running aggregates plus the
// ordered operation log they are derived from.
type LedgerDay struct {
	DayMarker         string      `json:"dayMarker"`
	Earnings          int64       `json:"earnings"`
	OwnerShare        int64       `json:"ownerShare"`
	Fuel              int64       `json:"fuel"`
	Purchases         int64       `json:"purchases"`
	ObjectivePayments int64       `json:"objectivePayments"`
	Goal              int64       `json:"goal"`
	Operations        []Operation `json:"operations"`
}

// Net returns earnings minus all deductions for the day.
func (d LedgerDay) Net() int64 {
	return d.Earnings - (d.OwnerShare + d.Fuel + d.Purchases + d.ObjectivePayments)
}

// Aggregate returns a pointer to the running total matching t, or nil for an
// unknown type. Every logged operation must be reflected in exactly one of
// these fields.
func (d *LedgerDay) Aggregate(t OpType) *int64 {
	switch t {
	case OpEarnings:
		return &d.Earnings
	case OpOwnerShare:
		return &d.OwnerShare
	case OpFuel:
		return &d.Fuel
	case OpPurchases:
		return &d.Purchases
	case OpObjectivePayment:
		return &d.ObjectivePayments
	}
	return nil
}

// SumOperations returns the sum of logged amounts for the given type.
func (d LedgerDay) SumOperations(t OpType) int64 {
	var sum int64
	for _, op := range d.Operations {
		if op.Type == t {
			sum += op.Amount
		}
	}
	return sum
}

// GoalProgress returns net balance vs goal as a percentage clamped to 0-100.
func (d LedgerDay) GoalProgress() int {
	return clampPct(d.Net(), d.Goal)
}

// Objective is a named savings or debt-payoff goal.
type Objective struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Target    int64  `json:"targetAmount"`
	Paid      int64  `json:"paidAmount"`
	Completed bool   `json:"isCompleted"`
}

// Recompute refreshes the completion flag from paid vs target. Must be
// called after every payment or target edit.
func (o *Objective) Recompute() {
	o.Completed = o.Paid >= o.Target
}

// Progress returns paid vs target as a percentage clamped to 0-100. A target
// of zero or less counts as 100% once anything non-negative has been paid.
func (o Objective) Progress() int {
	return clampPct(o.Paid, o.Target)
}

func clampPct(value, target int64) int {
	if target <= 0 {
		if value >= 0 {
			return 100
		}
		return 0
	}
	pct := int(math.Round(float64(value) / float64(target) * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// VaultEntry is one completed transfer into or out of savings. Positive
// amounts are daily settlements, negative ones manual withdrawals.
type VaultEntry struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
}

// Settings holds user preferences persisted with the state.
type Settings struct {
	DailyGoal int64  `json:"dailyGoal"`
	VaultPIN  string `json:"vaultPin"`
}

// AppState is the root of everything the wallet persists.
type AppState struct {
	CurrentDay         LedgerDay    `json:"currentDay"`
	Vault              []VaultEntry `json:"vault"`
	Objectives         []Objective  `json:"objectives"`
	Settings           Settings     `json:"settings"`
	LastSettlementDate string       `json:"lastSettlementDate"`
}

// VaultBalance sums all vault entries.
func (s AppState) VaultBalance() int64 {
	var total int64
	for _, e := range s.Vault {
		total += e.Amount
	}
	return total
}

// Clone returns a deep copy, so snapshot reads never alias live state.
func (s AppState) Clone() AppState {
	out := s
	out.CurrentDay.Operations = append([]Operation(nil), s.CurrentDay.Operations...)
	out.Vault = append([]VaultEntry(nil), s.Vault...)
	out.Objectives = append([]Objective(nil), s.Objectives...)
	return out
}

// FindObjective returns the index of the objective with the given id, or -1.
func (s AppState) FindObjective(id string) int {
	for i, o := range s.Objectives {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// FindOperation returns the index of today's operation with the given id, or -1.
func (s AppState) FindOperation(id string) int {
	for i, op := range s.CurrentDay.Operations {
		if op.ID == id {
			return i
		}
	}
	return -1
}
