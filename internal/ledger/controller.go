// Package ledger implements the single mutation surface over the wallet
// state. Every intent is read-modify-persist as one unit: the working copy
// is only adopted after the store accepts it, so a failed write leaves the
// in-memory state untouched.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"rwallet/internal/model"
)

// Store is the persistence collaborator. Save must be durable before the
// next Load.
type Store interface {
	Load() (model.AppState, bool, error)
	Save(model.AppState) error
}

// Controller applies user intents to the wallet state.
type Controller struct {
	store Store
	state model.AppState
}

// New wraps an already-reconciled state with its store.
func New(store Store, state model.AppState) *Controller {
	return &Controller{store: store, state: state}
}

// State returns a snapshot copy for reads.
func (c *Controller) State() model.AppState {
	return c.state.Clone()
}

func (c *Controller) commit(st model.AppState) error {
	if err := c.store.Save(st); err != nil {
		return fmt.Errorf("saving wallet state: %w", err)
	}
	c.state = st
	return nil
}

func newOperation(t model.OpType, amount int64, label string) model.Operation {
	return model.Operation{
		ID:        uuid.NewString(),
		Type:      t,
		Amount:    amount,
		Label:     label,
		Timestamp: time.Now(),
	}
}

// SetGoal sets both the settings default and the current day's goal. The
// amount is taken as-is; zero and negative goals are allowed.
func (c *Controller) SetGoal(amount int64) error {
	st := c.state.Clone()
	st.Settings.DailyGoal = amount
	st.CurrentDay.Goal = amount
	return c.commit(st)
}

// PendingEarnings carries the first step of the two-step earnings flow.
// Nothing is recorded until Commit; dropping the value cancels the flow
// with zero observable effect.
type PendingEarnings struct {
	Amount int64
}

// BeginEarnings captures an earnings amount pending the owner-share step.
func (c *Controller) BeginEarnings(amount int64) PendingEarnings {
	return PendingEarnings{Amount: amount}
}

// CommitEarnings completes the flow: the pending earnings and the owner
// share are applied together, logging an earnings operation followed by an
// ownerShare operation.
func (c *Controller) CommitEarnings(p PendingEarnings, ownerShare int64) error {
	st := c.state.Clone()
	st.CurrentDay.Earnings += p.Amount
	st.CurrentDay.OwnerShare += ownerShare
	st.CurrentDay.Operations = append(st.CurrentDay.Operations,
		newOperation(model.OpEarnings, p.Amount, "earnings"),
		newOperation(model.OpOwnerShare, ownerShare, "owner share"),
	)
	return c.commit(st)
}

// RecordDeduction logs a standalone deduction of type ownerShare, fuel or
// purchases.
func (c *Controller) RecordDeduction(t model.OpType, amount int64, label string) error {
	switch t {
	case model.OpOwnerShare, model.OpFuel, model.OpPurchases:
	default:
		return fmt.Errorf("cannot record deduction of type %q", t)
	}
	st := c.state.Clone()
	*st.CurrentDay.Aggregate(t) += amount
	st.CurrentDay.Operations = append(st.CurrentDay.Operations, newOperation(t, amount, label))
	return c.commit(st)
}

// EditOperation overwrites an operation's amount and applies the difference
// to the matching aggregate. Editing an objectivePayment adjusts only the
// day's objectivePayments total, never the linked objective's paid amount.
func (c *Controller) EditOperation(id string, newAmount int64) error {
	st := c.state.Clone()
	i := st.FindOperation(id)
	if i < 0 {
		return model.ErrNotFound
	}
	op := &st.CurrentDay.Operations[i]
	*st.CurrentDay.Aggregate(op.Type) += newAmount - op.Amount
	op.Amount = newAmount
	return c.commit(st)
}

// DeleteOperation removes an operation from the log and reverses its effect
// on the matching aggregate. Like EditOperation, it does not touch any
// objective's paid amount.
func (c *Controller) DeleteOperation(id string) error {
	st := c.state.Clone()
	i := st.FindOperation(id)
	if i < 0 {
		return model.ErrNotFound
	}
	op := st.CurrentDay.Operations[i]
	*st.CurrentDay.Aggregate(op.Type) -= op.Amount
	st.CurrentDay.Operations = append(st.CurrentDay.Operations[:i], st.CurrentDay.Operations[i+1:]...)
	return c.commit(st)
}

// AddObjective appends a new savings goal.
func (c *Controller) AddObjective(title string, target int64) (model.Objective, error) {
	obj := model.Objective{
		ID:     uuid.NewString(),
		Title:  title,
		Target: target,
	}
	obj.Recompute()
	st := c.state.Clone()
	st.Objectives = append(st.Objectives, obj)
	if err := c.commit(st); err != nil {
		return model.Objective{}, err
	}
	return obj, nil
}

// PayObjective adds a partial payment to an objective. The payment also
// counts against today's net balance through an objectivePayment operation.
func (c *Controller) PayObjective(id string, amount int64) error {
	st := c.state.Clone()
	i := st.FindObjective(id)
	if i < 0 {
		return model.ErrNotFound
	}
	obj := &st.Objectives[i]
	obj.Paid += amount
	obj.Recompute()
	st.CurrentDay.ObjectivePayments += amount
	st.CurrentDay.Operations = append(st.CurrentDay.Operations,
		newOperation(model.OpObjectivePayment, amount, obj.Title))
	return c.commit(st)
}

// EditObjectiveTarget changes an objective's target and recomputes the
// completion flag. Paid amount is untouched and no operation is logged.
func (c *Controller) EditObjectiveTarget(id string, target int64) error {
	st := c.state.Clone()
	i := st.FindObjective(id)
	if i < 0 {
		return model.ErrNotFound
	}
	st.Objectives[i].Target = target
	st.Objectives[i].Recompute()
	return c.commit(st)
}

// DeleteObjective removes an objective. Operations already logged against
// it stay in the day's ledger.
func (c *Controller) DeleteObjective(id string) error {
	st := c.state.Clone()
	i := st.FindObjective(id)
	if i < 0 {
		return model.ErrNotFound
	}
	st.Objectives = append(st.Objectives[:i], st.Objectives[i+1:]...)
	return c.commit(st)
}

// WithdrawFromVault appends a negative vault entry dated today, bypassing
// the ledger day entirely.
func (c *Controller) WithdrawFromVault(amount int64) error {
	if amount < 0 {
		amount = -amount
	}
	st := c.state.Clone()
	st.Vault = append(st.Vault, model.VaultEntry{
		Date:   st.CurrentDay.DayMarker,
		Amount: -amount,
	})
	return c.commit(st)
}

// VerifyVaultPIN gates the vault view. Plain comparison, no lockout.
func (c *Controller) VerifyVaultPIN(candidate string) bool {
	return candidate == c.state.Settings.VaultPIN
}
