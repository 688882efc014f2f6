// Package settle implements the automatic day-rollover settlement.
package settle

import (
	"time"

	"rwallet/internal/model"
)

// DefaultBoundaryHour is the hour at which the accounting day rolls over.
// The wallet settles at 06:00 rather than midnight so late-night shifts
// stay on the day they were driven.
const DefaultBoundaryHour = 6

// DayMarker returns the accounting-day key for the given instant. The
// instant is shifted back by the boundary hour before taking the date, so
// with boundary 6 everything before 06:00 still belongs to the previous day.
func DayMarker(now time.Time, boundaryHour int) string {
	return now.Add(-time.Duration(boundaryHour) * time.Hour).Format("2006-01-02")
}

// NewDay returns a fresh ledger day with zero aggregates.
func NewDay(marker string, goal int64) model.LedgerDay {
	return model.LedgerDay{
		DayMarker: marker,
		Goal:      goal,
	}
}

// Result describes what Reconcile did to the state.
type Result struct {
	State    model.AppState
	FirstRun bool
	Settled  bool
	// Swept is the vault entry appended by the settlement, nil when the
	// closing day's net was zero or negative (losses are absorbed, not
	// carried forward).
	Swept *model.VaultEntry
}

// Reconcile applies the day-boundary rule to a previously persisted state.
// prev == nil means first run. The caller persists Result.State when
// FirstRun or Settled is true; otherwise the state is returned unchanged,
// so calling Reconcile again on the same day has no effect and never
// produces a duplicate vault entry.
//
// When more than one calendar day elapsed since last use, only the single
// stored day is settled; missed days are not back-filled.
func Reconcile(prev *model.AppState, now time.Time, boundaryHour int, defaults model.Settings) Result {
	today := DayMarker(now, boundaryHour)

	if prev == nil {
		return Result{
			State: model.AppState{
				CurrentDay:         NewDay(today, defaults.DailyGoal),
				Settings:           defaults,
				LastSettlementDate: today,
			},
			FirstRun: true,
		}
	}

	st := prev.Clone()
	if st.CurrentDay.DayMarker == today {
		return Result{State: st}
	}

	res := Result{Settled: true}
	if net := st.CurrentDay.Net(); net > 0 {
		entry := model.VaultEntry{Date: st.CurrentDay.DayMarker, Amount: net}
		st.Vault = append(st.Vault, entry)
		res.Swept = &entry
	}

	st.CurrentDay = NewDay(today, st.Settings.DailyGoal)
	st.LastSettlementDate = today
	res.State = st
	return res
}
