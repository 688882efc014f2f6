package settle

import (
	"testing"
	"time"

	"rwallet/internal/model"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}

func TestDayMarkerBoundary(t *testing.T) {
	tests := []struct {
		name     string
		at       string
		boundary int
		want     string
	}{
		{"before 06:00 belongs to previous day", "2026-08-31 05:59", 6, "2026-08-30"},
		{"exactly 06:00 starts the new day", "2026-08-31 06:00", 6, "2026-08-31"},
		{"midnight boundary is plain calendar date", "2026-08-31 00:30", 0, "2026-08-31"},
		{"late evening unchanged by boundary", "2026-08-31 23:00", 6, "2026-08-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayMarker(mustTime(t, tt.at), tt.boundary); got != tt.want {
				t.Fatalf("DayMarker(%s, %d) = %q, want %q", tt.at, tt.boundary, got, tt.want)
			}
		})
	}
}

func TestReconcileFirstRun(t *testing.T) {
	now := mustTime(t, "2026-08-31 10:00")
	defaults := model.Settings{DailyGoal: 500, VaultPIN: "1234"}

	res := Reconcile(nil, now, 6, defaults)
	if !res.FirstRun {
		t.Fatal("FirstRun not reported")
	}
	if res.Settled || res.Swept != nil {
		t.Fatal("first run must not settle anything")
	}
	st := res.State
	if st.CurrentDay.DayMarker != "2026-08-31" {
		t.Fatalf("day marker = %q, want 2026-08-31", st.CurrentDay.DayMarker)
	}
	if st.CurrentDay.Goal != 500 {
		t.Fatalf("goal = %d, want 500", st.CurrentDay.Goal)
	}
	if st.LastSettlementDate != "2026-08-31" {
		t.Fatalf("last settlement = %q, want 2026-08-31", st.LastSettlementDate)
	}
	if len(st.Vault) != 0 || len(st.Objectives) != 0 {
		t.Fatal("fresh state must have empty vault and objectives")
	}
}

func TestReconcileSameDayIsIdempotent(t *testing.T) {
	now := mustTime(t, "2026-08-31 10:00")
	defaults := model.Settings{DailyGoal: 500}

	first := Reconcile(nil, now, 6, defaults)
	second := Reconcile(&first.State, now.Add(2*time.Hour), 6, defaults)
	if second.Settled || second.FirstRun {
		t.Fatal("same-day reconcile must be a no-op")
	}
	third := Reconcile(&second.State, now.Add(4*time.Hour), 6, defaults)
	if third.Settled {
		t.Fatal("repeated reconcile settled again")
	}
	if len(third.State.Vault) != 0 {
		t.Fatalf("vault gained %d entries from idempotent reconciles", len(third.State.Vault))
	}
}

func TestReconcileSweepsPositiveNet(t *testing.T) {
	defaults := model.Settings{DailyGoal: 500}
	prev := model.AppState{
		CurrentDay: model.LedgerDay{
			DayMarker:  "2026-08-30",
			Earnings:   1000,
			OwnerShare: 200,
			Fuel:       100,
			Goal:       500,
		},
		Settings:           defaults,
		LastSettlementDate: "2026-08-30",
	}

	res := Reconcile(&prev, mustTime(t, "2026-08-31 09:00"), 6, defaults)
	if !res.Settled {
		t.Fatal("day change did not settle")
	}
	if res.Swept == nil {
		t.Fatal("positive net was not swept")
	}
	if res.Swept.Date != "2026-08-30" || res.Swept.Amount != 700 {
		t.Fatalf("swept entry = %+v, want {2026-08-30 700}", *res.Swept)
	}

	st := res.State
	if len(st.Vault) != 1 || st.Vault[0].Amount != 700 {
		t.Fatalf("vault = %+v, want one entry of 700", st.Vault)
	}
	if st.CurrentDay.DayMarker != "2026-08-31" {
		t.Fatalf("new day marker = %q, want 2026-08-31", st.CurrentDay.DayMarker)
	}
	if st.CurrentDay.Earnings != 0 || len(st.CurrentDay.Operations) != 0 {
		t.Fatal("new day must open with zero aggregates and empty log")
	}
	if st.CurrentDay.Goal != 500 {
		t.Fatalf("new day goal = %d, want 500 from settings", st.CurrentDay.Goal)
	}

	// Original state untouched
	if len(prev.Vault) != 0 {
		t.Fatal("Reconcile mutated its input")
	}
}

func TestReconcileAbsorbsLoss(t *testing.T) {
	defaults := model.Settings{DailyGoal: 500}
	prev := model.AppState{
		CurrentDay: model.LedgerDay{
			DayMarker: "2026-08-30",
			Earnings:  100,
			Fuel:      300,
			Goal:      500,
		},
		Settings:           defaults,
		LastSettlementDate: "2026-08-30",
	}

	res := Reconcile(&prev, mustTime(t, "2026-08-31 09:00"), 6, defaults)
	if !res.Settled {
		t.Fatal("day change did not settle")
	}
	if res.Swept != nil {
		t.Fatalf("loss day swept %+v into vault", *res.Swept)
	}
	if len(res.State.Vault) != 0 {
		t.Fatal("vault gained an entry for a loss day")
	}
}

func TestReconcileSingleSettlementAfterGap(t *testing.T) {
	defaults := model.Settings{DailyGoal: 500}
	prev := model.AppState{
		CurrentDay: model.LedgerDay{
			DayMarker: "2026-08-20",
			Earnings:  400,
			Goal:      500,
		},
		Settings:           defaults,
		LastSettlementDate: "2026-08-20",
	}

	// Ten days later: exactly one settlement, no back-filling
	res := Reconcile(&prev, mustTime(t, "2026-08-31 12:00"), 6, defaults)
	if !res.Settled {
		t.Fatal("gap did not settle")
	}
	if len(res.State.Vault) != 1 {
		t.Fatalf("vault has %d entries after gap, want 1", len(res.State.Vault))
	}
	if res.State.Vault[0].Date != "2026-08-20" {
		t.Fatalf("swept date = %q, want the stored day 2026-08-20", res.State.Vault[0].Date)
	}
}
