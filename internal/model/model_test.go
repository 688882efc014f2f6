package model

import "testing"

func TestLedgerDayNet(t *testing.T) {
	day := LedgerDay{
		Earnings:          1000,
		OwnerShare:        200,
		Fuel:              100,
		Purchases:         50,
		ObjectivePayments: 150,
	}
	if got := day.Net(); got != 500 {
		t.Fatalf("Net() = %d, want 500", got)
	}
}

func TestAggregateCoversEveryType(t *testing.T) {
	day := LedgerDay{}
	for _, typ := range []OpType{OpEarnings, OpOwnerShare, OpFuel, OpPurchases, OpObjectivePayment} {
		ptr := day.Aggregate(typ)
		if ptr == nil {
			t.Fatalf("Aggregate(%q) = nil", typ)
		}
		*ptr += 10
	}
	if day.Earnings != 10 || day.OwnerShare != 10 || day.Fuel != 10 ||
		day.Purchases != 10 || day.ObjectivePayments != 10 {
		t.Fatalf("aggregates after writes = %+v, want all 10", day)
	}
	if day.Aggregate("bogus") != nil {
		t.Fatal("Aggregate of unknown type should be nil")
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name string
		net  int64
		goal int64
		want int
	}{
		{"capped above goal", 800, 500, 100},
		{"exact", 500, 500, 100},
		{"partial", 250, 500, 50},
		{"zero net", 0, 500, 0},
		{"negative net clamps to zero", -100, 500, 0},
		{"zero goal counts as met", 0, 0, 100},
		{"negative goal counts as met", 10, -5, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := LedgerDay{Earnings: tt.net, Goal: tt.goal}
			if got := day.GoalProgress(); got != tt.want {
				t.Fatalf("GoalProgress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestObjectiveProgressAndCompletion(t *testing.T) {
	obj := Objective{Title: "Helmet", Target: 300}
	obj.Paid += 100
	obj.Recompute()
	if obj.Completed {
		t.Fatal("objective completed at 100/300")
	}
	if got := obj.Progress(); got != 33 {
		t.Fatalf("Progress() = %d, want 33", got)
	}

	obj.Paid += 250
	obj.Recompute()
	if !obj.Completed {
		t.Fatal("objective not completed at 350/300")
	}
	if got := obj.Progress(); got != 100 {
		t.Fatalf("Progress() = %d, want 100 (capped)", got)
	}
}

func TestObjectiveProgressZeroTarget(t *testing.T) {
	obj := Objective{Target: 0, Paid: 0}
	if got := obj.Progress(); got != 100 {
		t.Fatalf("zero-target Progress() = %d, want 100", got)
	}
	obj.Paid = -5
	if got := obj.Progress(); got != 0 {
		t.Fatalf("negative-paid zero-target Progress() = %d, want 0", got)
	}
}

func TestVaultBalance(t *testing.T) {
	st := AppState{Vault: []VaultEntry{
		{Date: "2026-08-29", Amount: 700},
		{Date: "2026-08-30", Amount: 300},
		{Date: "2026-08-31", Amount: -200},
	}}
	if got := st.VaultBalance(); got != 800 {
		t.Fatalf("VaultBalance() = %d, want 800", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	st := AppState{
		CurrentDay: LedgerDay{Operations: []Operation{{ID: "a", Type: OpEarnings, Amount: 10}}},
		Vault:      []VaultEntry{{Date: "2026-08-30", Amount: 100}},
		Objectives: []Objective{{ID: "o", Title: "Helmet", Target: 300}},
	}
	cp := st.Clone()
	cp.CurrentDay.Operations[0].Amount = 99
	cp.Vault[0].Amount = 99
	cp.Objectives[0].Paid = 99

	if st.CurrentDay.Operations[0].Amount != 10 {
		t.Fatal("clone aliases operations slice")
	}
	if st.Vault[0].Amount != 100 {
		t.Fatal("clone aliases vault slice")
	}
	if st.Objectives[0].Paid != 0 {
		t.Fatal("clone aliases objectives slice")
	}
}
