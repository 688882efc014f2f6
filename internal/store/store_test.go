package store

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"rwallet/internal/model"
)

func testState() model.AppState {
	ts := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	return model.AppState{
		CurrentDay: model.LedgerDay{
			DayMarker:  "2026-08-31",
			Earnings:   1000,
			OwnerShare: 200,
			Fuel:       100,
			Goal:       500,
			Operations: []model.Operation{
				{ID: "op-1", Type: model.OpEarnings, Amount: 1000, Label: "earnings", Timestamp: ts},
				{ID: "op-2", Type: model.OpOwnerShare, Amount: 200, Label: "owner share", Timestamp: ts},
				{ID: "op-3", Type: model.OpFuel, Amount: 100, Label: "fuel", Timestamp: ts},
			},
		},
		Vault: []model.VaultEntry{
			{Date: "2026-08-29", Amount: 700},
			{Date: "2026-08-30", Amount: -200},
		},
		Objectives: []model.Objective{
			{ID: "obj-1", Title: "Helmet", Target: 300, Paid: 100},
		},
		Settings:           model.Settings{DailyGoal: 500, VaultPIN: "1234"},
		LastSettlementDate: "2026-08-31",
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "wallet.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadEmptyStore(t *testing.T) {
	s := openTestStore(t)
	_, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatal("empty store reported persisted state")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	want := testState()

	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("saved state not found")
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSaveOverwritesSingleRecord(t *testing.T) {
	s := openTestStore(t)
	first := testState()
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}

	second := first
	second.CurrentDay.Earnings = 9999
	second.Vault = append([]model.VaultEntry(nil), first.Vault...)
	second.Vault = append(second.Vault, model.VaultEntry{Date: "2026-08-31", Amount: 300})
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentDay.Earnings != 9999 {
		t.Fatalf("earnings after overwrite = %d, want 9999", got.CurrentDay.Earnings)
	}
	if len(got.Vault) != 3 {
		t.Fatalf("vault has %d entries, want 3", len(got.Vault))
	}
}

func TestVaultHistoryMirror(t *testing.T) {
	s := openTestStore(t)
	st := testState()
	if err := s.Save(st); err != nil {
		t.Fatal(err)
	}

	entries, err := s.VaultHistory()
	if err != nil {
		t.Fatalf("VaultHistory: %v", err)
	}
	if !reflect.DeepEqual(entries, st.Vault) {
		t.Fatalf("mirror = %+v, want %+v", entries, st.Vault)
	}

	// Mirror follows the blob on rewrite
	st.Vault = st.Vault[:1]
	if err := s.Save(st); err != nil {
		t.Fatal(err)
	}
	entries, err = s.VaultHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("mirror has %d entries after rewrite, want 1", len(entries))
	}
}

func TestExportJSONIsLossless(t *testing.T) {
	want := testState()

	var buf bytes.Buffer
	if err := ExportJSON(&buf, want); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var got model.AppState
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("export round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}
