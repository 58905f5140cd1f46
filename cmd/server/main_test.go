package main

import (
	"context"
	"path/filepath"
	"testing"

	eventsinmem "guildhall/internal/adapter/events/inmemory"
	memrepo "guildhall/internal/adapter/repo/memory"
	"guildhall/internal/app/ports"
)

func TestIntEnv_UsesFallback(t *testing.T) {
	t.Setenv("GUILDHALL_TEST_INT", "")
	if got := intEnv("GUILDHALL_TEST_INT", 7); got != 7 {
		t.Fatalf("intEnv()=%d want 7", got)
	}

	t.Setenv("GUILDHALL_TEST_INT", "not-a-number")
	if got := intEnv("GUILDHALL_TEST_INT", 7); got != 7 {
		t.Fatalf("intEnv()=%d want fallback on parse error", got)
	}

	t.Setenv("GUILDHALL_TEST_INT", "42")
	if got := intEnv("GUILDHALL_TEST_INT", 7); got != 42 {
		t.Fatalf("intEnv()=%d want 42", got)
	}
}

func TestSeedDemoState_Idempotent(t *testing.T) {
	repo := memrepo.NewGuildStateRepo(memrepo.NewStore())

	seedDemoState(repo)
	first, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("get after seed: %v", err)
	}
	if first.Resources["gold"] != 120 {
		t.Fatalf("gold = %v, want 120", first.Resources["gold"])
	}

	// Second call must not overwrite an existing aggregate.
	seedDemoState(repo)
	second, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("get after reseed: %v", err)
	}
	if second.Version != first.Version {
		t.Fatalf("version changed from %d to %d", first.Version, second.Version)
	}
}

func TestMustBuildRepos_MemoryDefaultBacksTheBus(t *testing.T) {
	t.Setenv("GUILDHALL_DB_DSN", "")
	t.Setenv("GUILDHALL_SQLITE_PATH", "")

	_, unlockLog := mustBuildRepos()

	// The unlock log doubles as the bus's forwarding sink.
	bus := eventsinmem.NewBus()
	bus.Forward = unlockLog

	event := ports.GateUnlockedEvent{EventID: "e-1", GateID: "ui-ledger"}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish through bus: %v", err)
	}

	got, err := unlockLog.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].EventID != "e-1" {
		t.Fatalf("expected the published event in the log, got %+v", got)
	}
}

func TestMustBuildRepos_SQLitePathSelectsFileLog(t *testing.T) {
	t.Setenv("GUILDHALL_DB_DSN", "")
	t.Setenv("GUILDHALL_SQLITE_PATH", filepath.Join(t.TempDir(), "unlocks.db"))

	_, unlockLog := mustBuildRepos()

	event := ports.GateUnlockedEvent{EventID: "e-1", GateID: "ui-ledger"}
	if err := unlockLog.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}
	got, err := unlockLog.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].EventID != "e-1" {
		t.Fatalf("expected the published event in the file log, got %+v", got)
	}
}

func TestLoadCatalog_DefaultWhenUnset(t *testing.T) {
	t.Setenv("GUILDHALL_CATALOG", "")
	defs := loadCatalog()
	if len(defs) == 0 {
		t.Fatalf("expected built-in catalogue")
	}
}
