package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"

	eventsinmem "guildhall/internal/adapter/events/inmemory"
	httpadapter "guildhall/internal/adapter/http"
	gormrepo "guildhall/internal/adapter/repo/gorm"
	memrepo "guildhall/internal/adapter/repo/memory"
	sqliterepo "guildhall/internal/adapter/repo/sqlite"
	stateruntime "guildhall/internal/adapter/state/runtime"
	"guildhall/internal/app/catalog"
	"guildhall/internal/app/gates"
	"guildhall/internal/app/ports"
	"guildhall/internal/domain/guild"
	"guildhall/internal/domain/progression"
)

func main() {
	registry := progression.NewRegistry()
	if err := registry.RegisterAll(loadCatalog()); err != nil {
		log.Fatalf("register gate catalogue: %v", err)
	}

	stateRepo, unlockRepo := mustBuildRepos()
	seedDemoState(stateRepo)

	bus := eventsinmem.NewBus()
	bus.Forward = unlockRepo

	provider := stateruntime.NewProvider(stateRepo)
	runner := gates.NewRunner(gates.TickUseCase{
		Registry:  registry,
		State:     provider,
		Publisher: bus,
	})

	h := httpadapter.Handler{
		GatesUC: gates.QueryUseCase{Registry: registry, State: provider},
		Runner:  runner,
		Unlocks: unlockRepo,
	}

	if seconds := intEnv("GUILDHALL_TICK_SECONDS", 5); seconds > 0 {
		go runTickLoop(runner, time.Duration(seconds)*time.Second)
	}

	s := server.Default(server.WithHostPorts(":8080"))
	h.RegisterRoutes(s)

	log.Printf("guildhall server listening on :8080 (%d gates registered)", registry.Len())
	s.Spin()
}

func loadCatalog() []progression.GateDefinition {
	path := strings.TrimSpace(os.Getenv("GUILDHALL_CATALOG"))
	if path == "" {
		return catalog.Default()
	}
	defs, err := catalog.Load(path)
	if err != nil {
		log.Fatalf("load gate catalogue: %v", err)
	}
	log.Printf("loaded %d gates from %s", len(defs), path)
	return defs
}

func mustBuildRepos() (ports.GuildStateRepository, ports.UnlockLog) {
	if dsn := strings.TrimSpace(os.Getenv("GUILDHALL_DB_DSN")); dsn != "" {
		db, err := gormrepo.OpenPostgres(dsn)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		if err := gormrepo.Migrate(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		return gormrepo.NewGuildStateRepo(db), gormrepo.NewUnlockEventRepo(db)
	}

	store := memrepo.NewStore()
	stateRepo := memrepo.NewGuildStateRepo(store)

	if path := strings.TrimSpace(os.Getenv("GUILDHALL_SQLITE_PATH")); path != "" {
		sqliteStore, err := sqliterepo.New(path)
		if err != nil {
			log.Fatalf("open sqlite unlock log: %v", err)
		}
		return stateRepo, sqliteStore
	}
	return stateRepo, memrepo.NewUnlockEventRepo(store)
}

func seedDemoState(repo ports.GuildStateRepository) {
	_, err := repo.Get(context.Background())
	if err == nil {
		return
	}
	if !errors.Is(err, ports.ErrNotFound) {
		log.Fatalf("load guild state: %v", err)
	}

	seed := guild.State{
		Resources: map[string]float64{
			"gold":   120,
			"fame":   25,
			"timber": 60,
			"stone":  10,
		},
		Facilities: []guild.Facility{
			{ID: "guildhall", FacilityType: "guildhall", TierLevel: 1, BuiltAt: time.Now()},
			{ID: "tavern-1", FacilityType: "tavern", TierLevel: 1, BuiltAt: time.Now()},
		},
		Adventurers: []guild.Adventurer{
			{ID: "adv-1", Name: "Brannic", Class: "warrior", Rank: 1},
		},
	}
	if err := repo.SaveWithVersion(context.Background(), seed, 0); err != nil {
		log.Fatalf("seed demo guild: %v", err)
	}
}

func runTickLoop(runner *gates.Runner, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		events, err := runner.RunOnce(context.Background())
		if err != nil {
			log.Printf("unlock tick: %v", err)
			continue
		}
		for _, e := range events {
			log.Printf("gate unlocked: %s (%s)", e.GateID, e.GateName)
		}
	}
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
