package main

import (
	"path/filepath"
	"testing"

	"unitsim/internal/config"
	"unitsim/internal/domain/unit"
)

func TestBuildRepos_MemoryDriver(t *testing.T) {
	stateRepo, commandRepo, eventRepo, txManager, err := buildRepos(config.Config{DBDriver: "memory"})
	if err != nil {
		t.Fatalf("build repos: %v", err)
	}
	if stateRepo == nil || commandRepo == nil || eventRepo == nil || txManager == nil {
		t.Fatalf("expected all repositories wired")
	}
}

func TestBuildRepos_SQLiteDriver(t *testing.T) {
	cfg := config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "unitsim.db"),
	}
	stateRepo, _, _, _, err := buildRepos(cfg)
	if err != nil {
		t.Fatalf("build repos: %v", err)
	}
	if stateRepo == nil {
		t.Fatalf("expected state repository wired")
	}
}

func TestIdleBehaviorFor(t *testing.T) {
	if idleBehaviorFor("none") != nil {
		t.Fatalf("expected no idle behavior for policy none")
	}
	if _, ok := idleBehaviorFor("random").(unit.RandomIdleBehavior); !ok {
		t.Fatalf("expected RandomIdleBehavior for policy random")
	}
}
