package main

import (
	"context"
	"os"
	"time"

	httpadapter "unitsim/internal/adapter/http"
	metricsinmem "unitsim/internal/adapter/metrics/inmemory"
	gormrepo "unitsim/internal/adapter/repo/gorm"
	"unitsim/internal/adapter/repo/memory"
	"unitsim/internal/app/command"
	"unitsim/internal/app/observe"
	"unitsim/internal/app/ports"
	"unitsim/internal/app/replay"
	"unitsim/internal/app/spawn"
	"unitsim/internal/config"
	"unitsim/internal/domain/unit"
	"unitsim/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	stateRepo, commandRepo, eventRepo, txManager, err := buildRepos(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("build repositories")
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := unit.NewRandomSource(seed)
	bounds := world.DefaultBounds()
	idle := idleBehaviorFor(cfg.IdlePolicy)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		SpawnUC: spawn.UseCase{
			TxManager: txManager,
			StateRepo: stateRepo,
			EventRepo: eventRepo,
			Boundary:  bounds,
			Random:    rng,
			Idle:      idle,
			Now:       time.Now,
		},
		ObserveUC: observe.UseCase{StateRepo: stateRepo},
		CommandUC: command.UseCase{
			TxManager:   txManager,
			StateRepo:   stateRepo,
			CommandRepo: commandRepo,
			EventRepo:   eventRepo,
			Metrics:     kpiRecorder,
			Boundary:    bounds,
			Random:      rng,
			Idle:        idle,
			Now:         time.Now,
		},
		ReplayUC: replay.UseCase{Events: eventRepo},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	logger.Info().Str("addr", cfg.Addr).Str("driver", cfg.DBDriver).Msg("unitsim server listening")
	s.Spin()
}

// idleBehaviorFor maps the configured idle policy onto a domain
// strategy. Units only act on it when spawned with auto behavior.
func idleBehaviorFor(policy string) unit.IdleBehavior {
	if policy == "random" {
		return unit.RandomIdleBehavior{}
	}
	return nil
}

func buildRepos(cfg config.Config) (ports.UnitStateRepository, ports.CommandExecutionRepository, ports.EventRepository, ports.TxManager, error) {
	if cfg.DBDriver == "memory" {
		store := memory.NewStore()
		return memory.NewUnitStateRepo(store), memory.NewCommandExecutionRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store), nil
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "postgres":
		db, err = gormrepo.OpenPostgres(cfg.DBDSN)
	default:
		db, err = gormrepo.OpenSQLite(cfg.SQLitePath)
	}
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if err := gormrepo.AutoMigrate(context.Background(), db); err != nil {
		return nil, nil, nil, nil, err
	}
	return gormrepo.NewUnitStateRepo(db), gormrepo.NewCommandExecutionRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db), nil
}
