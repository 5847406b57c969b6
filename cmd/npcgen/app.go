package main

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/npcgen/internal/config"
	"github.com/cory-johannsen/npcgen/internal/content"
	"github.com/cory-johannsen/npcgen/internal/game/npc"
	"github.com/cory-johannsen/npcgen/internal/narrator"
	"github.com/cory-johannsen/npcgen/internal/observability"
	"github.com/cory-johannsen/npcgen/internal/scripting"
	"github.com/cory-johannsen/npcgen/internal/storage/postgres"
)

// ConfigPath is the --config flag value handed to the injector.
type ConfigPath string

// App is the dependency graph shared by every subcommand. The database is
// opened on demand so that generation works without one.
type App struct {
	Config    config.Config
	Logger    *zap.Logger
	Tables    *content.Tables
	Generator *npc.Generator
	Narrator  narrator.Narrator
}

// OpenProfiles connects to the configured database.
//
// Postcondition: the returned cleanup closes the pool.
func (a *App) OpenProfiles(ctx context.Context) (*postgres.ProfileRepository, func(), error) {
	pool, err := postgres.NewPool(ctx, a.Config.Database, a.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	return pool.Profiles(), pool.Close, nil
}

// ProviderSet builds an App from a ConfigPath.
var ProviderSet = wire.NewSet(
	provideConfig,
	provideLogger,
	provideTables,
	provideScripts,
	provideNarrator,
	npc.NewGenerator,
	wire.Struct(new(App), "*"),
)

func provideConfig(path ConfigPath) (config.Config, error) {
	cfg, err := config.Load(string(path))
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func provideTables(cfg config.Config) (*content.Tables, error) {
	return content.LoadDir(cfg.Content.Dir)
}

// provideScripts returns a nil CoherenceScripts when no scripts directory is
// configured.
func provideScripts(cfg config.Config, logger *zap.Logger) (npc.CoherenceScripts, func(), error) {
	if cfg.Generator.ScriptsDir == "" {
		return nil, func() {}, nil
	}
	mgr := scripting.NewManager(cfg.Generator.InstructionLimit, logger)
	if err := mgr.LoadTree(cfg.Generator.ScriptsDir); err != nil {
		mgr.Close()
		return nil, nil, fmt.Errorf("loading coherence scripts: %w", err)
	}
	logger.Debug("coherence scripts loaded", zap.Strings("keys", mgr.Keys()))
	return mgr, mgr.Close, nil
}

func provideNarrator(cfg config.Config, logger *zap.Logger) narrator.Narrator {
	return narrator.New(cfg.Narrator, logger)
}
