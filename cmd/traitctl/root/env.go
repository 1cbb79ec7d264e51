package root

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/talent-traits/internal/catalog"
	"github.com/KirkDiggler/talent-traits/internal/config"
	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
	"github.com/KirkDiggler/talent-traits/internal/logger"
	"github.com/KirkDiggler/talent-traits/internal/repositories/rulestate"
	"github.com/KirkDiggler/talent-traits/internal/services/talenttraits"
)

// env is everything a command needs, built from the environment
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *catalog.Catalog
	report  *catalog.Report
	redis   *redis.Client
}

func openEnv() (*env, func(), error) {
	// .env is optional
	_ = godotenv.Load()

	if rulesPath != "" {
		if err := os.Setenv("TRAITS_RULES_PATH", rulesPath); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return nil, nil, traiterr.WrapWithCode(err, traiterr.CodeInternal, "failed to create logger")
	}

	c, report, err := catalog.LoadFile(cfg.Rules.Path)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}

	e := &env{cfg: cfg, log: log, catalog: c, report: report}
	cleanup := func() {
		if e.redis != nil {
			if err := e.redis.Close(); err != nil {
				log.Warn("failed to close redis client", "error", err)
			}
		}
		log.Sync()
	}
	return e, cleanup, nil
}

// repository connects to redis when rule state persistence is enabled
func (e *env) repository(ctx context.Context) (rulestate.Repository, error) {
	if !e.cfg.Rules.PersistState {
		return nil, nil
	}

	opts := &redis.Options{
		Addr:     e.cfg.Redis.Addr,
		Password: e.cfg.Redis.Password,
		DB:       e.cfg.Redis.DB,
	}
	if e.cfg.Redis.URL != "" {
		parsed, err := redis.ParseURL(e.cfg.Redis.URL)
		if err != nil {
			return nil, traiterr.WrapWithCode(err, traiterr.CodeInvalidArgument, "failed to parse Redis URL")
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, traiterr.WrapWithCode(err, traiterr.CodeUnavailable, "failed to connect to Redis").WithMeta("addr", opts.Addr)
	}

	e.redis = client
	e.log.Info("connected to redis", "addr", opts.Addr, "db", opts.DB)
	return rulestate.NewRedis(client, nil), nil
}

func (e *env) service(ctx context.Context) (talenttraits.Service, error) {
	repo, err := e.repository(ctx)
	if err != nil {
		return nil, err
	}

	return talenttraits.NewService(&talenttraits.ServiceConfig{
		Catalog:          e.catalog,
		Report:           e.report,
		Repository:       repo,
		PersistRuleState: e.cfg.Rules.PersistState,
		Logger:           e.log,
	}), nil
}
