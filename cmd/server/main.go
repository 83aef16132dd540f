package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	gamesim "stratagem/internal/adapter/game/sim"
	httpadapter "stratagem/internal/adapter/http"
	metricsinmem "stratagem/internal/adapter/metrics/inmemory"
	gormrepo "stratagem/internal/adapter/repo/gorm"
	memrepo "stratagem/internal/adapter/repo/memory"
	"stratagem/internal/adapter/oracle/openai"
	"stratagem/internal/app/dispatch"
	"stratagem/internal/app/engine"
	"stratagem/internal/app/gating"
	"stratagem/internal/app/ports"
	"stratagem/internal/app/prompt"
	"stratagem/internal/app/snapshot"
	"stratagem/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	world := gamesim.NewWorld(logger.Named("sim"))
	journal := buildJournal(logger)
	kpiRecorder := metricsinmem.NewRecorder()

	apiKey := strings.TrimSpace(os.Getenv("ORACLE_API_KEY"))
	oracle := openai.NewClient(openai.Config{
		BaseURL:     strings.TrimSpace(os.Getenv("ORACLE_BASE_URL")),
		APIKey:      apiKey,
		Model:       strings.TrimSpace(os.Getenv("ORACLE_MODEL")),
		MaxTokens:   intEnv("ORACLE_MAX_TOKENS", openai.DefaultMaxTokens),
		MinInterval: time.Duration(intEnv("ORACLE_MIN_INTERVAL_MS", int(openai.DefaultMinInterval.Milliseconds()))) * time.Millisecond,
	}, logger.Named("oracle"))

	builder := snapshot.Builder{Game: world, Cfg: snapshot.DefaultConfig()}
	eng := engine.New(engine.Config{
		Model:         oracle.Model(),
		CycleInterval: time.Duration(intEnv("ENGINE_CYCLE_SECONDS", 3)) * time.Second,
		Gating:        gating.DefaultConfig(),
		Prompt:        prompt.DefaultPolicy(),
	}, engine.Deps{
		Game:     world,
		Oracle:   oracle,
		Builder:  builder,
		Dispatch: dispatch.UseCase{Game: world, Executor: world, Log: logger.Named("dispatch")},
		Journal:  journal,
		Metrics:  kpiRecorder,
		Log:      logger.Named("engine"),
	})

	if apiKey == "" {
		logger.Warn("ORACLE_API_KEY is not set; the engine stays disabled until enabled through /ops/engine/enable")
	} else {
		eng.Enable()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go eng.Run(ctx)

	h := httpadapter.Handler{
		StatusUC: status.UseCase{Engine: eng, Journal: journal, Metrics: kpiRecorder},
	}

	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	logger.Info("stratagem server listening", zap.String("addr", addr))
	s.Spin()
}

func buildJournal(logger *zap.Logger) ports.DecisionJournal {
	dsn := strings.TrimSpace(os.Getenv("STRATAGEM_DB_DSN"))
	if dsn == "" {
		logger.Info("STRATAGEM_DB_DSN not set, keeping the decision journal in memory")
		return memrepo.NewJournalRepo(intEnv("JOURNAL_MEMORY_CAP", 0))
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormrepo.NewJournalRepo(db)
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
