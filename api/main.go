package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/warehouse-kit/inventory-api/internal/config"
	"github.com/warehouse-kit/inventory-api/internal/db"
	api "github.com/warehouse-kit/inventory-api/internal/http"
	"github.com/warehouse-kit/inventory-api/internal/http/handlers"
	rl "github.com/warehouse-kit/inventory-api/internal/http/rate_limiter"
	"github.com/warehouse-kit/inventory-api/internal/inventory"
	"github.com/warehouse-kit/inventory-api/internal/redissvc"
	"github.com/warehouse-kit/inventory-api/internal/repo"
)

// @title Warehouse Inventory API
// @version 1.0
// @description REST API for managing warehouse items, stock operations and low-stock reporting.
// @host localhost:8080
// @BasePath /api
func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	var (
		itemRepo   repo.ItemRepository
		ledgerRepo repo.LedgerRepository
		stockStore repo.StockStore
	)
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer database.Close()
		itemRepo = repo.NewPostgresItemRepository(database)
		ledgerRepo = repo.NewPostgresLedgerRepository(database)
		stockStore = repo.NewPostgresStockStore(database)
		log.Info().Msg("using postgres repositories")
	} else {
		items := repo.NewInMemoryItemRepository()
		ledger := repo.NewInMemoryLedgerRepository()
		itemRepo = items
		ledgerRepo = ledger
		stockStore = repo.NewInMemoryStockStore(items, ledger)
		log.Info().Msg("no database configured, using in-memory repositories")
	}

	ctx := context.Background()
	var cache *redissvc.ReportCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("could not connect to redis")
		}
		defer rdb.Close()
		cache = redissvc.NewReportCache(rdb, ctx, cfg.LowStockCacheTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("low-stock report cache enabled")
	}

	locks := inventory.NewItemLocks()
	handlers.SetItemRepo(itemRepo)
	handlers.SetLedgerRepo(ledgerRepo)
	handlers.SetProcessor(inventory.NewProcessor(itemRepo, stockStore, locks))
	handlers.SetReporter(inventory.NewReporter(itemRepo, ledgerRepo,
		inventory.DeletePolicy(cfg.DeletePolicy), cache, locks))

	if cfg.RateLimitEnabled {
		rl.Configure(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go rl.StartVisitorCleanupLoop()
	}

	r := api.NewRouter()
	log.Info().Str("addr", cfg.ServerAddr).Msg("server listening")
	if err := http.ListenAndServe(cfg.ServerAddr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
