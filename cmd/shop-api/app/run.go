package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/Benian44/ly-confection/configs"
	"github.com/Benian44/ly-confection/internal/adapter/cache"
	shophttp "github.com/Benian44/ly-confection/internal/adapter/http"
	"github.com/Benian44/ly-confection/internal/adapter/http/middleware"
	"github.com/Benian44/ly-confection/internal/adapter/repo"
	"github.com/Benian44/ly-confection/internal/adapter/storage"
	"github.com/Benian44/ly-confection/internal/logging"
	"github.com/Benian44/ly-confection/internal/usecase"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

// InitWithConfig wires the whole service. With no MySQL DSN the
// in-memory demo backend serves; with no Redis the cart persists to a
// local file.
func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	log := logging.Init(cfg.App.Name, cfg.App.LogFile)

	var (
		catalog usecase.CatalogRepo
		orders  usecase.OrderRepo
		stats   usecase.StatsRepo
		cleanup = func() {}
	)

	if cfg.MySQL.DSN != "" {
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err != nil {
			return nil, nil, err
		}

		catalog = repo.NewMySQLCatalogRepo(db)
		orders = repo.NewMySQLOrderRepo(db)
		stats = repo.NewMySQLStatsRepo(db)
		cleanup = func() { _ = db.Close() }
	} else {
		log.Info("no mysql dsn, serving the in-memory demo backend")
		mem := repo.NewMemoryStore()
		catalog, orders, stats = mem, mem, mem
	}

	var (
		cartStorage usecase.CartStorage
		idem        usecase.IdempotencyStore
	)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			cleanup()
			return nil, nil, err
		}
		cartStorage = cache.NewRedisCartStorage(rdb, cfg.Cart.Key)
		idem = cache.NewRedisIdempotencyStore(rdb, cfg.Idempotency.TTL)

		prev := cleanup
		cleanup = func() { _ = rdb.Close(); prev() }
	} else {
		log.Info("no redis addr, persisting the cart to file", "path", cfg.Cart.File)
		cartStorage = storage.NewFileCartStorage(cfg.Cart.File)
	}

	cart := usecase.NewCartStore(context.Background(), cartStorage)
	flow := usecase.NewCheckoutFlow(cart, orders, idem)
	admin := usecase.NewAdmin(catalog, orders, stats)

	sh := shophttp.NewShopHandler(catalog, cart, flow)
	ah := shophttp.NewAdminHandler(cfg, admin)
	authz := middleware.NewAuthz(cfg)
	router := shophttp.NewRouter(sh, ah, authz)

	return &App{Router: router}, cleanup, nil
}
