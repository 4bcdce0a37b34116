package wire

import (
	"crm-server/cmd/config"
	columnspersistence "crm-server/internal/columns/persistence"
	columnsusecases "crm-server/internal/columns/usecases"
	contactshttpapi "crm-server/internal/contacts/httpapi"
	contactsusecases "crm-server/internal/contacts/usecases"
	dealshttpapi "crm-server/internal/deals/httpapi"
	dealsusecases "crm-server/internal/deals/usecases"
	"crm-server/internal/infra/async"
	"crm-server/internal/infra/cache"
	"crm-server/internal/infra/pubsub"
	"crm-server/internal/infra/sql"
	"crm-server/internal/infra/utils"
	sharedhttpapi "crm-server/internal/shared_kernel/httpapi"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const _memoryDatabaseName = "crm"

var (
	databaseOnce sync.Once
	database     sql.ORM
	databaseErr  error

	statsCacheOnce sync.Once
	statsCache     cache.Cache
	statsCacheErr  error

	pubsubFactoryOnce sync.Once
	pubsubFactory     *pubsub.Factory
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideLocation(cfg config.AppConfig) (*time.Location, error) {
	if err := utils.ValidateTimezone(cfg.General.Timezone); err != nil {
		return nil, err
	}
	return time.LoadLocation(cfg.General.Timezone)
}

// provideDatabase opens the ORM once per process. Postgres runs the embedded
// migrations before gorm connects.
func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	databaseOnce.Do(func() {
		switch cfg.Database.Driver {
		case "memory":
			database, databaseErr = sql.NewMemoryORM(_memoryDatabaseName)
		case "postgres":
			if err := sql.RunMigrations(cfg.Database.URL, sql.MigrateUp, 0); err != nil {
				databaseErr = fmt.Errorf("migrating database: %w", err)
				return
			}
			database, databaseErr = sql.NewPostgresORM(cfg.Database.DSN, cfg.Database.QueryTimeout)
		default:
			databaseErr = fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
		}
	})

	return database, databaseErr
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	pubsubFactoryOnce.Do(func() {
		env := "production"
		if cfg.IsLocal() {
			env = "local"
		}
		pubsubFactory = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:       env,
			KafkaBrokers:      cfg.Kafka.Brokers,
			ConsumerGroup:     cfg.Kafka.Group,
			SchemaRegistryURL: cfg.Kafka.SchemaRegistry,
		})
	})

	return pubsubFactory
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideConsumerFactory(factory *pubsub.Factory) pubsub.ConsumerFactory {
	return factory.GetConsumerFactory()
}

// provideStatsCache shares one in-process cache between every service so
// that writes invalidate the stats other controllers read.
func provideStatsCache() (cache.Cache, error) {
	statsCacheOnce.Do(func() {
		statsCache, statsCacheErr = cache.New(cache.DefaultConfig())
	})

	return statsCache, statsCacheErr
}

func provideStateStorage(cfg config.AppConfig, orm sql.ORM) (columnsusecases.StateStorage, error) {
	switch cfg.ColumnStore.Backend {
	case "redis":
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Redis.Addr
		redisConfig.Password = cfg.Redis.Password //pragma: allowlist secret
		redisConfig.DB = cfg.Redis.DB
		redisCache, err := cache.NewRedisCache(redisConfig)
		if err != nil {
			return nil, fmt.Errorf("connecting column store to redis: %w", err)
		}
		return columnspersistence.NewCacheStateStorage(redisCache, cfg.ColumnStore.TTL), nil
	case "memory":
		memoryCache, err := cache.New(cache.DefaultConfig())
		if err != nil {
			return nil, err
		}
		return columnspersistence.NewCacheStateStorage(memoryCache, cfg.ColumnStore.TTL), nil
	case "database", "":
		return columnspersistence.NewGormStateStorage(orm)
	default:
		slog.Warn("unknown column store backend, using the database", slog.String("backend", cfg.ColumnStore.Backend))
		return columnspersistence.NewGormStateStorage(orm)
	}
}

func provideContactSettings(cfg config.AppConfig, loc *time.Location) contactsusecases.Settings {
	return contactsusecases.Settings{
		Location: loc,
		StatsTTL: cfg.Stats.TTL,
	}
}

func provideDealSettings(cfg config.AppConfig, loc *time.Location) dealsusecases.Settings {
	return dealsusecases.Settings{
		Location: loc,
		StatsTTL: cfg.Stats.TTL,
	}
}

func provideLiveQueryController(
	cfg config.AppConfig,
	contacts *contactshttpapi.ContactLiveSource,
	deals *dealshttpapi.DealLiveSource,
) *sharedhttpapi.LiveQueryController {
	return sharedhttpapi.NewLiveQueryController(cfg.LiveQuery.Debounce, map[string]sharedhttpapi.LiveQuerySource{
		"contacts": contacts,
		"deals":    deals,
	})
}

func provideOverdueDealWorker(
	cfg config.AppConfig,
	loc *time.Location,
	repository dealsusecases.DealRepository,
	broker async.InternalBroker,
) (*dealsusecases.OverdueDealWorker, error) {
	return dealsusecases.NewOverdueDealWorker(cfg.Pipeline.OverdueSchedule, loc, repository, broker)
}
