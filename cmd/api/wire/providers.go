package wire

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tagback-server/cmd/config"
	catalogPersistence "tagback-server/internal/catalog/persistence"
	"tagback-server/internal/infra/cache"
	"tagback-server/internal/infra/httpserver"
	"tagback-server/internal/infra/notification"
	"tagback-server/internal/infra/pubsub"
	"tagback-server/internal/infra/sql"
)

// The memory ORM and the tag type cache are process wide: every injector
// must observe the same rows and the same invalidations.
var (
	databaseOnce     sync.Once
	databaseInstance sql.ORM
	databaseErr      error

	cacheOnce     sync.Once
	cacheInstance cache.Cache
	cacheErr      error

	pubSubOnce     sync.Once
	pubSubInstance *pubsub.Factory
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	databaseOnce.Do(func() {
		if cfg.General.IsLocal() {
			databaseInstance, databaseErr = sql.NewMemoryORM()
			return
		}

		db := sql.NewPostgreDatabase(cfg.Postgresql.URL)
		if err := db.Open(); err != nil {
			databaseErr = err
			return
		}

		orm, err := sql.NewPostgreORM(cfg.Postgresql.DSN, 5*time.Second, true)
		if err != nil {
			databaseErr = err
			return
		}
		databaseInstance = orm
	})

	return databaseInstance, databaseErr
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	pubSubOnce.Do(func() {
		pubSubInstance = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:       cfg.General.Environment,
			KafkaBrokers:      cfg.Kafka.Brokers,
			ConsumerGroup:     cfg.Kafka.Group,
			SchemaRegistryURL: cfg.Kafka.SchemaRegistry,
		})
	})

	return pubSubInstance
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideCache(cfg config.AppConfig) (cache.Cache, error) {
	cacheOnce.Do(func() {
		switch cfg.Cache.Backend {
		case config.CacheBackendRedis:
			redisConfig := cache.DefaultRedisConfig()
			redisConfig.Addr = cfg.Redis.Addr
			redisConfig.Password = cfg.Redis.Password
			redisConfig.DB = cfg.Redis.DB
			cacheInstance, cacheErr = cache.NewRedisCache(redisConfig)
		case config.CacheBackendMemory, "":
			cacheInstance, cacheErr = cache.New(cache.DefaultConfig())
		default:
			cacheErr = fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
		}
	})

	return cacheInstance, cacheErr
}

func provideCachedTagTypeRepository(
	repository *catalogPersistence.SimpleTagTypeRepository,
	c cache.Cache,
	cfg config.AppConfig,
) *catalogPersistence.CachedTagTypeRepository {
	return catalogPersistence.NewCachedTagTypeRepository(repository, c, cfg.Cache.TTL)
}

func provideIssuerConfig(cfg config.AppConfig) config.IssuerConfig {
	return cfg.Issuer
}

func provideScansConfig(cfg config.AppConfig) config.ScansConfig {
	return cfg.Scans
}

func providePublicConfig(cfg config.AppConfig) config.PublicConfig {
	return cfg.Public
}

func provideNotificationClient(cfg config.AppConfig) notification.NotificationClient {
	return notification.NewClient(notification.MailerSendConfig{
		APIKey:    cfg.MailerSend.APIKey,
		FromEmail: cfg.MailerSend.FromEmail,
		FromName:  cfg.MailerSend.FromName,
	})
}

// provideTicker drives the reconcile worker, which checks its cron schedule
// on every tick.
func provideTicker() *time.Ticker {
	return time.NewTicker(time.Minute)
}

func provideReadinessChecks(orm sql.ORM) map[string]httpserver.ReadinessCheck {
	return map[string]httpserver.ReadinessCheck{
		"database": httpserver.ReadinessCheckFunc(func(ctx context.Context) error {
			return orm.WithContext(ctx).Exec("SELECT 1").Error()
		}),
	}
}

func provideConsumerFactory(factory *pubsub.Factory) pubsub.ConsumerFactory {
	return factory.GetConsumerFactory()
}
