package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

var _envFiles = []string{".env", ".env.local"}

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		for _, dir := range []string{".", "config"} {
			for _, envFile := range _envFiles {
				// missing files are fine, real deployments use the environment
				_ = godotenv.Load(filepath.Join(dir, envFile))
			}
		}

		viper.SetEnvPrefix("tagback_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		setDefaults()
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = fromViper()
	})

	return configInstance
}

func setDefaults() {
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.environment", "production")
	viper.SetDefault("http.addr", ":3000")
	viper.SetDefault("http.allowed_origins", []string{"*"})
	viper.SetDefault("kafka.group", "tagback-server")
	viper.SetDefault("cache.backend", CacheBackendMemory)
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("issuer.max_attempts", 5)
	viper.SetDefault("scans.reconcile_schedule", "0 3 * * *")
	viper.SetDefault("mailersend.from_name", "Tagback")
}

func fromViper() AppConfig {
	return AppConfig{
		General: GeneralConfig{
			LogLevel:    viper.GetString("general.log_level"),
			LogFile:     viper.GetString("general.log_file"),
			Environment: viper.GetString("general.environment"),
		},
		HTTP: HTTPConfig{
			Addr:           viper.GetString("http.addr"),
			AllowedOrigins: viper.GetStringSlice("http.allowed_origins"),
		},
		Postgresql: PostgresqlConfig{
			URL:                   viper.GetString("database.url"),
			DSN:                   viper.GetString("database.dsn"),
			MigrationReplacements: viper.GetStringMapString("database.migration_replacements"),
		},
		Kafka: KafkaConfig{
			Brokers:        viper.GetStringSlice("kafka.brokers"),
			Group:          viper.GetString("kafka.group"),
			SchemaRegistry: viper.GetString("kafka.schema_registry"),
		},
		Cache: CacheConfig{
			Backend: viper.GetString("cache.backend"),
			TTL:     viper.GetDuration("cache.ttl"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		MailerSend: MailerSendConfig{
			APIKey:    viper.GetString("mailersend.api_key"),
			FromEmail: viper.GetString("mailersend.from_email"),
			FromName:  viper.GetString("mailersend.from_name"),
		},
		Issuer: IssuerConfig{
			MaxAttempts: viper.GetInt("issuer.max_attempts"),
		},
		Scans: ScansConfig{
			ReconcileSchedule: viper.GetString("scans.reconcile_schedule"),
		},
		Public: PublicConfig{
			BaseURL: viper.GetString("public.base_url"),
		},
	}
}

type AppConfig struct {
	General    GeneralConfig
	HTTP       HTTPConfig
	Kafka      KafkaConfig
	Postgresql PostgresqlConfig
	Cache      CacheConfig
	Redis      RedisConfig
	MailerSend MailerSendConfig
	Issuer     IssuerConfig
	Scans      ScansConfig
	Public     PublicConfig
}

const (
	EnvironmentLocal = "local"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type GeneralConfig struct {
	LogLevel    string
	LogFile     string
	Environment string
}

func (c GeneralConfig) IsLocal() bool {
	return c.Environment == EnvironmentLocal
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type PostgresqlConfig struct {
	URL                   string
	DSN                   string
	MigrationReplacements map[string]string
}

type CacheConfig struct {
	Backend string
	TTL     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MailerSendConfig without an APIKey makes notifications log-only.
type MailerSendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type IssuerConfig struct {
	MaxAttempts int
}

// ScansConfig.ReconcileSchedule is a five field cron expression.
type ScansConfig struct {
	ReconcileSchedule string
}

type PublicConfig struct {
	BaseURL string
}
