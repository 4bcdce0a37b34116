package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// UseConfigFile points LoadConfig at an explicit file instead of searching
// for server.yaml. It has no effect once the configuration is loaded.
func UseConfigFile(path string) {
	if path != "" {
		viper.SetConfigFile(path)
	}
}

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("crm_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		setDefaults()
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = readConfig()
	})

	return configInstance
}

func setDefaults() {
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("general.timezone", "UTC")
	viper.SetDefault("general.environment", "production")
	viper.SetDefault("http.addr", ":3000")
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.query_timeout", 5*time.Second)
	viper.SetDefault("kafka.group", "crm-server")
	viper.SetDefault("column_store.backend", "database")
	viper.SetDefault("live_query.debounce", 300*time.Millisecond)
	viper.SetDefault("pipeline.overdue_schedule", "@every 1h")
	viper.SetDefault("stats.ttl", 30*time.Second)
}

func readConfig() AppConfig {
	return AppConfig{
		General: GeneralConfig{
			LogLevel:    viper.GetString("general.log_level"),
			Timezone:    viper.GetString("general.timezone"),
			Environment: viper.GetString("general.environment"),
		},
		HTTP: HTTPConfig{
			Addr:           viper.GetString("http.addr"),
			AllowedOrigins: viper.GetStringSlice("http.allowed_origins"),
		},
		Database: DatabaseConfig{
			Driver:       viper.GetString("database.driver"),
			DSN:          viper.GetString("database.dsn"),
			URL:          viper.GetString("database.url"),
			QueryTimeout: viper.GetDuration("database.query_timeout"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Kafka: KafkaConfig{
			Brokers:        viper.GetStringSlice("kafka.brokers"),
			Group:          viper.GetString("kafka.group"),
			SchemaRegistry: viper.GetString("kafka.schema_registry"),
		},
		ColumnStore: ColumnStoreConfig{
			Backend: viper.GetString("column_store.backend"),
			TTL:     viper.GetDuration("column_store.ttl"),
		},
		LiveQuery: LiveQueryConfig{
			Debounce: viper.GetDuration("live_query.debounce"),
		},
		Pipeline: PipelineConfig{
			OverdueSchedule: viper.GetString("pipeline.overdue_schedule"),
		},
		Stats: StatsConfig{
			TTL: viper.GetDuration("stats.ttl"),
		},
	}
}

type AppConfig struct {
	General     GeneralConfig
	HTTP        HTTPConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	ColumnStore ColumnStoreConfig
	LiveQuery   LiveQueryConfig
	Pipeline    PipelineConfig
	Stats       StatsConfig
}

// IsLocal reports whether the process runs without external brokers.
func (c AppConfig) IsLocal() bool {
	return c.General.Environment == "local"
}

type GeneralConfig struct {
	LogLevel    string
	Timezone    string
	Environment string
}

type HTTPConfig struct {
	Addr           string
	AllowedOrigins []string
}

// DatabaseConfig selects the ORM. Driver "memory" runs on a shared in-memory
// sqlite database, "postgres" uses DSN for gorm and URL for migrations and
// the readiness pool.
type DatabaseConfig struct {
	Driver       string
	DSN          string
	URL          string
	QueryTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

// ColumnStoreConfig picks where column configurations live: "database",
// "redis" or "memory".
type ColumnStoreConfig struct {
	Backend string
	TTL     time.Duration
}

type LiveQueryConfig struct {
	Debounce time.Duration
}

type PipelineConfig struct {
	OverdueSchedule string
}

type StatsConfig struct {
	TTL time.Duration
}
