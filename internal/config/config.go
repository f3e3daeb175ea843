package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	NATS      NATSConfig      `mapstructure:"nats"`
	Auth      AuthConfig      `mapstructure:"auth"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Engine    EngineConfig    `mapstructure:"engine"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type NATSConfig struct {
	Enabled  bool               `mapstructure:"enabled"`
	URL      string             `mapstructure:"url"`
	Subjects NATSSubjectsConfig `mapstructure:"subjects"`
}

type NATSSubjectsConfig struct {
	ReportCompleted string `mapstructure:"report_completed"`
	CatalogReloaded string `mapstructure:"catalog_reloaded"`
}

type AuthConfig struct {
	AdminToken string `mapstructure:"admin_token"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// CatalogConfig controls where the vendor catalog is loaded from.
// With an empty DataDir the embedded dataset is used.
type CatalogConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// EngineConfig holds the cost model policy knobs. Every adjustment whose
// provenance is unclear in the source data is a configurable here rather
// than a baked-in constant.
type EngineConfig struct {
	// Fully-loaded annual cost of one FTE, used when the caller does not
	// supply one on the organization profile.
	DefaultFteAnnualCost float64 `mapstructure:"default_fte_annual_cost"`
	// One-time training cost per trained user.
	TrainingCostPerUser float64 `mapstructure:"training_cost_per_user"`
	// Annual discount rate applied in NPV calculations.
	DiscountRate float64 `mapstructure:"discount_rate"`

	Multipliers MultiplierConfig `mapstructure:"multipliers"`
	Scoring     ScoringConfig    `mapstructure:"scoring"`
}

// MultiplierConfig holds optional cost adjustments for organization flags.
// Factors are additive fractions: a factor of 0.10 with 3 locations scales
// the affected categories by 1 + 2*0.10.
type MultiplierConfig struct {
	LocationFactor float64 `mapstructure:"location_factor"`
	LegacyFactor   float64 `mapstructure:"legacy_factor"`
	ByodFactor     float64 `mapstructure:"byod_factor"`
}

// ScoringConfig holds risk and compliance scoring policy.
type ScoringConfig struct {
	// Multiplier applied to risk reduction scores for high-risk industries.
	// 1.0 means no adjustment.
	HighRiskMultiplier float64 `mapstructure:"high_risk_multiplier"`
	// When true, compliance coverage is averaged weighted by each
	// framework's NAC relevance instead of unweighted.
	WeightByRelevance bool `mapstructure:"weight_by_relevance"`
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/naccost-lab")
	}

	// Environment variables
	v.SetEnvPrefix("NACCOST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("redis.host", "NACCOST_REDIS_HOST")
	v.BindEnv("redis.port", "NACCOST_REDIS_PORT")
	v.BindEnv("redis.password", "NACCOST_REDIS_PASSWORD")
	v.BindEnv("database.enabled", "NACCOST_DATABASE_ENABLED")
	v.BindEnv("database.host", "NACCOST_DATABASE_HOST")
	v.BindEnv("database.port", "NACCOST_DATABASE_PORT")
	v.BindEnv("database.user", "NACCOST_DATABASE_USER")
	v.BindEnv("database.password", "NACCOST_DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "NACCOST_DATABASE_DBNAME")
	v.BindEnv("nats.enabled", "NACCOST_NATS_ENABLED")
	v.BindEnv("auth.admin_token", "NACCOST_AUTH_ADMIN_TOKEN")
	v.BindEnv("app.environment", "NACCOST_APP_ENVIRONMENT")

	setDefaults(v)

	// Read config file; run with defaults when none is present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads configuration with default path
func LoadDefault() (*Config, error) {
	return Load("")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "naccost-lab")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "naccost")
	v.SetDefault("database.dbname", "naccost")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.key_prefix", "naccost:")

	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.subjects.report_completed", "naccost.reports.completed")
	v.SetDefault("nats.subjects.catalog_reloaded", "naccost.catalog.reloaded")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type"})
	v.SetDefault("cors.max_age", 300)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requests_per_minute", 120)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.time_format", time.RFC3339)

	v.SetDefault("engine.default_fte_annual_cost", 100000)
	v.SetDefault("engine.training_cost_per_user", 0)
	v.SetDefault("engine.discount_rate", 0.09)
	v.SetDefault("engine.multipliers.location_factor", 0.10)
	v.SetDefault("engine.multipliers.legacy_factor", 0)
	v.SetDefault("engine.multipliers.byod_factor", 0)
	v.SetDefault("engine.scoring.high_risk_multiplier", 1.0)
	v.SetDefault("engine.scoring.weight_by_relevance", false)
}
