package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// QuickBucks specifics
	Auth     AuthConfig
	Parser   ParserConfig
	Insights InsightsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// ParserConfig tunes the natural-language task parser. Keyword lists, when
// set, replace the built-in table for that category or urgency level.
type ParserConfig struct {
	Strategy         string
	Timezone         string
	CategoryKeywords map[string][]string
	UrgencyKeywords  map[string][]string
	StripVerbs       []string
}

type InsightsConfig struct {
	MaxInsights     int
	CacheTTL        time.Duration
	RecentWindow    time.Duration
	FullAnalysisMin int
	TimePatternMin  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/quickbucks/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/quickbucks/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.Auth.JWTSecret = jwtSecret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required - set it in config.yaml or via JWT_SECRET")
	}

	// Parser
	cfg.Parser.Strategy = viper.GetString("parser.strategy")
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.CategoryKeywords = viper.GetStringMapStringSlice("parser.category_keywords")
	cfg.Parser.UrgencyKeywords = viper.GetStringMapStringSlice("parser.urgency_keywords")
	cfg.Parser.StripVerbs = viper.GetStringSlice("parser.strip_verbs")

	// Insights
	cfg.Insights.MaxInsights = viper.GetInt("insights.max_insights")
	cfg.Insights.CacheTTL = viper.GetDuration("insights.cache_ttl")
	cfg.Insights.RecentWindow = viper.GetDuration("insights.recent_window")
	cfg.Insights.FullAnalysisMin = viper.GetInt("insights.full_analysis_min")
	cfg.Insights.TimePatternMin = viper.GetInt("insights.time_pattern_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "quickbucks")
	viper.SetDefault("postgres.database", "quickbucks")
	viper.SetDefault("postgres.ssl_mode", "disable")

	viper.SetDefault("auth.token_ttl", 30*24*time.Hour)

	viper.SetDefault("parser.strategy", "substring")
	viper.SetDefault("parser.timezone", "UTC")

	viper.SetDefault("insights.max_insights", 6)
	viper.SetDefault("insights.cache_ttl", 5*time.Minute)
	viper.SetDefault("insights.recent_window", 7*24*time.Hour)
	viper.SetDefault("insights.full_analysis_min", 3)
	viper.SetDefault("insights.time_pattern_min", 3)
}
