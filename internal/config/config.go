package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DRH       DRHConfig
	DB        DBConfig
	Server    ServerConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	CacheTTLs CacheTTLConfig
	Batch     BatchConfig
}

// DRHConfig describes how to reach the Database of Religious History API.
type DRHConfig struct {
	Hostname string
	Version  string
	// BaseURL overrides the URL built from Hostname and Version.
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retry   RetryConfig
}

type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	// Env selects the encoder: "production" logs JSON, anything else console.
	Env string
}

type CacheTTLConfig struct {
	Entry string
}

type BatchConfig struct {
	Concurrency int
}

const (
	DriverSQLite = "sqlite"
	DriverOracle = "oracle"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("drh.hostname", "religiondatabase.org/public-api")
	v.SetDefault("drh.version", "v1")
	v.SetDefault("drh.timeout", "30s")
	v.SetDefault("drh.retry.max_retries", 10)
	v.SetDefault("drh.retry.base_delay", "1s")
	v.SetDefault("drh.retry.max_delay", "120s")
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "drh.db")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "production")
	v.SetDefault("cache_ttls.entry", "24h")
	v.SetDefault("batch.concurrency", 1)
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		DRH: DRHConfig{
			Hostname: v.GetString("drh.hostname"),
			Version:  v.GetString("drh.version"),
			BaseURL:  v.GetString("drh.base_url"),
			APIKey:   v.GetString("drh.api_key"),
			Timeout:  v.GetDuration("drh.timeout"),
			Retry: RetryConfig{
				MaxRetries: v.GetInt("drh.retry.max_retries"),
				BaseDelay:  v.GetDuration("drh.retry.base_delay"),
				MaxDelay:   v.GetDuration("drh.retry.max_delay"),
			},
		},
		DB: DBConfig{
			Driver:   v.GetString("db.driver"),
			Path:     v.GetString("db.path"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		CacheTTLs: CacheTTLConfig{
			Entry: v.GetString("cache_ttls.entry"),
		},
		Batch: BatchConfig{
			Concurrency: v.GetInt("batch.concurrency"),
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("DRH_API_KEY"); apiKey != "" {
		config.DRH.APIKey = apiKey
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.DB.Path = dbPath
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	if config.Batch.Concurrency < 1 {
		config.Batch.Concurrency = 1
	}
	return config
}

// APIBaseURL returns the versioned root of the DRH API, e.g.
// https://religiondatabase.org/public-api/v1.
func (c DRHConfig) APIBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return fmt.Sprintf("https://%s/%s", strings.Trim(c.Hostname, "/"), c.Version)
}

func (c *Config) GetDSN() string {
	switch c.DB.Driver {
	case DriverOracle:
		return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
			c.DB.User,
			c.DB.Password,
			c.DB.Host,
			c.DB.Port,
			c.DB.DBName,
		)
	default:
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", c.DB.Path)
	}
}

// ParseTTLStringOrDefault parses a duration string, falling back to
// defaultTTL when it is empty or malformed.
func (c *Config) ParseTTLStringOrDefault(ttlString string, defaultTTL time.Duration) time.Duration {
	if ttlString == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(ttlString)
	if err != nil || d <= 0 {
		return defaultTTL
	}
	return d
}
