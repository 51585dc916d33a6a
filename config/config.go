package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	GRPC          GRPCConfig          `yaml:"grpc"`
	Storage       StorageConfig       `yaml:"storage"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	Kafka         KafkaConfig         `yaml:"kafka"`
	RabbitMQ      RabbitMQConfig      `yaml:"rabbitmq"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Booking       BookingConfig       `yaml:"booking"`
	Worker        WorkerConfig        `yaml:"worker"`
	Ops           OpsConfig           `yaml:"ops"`
	Log           LogConfig           `yaml:"log"`
}

type HTTPConfig struct {
	Address     string `yaml:"address"`
	SwaggerSpec string `yaml:"swagger_spec"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type StorageConfig struct {
	Driver string `yaml:"driver"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
	Migrate  bool   `yaml:"migrate"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
	PublishRetries     int      `yaml:"publish_retries"`
}

type RabbitMQConfig struct {
	URL string `yaml:"url"`
}

const (
	BrokerNone     = "none"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

type NotificationsConfig struct {
	Broker      string `yaml:"broker"`
	EmailFrom   string `yaml:"email_from"`
	EmailDomain string `yaml:"email_domain"`
}

type BookingConfig struct {
	MaxPerOrder    int  `yaml:"max_per_order"`
	EventsCacheTTL int  `yaml:"events_cache_ttl_seconds"`
	PaymentSandbox bool `yaml:"payment_sandbox"`
}

type WorkerConfig struct {
	CompletionIntervalSeconds int `yaml:"completion_interval_seconds"`
	ReminderIntervalSeconds   int `yaml:"reminder_interval_seconds"`
	CleanupIntervalMinutes    int `yaml:"cleanup_interval_minutes"`
	ReminderToleranceMinutes  int `yaml:"reminder_tolerance_minutes"`
	RetentionHours            int `yaml:"retention_hours"`
	LockTTLSeconds            int `yaml:"lock_ttl_seconds"`
}

func (w WorkerConfig) CompletionInterval() time.Duration {
	return time.Duration(w.CompletionIntervalSeconds) * time.Second
}

func (w WorkerConfig) ReminderInterval() time.Duration {
	return time.Duration(w.ReminderIntervalSeconds) * time.Second
}

func (w WorkerConfig) CleanupInterval() time.Duration {
	return time.Duration(w.CleanupIntervalMinutes) * time.Minute
}

func (w WorkerConfig) ReminderTolerance() time.Duration {
	return time.Duration(w.ReminderToleranceMinutes) * time.Minute
}

func (w WorkerConfig) Retention() time.Duration {
	return time.Duration(w.RetentionHours) * time.Hour
}

func (w WorkerConfig) LockTTL() time.Duration {
	return time.Duration(w.LockTTLSeconds) * time.Second
}

type OpsConfig struct {
	Address    string `yaml:"address"`
	SecretHash string `yaml:"secret_hash"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name, defaulting to info.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// LoadConfig reads .env (if present), the YAML file at path, applies
// environment overrides and defaults, and validates the result.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(os.LookupEnv)
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	str("STORAGE_DRIVER", &c.Storage.Driver)
	str("DATABASE_HOST", &c.Database.Host)
	num("DATABASE_PORT", &c.Database.Port)
	str("DATABASE_USER", &c.Database.User)
	str("DATABASE_PASSWORD", &c.Database.Password)
	str("DATABASE_NAME", &c.Database.Name)
	str("DATABASE_SSLMODE", &c.Database.SSLMode)
	str("REDIS_ADDR", &c.Redis.Addr)
	str("RABBITMQ_URL", &c.RabbitMQ.URL)
	str("NOTIFICATIONS_BROKER", &c.Notifications.Broker)
	str("OPS_SECRET_HASH", &c.Ops.SecretHash)
	str("LOG_LEVEL", &c.Log.Level)
	if v, ok := lookup("KAFKA_BROKERS"); ok && v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
}

func (c *Config) applyDefaults() {
	def := func(dst *int, v int) {
		if *dst <= 0 {
			*dst = v
		}
	}
	defStr := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}

	defStr(&c.HTTP.Address, ":8080")
	defStr(&c.GRPC.Address, ":9090")
	defStr(&c.Storage.Driver, StoragePostgres)
	def(&c.Database.Port, 5432)
	defStr(&c.Database.SSLMode, "disable")
	defStr(&c.Kafka.NotificationsTopic, "eventbooking.notifications")
	defStr(&c.Kafka.GroupID, "eventbooking-worker")
	def(&c.Kafka.PublishRetries, 3)
	defStr(&c.Notifications.Broker, BrokerKafka)
	defStr(&c.Notifications.EmailFrom, "tickets@eventbooking.local")
	defStr(&c.Notifications.EmailDomain, "users.eventbooking.local")
	def(&c.Booking.MaxPerOrder, 10)
	def(&c.Booking.EventsCacheTTL, 30)
	def(&c.Worker.CompletionIntervalSeconds, 60)
	def(&c.Worker.ReminderIntervalSeconds, 300)
	def(&c.Worker.CleanupIntervalMinutes, 60)
	def(&c.Worker.ReminderToleranceMinutes, 10)
	def(&c.Worker.RetentionHours, 7*24)
	def(&c.Worker.LockTTLSeconds, 120)
	defStr(&c.Ops.Address, ":8081")
	defStr(&c.Log.Level, "info")
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		errs = append(errs, fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver))
	}
	if c.Storage.Driver == StoragePostgres && (c.Database.Host == "" || c.Database.Name == "") {
		errs = append(errs, errors.New("database: host and name are required for the postgres driver"))
	}
	switch c.Notifications.Broker {
	case BrokerNone:
	case BrokerKafka:
		if len(c.Kafka.Brokers) == 0 {
			errs = append(errs, errors.New("kafka.brokers: required when notifications.broker is kafka"))
		}
	case BrokerRabbitMQ:
		if c.RabbitMQ.URL == "" {
			errs = append(errs, errors.New("rabbitmq.url: required when notifications.broker is rabbitmq"))
		}
	default:
		errs = append(errs, fmt.Errorf("notifications.broker: unknown broker %q", c.Notifications.Broker))
	}
	if c.Booking.MaxPerOrder > 100 {
		errs = append(errs, errors.New("booking.max_per_order: must not exceed 100"))
	}
	return errors.Join(errs...)
}
