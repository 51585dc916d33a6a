package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Domenick1991/eventbooking/config"
	"github.com/Domenick1991/eventbooking/internal/kafka"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/rabbitmq"
	"github.com/Domenick1991/eventbooking/internal/repository"
	"github.com/Domenick1991/eventbooking/internal/repository/memstore"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewLogger(cfg config.LogConfig) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// OpenStore connects the configured storage. The returned func releases it.
func OpenStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (repository.Store, func(), error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn("using in-memory storage, data is lost on exit")
		return memstore.New(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}
	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
	}
	return repository.NewPGStore(pool), pool.Close, nil
}

// NewPublisher builds the broker publisher notifications are forwarded to.
// It returns a nil publisher when no broker is configured.
func NewPublisher(ctx context.Context, cfg *config.Config, log *slog.Logger) (notify.Publisher, func(), error) {
	switch cfg.Notifications.Broker {
	case config.BrokerKafka:
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		if err := producer.CheckConnection(ctx); err != nil {
			log.Warn("kafka not reachable yet", slog.String("error", err.Error()))
		}
		closeFn := func() {
			if err := producer.Close(); err != nil {
				log.Warn("close kafka producer", slog.String("error", err.Error()))
			}
		}
		return kafka.NewNotificationPublisher(producer, cfg.Kafka.NotificationsTopic, cfg.Kafka.PublishRetries), closeFn, nil
	case config.BrokerRabbitMQ:
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, log)
		if err != nil {
			return nil, nil, err
		}
		return pub, pub.Close, nil
	}
	return nil, func() {}, nil
}
