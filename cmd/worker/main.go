package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Domenick1991/eventbooking/config"
	"github.com/Domenick1991/eventbooking/internal/bootstrap"
	"github.com/Domenick1991/eventbooking/internal/cache"
	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/email"
	"github.com/Domenick1991/eventbooking/internal/kafka"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/ops"
	"github.com/Domenick1991/eventbooking/internal/rabbitmq"
	"github.com/Domenick1991/eventbooking/internal/service/lifecycle"
	"github.com/spf13/pflag"
)

func main() {
	cfgPath := pflag.String("config", "", "path to config.yaml (defaults to $CONFIG_PATH, then config.yaml)")
	hashSecret := pflag.String("hash-secret", "", "print the bcrypt hash for an ops secret and exit")
	pflag.Parse()

	if *hashSecret != "" {
		h, err := ops.HashSecret(*hashSecret)
		if err != nil {
			log.Fatalf("hash secret: %v", err)
		}
		fmt.Println(h)
		return
	}

	path := *cfgPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := bootstrap.NewLogger(cfg.Log).With(slog.String("process", "worker"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	publisher, closePublisher, err := bootstrap.NewPublisher(ctx, cfg, logger)
	if err != nil {
		logger.Error("connect broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closePublisher()

	clk := clock.Real()

	var mailboxOpts []notify.MailboxOption
	if publisher != nil {
		mailboxOpts = append(mailboxOpts, notify.WithPublisher(publisher))
	}
	notifier := notify.NewNotifier(notify.NewMailbox(store, clk, logger, mailboxOpts...), logger)

	var (
		invalidator   lifecycle.CacheInvalidator
		schedulerOpts []lifecycle.SchedulerOption
		opsOpts       []ops.Option
	)
	if cfg.Redis.Addr != "" {
		hostname, _ := os.Hostname()
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.EventsCacheTTL)*time.Second, hostname)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis not reachable, sweeps run unguarded until it is", slog.String("error", err.Error()))
		}
		invalidator = redisCache
		schedulerOpts = append(schedulerOpts, lifecycle.WithLocker(redisCache, cfg.Worker.LockTTL()))
		opsOpts = append(opsOpts, ops.WithLocker(redisCache, cfg.Worker.LockTTL()))
	}

	sweeper := lifecycle.NewSweeper(store, notifier, invalidator, clk, logger, lifecycle.Config{
		ReminderTolerance: cfg.Worker.ReminderTolerance(),
		Retention:         cfg.Worker.Retention(),
	})

	intervals := map[string]time.Duration{
		"completion":     cfg.Worker.CompletionInterval(),
		"reminders":      cfg.Worker.ReminderInterval(),
		"event-cleanup":  cfg.Worker.CleanupInterval(),
		"ticket-cleanup": cfg.Worker.CleanupInterval(),
	}
	scheduler := lifecycle.NewScheduler(clk, logger, lifecycle.SweepJobs(sweeper, func(name string) lifecycle.Trigger {
		return lifecycle.Every(clk, intervals[name])
	}), schedulerOpts...)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		scheduler.Run(ctx)
	}()

	sender := email.NewSender(cfg.Notifications.EmailFrom, cfg.Notifications.EmailDomain, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumeNotifications(ctx, cfg, logger, sender.Send); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("notification consumer stopped", slog.String("error", err.Error()))
		}
	}()

	opsServer := &http.Server{
		Addr:              cfg.Ops.Address,
		Handler:           ops.NewServer(sweeper, cfg.Ops.SecretHash, logger, opsOpts...).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops server", slog.String("error", err.Error()))
			stop()
		}
	}()
	logger.Info("worker started", slog.String("ops", cfg.Ops.Address), slog.String("broker", cfg.Notifications.Broker))

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown ops server", slog.String("error", err.Error()))
	}
	wg.Wait()
}

// consumeNotifications forwards broker messages to the delivery channel
// until ctx ends.
func consumeNotifications(ctx context.Context, cfg *config.Config, logger *slog.Logger, deliver func(context.Context, notify.Message) error) error {
	switch cfg.Notifications.Broker {
	case config.BrokerKafka:
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, logger)
		defer consumer.Close()
		return consumer.ConsumeNotifications(ctx, deliver)
	case config.BrokerRabbitMQ:
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.URL, logger)
		if err != nil {
			return err
		}
		defer consumer.Close()
		return consumer.ConsumeNotifications(ctx, deliver)
	}
	logger.Info("no notification broker configured, delivery disabled")
	return nil
}
