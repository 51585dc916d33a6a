package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/eventbooking/config"
	"github.com/Domenick1991/eventbooking/internal/bootstrap"
	"github.com/Domenick1991/eventbooking/internal/cache"
	"github.com/Domenick1991/eventbooking/internal/clock"
	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/Domenick1991/eventbooking/internal/payment"
	"github.com/Domenick1991/eventbooking/internal/service/admin"
	"github.com/Domenick1991/eventbooking/internal/service/booking"
	"github.com/Domenick1991/eventbooking/internal/service/checkin"
	"github.com/Domenick1991/eventbooking/internal/service/events"
	"github.com/Domenick1991/eventbooking/internal/service/inbox"
	"github.com/Domenick1991/eventbooking/internal/service/waitlist"
	"github.com/spf13/pflag"
)

func main() {
	cfgPath := pflag.String("config", "", "path to config.yaml (defaults to $CONFIG_PATH, then config.yaml)")
	pflag.Parse()

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
	logger := bootstrap.NewLogger(cfg.Log)

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

	var eventsCache events.Cache
	if cfg.Redis.Addr != "" {
		hostname, _ := os.Hostname()
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.EventsCacheTTL)*time.Second, hostname)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis not reachable, listings will hit storage", slog.String("error", err.Error()))
		}
		eventsCache = redisCache
	}

	var mailboxOpts []notify.MailboxOption
	if publisher != nil {
		mailboxOpts = append(mailboxOpts, notify.WithPublisher(publisher))
	}
	notifier := notify.NewNotifier(notify.NewMailbox(store, clk, logger, mailboxOpts...), logger)

	var payments payment.Authorizer = payment.Sandbox{}
	if !cfg.Booking.PaymentSandbox {
		logger.Warn("no payment processor configured, priced events cannot be booked")
		payments = payment.Func(func(context.Context, int64, string) (bool, error) {
			return false, payment.ErrUnavailable
		})
	}

	waitlistService := waitlist.NewWaitlistService(store, notifier, clk, logger)
	eventService := events.NewEventService(store, eventsCache, waitlistService, notifier, clk, logger)
	bookingService := booking.NewBookingService(store, payments, waitlistService, notifier, clk, logger,
		booking.WithMaxPerOrder(cfg.Booking.MaxPerOrder))
	checkInService := checkin.NewCheckInService(store, clk, logger)
	adminService := admin.NewAdminService(store, waitlistService, eventsCache, notifier, clk, logger)
	inboxService := inbox.NewInboxService(store)

	if err := bootstrap.Run(ctx, cfg, logger, bootstrap.Services{
		Events:   eventService,
		Bookings: bookingService,
		CheckIn:  checkInService,
		Waitlist: waitlistService,
		Admin:    adminService,
		Inbox:    inboxService,
	}); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
