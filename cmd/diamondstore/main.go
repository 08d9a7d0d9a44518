package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sevenam/diamondstore/internal/checkout"
	"github.com/sevenam/diamondstore/internal/config"
	"github.com/sevenam/diamondstore/internal/db"
	"github.com/sevenam/diamondstore/internal/events"
	"github.com/sevenam/diamondstore/internal/kafka"
	"github.com/sevenam/diamondstore/internal/kv"
	"github.com/sevenam/diamondstore/internal/logger"
	"github.com/sevenam/diamondstore/internal/notify"
	"github.com/sevenam/diamondstore/internal/report"
	"github.com/sevenam/diamondstore/internal/server"
	"github.com/sevenam/diamondstore/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.MustLoad()
	log := logger.New(cfg.LogFile)
	defer log.Sync()

	backend, closeBackend, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to open store backend", zap.String("backend", cfg.Store.Backend), zap.Error(err))
	}
	defer closeBackend()

	manager := events.NewManager(newProducer(cfg, log), events.Config{
		Topic:        cfg.Kafka.Topic,
		Workers:      cfg.Events.Workers,
		BatchSize:    cfg.Events.BatchSize,
		FlushTimeout: cfg.Events.FlushTimeout,
	}, log)
	// stopped explicitly after the HTTP server so in-flight mutations still publish
	manager.Start(context.Background())

	st, err := store.New(ctx, backend, store.WithLogger(log), store.WithActivityHook(manager.Hook()))
	if err != nil {
		log.Fatal("failed to initialize store", zap.Error(err))
	}

	dispatcher := notify.NewDispatcher(st.Settings, newPushNotifier(cfg, log), newMailNotifier(cfg, st), log)

	checkoutSvc := checkout.NewService(st, checkout.NewScreenshotEncoder(cfg.MaxScreenshotBytes), dispatcher, log)

	reporter := report.New(st, dispatcher, log)
	if err := reporter.Start(cfg.ReportSchedule); err != nil {
		log.Fatal("failed to schedule daily report", zap.String("schedule", cfg.ReportSchedule), zap.Error(err))
	}

	srv := server.New(st, checkoutSvc, cfg.MaxScreenshotBytes, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(cfg.HTTPPort)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		err := srv.Shutdown(shutdownCtx)
		reporter.Stop(shutdownCtx)
		checkoutSvc.Wait()
		manager.Shutdown(shutdownCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return
	}
	log.Info("server gracefully stopped")
}

func openBackend(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Backend, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		log.Warn("using in-memory store, state is lost on restart")
		return kv.NewMemoryBackend(), func() {}, nil

	case config.BackendPostgres:
		database, err := db.NewDb(ctx, cfg.Postgres.DB())
		if err != nil {
			return nil, nil, err
		}
		pb := kv.NewPostgresBackend(database)
		if err := pb.Init(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return pb, database.Close, nil

	case config.BackendMongo:
		mb, err := kv.NewMongoBackend(ctx, cfg.Mongo.URL, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		return mb, func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer closeCancel()
			if err := mb.Close(closeCtx); err != nil {
				log.Warn("failed to close mongo client", zap.Error(err))
			}
		}, nil

	default:
		fb, err := kv.NewFileBackend(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		return fb, func() {}, nil
	}
}

func newProducer(cfg *config.Config, log *zap.Logger) kafka.Producer {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("no kafka brokers configured, activity events go to stdout")
		return kafka.NewConsoleProducer(log)
	}
	return kafka.NewKafkaProducer(cfg.Kafka.Brokers, log)
}

func newPushNotifier(cfg *config.Config, log *zap.Logger) notify.Notifier {
	if cfg.Telegram.BotToken == "" {
		return nil
	}
	tg, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID)
	if err != nil {
		log.Warn("telegram notifications disabled", zap.Error(err))
		return nil
	}
	return tg
}

func newMailNotifier(cfg *config.Config, st *store.Store) notify.Notifier {
	if cfg.SMTP.Host == "" {
		return nil
	}
	return notify.NewMailNotifier(notify.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, func() string {
		return st.Settings().SupportEmail
	})
}
