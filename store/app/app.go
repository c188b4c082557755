package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/bookstore-service/pkg/kafka"
	"github.com/Astemirdum/bookstore-service/pkg/logger"
	"github.com/Astemirdum/bookstore-service/pkg/postgres"
	"github.com/Astemirdum/bookstore-service/store/config"
	"github.com/Astemirdum/bookstore-service/store/internal/handler"
	"github.com/Astemirdum/bookstore-service/store/internal/repository"
	"github.com/Astemirdum/bookstore-service/store/internal/server"
	"github.com/Astemirdum/bookstore-service/store/internal/service"
	"github.com/Astemirdum/bookstore-service/store/migrations"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "store")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var opts []service.Option
	var closeProducer func() error
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		closeProducer = producer.Close
		opts = append(opts, service.WithOrderEvents(kafka.NewEnqueuer(producer)))
	} else {
		log.Info("kafka brokers not configured, order events disabled")
	}
	svc := service.NewService(repo, log, opts...)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown", zap.NamedError("cause", context.Cause(gCtx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
	}

	if closeProducer != nil {
		if err := closeProducer(); err != nil {
			log.Warn("kafka producer close", zap.Error(err))
		}
	}
	if err := db.Close(); err != nil {
		log.Warn("db close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
