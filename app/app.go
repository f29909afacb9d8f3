package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/config"
	"github.com/adenisov/bookstore-service/internal/handler"
	"github.com/adenisov/bookstore-service/internal/repository"
	"github.com/adenisov/bookstore-service/internal/server"
	"github.com/adenisov/bookstore-service/internal/service"
	"github.com/adenisov/bookstore-service/migrations"
	"github.com/adenisov/bookstore-service/pkg/auth"
	"github.com/adenisov/bookstore-service/pkg/kafka"
	"github.com/adenisov/bookstore-service/pkg/logger"
	"github.com/adenisov/bookstore-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookstore")
	auth.SetKey(cfg.JWT.Key)

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	svc := service.NewService(repo, producer, log)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.RestockConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go func() {
		if err := kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.EnsureRestockDraft, log), kafka.LowStockTopic); err != nil {
			log.Error("kafka consume", zap.Error(err))
		}
	}()

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
