package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/YOUNSSBOSS/car-rent/config"
	"github.com/YOUNSSBOSS/car-rent/internal/handler"
	"github.com/YOUNSSBOSS/car-rent/internal/repository"
	"github.com/YOUNSSBOSS/car-rent/internal/server"
	"github.com/YOUNSSBOSS/car-rent/internal/service"
	"github.com/YOUNSSBOSS/car-rent/migrations"
	"github.com/YOUNSSBOSS/car-rent/pkg/kafka"
	"github.com/YOUNSSBOSS/car-rent/pkg/logger"
	"github.com/YOUNSSBOSS/car-rent/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "car-rent")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}

	var producer sarama.SyncProducer
	if p, err := kafka.NewProducer(cfg.Kafka); err != nil {
		log.Warn("kafka producer unavailable, booking events disabled", zap.Error(err))
	} else {
		producer = p
	}

	repos := repository.New(db, log)
	services := service.New(repos, producer, cfg.Auth, log)
	h := handler.New(services.Auth, services.Car, services.Booking, services.Stats, cfg.Auth, log)

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
		log.Error("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		_ = producer.Close()
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
