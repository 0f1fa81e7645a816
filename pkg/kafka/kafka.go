package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	BookingTopic = "booking-events"
)

// BookingEvent is published on booking creation and every status change.
type BookingEvent struct {
	Event      string    `json:"event"`
	BookingUID string    `json:"bookingUid"`
	CarUID     string    `json:"carUid"`
	UserUID    string    `json:"userUid"`
	Status     string    `json:"status"`
	At         time.Time `json:"at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
