package cmd

import (
	"fmt"
	"strings"
	"time"
)

const (
	EventBusMemory = "memory"
	EventBusKafka  = "kafka"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	EventBus           string
	KafkaHost          string
	KafkaConsumerGroup string
	KafkaEventsTopic   string
	RabbitMQURL        string
	OutboxBatchSize    int
	PaymentSuccessRate float64
	PaymentLatency     time.Duration
}

// DSN is the libpq connection string shared by gorm and the LISTEN connection.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) UsesKafka() bool {
	return strings.EqualFold(c.EventBus, EventBusKafka)
}

func (c Config) KafkaBrokers() []string {
	return strings.Split(c.KafkaHost, ",")
}
