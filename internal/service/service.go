package service

import (
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/adenisov/bookstore-service/internal/repository"
	"github.com/adenisov/bookstore-service/pkg/breaker"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
	publish  breaker.Breaker
}

// NewService wires the repository and the (optional) Kafka producer
// used for low stock notifications. A nil producer disables publishing.
// Publishing goes through a circuit breaker so a down broker sheds
// events instead of stalling every order on producer timeouts.
func NewService(repo repository.Repository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
		publish:  breaker.New(10, 30*time.Second, 0.5, 3),
	}
}
