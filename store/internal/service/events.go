package service

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/bookstore-service/pkg/circuit_breaker"
	"github.com/Astemirdum/bookstore-service/pkg/kafka"
	"github.com/Astemirdum/bookstore-service/store/internal/model"
)

type Enqueuer interface {
	Enqueue(topic, key string, v any) error
}

var _ Enqueuer = (kafka.Enqueuer)(nil)

type orderEvents struct {
	q   Enqueuer
	cb  circuit_breaker.CircuitBreaker
	log *zap.Logger
}

func newOrderEvents(q Enqueuer, log *zap.Logger) *orderEvents {
	return &orderEvents{
		q:   q,
		cb:  circuit_breaker.New(20, 30*time.Second, 0.5, 3),
		log: log.Named("events"),
	}
}

// created is best-effort: a lost event never fails the order.
func (e *orderEvents) created(o model.Order) {
	event := model.NewOrderCreatedEvent(o)
	err := e.cb.Call(func() error {
		return e.q.Enqueue(kafka.OrdersTopic, strconv.FormatInt(o.ID, 10), event)
	})
	if err != nil {
		e.log.Warn("order created event dropped",
			zap.Int64("order_id", o.ID),
			zap.Stringer("breaker", e.cb.State()),
			zap.Error(err))
		return
	}
	e.log.Debug("order created event sent", zap.Int64("order_id", o.ID))
}
