package kafka_test

import (
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookstore-service/pkg/kafka"
)

func TestEnqueuer_Enqueue(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got map[string]any
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		require.Equal(t, "a@b.co", got["buyer_email"])
		return nil
	})

	q := kafka.NewEnqueuer(producer)
	err := q.Enqueue(kafka.OrdersTopic, "1", map[string]any{"buyer_email": "a@b.co"})
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestEnqueuer_EnqueueFailure(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	q := kafka.NewEnqueuer(producer)
	err := q.Enqueue(kafka.OrdersTopic, "1", struct{}{})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, producer.Close())
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()
	require.False(t, kafka.Config{}.Enabled())
	require.True(t, kafka.Config{Addrs: []string{"localhost:9092"}}.Enabled())
}
