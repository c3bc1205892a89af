package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Producer) Send(
	ctx context.Context,
	key []byte,
	value []byte,
) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

// SendFragment publishes one lane result, keyed by slot so fragments
// for the same slot stay on one partition and arrive in order.
func (p *Producer) SendFragment(ctx context.Context, ev FragmentEvent) error {
	ev.V = fragmentEventVersion
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	key := []byte(strconv.FormatUint(uint64(ev.Slot), 10))
	return p.Send(ctx, key, value)
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
