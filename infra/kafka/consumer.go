package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer pulls fragment events off the ingest topic and hands them
// to the engine. Offsets are committed only after the handler has
// accepted the event, so a crash replays instead of losing fragments.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, group string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  group,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
	}
}

// Run fetches until ctx is cancelled. fn may refuse an event (staging
// backlog full); the event is retried until accepted, holding back the
// commit and, through it, the partition.
func (c *Consumer) Run(ctx context.Context, fn func(FragmentEvent) error) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		var ev FragmentEvent
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			log.Printf("[kafka] dropping undecodable fragment at offset %d: %v", m.Offset, err)
			if err := c.reader.CommitMessages(ctx, m); err != nil {
				return err
			}
			continue
		}
		if ev.V != fragmentEventVersion {
			log.Printf("[kafka] dropping fragment with version %d at offset %d", ev.V, m.Offset)
			if err := c.reader.CommitMessages(ctx, m); err != nil {
				return err
			}
			continue
		}

		for {
			if err := fn(ev); err == nil {
				break
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Millisecond):
			}
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			return err
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
