package broadcaster

import (
	"context"
	"log"
	"time"

	exitwal "skuld/infra/wal/exit"

	"github.com/IBM/sarama"
)

// maxAttempts parks a completion as FAILED once this many publishes
// have failed; parked records need operator replay.
const maxAttempts = 10

// Broadcaster drains the outbox onto the completions topic. It is the
// only writer of SENT/ACKED/FAILED transitions.
type Broadcaster struct {
	outbox   *exitwal.Outbox
	producer sarama.SyncProducer
	topic    string
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	outbox *exitwal.Outbox,
	brokers []string,
	topic string,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   outbox,
		producer: producer,
		topic:    topic,
	}, nil
}

// ------------------------------------------------
// START LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.replayOnce()
			}
		}
	}()
}

// ------------------------------------------------
// REPLAY LOGIC
// ------------------------------------------------

// replayOnce walks the pending completions oldest first. SENT records
// are walked too: a crash between send and ack republishes, and the
// consumer side dedups on seq.
func (b *Broadcaster) replayOnce() {
	_ = b.outbox.ScanPending(func(seq uint64, rec exitwal.Record) error {

		if rec.Retries >= maxAttempts {
			log.Printf("[broadcaster] parking seq=%d after %d attempts", seq, rec.Retries)
			_ = b.outbox.MarkFailed(seq)
			return nil
		}

		// Mark SENT before the publish so a crash in between errs
		// toward resending, never toward losing the completion.
		_ = b.outbox.MarkSent(seq)

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(rec.Payload),
		}

		_, _, err := b.producer.SendMessage(msg)
		if err != nil {
			return nil // retry on a later tick
		}

		_ = b.outbox.MarkAcked(seq)

		return nil
	})
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
