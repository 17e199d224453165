package kafka

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/twmb/franz-go/pkg/kgo"
	"vn.io.arda/toast/internal/application"
	"vn.io.arda/toast/internal/kafka/registry"

	// Blank imports trigger init() in each handler file,
	// registering all event handlers into the registry.
	_ "vn.io.arda/toast/internal/kafka/handlers"
)

// Consumer wraps the franz-go Kafka client and turns backend events into
// toasts on the shared Manager.
type Consumer struct {
	client  *kgo.Client
	manager *application.Manager
}

// New creates a Consumer with the given brokers, group ID, and topics.
func New(brokers []string, groupID string, topics []string, m *application.Manager) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumerGroup(groupID),
		kgo.ConsumeTopics(topics...),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, err
	}
	return &Consumer{client: client, manager: m}, nil
}

// Start begins polling Kafka and processing records. Blocks until ctx is
// cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Info().Msg("kafka consumer started")

	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			break
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			log.Error().Err(err).Str("topic", topic).Int32("partition", partition).Msg("kafka fetch error")
		})

		fetches.EachRecord(func(r *kgo.Record) {
			c.process(r)
		})

		if err := c.client.CommitUncommittedOffsets(ctx); err != nil {
			log.Error().Err(err).Msg("kafka commit error")
		}
	}

	c.client.Close()
	log.Info().Msg("kafka consumer stopped")
}

// process dispatches a Kafka record to the registered handler via the
// registry, then raises the resulting toast. Duplicate and empty messages
// are absorbed by the Manager's own gate, so there is nothing to report
// here on the skip path.
func (c *Consumer) process(r *kgo.Record) {
	log.Debug().
		Str("topic", r.Topic).
		Str("key", string(r.Key)).
		Msg("processing kafka record")

	// toast-commands doesn't use eventType routing
	var cmd = registry.DispatchDirect(r.Topic, r.Value)
	if cmd == nil {
		cmd = registry.Dispatch(r.Topic, r.Value)
	}

	if cmd == nil {
		log.Debug().Str("topic", r.Topic).Msg("no handler matched, skipping")
		return
	}

	c.manager.Notify(cmd.Message, cmd.Severity, cmd.Duration)
}
