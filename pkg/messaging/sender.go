package messaging

import (
	"fmt"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/virtscope/vm-inventory/pkg/types"
)

func DefineTopic(ch *amqp.Channel, prefix string, topic ChangeTopic) error {
	name := getName(prefix, topic)
	if err := ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-delete
		false,   // internal
		false,   // noWait
		nil,     // arguments
	); err != nil {
		return err
	}
	_, err := ch.QueueDeclare(
		name,  // name of the queue
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // noWait
		nil,   // arguments
	)
	return err
}

func getName(prefix string, topic ChangeTopic) string {
	return fmt.Sprintf("%s_%s", prefix, topic)
}

// PublishUpserts declares the upsert topic and publishes one batch of new
// or changed records.
func PublishUpserts(c *amqp.Connection, prefix string, items []types.VM) error {
	if err := defineOnChannel(c, prefix, VmsUpsertedTopic); err != nil {
		return err
	}
	return SendChange(c, prefix, VmsUpsertedTopic, NewUpsertMessage(items))
}

// PublishDeletes declares the delete topic and publishes one batch of
// removed record ids.
func PublishDeletes(c *amqp.Connection, prefix string, ids []string) error {
	if err := defineOnChannel(c, prefix, VmsDeletedTopic); err != nil {
		return err
	}
	return SendChange(c, prefix, VmsDeletedTopic, NewDeleteMessage(ids))
}

func defineOnChannel(c *amqp.Connection, prefix string, topic ChangeTopic) error {
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return DefineTopic(ch, prefix, topic)
}

// SendChange publishes one change message on the topic.
func SendChange[V any](c *amqp.Connection, prefix string, topic ChangeTopic, data V) error {
	bytes, err := sonic.Marshal(data)
	if err != nil {
		return err
	}
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	name := getName(prefix, topic)
	return ch.Publish(
		name,
		name,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        bytes,
		},
	)
}
