package messaging

import (
	"log"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/virtscope/vm-inventory/pkg/index"
)

func DeclareBindAndConsume(ch *amqp.Channel, prefix string, topic ChangeTopic) (<-chan amqp.Delivery, error) {
	name := getName(prefix, topic)
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}
	if err = ch.QueueBind(q.Name, name, name, false, nil); err != nil {
		return nil, err
	}
	return ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
}

// ListenToTopic consumes a topic, handing each delivery to handle and
// acking on success.
func ListenToTopic(ch *amqp.Channel, prefix string, topic ChangeTopic, handle func(amqp.Delivery) error) error {
	deliveries, err := DeclareBindAndConsume(ch, prefix, topic)
	if err != nil {
		return err
	}

	go func(msgs <-chan amqp.Delivery) {
		defer ch.Close()
		for d := range msgs {
			if err := handle(d); err != nil {
				log.Printf("Error processing message: %v", err)
				return
			}
			d.Ack(false)
		}
	}(deliveries)
	return nil
}

func applyUpsert(idx *index.Index, body []byte) error {
	var msg UpsertMessage
	if err := sonic.Unmarshal(body, &msg); err != nil {
		return err
	}
	idx.UpsertItems(msg.Items)
	return nil
}

func applyDelete(idx *index.Index, body []byte) error {
	var msg DeleteMessage
	if err := sonic.Unmarshal(body, &msg); err != nil {
		return err
	}
	idx.DeleteItems(msg.Ids)
	return nil
}

// ListenForInventoryChanges feeds upsert and delete messages into the
// index. One channel per topic, in the connection's delivery order.
func ListenForInventoryChanges(conn *amqp.Connection, prefix string, idx *index.Index) error {
	upsertCh, err := conn.Channel()
	if err != nil {
		return err
	}
	if err := ListenToTopic(upsertCh, prefix, VmsUpsertedTopic, func(d amqp.Delivery) error {
		return applyUpsert(idx, d.Body)
	}); err != nil {
		return err
	}

	deleteCh, err := conn.Channel()
	if err != nil {
		return err
	}
	return ListenToTopic(deleteCh, prefix, VmsDeletedTopic, func(d amqp.Delivery) error {
		return applyDelete(idx, d.Body)
	})
}
