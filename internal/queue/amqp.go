package queue

import (
    "fmt"
    "log"

    "github.com/streadway/amqp"
)

// AMQPQueue is the RabbitMQ-backed Queue used in deployment.
type AMQPQueue struct {
    conn *amqp.Connection
    ch   *amqp.Channel
}

// NewAMQPQueue dials the broker and opens a channel.
func NewAMQPQueue(url string) (*AMQPQueue, error) {
    conn, err := amqp.Dial(url)
    if err != nil {
        return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
    }

    ch, err := conn.Channel()
    if err != nil {
        conn.Close()
        return nil, fmt.Errorf("open channel: %w", err)
    }

    return &AMQPQueue{conn: conn, ch: ch}, nil
}

// Close releases the channel and connection.
func (q *AMQPQueue) Close() {
    if q.ch != nil {
        q.ch.Close()
    }
    if q.conn != nil {
        q.conn.Close()
    }
}

func (q *AMQPQueue) declare(topic string) (amqp.Queue, error) {
    return q.ch.QueueDeclare(
        topic,
        true,  // durable
        false, // delete when unused
        false, // exclusive
        false, // no-wait
        nil,   // arguments
    )
}

// Publish sends one durable message to the named queue.
func (q *AMQPQueue) Publish(topic string, body []byte) error {
    queue, err := q.declare(topic)
    if err != nil {
        return fmt.Errorf("declare queue: %w", err)
    }

    return q.ch.Publish(
        "",
        queue.Name,
        false,
        false,
        amqp.Publishing{
            ContentType:  "application/json",
            DeliveryMode: amqp.Persistent,
            Body:         body,
        },
    )
}

// Consume delivers messages to the handler with manual acks. A failing
// handler gets the message requeued up to three times, tracked via the
// x-retry-count header, then the message is dropped.
func (q *AMQPQueue) Consume(topic string, handler func(body []byte) error) error {
    queue, err := q.declare(topic)
    if err != nil {
        return fmt.Errorf("declare queue: %w", err)
    }

    msgs, err := q.ch.Consume(
        queue.Name,
        "",
        false, // autoAck off for reliability
        false,
        false,
        false,
        nil,
    )
    if err != nil {
        return fmt.Errorf("register consumer: %w", err)
    }

    go func() {
        for d := range msgs {
            if err := handler(d.Body); err != nil {
                log.Println("Failed to process message:", err)

                var retryCount int32
                if v, ok := d.Headers["x-retry-count"].(int32); ok {
                    retryCount = v
                }
                if retryCount < 3 {
                    // Republish with an incremented count; a plain Nack
                    // requeue would lose the header.
                    pub := amqp.Publishing{
                        ContentType:  "application/json",
                        DeliveryMode: amqp.Persistent,
                        Headers:      amqp.Table{"x-retry-count": retryCount + 1},
                        Body:         d.Body,
                    }
                    if err := q.ch.Publish("", queue.Name, false, false, pub); err != nil {
                        log.Println("Failed to requeue message:", err)
                    }
                }
            }
            d.Ack(false)
        }
    }()

    return nil
}

var _ Queue = (*AMQPQueue)(nil)
