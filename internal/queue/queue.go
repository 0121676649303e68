package queue

import (
    "fmt"
    "log"
    "sync"
    "time"
)

// SendNewslettersQueue is the queue carrying newsletter send jobs.
const SendNewslettersQueue = "newsletter_sends"

// SendJob is the payload published by the HTTP surface and consumed by the
// worker. One job is one full pipeline run.
type SendJob struct {
    RunID       int      `json:"run_id,omitempty"`
    Program     string   `json:"program"`
    Date        string   `json:"date"` // YYYY-MM-DD
    ListIDs     []string `json:"list_ids"`
    SenderName  string   `json:"sender_name"`
    SenderEmail string   `json:"sender_email"`
    ReplyTo     string   `json:"reply_to,omitempty"`
}

// Queue abstracts the message broker.
type Queue interface {
    Publish(topic string, body []byte) error
    Consume(topic string, handler func(body []byte) error) error
}

// InMemoryQueue is a broker-less Queue for tests and local development.
type InMemoryQueue struct {
    mu       sync.Mutex
    handlers map[string][]func(body []byte) error
}

func NewInMemoryQueue() *InMemoryQueue {
    return &InMemoryQueue{
        handlers: make(map[string][]func(body []byte) error),
    }
}

// Publish dispatches the body to every registered handler, retrying a
// failing handler up to three times with backoff.
func (q *InMemoryQueue) Publish(topic string, body []byte) error {
    q.mu.Lock()
    handlers := q.handlers[topic]
    q.mu.Unlock()

    if len(handlers) == 0 {
        return fmt.Errorf("no subscribers for topic %s", topic)
    }

    for _, handler := range handlers {
        go q.processJob(handler, body)
    }

    return nil
}

func (q *InMemoryQueue) processJob(handler func(body []byte) error, body []byte) {
    const maxRetries = 3
    for attempt := 1; attempt <= maxRetries; attempt++ {
        err := handler(body)
        if err == nil {
            return
        }

        log.Printf("Job failed (attempt %d/%d): %v\n", attempt, maxRetries, err)
        if attempt == maxRetries {
            log.Printf("Job permanently failed after %d attempts\n", maxRetries)
            return
        }

        time.Sleep(time.Duration(attempt*500) * time.Millisecond)
    }
}

// Consume registers a handler for a topic.
func (q *InMemoryQueue) Consume(topic string, handler func(body []byte) error) error {
    q.mu.Lock()
    defer q.mu.Unlock()

    q.handlers[topic] = append(q.handlers[topic], handler)
    return nil
}

var _ Queue = (*InMemoryQueue)(nil)
