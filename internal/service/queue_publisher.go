// Package service wires the line engine to its collaborators: the ticket
// sources replayed at startup, the RabbitMQ event publisher and the
// metrics recorded around every reservation operation.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/train-seat-reservation/internal/queue"
)

// EventPublisher publishes ticket events.  Failures are reported to the
// caller, which logs them without failing the request.
type EventPublisher interface {
	Publish(ctx context.Context, ev q.TicketEvent) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(context.Context, q.TicketEvent) error { return nil }

// RabbitPublisher publishes events to the tickets.events queue.  Each call
// dials its own connection; ticket traffic is low and this keeps the
// publisher free of reconnect state.
type RabbitPublisher struct {
	URL string
}

// NewRabbitPublisher returns a publisher for the broker at url.
func NewRabbitPublisher(url string) *RabbitPublisher {
	return &RabbitPublisher{URL: url}
}

// Publish sends ev as a persistent JSON message.  Any error is logged and
// returned so the caller can choose to ignore it.
func (p *RabbitPublisher) Publish(ctx context.Context, ev q.TicketEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		q.TicketEventsQueue, // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		MessageId:    ev.EventID,
		Type:         ev.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                  // default exchange
		q.TicketEventsQueue, // routing key = queue name
		false,               // mandatory
		false,               // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
