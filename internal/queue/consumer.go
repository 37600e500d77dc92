// Package queue contains the background consumer that listens to the
// tickets.events queue and appends one line per event to
// logs/tickets.log, giving the operator an audit trail of the session.
package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// StartTicketConsumer connects to RabbitMQ, declares the tickets.events
// queue (durable), and starts consuming messages into logDir/tickets.log.
// It runs a reconnect loop and returns only when ctx is cancelled.
// Messages that cannot be handled are rejected without requeue so the
// loop keeps going.
func StartTicketConsumer(ctx context.Context, url, logDir string) error {
    backoff := time.Second
    for {
        if ctx.Err() != nil {
            return ctx.Err()
        }
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("ticket-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        err = consumeLoop(ctx, conn, logDir)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        log.Printf("ticket-consumer: consume loop ended: %v; reconnecting", err)
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, logDir string) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("ticket-consumer: set QoS failed: %v", err)
    }

    if _, err := ch.QueueDeclare(TicketEventsQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    msgs, err := ch.Consume(TicketEventsQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := handleMessage(logDir, d.Body); err != nil {
                log.Printf("ticket-consumer: handle message failed: %v", err)
                _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
                continue
            }
            _ = d.Ack(false)
        }
    }
}

func handleMessage(logDir string, body []byte) error {
    var ev TicketEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if err := os.MkdirAll(logDir, 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(filepath.Join(logDir, "tickets.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(FormatEvent(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

// FormatEvent renders ev as a single log line terminated by a newline.
func FormatEvent(ev TicketEvent) string {
    switch ev.Type {
    case EventTicketsCleared:
        return fmt.Sprintf("[%s] All tickets cleared | line=%s\n", ev.OccurredAt, ev.Line)
    case EventTicketCancelled:
        return fmt.Sprintf("[%s] Ticket cancelled | line=%s | seat=%s | range=%d-%d\n",
            ev.OccurredAt, ev.Line, ev.Seat, ev.Origin, ev.Dest)
    default:
        return fmt.Sprintf("[%s] Ticket reserved | ref=%s | line=%s | seat=%s | class=%d | %s(%d)-%s(%d) | fare=%d\n",
            ev.OccurredAt, ev.TicketRef, ev.Line, ev.Seat, ev.Class, ev.OriginName, ev.Origin, ev.DestName, ev.Dest, ev.Fare)
    }
}
