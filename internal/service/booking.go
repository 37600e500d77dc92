package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/train-seat-reservation/internal/line"
	"github.com/iliyamo/train-seat-reservation/internal/metrics"
	"github.com/iliyamo/train-seat-reservation/internal/model"
	q "github.com/iliyamo/train-seat-reservation/internal/queue"
)

// ErrUnknownLine is returned when no line is registered under a name.
var ErrUnknownLine = errors.New("unknown line")

// publishTimeout bounds how long a mutation waits on the broker.
const publishTimeout = 3 * time.Second

// Availability is the answer to an availability query: the free seats in
// declaration order and the fare of every declared class.
type Availability struct {
	Origin int              `json:"origin"`
	Dest   int              `json:"dest"`
	Seats  []string         `json:"seats"`
	Fares  []line.ClassFare `json:"fares"`
}

// BookingService runs reservation operations against the registered
// lines, records metrics and publishes a ticket event after every
// committed mutation.
type BookingService struct {
	Lines     *line.Registry
	Publisher EventPublisher

	now func() time.Time
}

// NewBookingService constructs a BookingService.  A nil publisher drops
// events.
func NewBookingService(lines *line.Registry, pub EventPublisher) *BookingService {
	if lines == nil {
		panic("nil registry passed to NewBookingService")
	}
	if pub == nil {
		pub = NopPublisher{}
	}
	return &BookingService{Lines: lines, Publisher: pub, now: func() time.Time { return time.Now().UTC() }}
}

// Line returns the named line.
func (s *BookingService) Line(name string) (*line.Line, error) {
	l, ok := s.Lines.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLine, name)
	}
	return l, nil
}

// Availability lists the seats free for [origin, dest] on the named line
// together with the per-class fares.  An empty Seats slice is a normal
// result.
func (s *BookingService) Availability(name string, origin, dest int) (Availability, error) {
	l, err := s.Line(name)
	if err != nil {
		return Availability{}, err
	}
	seats, err := l.ListAvailableSeats(origin, dest)
	if err != nil {
		return Availability{}, err
	}
	fares, err := l.Quote(origin, dest)
	if err != nil {
		return Availability{}, err
	}
	metrics.AvailableSeats.WithLabelValues(name).Observe(float64(len(seats)))
	return Availability{Origin: origin, Dest: dest, Seats: seats, Fares: fares}, nil
}

// Reserve commits [origin, dest] on seat and publishes a reserved event.
func (s *BookingService) Reserve(ctx context.Context, name, seat string, origin, dest int) (model.Ticket, error) {
	l, err := s.Line(name)
	if err != nil {
		return model.Ticket{}, err
	}
	tk, err := l.CommitReservation(seat, origin, dest)
	metrics.Reservations.WithLabelValues(name, reserveOutcome(err)).Inc()
	if err != nil {
		return model.Ticket{}, err
	}
	s.publish(ctx, q.TicketEvent{
		Type:       q.EventTicketReserved,
		Line:       name,
		TicketRef:  tk.Ref,
		Seat:       tk.Seat,
		Class:      tk.Class,
		Origin:     tk.Origin,
		Dest:       tk.Dest,
		OriginName: tk.OriginName,
		DestName:   tk.DestName,
		Fare:       tk.Fare,
	})
	return tk, nil
}

// Cancel removes the exact segment [origin, dest] from seat.  A false
// result with a nil error means the ticket does not exist.
func (s *BookingService) Cancel(ctx context.Context, name, seat string, origin, dest int) (bool, error) {
	l, err := s.Line(name)
	if err != nil {
		return false, err
	}
	ok, err := l.CancelReservation(seat, origin, dest)
	switch {
	case err != nil:
		metrics.Cancellations.WithLabelValues(name, "invalid").Inc()
		return false, err
	case !ok:
		metrics.Cancellations.WithLabelValues(name, "not_found").Inc()
		return false, nil
	}
	metrics.Cancellations.WithLabelValues(name, "cancelled").Inc()
	s.publish(ctx, q.TicketEvent{
		Type:   q.EventTicketCancelled,
		Line:   name,
		Seat:   seat,
		Origin: origin,
		Dest:   dest,
	})
	return true, nil
}

// ClearAll empties every reservation set of the named line.
func (s *BookingService) ClearAll(ctx context.Context, name string) error {
	l, err := s.Line(name)
	if err != nil {
		return err
	}
	l.ClearAll()
	s.publish(ctx, q.TicketEvent{Type: q.EventTicketsCleared, Line: name})
	return nil
}

func (s *BookingService) publish(ctx context.Context, ev q.TicketEvent) {
	ev.EventID = uuid.NewString()
	ev.OccurredAt = s.now().Format(time.RFC3339)
	// the mutation is already committed; a cancelled request must not
	// drop its event
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.Publisher.Publish(pctx, ev); err != nil {
		metrics.EventPublishFailures.Inc()
		log.Printf("booking: publish %s for line %s failed: %v", ev.Type, ev.Line, err)
	}
}

func reserveOutcome(err error) string {
	switch {
	case err == nil:
		return "committed"
	case errors.Is(err, line.ErrSeatUnavailable):
		return "unavailable"
	default:
		return "invalid"
	}
}
