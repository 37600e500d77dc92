package queue

// Message payloads exchanged over the broker.

// TicketEventsQueue is the durable queue ticket events are published to.
const TicketEventsQueue = "tickets.events"

// Event types carried in TicketEvent.Type.
const (
    EventTicketReserved  = "ticket.reserved"
    EventTicketCancelled = "ticket.cancelled"
    EventTicketsCleared  = "tickets.cleared"
)

// TicketEvent is published after every committed mutation of a line's
// reservation state.  Cleared events carry only the line name.
type TicketEvent struct {
    EventID    string `json:"event_id"`
    Type       string `json:"type"`
    Line       string `json:"line"`
    TicketRef  string `json:"ticket_ref,omitempty"`
    Seat       string `json:"seat,omitempty"`
    Class      int    `json:"class,omitempty"`
    Origin     int    `json:"origin"`
    Dest       int    `json:"dest"`
    OriginName string `json:"origin_name,omitempty"`
    DestName   string `json:"dest_name,omitempty"`
    Fare       int    `json:"fare,omitempty"`
    OccurredAt string `json:"occurred_at"`
}
