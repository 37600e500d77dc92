package model

import "time"

// TicketRecord is a persisted reservation as supplied by a reservation
// source (text file or database table).  Station names are translated to
// indexes when the record is replayed into a line.
//
// Fields:
//  Line   – line name the record belongs to (database source only).
//  Seat   – seat code.
//  Origin – boarding station name.
//  Dest   – alighting station name.
type TicketRecord struct {
    Line   string // reserved_tickets.line_name
    Seat   string // reserved_tickets.seat_code
    Origin string // reserved_tickets.origin_name
    Dest   string // reserved_tickets.dest_name
}

// Ticket is the result of a committed reservation.  Ref identifies the
// ticket in published events; it is not used to match cancellations,
// which are matched on seat and range.
type Ticket struct {
    Ref        string    `json:"ref"`
    Line       string    `json:"line"`
    Seat       string    `json:"seat"`
    Class      int       `json:"class"`
    Origin     int       `json:"origin"`
    Dest       int       `json:"dest"`
    OriginName string    `json:"origin_name"`
    DestName   string    `json:"dest_name"`
    Fare       int       `json:"fare"`
    IssuedAt   time.Time `json:"issued_at"`
}
