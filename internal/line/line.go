package line

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/train-seat-reservation/internal/model"
)

// ClassFare is the fare of one seat class for a quoted range.
type ClassFare struct {
	Class int `json:"class"`
	Fare  int `json:"fare"`
}

// BookedSegment is a segment on a seat together with its station names
// and the fare the seat's class pays for it.
type BookedSegment struct {
	model.Segment
	OriginName string `json:"origin_name"`
	DestName   string `json:"dest_name"`
	Fare       int    `json:"fare"`
}

// SeatView is a read-only listing of one seat.
type SeatView struct {
	Code     string          `json:"code"`
	Class    int             `json:"class"`
	Segments []BookedSegment `json:"segments"`
}

// Chooser picks one seat code among the available ones.  It receives the
// fares of every declared class for the requested range.
type Chooser func(available []string, fares []ClassFare) (string, error)

type seatState struct {
	class int
	set   ReservationSet
}

// Line is the in-memory reservation state of one train line.  It is
// built once from the station and seat sources, optionally seeded by
// Replay, and then mutated only by CommitReservation, CancelReservation
// and ClearAll.  All methods are safe for concurrent use.
type Line struct {
	mu       sync.RWMutex
	name     string
	stations *StationIndex
	fares    *FareTable
	codes    []string // seat codes in declaration order
	seats    map[string]*seatState
	classes  []int // distinct class tags in first appearance order

	now func() time.Time
}

// New builds a line from its stations (in line order) and seats.  Every
// seat class must have a fare column.
func New(name string, stations []model.Station, seats []model.Seat) (*Line, error) {
	names := make([]string, 0, len(stations))
	rows := make([][]int, 0, len(stations))
	for _, st := range stations {
		names = append(names, st.Name)
		rows = append(rows, st.Fares)
	}
	idx, err := NewStationIndex(names)
	if err != nil {
		return nil, err
	}
	fares, err := NewFareTable(rows)
	if err != nil {
		return nil, err
	}
	l := &Line{
		name:     name,
		stations: idx,
		fares:    fares,
		codes:    make([]string, 0, len(seats)),
		seats:    make(map[string]*seatState, len(seats)),
		now:      func() time.Time { return time.Now().UTC() },
	}
	seen := make(map[int]bool)
	for _, s := range seats {
		if _, dup := l.seats[s.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSeat, s.Code)
		}
		if !fares.HasClass(s.Class) {
			return nil, fmt.Errorf("%w: seat %q has class %d, line has %d", ErrUnknownClass, s.Code, s.Class, fares.Classes())
		}
		l.codes = append(l.codes, s.Code)
		l.seats[s.Code] = &seatState{class: s.Class}
		if !seen[s.Class] {
			seen[s.Class] = true
			l.classes = append(l.classes, s.Class)
		}
	}
	return l, nil
}

// Name is the line name.
func (l *Line) Name() string { return l.name }

// Stations exposes the station index.  It is immutable.
func (l *Line) Stations() *StationIndex { return l.stations }

// Fares exposes the fare table.  It is immutable.
func (l *Line) Fares() *FareTable { return l.fares }

// Seats returns the seat codes in declaration order.
func (l *Line) Seats() []string {
	return append([]string(nil), l.codes...)
}

// Classes returns the distinct class tags of the seat collection.
func (l *Line) Classes() []int {
	return append([]int(nil), l.classes...)
}

// HasSeat reports whether code is part of the seat collection.
func (l *Line) HasSeat(code string) bool {
	_, ok := l.seats[code]
	return ok
}

// ValidateRange checks 0 <= origin < dest < N.
func (l *Line) ValidateRange(origin, dest int) error {
	n := l.stations.Len()
	if origin < 0 || origin >= n {
		return fmt.Errorf("%w: origin %d not in [0,%d)", ErrInvalidRange, origin, n)
	}
	if dest <= origin || dest >= n {
		return fmt.Errorf("%w: dest %d not in (%d,%d)", ErrInvalidRange, dest, origin, n)
	}
	return nil
}

// Replay seeds the reservation sets from persisted records, translating
// station names to indexes.  Records are appended as-is without an
// overlap check.
func (l *Line) Replay(records []model.TicketRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, rec := range records {
		st, ok := l.seats[rec.Seat]
		if !ok {
			return fmt.Errorf("record %d: %w: %q", i+1, ErrUnknownSeat, rec.Seat)
		}
		origin, ok := l.stations.Index(rec.Origin)
		if !ok {
			return fmt.Errorf("record %d: %w: %q", i+1, ErrUnknownStation, rec.Origin)
		}
		dest, ok := l.stations.Index(rec.Dest)
		if !ok {
			return fmt.Errorf("record %d: %w: %q", i+1, ErrUnknownStation, rec.Dest)
		}
		if err := l.ValidateRange(origin, dest); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		st.set.Add(model.Segment{Origin: origin, Dest: dest})
	}
	return nil
}

// ListAvailableSeats returns, in declaration order, the codes of every
// seat that has no segment overlapping [origin, dest].
func (l *Line) ListAvailableSeats(origin, dest int) ([]string, error) {
	if err := l.ValidateRange(origin, dest); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.available(model.Segment{Origin: origin, Dest: dest}), nil
}

func (l *Line) available(req model.Segment) []string {
	out := make([]string, 0, len(l.codes))
	for _, code := range l.codes {
		if l.seats[code].set.Available(req) {
			out = append(out, code)
		}
	}
	return out
}

// FareFor returns the fare of class from origin to dest.
func (l *Line) FareFor(origin, dest, class int) (int, error) {
	if err := l.ValidateRange(origin, dest); err != nil {
		return 0, err
	}
	if !l.fares.HasClass(class) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownClass, class)
	}
	return l.fares.Fare(origin, dest, class), nil
}

// Quote returns one fare per declared class for [origin, dest].
func (l *Line) Quote(origin, dest int) ([]ClassFare, error) {
	if err := l.ValidateRange(origin, dest); err != nil {
		return nil, err
	}
	return l.quote(origin, dest), nil
}

func (l *Line) quote(origin, dest int) []ClassFare {
	out := make([]ClassFare, 0, len(l.classes))
	for _, c := range l.classes {
		out = append(out, ClassFare{Class: c, Fare: l.fares.Fare(origin, dest, c)})
	}
	return out
}

// CommitReservation books [origin, dest] on seat.  The seat must exist
// and be available for the range; otherwise ErrUnknownSeat or
// ErrSeatUnavailable is returned and nothing changes.
func (l *Line) CommitReservation(seat string, origin, dest int) (model.Ticket, error) {
	if err := l.ValidateRange(origin, dest); err != nil {
		return model.Ticket{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.seats[seat]
	if !ok {
		return model.Ticket{}, fmt.Errorf("%w: %q", ErrUnknownSeat, seat)
	}
	req := model.Segment{Origin: origin, Dest: dest}
	if !st.set.Available(req) {
		return model.Ticket{}, fmt.Errorf("%w: %q %s", ErrSeatUnavailable, seat, req)
	}
	st.set.Add(req)
	return l.ticket(seat, st.class, req), nil
}

// Reserve runs a full reservation attempt: it enumerates the seats free
// for [origin, dest], lets choose pick one of them and commits it.  When
// no seat is free it returns ErrNoSeatAvailable without calling choose.
// The lock is not held while choose runs, so the commit re-checks the
// seat and may report ErrSeatUnavailable.
func (l *Line) Reserve(origin, dest int, choose Chooser) (model.Ticket, error) {
	if err := l.ValidateRange(origin, dest); err != nil {
		return model.Ticket{}, err
	}
	l.mu.RLock()
	avail := l.available(model.Segment{Origin: origin, Dest: dest})
	l.mu.RUnlock()
	if len(avail) == 0 {
		return model.Ticket{}, ErrNoSeatAvailable
	}
	seat, err := choose(avail, l.quote(origin, dest))
	if err != nil {
		return model.Ticket{}, err
	}
	if !contains(avail, seat) {
		return model.Ticket{}, fmt.Errorf("%w: %q", ErrSeatUnavailable, seat)
	}
	return l.CommitReservation(seat, origin, dest)
}

// CancelReservation removes the segment exactly equal to [origin, dest]
// from seat.  A false result with a nil error means the ticket does not
// exist; nothing is mutated in that case.
func (l *Line) CancelReservation(seat string, origin, dest int) (bool, error) {
	if err := l.ValidateRange(origin, dest); err != nil {
		return false, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.seats[seat]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSeat, seat)
	}
	return st.set.Remove(model.Segment{Origin: origin, Dest: dest}), nil
}

// ClearAll empties every seat's reservation set.
func (l *Line) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, st := range l.seats {
		st.set.Clear()
	}
}

// AllSegments returns the segments booked on seat in insertion order.
func (l *Line) AllSegments(seat string) ([]model.Segment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	st, ok := l.seats[seat]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeat, seat)
	}
	return st.set.Segments(), nil
}

// Coverage returns the coverage bitmap of seat over the line's stations.
func (l *Line) Coverage(seat string) ([]bool, error) {
	segs, err := l.AllSegments(seat)
	if err != nil {
		return nil, err
	}
	return Coverage(segs, l.stations.Len()), nil
}

// Seat returns the listing of one seat.
func (l *Line) Seat(code string) (SeatView, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	st, ok := l.seats[code]
	if !ok {
		return SeatView{}, fmt.Errorf("%w: %q", ErrUnknownSeat, code)
	}
	return l.view(code, st), nil
}

// Snapshot lists every seat in declaration order with its booked
// segments and their fares.
func (l *Line) Snapshot() []SeatView {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]SeatView, 0, len(l.codes))
	for _, code := range l.codes {
		out = append(out, l.view(code, l.seats[code]))
	}
	return out
}

func (l *Line) view(code string, st *seatState) SeatView {
	v := SeatView{Code: code, Class: st.class, Segments: make([]BookedSegment, 0, st.set.Len())}
	for _, seg := range st.set.segments {
		on, _ := l.stations.Name(seg.Origin)
		dn, _ := l.stations.Name(seg.Dest)
		v.Segments = append(v.Segments, BookedSegment{
			Segment:    seg,
			OriginName: on,
			DestName:   dn,
			Fare:       l.fares.Fare(seg.Origin, seg.Dest, st.class),
		})
	}
	return v
}

func (l *Line) ticket(seat string, class int, seg model.Segment) model.Ticket {
	on, _ := l.stations.Name(seg.Origin)
	dn, _ := l.stations.Name(seg.Dest)
	return model.Ticket{
		Ref:        uuid.NewString(),
		Line:       l.name,
		Seat:       seat,
		Class:      class,
		Origin:     seg.Origin,
		Dest:       seg.Dest,
		OriginName: on,
		DestName:   dn,
		Fare:       l.fares.Fare(seg.Origin, seg.Dest, class),
		IssuedAt:   l.now(),
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
