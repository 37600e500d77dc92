// Package line implements the seat availability and fare engine of a
// single train line: the station index, the cumulative fare table, the
// per-seat reservation sets and the reservation operations that read and
// mutate them.
//
// Sentinel errors below let handlers and the console distinguish the
// recoverable input errors (re-prompt / 4xx) from the normal "nothing
// available" outcome.
package line

import "errors"

var (
	// ErrNoStations is returned when a line is built without stations.
	ErrNoStations = errors.New("line has no stations")
	// ErrDuplicateStation is returned when two stations share a name.
	ErrDuplicateStation = errors.New("duplicate station")
	// ErrDuplicateSeat is returned when two seats share a code.
	ErrDuplicateSeat = errors.New("duplicate seat")
	// ErrFareWidth is returned when station fare rows differ in length.
	ErrFareWidth = errors.New("fare rows differ in class count")
	// ErrUnknownStation is returned for a station name not on the line.
	ErrUnknownStation = errors.New("unknown station")
	// ErrUnknownSeat is returned for a seat code not in the seat collection.
	ErrUnknownSeat = errors.New("unknown seat")
	// ErrUnknownClass is returned for a class tag without a fare column.
	ErrUnknownClass = errors.New("unknown seat class")
	// ErrInvalidRange is returned when origin is outside [0, N) or dest
	// is not in (origin, N).
	ErrInvalidRange = errors.New("invalid station range")
	// ErrNoSeatAvailable reports that no seat is free for a range.  It is
	// a normal outcome and nothing is mutated.
	ErrNoSeatAvailable = errors.New("no seat available")
	// ErrSeatUnavailable is returned when the chosen seat overlaps an
	// existing segment for the requested range.
	ErrSeatUnavailable = errors.New("seat not available for range")
	// ErrDuplicateLine is returned when a registry already holds a line
	// with the same name.
	ErrDuplicateLine = errors.New("duplicate line")
)
