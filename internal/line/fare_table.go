package line

import "fmt"

// FareTable holds, per station, the cumulative fare from the origin
// terminus for every seat class.  Fares between two stations are derived
// by subtraction, so rows are expected to be non-decreasing per class
// (not enforced).
type FareTable struct {
	cum     [][]int
	classes int
}

// NewFareTable copies the cumulative fare rows.  Every row must carry the
// same number of classes as the first one.
func NewFareTable(rows [][]int) (*FareTable, error) {
	if len(rows) == 0 {
		return nil, ErrNoStations
	}
	width := len(rows[0])
	cum := make([][]int, len(rows))
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has %d fares, want %d", ErrFareWidth, i, len(r), width)
		}
		cum[i] = append([]int(nil), r...)
	}
	return &FareTable{cum: cum, classes: width}, nil
}

// Fare returns the fare of class tag class from station origin to dest.
// Class tags are 1-based.  The caller guarantees valid indexes, a known
// class and origin < dest; the result is not checked for sign.
func (t *FareTable) Fare(origin, dest, class int) int {
	pos := class - 1
	return t.cum[dest][pos] - t.cum[origin][pos]
}

// Classes is the number of fare columns.
func (t *FareTable) Classes() int { return t.classes }

// HasClass reports whether class has a fare column.
func (t *FareTable) HasClass(class int) bool { return class >= 1 && class <= t.classes }

// Cumulative returns a copy of the cumulative fares of station i.
func (t *FareTable) Cumulative(i int) []int {
	return append([]int(nil), t.cum[i]...)
}
