package model

import "fmt"

// Segment is one passenger's travel range on a seat, expressed as station
// indexes.  A segment covers the closed interval [Origin, Dest] and
// always satisfies Origin < Dest.
type Segment struct {
    Origin int `json:"origin"` // index of the boarding station
    Dest   int `json:"dest"`   // index of the alighting station
}

// String renders the segment as "[origin-dest]".
func (s Segment) String() string {
    return fmt.Sprintf("[%d-%d]", s.Origin, s.Dest)
}
