package line

import "github.com/iliyamo/train-seat-reservation/internal/model"

// ReservationSet is the list of segments booked on one seat, kept in
// insertion order.  It does not check overlaps itself; callers consult
// Available before adding.
type ReservationSet struct {
	segments []model.Segment
}

// Add appends seg.
func (s *ReservationSet) Add(seg model.Segment) {
	s.segments = append(s.segments, seg)
}

// Remove deletes the first segment equal to seg and reports whether one
// was found.
func (s *ReservationSet) Remove(seg model.Segment) bool {
	for i, cur := range s.segments {
		if cur == seg {
			s.segments = append(s.segments[:i], s.segments[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the set.
func (s *ReservationSet) Clear() { s.segments = nil }

// Len is the number of booked segments.
func (s *ReservationSet) Len() int { return len(s.segments) }

// Segments returns a copy of the booked segments.
func (s *ReservationSet) Segments() []model.Segment {
	out := make([]model.Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Available reports whether req overlaps none of the booked segments.
func (s *ReservationSet) Available(req model.Segment) bool {
	return Available(s.segments, req)
}
