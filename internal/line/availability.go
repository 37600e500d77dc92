package line

import "github.com/iliyamo/train-seat-reservation/internal/model"

// Overlaps reports whether the closed intervals [a.Origin, a.Dest] and
// [b.Origin, b.Dest] intersect.  Touching endpoints overlap: a passenger
// alighting at station k and one boarding at k cannot share the seat.
func Overlaps(a, b model.Segment) bool {
	return a.Origin <= b.Dest && b.Origin <= a.Dest
}

// Available is the pairwise availability test used for online requests:
// the seat is free for req iff no booked segment overlaps it.  O(K).
func Available(booked []model.Segment, req model.Segment) bool {
	for _, seg := range booked {
		if Overlaps(seg, req) {
			return false
		}
	}
	return true
}

// Coverage builds the coverage bitmap of a seat over n stations: entry i
// is true when i lies inside any booked closed interval.  Indexes outside
// [0, n) are clipped.
func Coverage(booked []model.Segment, n int) []bool {
	cov := make([]bool, n)
	for _, seg := range booked {
		lo, hi := seg.Origin, seg.Dest
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		for i := lo; i <= hi; i++ {
			cov[i] = true
		}
	}
	return cov
}

// AvailableByCoverage answers the same question as Available from a
// coverage bitmap: req is free iff no index in [req.Origin, req.Dest] is
// covered.
func AvailableByCoverage(cov []bool, req model.Segment) bool {
	for i := req.Origin; i <= req.Dest && i < len(cov); i++ {
		if i >= 0 && cov[i] {
			return false
		}
	}
	return true
}
