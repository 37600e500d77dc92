package line

import "fmt"

// StationIndex is the bijection between station names and their
// positions along the line.  Index 0 is the origin terminus.  Both
// directions are materialised once at construction.
type StationIndex struct {
	names   []string       // position -> name
	indexes map[string]int // name -> position
}

// NewStationIndex builds the index from station names in line order.
func NewStationIndex(names []string) (*StationIndex, error) {
	if len(names) == 0 {
		return nil, ErrNoStations
	}
	idx := &StationIndex{
		names:   make([]string, 0, len(names)),
		indexes: make(map[string]int, len(names)),
	}
	for i, n := range names {
		if _, dup := idx.indexes[n]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStation, n)
		}
		idx.indexes[n] = i
		idx.names = append(idx.names, n)
	}
	return idx, nil
}

// Index returns the position of the named station.
func (s *StationIndex) Index(name string) (int, bool) {
	i, ok := s.indexes[name]
	return i, ok
}

// Name returns the station name at position i.
func (s *StationIndex) Name(i int) (string, bool) {
	if i < 0 || i >= len(s.names) {
		return "", false
	}
	return s.names[i], true
}

// Len is the number of stations N.
func (s *StationIndex) Len() int { return len(s.names) }

// Names returns the station names in line order.
func (s *StationIndex) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
