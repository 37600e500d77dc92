package repository

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iliyamo/train-seat-reservation/internal/model"
)

// ReadStations parses station records of the form
// "name,fare_class_1,...,fare_class_K", one per line, in line order.
// Blank lines are skipped.  Every record must carry the same number of
// fares as the first one.
func ReadStations(r io.Reader) ([]model.Station, error) {
	var out []model.Station
	width := -1
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		cols := strings.Split(raw, ",")
		if len(cols) < 2 {
			return nil, fmt.Errorf("line %d: %w: want name and at least one fare", n, ErrMalformedRecord)
		}
		if width < 0 {
			width = len(cols)
		} else if len(cols) != width {
			return nil, fmt.Errorf("line %d: %w: %d columns, want %d", n, ErrMalformedRecord, len(cols), width)
		}
		st := model.Station{Name: strings.TrimSpace(cols[0]), Fares: make([]int, 0, len(cols)-1)}
		if st.Name == "" {
			return nil, fmt.Errorf("line %d: %w: empty station name", n, ErrMalformedRecord)
		}
		for _, c := range cols[1:] {
			f, err := strconv.Atoi(strings.TrimSpace(c))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: fare %q", n, ErrMalformedRecord, c)
			}
			st.Fares = append(st.Fares, f)
		}
		out = append(out, st)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadStations reads the station file at path.
func LoadStations(path string) ([]model.Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := ReadStations(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}
