package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iliyamo/train-seat-reservation/internal/model"
)

// ReadTickets parses reserved ticket records "seat,origin,dest", one per
// line.  Station names are kept as names; the line translates them.
func ReadTickets(r io.Reader) ([]model.TicketRecord, error) {
	var out []model.TicketRecord
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		cols := strings.Split(raw, ",")
		if len(cols) != 3 {
			return nil, fmt.Errorf("line %d: %w: %d columns, want 3", n, ErrMalformedRecord, len(cols))
		}
		rec := model.TicketRecord{
			Seat:   strings.TrimSpace(cols[0]),
			Origin: strings.TrimSpace(cols[1]),
			Dest:   strings.TrimSpace(cols[2]),
		}
		if rec.Seat == "" || rec.Origin == "" || rec.Dest == "" {
			return nil, fmt.Errorf("line %d: %w: empty column", n, ErrMalformedRecord)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadTickets reads the ticket file at path.  A missing file yields no
// records: a line may start with nothing reserved.
func LoadTickets(path string) ([]model.TicketRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	recs, err := ReadTickets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
