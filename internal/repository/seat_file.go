package repository

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iliyamo/train-seat-reservation/internal/model"
)

// ReadSeats parses one seat code per line.  The first character of a
// code is its class tag and must be a digit from 1 to 9.
func ReadSeats(r io.Reader) ([]model.Seat, error) {
	var out []model.Seat
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		code := strings.TrimSpace(sc.Text())
		if code == "" {
			continue
		}
		class, err := SeatClass(code)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, model.Seat{Code: code, Class: class})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SeatClass returns the class tag encoded in the leading character of
// a seat code.
func SeatClass(code string) (int, error) {
	if code == "" || code[0] < '1' || code[0] > '9' {
		return 0, fmt.Errorf("%w: seat code %q has no class digit", ErrMalformedRecord, code)
	}
	return int(code[0] - '0'), nil
}

// LoadSeats reads the seat file at path.
func LoadSeats(path string) ([]model.Seat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	seats, err := ReadSeats(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seats, nil
}
