// Package console runs the interactive reservation menu on top of a
// single line.  Every prompt re-asks on invalid input; only the end of
// the input stream stops the loop early.
package console

import (
    "bufio"
    "errors"
    "fmt"
    "io"
    "strconv"
    "strings"

    "github.com/iliyamo/train-seat-reservation/internal/line"
)

// Console reads menu choices from in and writes to out.
type Console struct {
    line *line.Line
    in   *bufio.Scanner
    out  io.Writer
}

// New returns a console bound to l.
func New(l *line.Line, in io.Reader, out io.Writer) *Console {
    return &Console{line: l, in: bufio.NewScanner(in), out: out}
}

const menu = `
1. Show seats
2. Reserve ticket
3. Cancel ticket
4. Show ticket prices
5. Clear all tickets
6. Exit`

// Run loops over the menu until the user exits or the input ends.
func (c *Console) Run() error {
    for {
        fmt.Fprintln(c.out, menu)
        choice, err := c.readInt("Enter your choice: ")
        if errors.Is(err, io.EOF) {
            return nil
        }
        if err != nil {
            fmt.Fprintln(c.out, "Invalid choice. Choose again.")
            continue
        }
        switch choice {
        case 1:
            c.showSeats(false)
        case 2:
            err = c.reserve()
        case 3:
            err = c.cancel()
        case 4:
            c.showSeats(true)
        case 5:
            c.line.ClearAll()
            fmt.Fprintln(c.out, "After clearing all tickets")
            c.showSeats(false)
        case 6:
            return nil
        default:
            fmt.Fprintln(c.out, "Invalid choice. Choose again.")
        }
        if errors.Is(err, io.EOF) {
            return nil
        }
        if err != nil {
            return err
        }
    }
}

func (c *Console) readLine(prompt string) (string, error) {
    fmt.Fprint(c.out, prompt)
    if !c.in.Scan() {
        if err := c.in.Err(); err != nil {
            return "", err
        }
        return "", io.EOF
    }
    return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) readInt(prompt string) (int, error) {
    s, err := c.readLine(prompt)
    if err != nil {
        return 0, err
    }
    return strconv.Atoi(s)
}

// readRange asks for an origin and then a destination after it.
func (c *Console) readRange() (int, int, error) {
    last := c.line.Stations().Len() - 1
    var origin int
    for {
        n, err := c.readInt(fmt.Sprintf("Enter origin (0-%d): ", last))
        if errors.Is(err, io.EOF) {
            return 0, 0, err
        }
        if err == nil && n >= 0 && n < last+1 {
            origin = n
            break
        }
        fmt.Fprintln(c.out, "Invalid origin station index.")
    }
    for {
        n, err := c.readInt(fmt.Sprintf("Enter destination (0-%d): ", last))
        if errors.Is(err, io.EOF) {
            return 0, 0, err
        }
        if err == nil && c.line.ValidateRange(origin, n) == nil {
            return origin, n, nil
        }
        fmt.Fprintln(c.out, "Invalid destination station index.")
    }
}

func (c *Console) reserve() error {
    origin, dest, err := c.readRange()
    if err != nil {
        return err
    }
    tk, err := c.line.Reserve(origin, dest, c.chooseSeat)
    switch {
    case errors.Is(err, line.ErrNoSeatAvailable):
        fmt.Fprintln(c.out, "Sorry. No available seat.")
        return nil
    case errors.Is(err, line.ErrSeatUnavailable):
        // taken by a concurrent client between listing and commit
        fmt.Fprintln(c.out, "Seat is no longer available.")
        return nil
    case err != nil:
        return err
    }
    fmt.Fprintf(c.out, "The selected seat = %s\n", tk.Seat)
    fmt.Fprintf(c.out, "The ticket price = %d\n", tk.Fare)
    return nil
}

func (c *Console) chooseSeat(available []string, fares []line.ClassFare) (string, error) {
    fmt.Fprintf(c.out, "Available seats: %s\n", quoteList(available))
    for _, f := range fares {
        fmt.Fprintf(c.out, "Class %d Ticket price = %d\n", f.Class, f.Fare)
    }
    for {
        seat, err := c.readLine("Select seat: ")
        if err != nil {
            return "", err
        }
        for _, s := range available {
            if s == seat {
                return seat, nil
            }
        }
        fmt.Fprintln(c.out, "Invalid seats.")
        fmt.Fprintf(c.out, "Available seats: %s\n", quoteList(available))
    }
}

func (c *Console) cancel() error {
    fmt.Fprintf(c.out, "Seats are %s\n", quoteList(c.line.Seats()))
    var seat string
    for {
        s, err := c.readLine("Enter seat to cancel: ")
        if err != nil {
            return err
        }
        if c.line.HasSeat(s) {
            seat = s
            break
        }
        fmt.Fprintln(c.out, "Invalid seat.")
    }
    origin, dest, err := c.readRange()
    if err != nil {
        return err
    }
    if err := c.showTickets(seat); err != nil {
        return err
    }
    ok, err := c.line.CancelReservation(seat, origin, dest)
    if err != nil {
        return err
    }
    if !ok {
        fmt.Fprintf(c.out, "Ticket does not exist at %s\n", seat)
        return nil
    }
    fmt.Fprintln(c.out, "After cancellation:")
    return c.showTickets(seat)
}

func (c *Console) showTickets(seat string) error {
    v, err := c.line.Seat(seat)
    if err != nil {
        return err
    }
    fmt.Fprintf(c.out, "Tickets issued at %s:%s\n", seat, formatSegments(v.Segments, false))
    return nil
}

// showSeats prints one row per seat; withPrice appends each segment's fare.
func (c *Console) showSeats(withPrice bool) {
    for _, v := range c.line.Snapshot() {
        fmt.Fprintf(c.out, "%s:%s\n", v.Code, formatSegments(v.Segments, withPrice))
    }
}

func formatSegments(segs []line.BookedSegment, withPrice bool) string {
    var b strings.Builder
    for _, s := range segs {
        fmt.Fprintf(&b, " [%s(%d)-%s(%d)", s.OriginName, s.Origin, s.DestName, s.Dest)
        if withPrice {
            fmt.Fprintf(&b, "-%d", s.Fare)
        }
        b.WriteString("],")
    }
    return b.String()
}

func quoteList(items []string) string {
    q := make([]string, len(items))
    for i, s := range items {
        q[i] = strconv.Quote(s)
    }
    return "[" + strings.Join(q, ", ") + "]"
}
