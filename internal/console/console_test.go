package console

import (
    "bytes"
    "reflect"
    "strings"
    "testing"

    "github.com/iliyamo/train-seat-reservation/internal/line"
    "github.com/iliyamo/train-seat-reservation/internal/model"
)

func testLine(t *testing.T) *line.Line {
    t.Helper()
    st := []model.Station{
        {Name: "AA", Fares: []int{0, 0}},
        {Name: "BB", Fares: []int{200, 100}},
        {Name: "CC", Fares: []int{275, 150}},
        {Name: "DD", Fares: []int{400, 220}},
        {Name: "EE", Fares: []int{450, 260}},
    }
    se := []model.Seat{{Code: "1A", Class: 1}, {Code: "2A", Class: 2}}
    l, err := line.New("north", st, se)
    if err != nil {
        t.Fatalf("line.New: %v", err)
    }
    return l
}

func run(t *testing.T, l *line.Line, input string) string {
    t.Helper()
    var out bytes.Buffer
    if err := New(l, strings.NewReader(input), &out).Run(); err != nil {
        t.Fatalf("Run: %v", err)
    }
    return out.String()
}

func assertContains(t *testing.T, out string, want ...string) {
    t.Helper()
    for _, w := range want {
        if !strings.Contains(out, w) {
            t.Errorf("output missing %q\n---\n%s", w, out)
        }
    }
}

func TestReserve_RepromptsOnInvalidInput(t *testing.T) {
    l := testLine(t)
    out := run(t, l, "2\nx\n9\n1\n1\n3\nZZ\n1A\n6\n")
    assertContains(t, out,
        "Invalid origin station index.",
        "Invalid destination station index.",
        `Available seats: ["1A", "2A"]`,
        "Class 1 Ticket price = 200",
        "Class 2 Ticket price = 120",
        "Invalid seats.",
        "The selected seat = 1A",
        "The ticket price = 200",
    )
    if n := strings.Count(out, "Invalid origin station index."); n != 2 {
        t.Errorf("origin re-prompted %d times, want 2", n)
    }
    segs, _ := l.AllSegments("1A")
    if want := []model.Segment{{Origin: 1, Dest: 3}}; !reflect.DeepEqual(segs, want) {
        t.Errorf("1A segments = %v, want %v", segs, want)
    }
}

func TestReserve_NoSeat(t *testing.T) {
    l := testLine(t)
    for _, s := range []string{"1A", "2A"} {
        if _, err := l.CommitReservation(s, 0, 4); err != nil {
            t.Fatal(err)
        }
    }
    out := run(t, l, "2\n2\n3\n6\n")
    assertContains(t, out, "Sorry. No available seat.")
    if strings.Contains(out, "Select seat: ") {
        t.Error("seat prompt shown with no seat available")
    }
}

func TestCancel_ShowsTicketsBeforeAndAfter(t *testing.T) {
    l := testLine(t)
    if _, err := l.CommitReservation("1A", 0, 1); err != nil {
        t.Fatal(err)
    }
    if _, err := l.CommitReservation("1A", 2, 4); err != nil {
        t.Fatal(err)
    }
    out := run(t, l, "3\nXX\n1A\n0\n1\n6\n")
    assertContains(t, out,
        `Seats are ["1A", "2A"]`,
        "Invalid seat.",
        "Tickets issued at 1A: [AA(0)-BB(1)], [CC(2)-EE(4)],",
        "After cancellation:",
        "Tickets issued at 1A: [CC(2)-EE(4)],",
    )
    segs, _ := l.AllSegments("1A")
    if want := []model.Segment{{Origin: 2, Dest: 4}}; !reflect.DeepEqual(segs, want) {
        t.Errorf("1A segments = %v, want %v", segs, want)
    }
}

func TestCancel_MissingTicket(t *testing.T) {
    l := testLine(t)
    if _, err := l.CommitReservation("1A", 0, 2); err != nil {
        t.Fatal(err)
    }
    out := run(t, l, "3\n1A\n0\n1\n6\n")
    assertContains(t, out, "Ticket does not exist at 1A")
    if segs, _ := l.AllSegments("1A"); len(segs) != 1 {
        t.Errorf("segments mutated: %v", segs)
    }
}

func TestShowSeatsAndPrices(t *testing.T) {
    l := testLine(t)
    if _, err := l.CommitReservation("2A", 1, 2); err != nil {
        t.Fatal(err)
    }
    out := run(t, l, "1\n4\n6\n")
    assertContains(t, out,
        "1A:\n",
        "2A: [BB(1)-CC(2)],\n",
        "2A: [BB(1)-CC(2)-50],\n",
    )
}

func TestClearAndInvalidChoice_StopsAtEOF(t *testing.T) {
    l := testLine(t)
    if _, err := l.CommitReservation("1A", 0, 4); err != nil {
        t.Fatal(err)
    }
    out := run(t, l, "7\nabc\n5\n")
    if n := strings.Count(out, "Invalid choice. Choose again."); n != 2 {
        t.Errorf("invalid choice reported %d times, want 2", n)
    }
    assertContains(t, out, "After clearing all tickets", "1A:\n")
    if segs, _ := l.AllSegments("1A"); len(segs) != 0 {
        t.Errorf("segments after clear: %v", segs)
    }
}

func TestEOFMidPrompt(t *testing.T) {
    l := testLine(t)
    run(t, l, "2\n0\n")
    if segs, _ := l.AllSegments("1A"); len(segs) != 0 {
        t.Errorf("segments after aborted reserve: %v", segs)
    }
}
