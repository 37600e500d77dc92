package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/iliyamo/train-seat-reservation/internal/config"
	"github.com/iliyamo/train-seat-reservation/internal/line"
	q "github.com/iliyamo/train-seat-reservation/internal/queue"
)

type recordingPublisher struct {
	events []q.TicketEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev q.TicketEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func writeLine(t *testing.T, dir, name, tickets string) config.LineSource {
	t.Helper()
	write := func(file, body string) string {
		p := filepath.Join(dir, file)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}
	src := config.LineSource{
		Name:     name,
		Stations: write(name+"_stations.txt", "AA,0,0\nBB,200,100\nCC,275,150\nDD,400,220\nEE,450,260\n"),
		Seats:    write(name+"_seats.txt", "1A\n1B\n2A\n"),
	}
	if tickets != "" {
		src.Tickets = write(name+"_tickets.txt", tickets)
	}
	return src
}

func newService(t *testing.T, pub EventPublisher) *BookingService {
	t.Helper()
	dir := t.TempDir()
	cat := config.LineCatalog{Lines: []config.LineSource{
		writeLine(t, dir, "north", "1A,AA,CC\n"),
		writeLine(t, dir, "south", ""),
	}}
	reg, err := LoadRegistry(context.Background(), cat, FileTicketSource{})
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	return NewBookingService(reg, pub)
}

func TestLoadRegistry_ReplaysTickets(t *testing.T) {
	svc := newService(t, nil)
	north, err := svc.Line("north")
	if err != nil {
		t.Fatal(err)
	}
	segs, _ := north.AllSegments("1A")
	if len(segs) != 1 || segs[0].Origin != 0 || segs[0].Dest != 2 {
		t.Errorf("north 1A = %v", segs)
	}
	south, _ := svc.Line("south")
	if segs, _ := south.AllSegments("1A"); len(segs) != 0 {
		t.Errorf("south 1A = %v", segs)
	}
	if _, err := svc.Line("east"); !errors.Is(err, ErrUnknownLine) {
		t.Errorf("expected ErrUnknownLine, got %v", err)
	}
}

func TestLoadRegistry_FailsOnBadTicket(t *testing.T) {
	dir := t.TempDir()
	cat := config.LineCatalog{Lines: []config.LineSource{writeLine(t, dir, "north", "9Z,AA,CC\n")}}
	if _, err := LoadRegistry(context.Background(), cat, FileTicketSource{}); !errors.Is(err, line.ErrUnknownSeat) {
		t.Errorf("expected ErrUnknownSeat, got %v", err)
	}
}

func TestBookingService_Availability(t *testing.T) {
	svc := newService(t, nil)
	av, err := svc.Availability("north", 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(av.Seats, []string{"1B", "2A"}) {
		t.Errorf("Seats = %v", av.Seats)
	}
	if want := []line.ClassFare{{Class: 1, Fare: 200}, {Class: 2, Fare: 120}}; !reflect.DeepEqual(av.Fares, want) {
		t.Errorf("Fares = %v, want %v", av.Fares, want)
	}
	if _, err := svc.Availability("north", 3, 1); !errors.Is(err, line.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestBookingService_ReservePublishes(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newService(t, pub)
	tk, err := svc.Reserve(context.Background(), "north", "2A", 1, 4)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if tk.Fare != 160 || tk.OriginName != "BB" || tk.DestName != "EE" {
		t.Errorf("ticket %+v", tk)
	}
	if len(pub.events) != 1 {
		t.Fatalf("events = %v", pub.events)
	}
	ev := pub.events[0]
	if ev.Type != q.EventTicketReserved || ev.TicketRef != tk.Ref || ev.EventID == "" || ev.OccurredAt == "" {
		t.Errorf("event %+v", ev)
	}

	if _, err := svc.Reserve(context.Background(), "north", "2A", 0, 1); !errors.Is(err, line.ErrSeatUnavailable) {
		t.Errorf("expected ErrSeatUnavailable, got %v", err)
	}
	if len(pub.events) != 1 {
		t.Errorf("failed reservation published an event")
	}
}

func TestBookingService_PublishFailureDoesNotFail(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := newService(t, pub)
	if _, err := svc.Reserve(context.Background(), "south", "1A", 0, 1); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
}

func TestBookingService_CancelAndClear(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newService(t, pub)
	ctx := context.Background()

	ok, err := svc.Cancel(ctx, "north", "1A", 0, 1)
	if err != nil || ok {
		t.Errorf("cancel of missing ticket = %v, %v", ok, err)
	}
	ok, err = svc.Cancel(ctx, "north", "1A", 0, 2)
	if err != nil || !ok {
		t.Errorf("cancel = %v, %v", ok, err)
	}
	if _, err := svc.Cancel(ctx, "north", "7Q", 0, 2); !errors.Is(err, line.ErrUnknownSeat) {
		t.Errorf("expected ErrUnknownSeat, got %v", err)
	}

	if _, err := svc.Reserve(ctx, "north", "1B", 0, 4); err != nil {
		t.Fatal(err)
	}
	if err := svc.ClearAll(ctx, "north"); err != nil {
		t.Fatal(err)
	}
	av, _ := svc.Availability("north", 0, 4)
	if len(av.Seats) != 3 {
		t.Errorf("after clear Seats = %v", av.Seats)
	}
	var types []string
	for _, ev := range pub.events {
		types = append(types, ev.Type)
	}
	want := []string{q.EventTicketCancelled, q.EventTicketReserved, q.EventTicketsCleared}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("event types = %v, want %v", types, want)
	}
	if err := svc.ClearAll(ctx, "east"); !errors.Is(err, ErrUnknownLine) {
		t.Errorf("expected ErrUnknownLine, got %v", err)
	}
}

func TestLoadRegistry_SampleCatalogue(t *testing.T) {
	cat, err := config.LoadLineCatalog(filepath.Join("..", "..", "data", "lines.yml"))
	if err != nil {
		t.Fatalf("LoadLineCatalog: %v", err)
	}
	reg, err := LoadRegistry(context.Background(), cat, FileTicketSource{})
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"north", "south"}) {
		t.Fatalf("lines = %v", got)
	}
	north, _ := reg.Get("north")
	segs, err := north.AllSegments("1A")
	if err != nil || len(segs) != 2 {
		t.Errorf("north 1A segments = %v, %v", segs, err)
	}
}
