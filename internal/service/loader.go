package service

import (
	"context"
	"fmt"
	"log"

	"github.com/iliyamo/train-seat-reservation/internal/config"
	"github.com/iliyamo/train-seat-reservation/internal/line"
	"github.com/iliyamo/train-seat-reservation/internal/model"
	"github.com/iliyamo/train-seat-reservation/internal/repository"
)

// TicketSource supplies the reserved tickets replayed into a line at
// startup.
type TicketSource interface {
	Tickets(ctx context.Context, src config.LineSource) ([]model.TicketRecord, error)
}

// FileTicketSource reads the tickets file named in the catalogue.
type FileTicketSource struct{}

// Tickets implements TicketSource.
func (FileTicketSource) Tickets(_ context.Context, src config.LineSource) ([]model.TicketRecord, error) {
	if src.Tickets == "" {
		return nil, nil
	}
	return repository.LoadTickets(src.Tickets)
}

// DBTicketSource reads tickets from the reserved_tickets table.
type DBTicketSource struct {
	Repo *repository.TicketRepo
}

// Tickets implements TicketSource.
func (s DBTicketSource) Tickets(ctx context.Context, src config.LineSource) ([]model.TicketRecord, error) {
	return s.Repo.ListByLine(ctx, src.Name)
}

// LoadLine builds one line from its station and seat files and replays
// its reserved tickets.
func LoadLine(ctx context.Context, src config.LineSource, tickets TicketSource) (*line.Line, error) {
	stations, err := repository.LoadStations(src.Stations)
	if err != nil {
		return nil, fmt.Errorf("line %s: stations: %w", src.Name, err)
	}
	seats, err := repository.LoadSeats(src.Seats)
	if err != nil {
		return nil, fmt.Errorf("line %s: seats: %w", src.Name, err)
	}
	l, err := line.New(src.Name, stations, seats)
	if err != nil {
		return nil, fmt.Errorf("line %s: %w", src.Name, err)
	}
	recs, err := tickets.Tickets(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("line %s: tickets: %w", src.Name, err)
	}
	if err := l.Replay(recs); err != nil {
		return nil, fmt.Errorf("line %s: tickets: %w", src.Name, err)
	}
	log.Printf("line: loaded %s (%d stations, %d seats, %d tickets)", src.Name, len(stations), len(seats), len(recs))
	return l, nil
}

// LoadRegistry loads every line of the catalogue.  Any malformed source
// aborts startup.
func LoadRegistry(ctx context.Context, cat config.LineCatalog, tickets TicketSource) (*line.Registry, error) {
	reg := line.NewRegistry()
	for _, src := range cat.Lines {
		l, err := LoadLine(ctx, src, tickets)
		if err != nil {
			return nil, err
		}
		if err := reg.Add(l); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
