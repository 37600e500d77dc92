package repository // repository defines data access for reserved tickets

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives

	"github.com/iliyamo/train-seat-reservation/internal/model"
)

// TicketRepo reads previously reserved tickets from the
// reserved_tickets table.  The table is only read at startup; new
// reservations and cancellations stay in memory.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// ListByLine retrieves the tickets of one line in insertion order.
func (r *TicketRepo) ListByLine(ctx context.Context, line string) ([]model.TicketRecord, error) {
	const q = `SELECT line_name, seat_code, origin_name, dest_name
	           FROM reserved_tickets
	           WHERE line_name = ?
	           ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, line)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.TicketRecord
	for rows.Next() {
		var t model.TicketRecord
		if err := rows.Scan(&t.Line, &t.Seat, &t.Origin, &t.Dest); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
