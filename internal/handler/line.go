// Package handler exposes HTTP handlers for the reservation API.  This
// file serves the per-line endpoints: station listing, availability and
// fares, seat listings, reservation and cancellation, and the operator
// reset.

package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-seat-reservation/internal/model"
    "github.com/iliyamo/train-seat-reservation/internal/service"
)

// LineHandler serves the /v1/lines routes on top of a BookingService.
type LineHandler struct {
    Svc *service.BookingService // reservation operations and line lookup
}

// NewLineHandler constructs a LineHandler and panics on a nil service.
func NewLineHandler(svc *service.BookingService) *LineHandler {
    if svc == nil {
        panic("nil service passed to NewLineHandler")
    }
    return &LineHandler{Svc: svc}
}

// StationView is one row of the station listing.
type StationView struct {
    Index int    `json:"index"`
    Name  string `json:"name"`
    Fares []int  `json:"cumulative_fares"`
}

// reservationReq is the body of reserve and cancel requests.  Pointers
// distinguish a missing index from station 0.
type reservationReq struct {
    Seat   string `json:"seat"`
    Origin *int   `json:"origin"`
    Dest   *int   `json:"dest"`
}

func (r reservationReq) valid() bool {
    return r.Seat != "" && r.Origin != nil && r.Dest != nil
}

// ListLines handles GET /v1/lines.
func (h *LineHandler) ListLines(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"items": h.Svc.Lines.Names()})
}

// GetStations handles GET /v1/lines/:line/stations.  Station data never
// changes after startup, so this route may sit behind the response cache.
func (h *LineHandler) GetStations(c echo.Context) error {
    l, err := h.Svc.Line(c.Param("line"))
    if err != nil {
        return errorResponse(c, err)
    }
    idx := l.Stations()
    out := make([]StationView, 0, idx.Len())
    for i, name := range idx.Names() {
        out = append(out, StationView{Index: i, Name: name, Fares: l.Fares().Cumulative(i)})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "line":    l.Name(),
        "classes": l.Classes(),
        "items":   out,
    })
}

// GetAvailability handles GET /v1/lines/:line/availability?origin=&dest=.
// origin and dest are station indexes or names.  When no seat is free the
// response is still 200 with an empty list and a message.
func (h *LineHandler) GetAvailability(c echo.Context) error {
    l, err := h.Svc.Line(c.Param("line"))
    if err != nil {
        return errorResponse(c, err)
    }
    origin, dest, err := rangeQuery(c, l)
    if err != nil {
        return errorResponse(c, err)
    }
    av, err := h.Svc.Availability(l.Name(), origin, dest)
    if err != nil {
        return errorResponse(c, err)
    }
    resp := echo.Map{"origin": av.Origin, "dest": av.Dest, "seats": av.Seats, "fares": av.Fares}
    if len(av.Seats) == 0 {
        resp["message"] = "no seat available"
    }
    return c.JSON(http.StatusOK, resp)
}

// GetFare handles GET /v1/lines/:line/fare?origin=&dest=&class=.
func (h *LineHandler) GetFare(c echo.Context) error {
    l, err := h.Svc.Line(c.Param("line"))
    if err != nil {
        return errorResponse(c, err)
    }
    origin, dest, err := rangeQuery(c, l)
    if err != nil {
        return errorResponse(c, err)
    }
    class, err := strconv.Atoi(c.QueryParam("class"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid class"})
    }
    fare, err := l.FareFor(origin, dest, class)
    if err != nil {
        return errorResponse(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"origin": origin, "dest": dest, "class": class, "fare": fare})
}

// ListSeats handles GET /v1/lines/:line/seats: every seat with its booked
// segments and the fare paid for each.
func (h *LineHandler) ListSeats(c echo.Context) error {
    l, err := h.Svc.Line(c.Param("line"))
    if err != nil {
        return errorResponse(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": l.Snapshot()})
}

// GetSeat handles GET /v1/lines/:line/seats/:seat.  With ?coverage=true
// the response also carries the seat's coverage bitmap.
func (h *LineHandler) GetSeat(c echo.Context) error {
    l, err := h.Svc.Line(c.Param("line"))
    if err != nil {
        return errorResponse(c, err)
    }
    view, err := l.Seat(c.Param("seat"))
    if err != nil {
        return errorResponse(c, err)
    }
    resp := echo.Map{"item": view}
    if c.QueryParam("coverage") == "true" {
        cov, err := l.Coverage(view.Code)
        if err != nil {
            return errorResponse(c, err)
        }
        resp["coverage"] = cov
    }
    return c.JSON(http.StatusOK, resp)
}

// CreateReservation handles POST /v1/lines/:line/reservations.  The body
// is {"seat": "1A", "origin": 0, "dest": 2}.  Returns 201 with the ticket,
// 409 when the seat is taken on that range.
func (h *LineHandler) CreateReservation(c echo.Context) error {
    var req reservationReq
    if err := c.Bind(&req); err != nil || !req.valid() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat, origin and dest are required"})
    }
    tk, err := h.Svc.Reserve(c.Request().Context(), c.Param("line"), req.Seat, *req.Origin, *req.Dest)
    if err != nil {
        return errorResponse(c, err)
    }
    return c.JSON(http.StatusCreated, echo.Map{"item": tk})
}

// CancelReservation handles DELETE /v1/lines/:line/reservations with the
// same body as CreateReservation.  Only an exactly matching segment is
// removed; otherwise the response is 404 "ticket does not exist".
func (h *LineHandler) CancelReservation(c echo.Context) error {
    var req reservationReq
    if err := c.Bind(&req); err != nil || !req.valid() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat, origin and dest are required"})
    }
    ok, err := h.Svc.Cancel(c.Request().Context(), c.Param("line"), req.Seat, *req.Origin, *req.Dest)
    if err != nil {
        return errorResponse(c, err)
    }
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket does not exist"})
    }
    segs, err := h.remaining(c.Param("line"), req.Seat)
    if err != nil {
        return errorResponse(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"cancelled": true, "segments": segs})
}

func (h *LineHandler) remaining(name, seat string) ([]model.Segment, error) {
    l, err := h.Svc.Line(name)
    if err != nil {
        return nil, err
    }
    return l.AllSegments(seat)
}

// ClearAll handles POST /v1/lines/:line/clear.  Operator only.
func (h *LineHandler) ClearAll(c echo.Context) error {
    if err := h.Svc.ClearAll(c.Request().Context(), c.Param("line")); err != nil {
        return errorResponse(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
