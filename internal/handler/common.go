package handler // handler defines http handlers

import (
    "errors"   // errors.Is maps sentinel errors to status codes
    "net/http" // HTTP status codes
    "strconv"  // strconv converts query values to station indexes
    "strings"  // strings trims raw query values

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/iliyamo/train-seat-reservation/internal/line"
    "github.com/iliyamo/train-seat-reservation/internal/service"
)

var errMissingParam = errors.New("missing parameter")

// stationParam resolves a station given either as an index or as a name.
// Range checks are left to the line so that every handler reports the
// same invalid-range error.
func stationParam(l *line.Line, raw string) (int, error) {
    raw = strings.TrimSpace(raw)
    if raw == "" {
        return 0, errMissingParam
    }
    if n, err := strconv.Atoi(raw); err == nil {
        return n, nil
    }
    if i, ok := l.Stations().Index(raw); ok {
        return i, nil
    }
    return 0, line.ErrUnknownStation
}

// rangeQuery reads the origin and dest query parameters.
func rangeQuery(c echo.Context, l *line.Line) (int, int, error) {
    origin, err := stationParam(l, c.QueryParam("origin"))
    if err != nil {
        return 0, 0, err
    }
    dest, err := stationParam(l, c.QueryParam("dest"))
    if err != nil {
        return 0, 0, err
    }
    return origin, dest, nil
}

// errorResponse translates engine and service errors into HTTP responses.
func errorResponse(c echo.Context, err error) error {
    switch {
    case errors.Is(err, service.ErrUnknownLine):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "line not found"})
    case errors.Is(err, line.ErrUnknownSeat):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
    case errors.Is(err, line.ErrSeatUnavailable):
        return c.JSON(http.StatusConflict, echo.Map{"error": "seat not available for this range"})
    case errors.Is(err, errMissingParam):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "origin and dest are required"})
    case errors.Is(err, line.ErrInvalidRange),
        errors.Is(err, line.ErrUnknownStation),
        errors.Is(err, line.ErrUnknownClass):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    c.Logger().Errorf("line: unexpected error: %v", err)
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
