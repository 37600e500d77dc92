package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-seat-reservation/internal/config"
    "github.com/iliyamo/train-seat-reservation/internal/line"
    "github.com/iliyamo/train-seat-reservation/internal/middleware"
    "github.com/iliyamo/train-seat-reservation/internal/model"
    "github.com/iliyamo/train-seat-reservation/internal/service"
    "github.com/iliyamo/train-seat-reservation/internal/utils"
)

const testSecret = "test-secret"

func newServer(t *testing.T) (*echo.Echo, *line.Line) {
    t.Helper()
    l, err := line.New("north", []model.Station{
        {Name: "AA", Fares: []int{0, 0}},
        {Name: "BB", Fares: []int{200, 100}},
        {Name: "CC", Fares: []int{275, 150}},
        {Name: "DD", Fares: []int{400, 220}},
    }, []model.Seat{{Code: "1A", Class: 1}, {Code: "2A", Class: 2}})
    if err != nil {
        t.Fatal(err)
    }
    reg := line.NewRegistry()
    if err := reg.Add(l); err != nil {
        t.Fatal(err)
    }
    h := NewLineHandler(service.NewBookingService(reg, nil))

    e := echo.New()
    e.GET("/v1/lines", h.ListLines)
    g := e.Group("/v1/lines/:line")
    g.GET("/stations", h.GetStations)
    g.GET("/availability", h.GetAvailability)
    g.GET("/fare", h.GetFare)
    g.GET("/seats", h.ListSeats)
    g.GET("/seats/:seat", h.GetSeat)
    g.POST("/reservations", h.CreateReservation)
    g.DELETE("/reservations", h.CancelReservation)
    g.POST("/clear", h.ClearAll, middleware.JWTAuth(testSecret), middleware.RequireRole(RoleOperator))
    return e, l
}

func do(e *echo.Echo, method, target, body string, hdr ...string) *httptest.ResponseRecorder {
    var req *http.Request
    if body != "" {
        req = httptest.NewRequest(method, target, strings.NewReader(body))
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    } else {
        req = httptest.NewRequest(method, target, nil)
    }
    for i := 0; i+1 < len(hdr); i += 2 {
        req.Header.Set(hdr[i], hdr[i+1])
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
    t.Helper()
    var m map[string]interface{}
    if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
        t.Fatalf("decode %q: %v", rec.Body.String(), err)
    }
    return m
}

func TestAvailability(t *testing.T) {
    e, l := newServer(t)

    rec := do(e, http.MethodGet, "/v1/lines/north/availability?origin=0&dest=CC", "")
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
    }
    m := decode(t, rec)
    if seats := m["seats"].([]interface{}); len(seats) != 2 {
        t.Errorf("seats = %v", seats)
    }
    fares := m["fares"].([]interface{})
    if f := fares[0].(map[string]interface{}); f["fare"].(float64) != 275 {
        t.Errorf("class 1 fare = %v", f)
    }

    for _, s := range []string{"1A", "2A"} {
        if _, err := l.CommitReservation(s, 1, 2); err != nil {
            t.Fatal(err)
        }
    }
    m = decode(t, do(e, http.MethodGet, "/v1/lines/north/availability?origin=2&dest=3", ""))
    if m["message"] != "no seat available" {
        t.Errorf("expected empty-availability message, got %v", m)
    }

    cases := map[string]int{
        "/v1/lines/north/availability?origin=2&dest=2": http.StatusBadRequest,
        "/v1/lines/north/availability?origin=0&dest=9": http.StatusBadRequest,
        "/v1/lines/north/availability?origin=ZZ&dest=1": http.StatusBadRequest,
        "/v1/lines/north/availability?dest=1":           http.StatusBadRequest,
        "/v1/lines/south/availability?origin=0&dest=1": http.StatusNotFound,
    }
    for target, want := range cases {
        if rec := do(e, http.MethodGet, target, ""); rec.Code != want {
            t.Errorf("GET %s = %d, want %d", target, rec.Code, want)
        }
    }
}

func TestFare(t *testing.T) {
    e, _ := newServer(t)
    m := decode(t, do(e, http.MethodGet, "/v1/lines/north/fare?origin=1&dest=2&class=2", ""))
    if m["fare"].(float64) != 50 {
        t.Errorf("fare = %v", m["fare"])
    }
    if rec := do(e, http.MethodGet, "/v1/lines/north/fare?origin=1&dest=2&class=3", ""); rec.Code != http.StatusBadRequest {
        t.Errorf("unknown class status = %d", rec.Code)
    }
    if rec := do(e, http.MethodGet, "/v1/lines/north/fare?origin=1&dest=2", ""); rec.Code != http.StatusBadRequest {
        t.Errorf("missing class status = %d", rec.Code)
    }
}

func TestReserveAndCancel(t *testing.T) {
    e, _ := newServer(t)
    path := "/v1/lines/north/reservations"

    rec := do(e, http.MethodPost, path, `{"seat":"1A","origin":0,"dest":2}`)
    if rec.Code != http.StatusCreated {
        t.Fatalf("reserve status = %d body=%s", rec.Code, rec.Body.String())
    }
    item := decode(t, rec)["item"].(map[string]interface{})
    if item["fare"].(float64) != 275 || item["ref"] == "" {
        t.Errorf("ticket = %v", item)
    }

    if rec := do(e, http.MethodPost, path, `{"seat":"1A","origin":2,"dest":3}`); rec.Code != http.StatusConflict {
        t.Errorf("touching segment status = %d, want 409", rec.Code)
    }
    if rec := do(e, http.MethodPost, path, `{"seat":"9Z","origin":0,"dest":1}`); rec.Code != http.StatusNotFound {
        t.Errorf("unknown seat status = %d", rec.Code)
    }
    if rec := do(e, http.MethodPost, path, `{"seat":"1A","dest":1}`); rec.Code != http.StatusBadRequest {
        t.Errorf("missing origin status = %d", rec.Code)
    }

    rec = do(e, http.MethodDelete, path, `{"seat":"1A","origin":0,"dest":1}`)
    if rec.Code != http.StatusNotFound || decode(t, rec)["error"] != "ticket does not exist" {
        t.Errorf("inexact cancel = %d %s", rec.Code, rec.Body.String())
    }
    rec = do(e, http.MethodDelete, path, `{"seat":"1A","origin":0,"dest":2}`)
    if rec.Code != http.StatusOK {
        t.Fatalf("cancel status = %d body=%s", rec.Code, rec.Body.String())
    }
    if segs := decode(t, rec)["segments"].([]interface{}); len(segs) != 0 {
        t.Errorf("segments after cancel = %v", segs)
    }
}

func TestSeats(t *testing.T) {
    e, l := newServer(t)
    if _, err := l.CommitReservation("2A", 0, 1); err != nil {
        t.Fatal(err)
    }
    m := decode(t, do(e, http.MethodGet, "/v1/lines/north/seats/2A?coverage=true", ""))
    cov := m["coverage"].([]interface{})
    want := []bool{true, true, false, false}
    for i, w := range want {
        if cov[i].(bool) != w {
            t.Errorf("coverage = %v, want %v", cov, want)
            break
        }
    }
    if rec := do(e, http.MethodGet, "/v1/lines/north/seats/3C", ""); rec.Code != http.StatusNotFound {
        t.Errorf("unknown seat status = %d", rec.Code)
    }
    items := decode(t, do(e, http.MethodGet, "/v1/lines/north/seats", ""))["items"].([]interface{})
    seat := items[1].(map[string]interface{})
    seg := seat["segments"].([]interface{})[0].(map[string]interface{})
    if seg["fare"].(float64) != 100 || seg["origin_name"] != "AA" {
        t.Errorf("segment = %v", seg)
    }
}

func TestClearRequiresOperator(t *testing.T) {
    e, l := newServer(t)
    if _, err := l.CommitReservation("1A", 0, 3); err != nil {
        t.Fatal(err)
    }
    if rec := do(e, http.MethodPost, "/v1/lines/north/clear", ""); rec.Code != http.StatusUnauthorized {
        t.Errorf("anonymous clear = %d", rec.Code)
    }
    tok, err := utils.NewAccessToken(testSecret, "operator", RoleOperator, 5)
    if err != nil {
        t.Fatal(err)
    }
    if rec := do(e, http.MethodPost, "/v1/lines/north/clear", "", "Authorization", "Bearer "+tok.Token); rec.Code != http.StatusNoContent {
        t.Fatalf("operator clear = %d", rec.Code)
    }
    if segs, _ := l.AllSegments("1A"); len(segs) != 0 {
        t.Errorf("segments after clear = %v", segs)
    }
}

func TestLogin(t *testing.T) {
    hash, err := utils.HashPassword("s3cret", 4)
    if err != nil {
        t.Fatal(err)
    }
    a := NewAuthHandler(config.Config{JWTSecret: testSecret, AccessTTLMin: 5, OperatorUser: "operator", OperatorPassHash: hash})
    e := echo.New()
    e.POST("/v1/auth/login", a.Login)

    if rec := do(e, http.MethodPost, "/v1/auth/login", `{"username":"operator","password":"nope"}`); rec.Code != http.StatusUnauthorized {
        t.Errorf("wrong password = %d", rec.Code)
    }
    if rec := do(e, http.MethodPost, "/v1/auth/login", `{"username":"","password":"x"}`); rec.Code != http.StatusBadRequest {
        t.Errorf("empty username = %d", rec.Code)
    }
    rec := do(e, http.MethodPost, "/v1/auth/login", `{"username":"operator","password":"s3cret"}`)
    if rec.Code != http.StatusOK {
        t.Fatalf("login = %d %s", rec.Code, rec.Body.String())
    }
    m := decode(t, rec)
    if m["role"] != RoleOperator || m["access"].(map[string]interface{})["token"] == "" {
        t.Errorf("login body = %v", m)
    }
}

func TestStationsAndLines(t *testing.T) {
    e, _ := newServer(t)
    m := decode(t, do(e, http.MethodGet, "/v1/lines/north/stations", ""))
    items := m["items"].([]interface{})
    if len(items) != 4 || items[3].(map[string]interface{})["name"] != "DD" {
        t.Errorf("stations = %v", items)
    }
    lines := decode(t, do(e, http.MethodGet, "/v1/lines", ""))["items"].([]interface{})
    if len(lines) != 1 || lines[0] != "north" {
        t.Errorf("lines = %v", lines)
    }
}
