package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/config"
)

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Addr:         "127.0.0.1:0",
		RateLimit:    1000,
		CORSOrigins:  []string{"*"},
		ReadTimeout:  "5s",
		WriteTimeout: "10s",
	}
}

func newTestRouter(t *testing.T, cfg config.ServerConfig) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	cal := calendar.NewCachedCalendar(calendar.NewLowerSaxony(1900, 2100, logger), time.Hour, logger)
	handlers := NewHandlers(cal, logger)
	return SetupRoutes(handlers, cfg, logger)
}

// envelope mirrors Response with a typed payload
type envelope[T any] struct {
	Success bool       `json:"success"`
	Data    T          `json:"data"`
	Error   *ErrorInfo `json:"error"`
}

func get[T any](t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, envelope[T]) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return rec, body
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, testServerConfig())

	rec, body := get[map[string]string](t, router, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, body.Success)
	assert.Equal(t, "ok", body.Data["status"])
}

func TestGetYear(t *testing.T) {
	router := newTestRouter(t, testServerConfig())

	rec, body := get[YearView](t, router, "/api/v1/years/2024")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, 2024, body.Data.Year)
	assert.True(t, body.Data.LeapYear)
	assert.Equal(t, "2024-03-31", body.Data.Easter)
	assert.Equal(t, 31, body.Data.EasterShift)
	require.Len(t, body.Data.Holidays, 13)
	assert.Equal(t, HolidayView{
		Name:    "Whit Monday",
		Date:    "2024-05-20",
		Day:     20,
		Month:   "May",
		Weekday: "Monday",
		Movable: true,
	}, body.Data.Holidays[7])
}

func TestGetYear_GatedHolidays(t *testing.T) {
	router := newTestRouter(t, testServerConfig())

	_, body := get[YearView](t, router, "/api/v1/years/1990")

	names := make([]string, 0, len(body.Data.Holidays))
	for _, h := range body.Data.Holidays {
		names = append(names, h.Name)
	}
	assert.Contains(t, names, "Labour Day")
	assert.NotContains(t, names, "German Unity Day")
	assert.False(t, body.Data.LeapYear)
}

func TestGetMonth(t *testing.T) {
	router := newTestRouter(t, testServerConfig())

	tests := []struct {
		name string
		path string
	}{
		{"by number", "/api/v1/months/2025/4"},
		{"by name", "/api/v1/months/2025/april"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := get[MonthView](t, router, tt.path)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "April", body.Data.Month)
			assert.Equal(t, 4, body.Data.MonthNumber)
			assert.Equal(t, "Tuesday", body.Data.FirstWeekday)
			assert.Equal(t, 30, body.Data.DaysInMonth)
			assert.Len(t, body.Data.Days, 30)
			assert.Equal(t, [7]int{0, 0, 1, 2, 3, 4, 5}, body.Data.Grid[0])
			require.Len(t, body.Data.Holidays, 3)
			assert.Equal(t, "Good Friday", body.Data.Holidays[0].Name)
			assert.Equal(t, []string{"Easter Sunday"}, body.Data.Days[19].Holidays)
		})
	}
}

func TestGetHolidays(t *testing.T) {
	router := newTestRouter(t, testServerConfig())

	rec, year := get[[]HolidayView](t, router, "/api/v1/holidays/2024")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, year.Data, 13)

	rec, month := get[[]HolidayView](t, router, "/api/v1/holidays/2024/12")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, month.Data, 3)
	assert.Equal(t, "Christmas Eve", month.Data[0].Name)
	assert.Equal(t, "2024-12-26", month.Data[2].Date)

	rec, empty := get[[]HolidayView](t, router, "/api/v1/holidays/2024/february")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, empty.Success)
	assert.Empty(t, empty.Data)
}

func TestGetWeekday(t *testing.T) {
	router := newTestRouter(t, testServerConfig())

	tests := []struct {
		name        string
		path        string
		wantWeekday string
		wantHoliday []string
		wantWeekend bool
	}{
		{"ISO date", "/api/v1/weekday/2024-12-25", "Wednesday", []string{"1st Christmas Day"}, false},
		{"German date", "/api/v1/weekday/03.10.1991", "Thursday", []string{"German Unity Day"}, false},
		{"Weekend", "/api/v1/weekday/2024-06-15", "Saturday", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := get[DayView](t, router, tt.path)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantWeekday, body.Data.Weekday)
			assert.Equal(t, tt.wantHoliday, body.Data.Holidays)
			assert.Equal(t, len(tt.wantHoliday) > 0, body.Data.IsHoliday)
			assert.Equal(t, tt.wantWeekend, body.Data.IsWeekend)
		})
	}
}

func TestErrors(t *testing.T) {
	router := newTestRouter(t, testServerConfig())

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"non numeric year", "/api/v1/years/abc", http.StatusBadRequest, "BAD_REQUEST"},
		{"year below bounds", "/api/v1/years/1899", http.StatusBadRequest, "YEAR_OUT_OF_RANGE"},
		{"year above bounds", "/api/v1/holidays/2101", http.StatusBadRequest, "YEAR_OUT_OF_RANGE"},
		{"month out of range", "/api/v1/months/2024/13", http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown month name", "/api/v1/holidays/2024/Brumaire", http.StatusBadRequest, "BAD_REQUEST"},
		{"invalid date", "/api/v1/weekday/2023-02-29", http.StatusBadRequest, "BAD_REQUEST"},
		{"date out of bounds", "/api/v1/weekday/1800-01-01", http.StatusBadRequest, "YEAR_OUT_OF_RANGE"},
		{"unknown route", "/api/v2/years/2024", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := get[json.RawMessage](t, router, tt.path)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit = 2
	router := newTestRouter(t, cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCORS(t *testing.T) {
	cfg := testServerConfig()
	cfg.CORSOrigins = []string{"https://example.org"}
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_StartStop(t *testing.T) {
	logger := zap.NewNop()
	server := NewServer(testServerConfig(), newTestRouter(t, testServerConfig()), logger)

	done := make(chan error, 1)
	go func() {
		done <- server.Start()
	}()

	time.Sleep(50 * time.Millisecond)
	server.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
