package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avassart/reels-ms-go/internal/mock"
	"github.com/avassart/reels-ms-go/internal/port"
)

func TestQueueStatsHandler_Success(t *testing.T) {
	svc := &mock.MockStatsProvider{StatsOut: port.QueueStats{Waiting: 3, Active: 1, Completed: 12, Failed: 2}}
	h := QueueStatsHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/queue/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out port.QueueStats
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if out != svc.StatsOut {
		t.Errorf("got %+v, want %+v", out, svc.StatsOut)
	}
}

func TestQueueStatsHandler_Error(t *testing.T) {
	svc := &mock.MockStatsProvider{StatsErr: errors.New("redis down")}
	h := QueueStatsHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/queue/stats", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
