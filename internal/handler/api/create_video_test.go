package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

type mockCreator struct {
	out *model.Video
	err error
	in  port.CreateVideoInput
}

func (m *mockCreator) CreateVideo(ctx context.Context, in port.CreateVideoInput) (*model.Video, error) {
	m.in = in
	return m.out, m.err
}

func TestCreateVideoHandler_Success(t *testing.T) {
	svc := &mockCreator{out: &model.Video{Status: model.VideoStatusPending}}
	h := CreateVideoHandler(svc)

	body := bytes.NewBufferString(`{"composition_id":"POV","title":"my reel","caption":"c","hashtags":"#go"}`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/videos", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.in.CompositionID != "POV" || svc.in.Title != "my reel" {
		t.Errorf("input not passed through: %+v", svc.in)
	}

	var out model.Video
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if out.Status != model.VideoStatusPending {
		t.Errorf("expected pending, got %q", out.Status)
	}
}

func TestCreateVideoHandler_InvalidJSON(t *testing.T) {
	h := CreateVideoHandler(&mockCreator{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/videos", bytes.NewBufferString("{nope")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateVideoHandler_ValidationError(t *testing.T) {
	svc := &mockCreator{}
	h := CreateVideoHandler(svc)

	// missing title and composition_id
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/videos", bytes.NewBufferString(`{"caption":"c"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.in.Caption != "" {
		t.Error("use case should not run on validation failure")
	}
}

func TestCreateVideoHandler_ServiceError(t *testing.T) {
	svc := &mockCreator{err: errors.New("enqueue failed")}
	h := CreateVideoHandler(svc)

	body := bytes.NewBufferString(`{"composition_id":"POV","title":"t"}`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/videos", body))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
