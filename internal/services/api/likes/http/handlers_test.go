package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"

	perr "setlist/internal/platform/errors"
	phttp "setlist/internal/platform/net/http"
	"setlist/internal/services/api/likes/domain"
)

// stubSvc records calls and returns canned results
type stubSvc struct {
	recorded [][2]string
	recErr   error
	likes    []domain.UserLikeRecord
}

func (s *stubSvc) RecordLike(_ context.Context, userID, songName string) error {
	s.recorded = append(s.recorded, [2]string{userID, songName})
	return s.recErr
}

func (s *stubSvc) LoadLikes(context.Context, string) []domain.UserLikeRecord {
	return s.likes
}

type captureRouter struct {
	post map[string]phttp.Handler
	get  map[string]phttp.Handler
}

func (c *captureRouter) Get(path string, h phttp.Handler) {
	if c.get == nil {
		c.get = map[string]phttp.Handler{}
	}
	c.get[path] = h
}

func (c *captureRouter) Post(path string, h phttp.Handler) {
	if c.post == nil {
		c.post = map[string]phttp.Handler{}
	}
	c.post[path] = h
}
func (c *captureRouter) Put(string, phttp.Handler)              {}
func (c *captureRouter) Patch(string, phttp.Handler)            {}
func (c *captureRouter) Delete(string, phttp.Handler)           {}
func (c *captureRouter) Head(string, phttp.Handler)             {}
func (c *captureRouter) Options(string, phttp.Handler)          {}
func (c *captureRouter) Handle(string, http.Handler)            {}
func (c *captureRouter) Use(...func(http.Handler) http.Handler) {}
func (c *captureRouter) Group(fn func(phttp.Router))            { fn(c) }
func (c *captureRouter) Route(_ string, fn func(phttp.Router))  { fn(c) }
func (c *captureRouter) Mux() http.Handler                      { return http.NewServeMux() }

func TestRecordLike_OK(t *testing.T) {
	svc := &stubSvc{}
	r := &captureRouter{}
	Register(r, svc)

	req := httptest.NewRequest(http.MethodPost, "/likes", strings.NewReader(`{"user_id":"u-1","song_name":"Teardrop"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.post["/"](rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(svc.recorded) != 1 || svc.recorded[0] != [2]string{"u-1", "Teardrop"} {
		t.Fatalf("service not called as expected: %+v", svc.recorded)
	}
}

func TestRecordLike_MissingFieldsRejected(t *testing.T) {
	svc := &stubSvc{}
	r := &captureRouter{}
	Register(r, svc)

	req := httptest.NewRequest(http.MethodPost, "/likes", strings.NewReader(`{"user_id":"u-1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.post["/"](rec, req)

	if rec.Code != http.StatusUnprocessableEntity && rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want a validation failure", rec.Code)
	}
	if len(svc.recorded) != 0 {
		t.Fatalf("invalid payload must not reach the service")
	}
}

func TestRecordLike_AllStoresDownMapsTo503(t *testing.T) {
	svc := &stubSvc{recErr: perr.Persistencef("like write failed in all 2 stores")}
	r := &captureRouter{}
	Register(r, svc)

	req := httptest.NewRequest(http.MethodPost, "/likes", strings.NewReader(`{"user_id":"u-1","song_name":"Angel"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.post["/"](rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestListLikes_OK(t *testing.T) {
	svc := &stubSvc{likes: []domain.UserLikeRecord{{UserID: "u-1", SongName: "Teardrop"}}}
	r := &captureRouter{}
	Register(r, svc)

	req := httptest.NewRequest(http.MethodGet, "/likes/u-1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("user_id", "u-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	r.get["/{user_id}"](rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"song_name":"Teardrop"`) {
		t.Fatalf("body missing like: %s", rec.Body.String())
	}
}

func TestListLikes_EmptyIsOK(t *testing.T) {
	svc := &stubSvc{}
	r := &captureRouter{}
	Register(r, svc)

	req := httptest.NewRequest(http.MethodGet, "/likes/u-2", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("user_id", "u-2")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	r.get["/{user_id}"](rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("empty likes should still carry items: %s", rec.Body.String())
	}
}
