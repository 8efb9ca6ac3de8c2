// Package apitest runs a fake REST backend for client tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

// Prefix is the API mount point, matching the real server.
const Prefix = "/api/v1"

// Request is one recorded call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON decodes the recorded body into v.
func (r Request) JSON(t testing.TB, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("decoding recorded body of %s %s: %v", r.Method, r.Path, err)
	}
}

// Server is an httptest server with mux routes that can be replaced per test.
type Server struct {
	srv      *httptest.Server
	router   *mux.Router
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []Request
}

// NewServer starts a server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		router:   mux.NewRouter(),
		handlers: make(map[string]http.HandlerFunc),
	}
	s.router.Use(s.record)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Fail(w, http.StatusNotFound, "Route not found", nil)
	})
	s.srv = httptest.NewServer(s.router)
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the API base URL to hand to the client.
func (s *Server) URL() string {
	return s.srv.URL + Prefix
}

// Close stops the server early, e.g. to provoke network errors.
func (s *Server) Close() {
	s.srv.Close()
}

// Handle routes method and path (relative to Prefix, mux pattern syntax) to h. Calling it again
// for the same route replaces the handler.
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	key := method + " " + path

	s.mu.Lock()
	_, exists := s.handlers[key]
	s.handlers[key] = h
	s.mu.Unlock()

	if exists {
		return
	}
	s.router.HandleFunc(Prefix+path, func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		current := s.handlers[key]
		s.mu.Unlock()
		current(w, r)
	}).Methods(method)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   trimPrefix(r.URL.Path),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Calls returns the recorded requests for one method and concrete path.
func (s *Server) Calls(method, path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Count is len(Calls(method, path)).
func (s *Server) Count(method, path string) int {
	return len(s.Calls(method, path))
}

// Last returns the most recent request, failing the test when there is none.
func (s *Server) Last(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatalf("no requests recorded")
	}
	return reqs[len(reqs)-1]
}

func trimPrefix(p string) string {
	if len(p) >= len(Prefix) && p[:len(Prefix)] == Prefix {
		return p[len(Prefix):]
	}
	return p
}

// Vars exposes mux route variables to handlers.
func Vars(r *http.Request) map[string]string {
	return mux.Vars(r)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
