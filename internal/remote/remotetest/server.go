// Package remotetest runs an in-memory note service for tests.
package remotetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Paintersrp/rnote/internal/remote"
)

const Token = "test-token"

// SearchCall records the paging arguments of one search request.
type SearchCall struct {
	Offset int
	Limit  int
	Filter remote.NoteFilter
}

type Server struct {
	*httptest.Server

	// PageCap is the largest page the server returns, whatever the client asks
	// for. Zero means no cap.
	PageCap int

	Password string

	mu         sync.Mutex
	Notes      []remote.Note
	Tags       []remote.Tag
	Notebooks  []remote.Notebook
	Counts     remote.NoteCounts
	User       remote.User
	Searches   []SearchCall
	RequestIDs []string
	Created    []remote.NewNote
}

func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		Password: "secret",
		User:     remote.User{ID: 7, Username: "tester", Email: "tester@example.com"},
		Counts: remote.NoteCounts{
			ByTag:      map[string]int{},
			ByNotebook: map[string]int{},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/login", s.handleLogin)
	mux.HandleFunc("GET /v1/user", s.authed(s.handleUser))
	mux.HandleFunc("POST /v1/notes/search", s.authed(s.handleSearch))
	mux.HandleFunc("GET /v1/notes/counts", s.authed(s.handleCounts))
	mux.HandleFunc("GET /v1/notes/{guid}", s.authed(s.handleGetNote))
	mux.HandleFunc("POST /v1/notes", s.authed(s.handleCreateNote))
	mux.HandleFunc("GET /v1/tags", s.authed(s.handleListTags))
	mux.HandleFunc("POST /v1/tags", s.authed(s.handleCreateTag))
	mux.HandleFunc("GET /v1/notebooks", s.authed(s.handleListNotebooks))
	mux.HandleFunc("POST /v1/notebooks", s.authed(s.handleCreateNotebook))

	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)

	return s
}

// Client returns a client for the server with pacing disabled.
func (s *Server) Client(t testing.TB) *remote.Client {
	t.Helper()

	c, err := remote.New(s.URL, Token, remote.WithRateLimit(0, 0))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

// AddNotes appends n generated notes titled "<prefix> <i>".
func (s *Server) AddNotes(prefix string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		idx := len(s.Notes)
		s.Notes = append(s.Notes, remote.Note{
			NoteSummary: remote.NoteSummary{
				GUID:    fmt.Sprintf("note-%d", idx),
				Title:   fmt.Sprintf("%s %d", prefix, i),
				Created: base.Add(time.Duration(idx) * time.Hour),
				Updated: base.Add(time.Duration(idx) * time.Hour),
			},
		})
	}
}

func (s *Server) SearchCalls() []SearchCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SearchCall(nil), s.Searches...)
}

func (s *Server) SeenRequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.RequestIDs...)
}

// CreatedNotes returns the bodies of every create-note request.
func (s *Server) CreatedNotes() []remote.NewNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]remote.NewNote(nil), s.Created...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.RequestIDs = append(s.RequestIDs, r.Header.Get("X-Request-ID"))
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+Token {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"error": msg, "code": code})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if body.Email != s.User.Email || body.Password != s.Password {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": Token})
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.User)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Filter remote.NoteFilter `json:"filter"`
		Offset int               `json:"offset"`
		Limit  int               `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Searches = append(s.Searches, SearchCall{Offset: body.Offset, Limit: body.Limit, Filter: body.Filter})

	matches := make([]remote.NoteSummary, 0, len(s.Notes))
	for _, n := range s.Notes {
		if matchesFilter(n.NoteSummary, body.Filter) {
			matches = append(matches, n.NoteSummary)
		}
	}

	limit := body.Limit
	if s.PageCap > 0 && limit > s.PageCap {
		limit = s.PageCap
	}

	start := min(body.Offset, len(matches))
	end := min(start+limit, len(matches))

	writeJSON(w, http.StatusOK, remote.NotesPage{
		StartIndex: start,
		TotalNotes: len(matches),
		Notes:      matches[start:end],
	})
}

func matchesFilter(n remote.NoteSummary, f remote.NoteFilter) bool {
	if f.NotebookGUID != "" && n.NotebookGUID != f.NotebookGUID {
		return false
	}
	for _, want := range f.TagGUIDs {
		found := false
		for _, have := range n.TagGUIDs {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, word := range strings.Fields(f.Words) {
		if strings.Contains(word, ":") {
			continue
		}
		if !strings.Contains(strings.ToLower(n.Title), strings.ToLower(word)) {
			return false
		}
	}
	return true
}

func (s *Server) handleCounts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.Counts)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	guid := r.PathValue("guid")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.Notes {
		if n.GUID == guid {
			if r.URL.Query().Get("with_content") != "true" {
				n.Content = ""
			}
			writeJSON(w, http.StatusOK, n)
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found", "note not found")
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var body remote.NewNote
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Created = append(s.Created, body)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	note := remote.Note{
		NoteSummary: remote.NoteSummary{
			GUID:         fmt.Sprintf("note-%d", len(s.Notes)),
			Title:        body.Title,
			Created:      now,
			Updated:      now,
			NotebookGUID: body.NotebookGUID,
			TagGUIDs:     body.TagGUIDs,
		},
		Content: body.Content,
	}
	s.Notes = append(s.Notes, note)
	writeJSON(w, http.StatusCreated, note)
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]remote.Tag{}, s.Tags...))
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var body remote.NewTag
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.Tags {
		if strings.EqualFold(t.Name, body.Name) {
			writeError(w, http.StatusConflict, "conflict", "tag already exists")
			return
		}
	}
	tag := remote.Tag{
		GUID:       fmt.Sprintf("tag-%d", len(s.Tags)),
		Name:       body.Name,
		ParentGUID: body.ParentGUID,
	}
	s.Tags = append(s.Tags, tag)
	writeJSON(w, http.StatusCreated, tag)
}

func (s *Server) handleListNotebooks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]remote.Notebook{}, s.Notebooks...))
}

func (s *Server) handleCreateNotebook(w http.ResponseWriter, r *http.Request) {
	var body remote.NewNotebook
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	nb := remote.Notebook{
		GUID:    fmt.Sprintf("nb-%d", len(s.Notebooks)),
		Name:    body.Name,
		Stack:   body.Stack,
		Created: now,
		Updated: now,
	}
	s.Notebooks = append(s.Notebooks, nb)
	writeJSON(w, http.StatusCreated, nb)
}
