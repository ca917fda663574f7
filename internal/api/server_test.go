package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/gosift/internal/app"
	"github.com/hyperifyio/gosift/internal/record"
)

func testServer() *Server {
	a := app.New(app.Config{}, zerolog.Nop())
	return NewServer(a, zerolog.Nop())
}

func TestHealth(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestAnalyze(t *testing.T) {
	srv := testServer()
	body := `{
  "persona": {"role": "Travel Planner"},
  "job_to_be_done": {"task": "Plan a trip of 4 days for a group of 10 college friends."},
  "documents": [{
    "filename": "guide.txt",
    "pages": [{
      "page_number": 1,
      "text": "CITY GUIDE\nvisit the city center and explore the beach with all of your friends today\nplan the trip and book the hotel rooms before the summer season begins ok\n"
    }]
  }]
}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var out record.Output
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response not a record: %v", err)
	}
	if out.Metadata.Persona != "Travel Planner" {
		t.Fatalf("persona = %q", out.Metadata.Persona)
	}
	if len(out.Metadata.InputDocuments) != 1 || out.Metadata.InputDocuments[0] != "guide.txt" {
		t.Fatalf("input documents = %v", out.Metadata.InputDocuments)
	}
	if len(out.ExtractedSections) == 0 {
		t.Fatalf("no sections in response: %s", rec.Body.String())
	}
	if out.ExtractedSections[0].SectionTitle != "CITY GUIDE" {
		t.Fatalf("top section = %+v", out.ExtractedSections[0])
	}
}

func TestAnalyze_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{nope`},
		{"missing role", `{"persona":{},"job_to_be_done":{"task":"t"},"documents":[{"filename":"a.txt"}]}`},
		{"missing task", `{"persona":{"role":"r"},"job_to_be_done":{},"documents":[{"filename":"a.txt"}]}`},
		{"no documents", `{"persona":{"role":"r"},"job_to_be_done":{"task":"t"},"documents":[]}`},
		{"blank filename", `{"persona":{"role":"r"},"job_to_be_done":{"task":"t"},"documents":[{"filename":""}]}`},
	}
	srv := testServer()
	for _, c := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(c.body))
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", c.name, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "error") {
			t.Fatalf("%s: body = %q", c.name, rec.Body.String())
		}
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	srv := testServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
