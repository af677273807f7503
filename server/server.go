// Package server serves the drift report as a live page: the report JSON,
// an SSE endpoint that tells the page to reload after a rescan, and the
// embedded UI itself.
package server

import (
	_ "embed"
	"net/http"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/cors"
)

//go:embed report.html
var reportUIBase string

func buildReportUI(reportUrl, eventsUrl string) []byte {
	replacer := strings.NewReplacer(
		"%REPORT_URL%", reportUrl,
		"%EVENTS_URL%", eventsUrl,
	)

	return []byte(replacer.Replace(reportUIBase))
}

type Options struct {
	DebounceTime time.Duration
	BaseUrl      string
}

func DefaultOptions() Options {
	return Options{
		DebounceTime: DEFAULT_DEBOUNCE_TIME,
		BaseUrl:      "/",
	}
}

type urls struct {
	UI     string
	Report string
	Events string
}

func makeUrls(base string) urls {
	return urls{
		UI:     path.Clean(base),
		Report: path.Join(base, "report.json"),
		Events: path.Join(base, "events"),
	}
}

type Server struct {
	options Options

	broadcaster *broadcaster
	urls        urls
	mu          sync.RWMutex
	report      []byte
}

func New(report []byte, opt Options) *Server {
	return &Server{
		options:     opt,
		broadcaster: newBroadcaster(),
		urls:        makeUrls(opt.BaseUrl),
		report:      report,
	}
}

// Handler routes the UI, report and events endpoints; anything else falls
// through to h when given. The result is CORS-wrapped so the report can be
// polled from other local tooling.
func (s *Server) Handler(h http.Handler) http.Handler {

	reportUI := buildReportUI(s.urls.Report, s.urls.Events)

	mux := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case s.urls.UI:
			w.Header().Set("Content-Type", "text/html")
			w.Write(reportUI)
		case s.urls.Report:
			w.Header().Set("Content-Type", "application/json")
			s.mu.RLock()
			defer s.mu.RUnlock()
			w.Write(s.report)
		case s.urls.Events:
			s.broadcaster.ServeHTTP(w, r)
		default:
			if h != nil {
				h.ServeHTTP(w, r)
			} else {
				http.NotFound(w, r)
			}
		}
	})

	return cors.Default().Handler(mux)
}

// SetReport swaps the served report and tells connected pages to reload.
func (s *Server) SetReport(report []byte) {
	s.mu.Lock()
	s.report = slices.Clone(report)
	s.mu.Unlock()
	s.broadcaster.Broadcast("reload")
}
