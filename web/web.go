// Package web provides the HTTP server for the invoice batch dashboard.
//
// The server validates the watched invoice directory on startup and again
// whenever a document changes, then notifies connected dashboards over
// SSE so they refetch the report. Submission is always disabled here: the
// dashboard inspects a batch, it never posts rows anywhere.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/invoicecheck/invoice"
	"github.com/robinvdvleuten/invoicecheck/loader"
	"github.com/robinvdvleuten/invoicecheck/pipeline"
	"github.com/robinvdvleuten/invoicecheck/telemetry"
)

type Server struct {
	Port      int
	Host      string
	Version   string
	CommitSHA string

	dir string // Absolute path of the watched invoice directory

	mu           sync.RWMutex
	rows         []invoice.Record
	summary      pipeline.Summary
	loadFailures int
	generatedAt  time.Time

	// SSE clients for broadcasting reload events
	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

func New(port int, dir string) *Server {
	return NewWithVersion(port, dir, "", "")
}

func NewWithVersion(port int, dir, version, commitSHA string) *Server {
	return &Server{
		Port:      port,
		Host:      "127.0.0.1",
		Version:   version,
		CommitSHA: commitSHA,
		dir:       dir,
	}
}

func (s *Server) Start(ctx context.Context) error {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	if s.dir == "" {
		return fmt.Errorf("invoice directory is required")
	}

	// Initialize SSE clients map
	s.sseClients = make(map[chan string]struct{})

	loadTimer := timer.Child(fmt.Sprintf("web.load_batch %s", filepath.Base(s.dir)))
	if err := s.reload(ctx); err != nil {
		loadTimer.End()
		return fmt.Errorf("failed to load batch: %w", err)
	}
	loadTimer.End()

	if err := s.startWatcher(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	mux := s.setupRouter()

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) setupRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/report", s.handleGetReport)
	mux.HandleFunc("GET /api/summary", s.handleGetSummary)
	mux.HandleFunc("GET /api/events", s.handleSSE)

	s.mountAssets(mux)

	return mux
}

// reload revalidates the invoice directory and swaps in the new batch.
// Caller must NOT hold the mutex - this method acquires it internally.
func (s *Server) reload(ctx context.Context) error {
	records, failures, err := loader.New().Load(ctx, s.dir)
	if err != nil {
		return err
	}

	rows, sum := pipeline.New().Run(ctx, records)

	s.mu.Lock()
	s.rows = rows
	s.summary = sum
	s.loadFailures = failures
	s.generatedAt = time.Now().UTC()
	s.mu.Unlock()

	return nil
}

// startWatcher starts a file watcher on the invoice directory.
// It rebuilds the batch and broadcasts SSE events when documents change.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	// Start watcher goroutine
	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Debounce timer - editors and exports often write files in multiple steps
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			// Only invoice documents affect the batch
			if !strings.HasSuffix(strings.ToLower(event.Name), ".json") {
				continue
			}

			// Reset debounce timer
			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				s.handleDirChange(ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// handleDirChange rebuilds the batch and tells dashboards to refetch.
func (s *Server) handleDirChange(ctx context.Context) {
	if err := s.reload(ctx); err != nil {
		log.Printf("Failed to reload batch: %v", err)
		return
	}

	// Broadcast reload event to all SSE clients
	s.broadcast("reload")
}

// handleSSE handles Server-Sent Events connections for real-time updates.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// Create client channel
	clientChan := make(chan string, 10)

	// Register client
	s.sseMu.Lock()
	s.sseClients[clientChan] = struct{}{}
	s.sseMu.Unlock()

	// Cleanup on disconnect
	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, clientChan)
		s.sseMu.Unlock()
		close(clientChan)
	}()

	// Get flusher for streaming
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Send initial connection event
	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	// Stream events to client
	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-clientChan:
			_, _ = fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// broadcast sends an event to all connected SSE clients.
func (s *Server) broadcast(event string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()

	for clientChan := range s.sseClients {
		select {
		case clientChan <- event:
		default:
			// Client buffer full, skip
		}
	}
}
