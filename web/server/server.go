package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/go-strip-raytracer/pkg/renderer"
	"github.com/df07/go-strip-raytracer/pkg/scene"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server streams progressive renders to browser clients over a websocket
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest is the first message a client sends after connecting
type RenderRequest struct {
	Scene     string `json:"scene"`     // Scene name: "demo" or "cover"
	Width     int    `json:"width"`     // Image width
	Workers   int    `json:"workers"`   // Number of strip workers
	Seed      uint64 `json:"seed"`      // Base RNG seed
	MaxPasses int    `json:"maxPasses"` // Stop once every strip reaches this many passes
	TickMs    int    `json:"tickMs"`    // Time budget per render tick in milliseconds
}

// FrameUpdate is sent to the client after every render tick
type FrameUpdate struct {
	Type            string `json:"type"` // "frame"
	CompletedPasses int    `json:"completedPasses"`
	TargetPasses    int    `json:"targetPasses"`
	StripPasses     []int  `json:"stripPasses"`
	ImageData       string `json:"imageData"` // Base64 encoded PNG
	ElapsedMs       int64  `json:"elapsedMs"`
	IsComplete      bool   `json:"isComplete"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.Handle("/", http.FileServer(http.Dir("static/")))
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/ws/render", s.handleRenderWS)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// wsEvent is a single outbound websocket message. All writes go through
// one writer goroutine, since websocket connections do not support
// concurrent writers.
type wsEvent struct {
	payload interface{}
}

// handleRenderWS upgrades the connection, reads one render request, and
// streams a frame per render tick until the requested pass count is
// reached or the client disconnects
func (s *Server) handleRenderWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Println("read request:", err)
		return
	}
	applyRequestDefaults(&req)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader goroutine: the client sends nothing after the request, so
	// any read completion means the connection is gone
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	events := make(chan wsEvent, 100)
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		for ev := range events {
			if err := conn.WriteJSON(ev.payload); err != nil {
				cancel()
				return
			}
		}
	}()

	logger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), events)
	s.runRender(ctx, req, logger, events)

	close(events)
	<-writeDone
}

// runRender drives the render tick loop for one client
func (s *Server) runRender(ctx context.Context, req RenderRequest, logger *WebLogger, events chan<- wsEvent) {
	var world *scene.Scene
	var cfg renderer.Config
	switch req.Scene {
	case "cover":
		world, cfg = scene.NewCoverScene(req.Seed)
	default:
		world, cfg = scene.NewDemoScene()
	}
	cfg.Width = req.Width
	cfg.Workers = req.Workers
	cfg.Seed = req.Seed

	rend, err := renderer.New(world, cfg, logger)
	if err != nil {
		events <- wsEvent{payload: map[string]string{"type": "error", "message": err.Error()}}
		return
	}
	defer rend.Close()

	logger.Printf("Rendering %dx%d with %d workers, target %d passes\n",
		rend.Width(), rend.Height(), req.Workers, req.MaxPasses)

	tick := time.Duration(req.TickMs) * time.Millisecond
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		stats := rend.Render(time.Now().Add(tick))

		imageData, err := encodeSnapshot(rend)
		if err != nil {
			events <- wsEvent{payload: map[string]string{"type": "error", "message": err.Error()}}
			return
		}

		complete := stats.CompletedPasses >= req.MaxPasses
		update := FrameUpdate{
			Type:            "frame",
			CompletedPasses: stats.CompletedPasses,
			TargetPasses:    stats.TargetPasses,
			StripPasses:     stats.StripPasses,
			ImageData:       imageData,
			ElapsedMs:       time.Since(start).Milliseconds(),
			IsComplete:      complete,
		}

		select {
		case events <- wsEvent{payload: update}:
		case <-ctx.Done():
			return
		}

		if complete {
			logger.Printf("Render complete: %d passes in %v\n",
				stats.CompletedPasses, time.Since(start))
			return
		}
	}
}

// encodeSnapshot assembles the current image and encodes it as base64 PNG
func encodeSnapshot(rend *renderer.Renderer) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, rend.Snapshot()); err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func applyRequestDefaults(req *RenderRequest) {
	if req.Width <= 0 {
		req.Width = 400
	}
	if req.Workers <= 0 {
		req.Workers = 4
	}
	if req.MaxPasses <= 0 {
		req.MaxPasses = 50
	}
	if req.TickMs <= 0 {
		req.TickMs = 250
	}
	if req.Seed == 0 {
		req.Seed = 42
	}
}
