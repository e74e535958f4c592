package server

import (
	"fmt"
	"time"
)

// ConsoleMessage is a log line forwarded to the web client
type ConsoleMessage struct {
	Type      string    `json:"type"` // "console"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// WebLogger implements core.Logger by forwarding messages to the client's
// websocket event channel
type WebLogger struct {
	renderID string
	events   chan<- wsEvent
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, events chan<- wsEvent) *WebLogger {
	return &WebLogger{renderID: renderID, events: events}
}

// Printf implements the core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	// Forward to the client without blocking the render loop
	select {
	case wl.events <- wsEvent{payload: ConsoleMessage{
		Type:      "console",
		Message:   message,
		Timestamp: time.Now(),
	}}:
	default:
		// Channel full, skip
	}
}
