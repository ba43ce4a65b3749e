package advisor

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// CallEvent describes one completed recommend call.
type CallEvent struct {
	Endpoint  string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives call completion events. Implementations must be safe
// for use from the single submission goroutine.
type Observer interface {
	OnCallComplete(ev CallEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// LogObserver writes one line per call to a writer, usually stderr.
type LogObserver struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogObserver creates a LogObserver writing to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(ev CallEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	status := "ok"
	if !ev.Success {
		status = "error=" + ev.ErrorCode
	}
	fmt.Fprintf(o.w, "[advisor] %s recommend %s latency=%dms %s\n",
		time.Now().Format(time.RFC3339), ev.Endpoint, ev.LatencyMs, status)
}
