// Package stats aggregates transaction-time measurements from a client's
// lifecycle events into an HDR histogram.
package stats

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/wesleyorama2/riposte/http"
)

// Recorder accumulates per-response latency. Attach it to a client with
// client.Register(http.EventResponseBuilt, recorder.Handler). Like the
// client itself, a Recorder is meant for single-goroutine use.
type Recorder struct {
	// Histogram range: 1 microsecond to 1 hour, 3 significant figures.
	hist      *hdrhistogram.Histogram
	responses int64
	errors    int64
}

// NewRecorder creates an empty latency recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		hist: hdrhistogram.New(1, time.Hour.Microseconds(), 3),
	}
}

// Handler records the transaction time of a built response. Register it
// for http.EventResponseBuilt.
func (r *Recorder) Handler(payload interface{}) error {
	resp, ok := payload.(*http.Response)
	if !ok {
		return fmt.Errorf("stats: unexpected payload %T", payload)
	}
	r.responses++
	micros := int64(resp.GetTransactionTime() * float64(time.Second/time.Microsecond))
	return r.hist.RecordValue(micros)
}

// ErrorHandler counts transport failures. Register it for
// http.EventError.
func (r *Recorder) ErrorHandler(payload interface{}) error {
	r.errors++
	return nil
}

// Responses returns the number of responses recorded.
func (r *Recorder) Responses() int64 {
	return r.responses
}

// Errors returns the number of transport failures observed.
func (r *Recorder) Errors() int64 {
	return r.errors
}

// Quantile returns the latency at the given quantile (0-100) in seconds.
func (r *Recorder) Quantile(q float64) float64 {
	return float64(r.hist.ValueAtQuantile(q)) / float64(time.Second/time.Microsecond)
}

// Summary formats the recorded distribution for display.
func (r *Recorder) Summary() string {
	if r.responses == 0 {
		return fmt.Sprintf("no responses recorded (%d errors)", r.errors)
	}
	return fmt.Sprintf(
		"%d responses, %d errors | p50 %.3fs p95 %.3fs p99 %.3fs max %.3fs",
		r.responses, r.errors,
		r.Quantile(50), r.Quantile(95), r.Quantile(99),
		float64(r.hist.Max())/float64(time.Second/time.Microsecond),
	)
}
