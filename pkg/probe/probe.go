// Package probe abstracts file-system access for artifact probing and
// provides a recording decorator that reports every path a run touched.
package probe

import (
	"os"
	"sync"
)

// FileProbe is the narrow capability the resolution pipeline needs from
// the file system: existence checks and raw reads.
type FileProbe interface {
	// Exists reports whether a regular file exists at path.
	Exists(path string) bool
	// ReadBytes returns the file's content.
	ReadBytes(path string) ([]byte, error)
}

// OSProbe probes the real file system.
type OSProbe struct{}

// NewOSProbe returns a probe over the real file system.
func NewOSProbe() *OSProbe { return &OSProbe{} }

// Exists reports whether a regular file exists at path.
func (*OSProbe) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadBytes returns the file's content.
func (*OSProbe) ReadBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Recorder wraps a FileProbe and records every path touched, in
// first-touch order with duplicates collapsed, for later "which files did
// this run read" reporting. Safe for concurrent use.
type Recorder struct {
	inner FileProbe

	mu      sync.Mutex
	seen    map[string]bool
	touched []string
}

// NewRecorder wraps probe with touch recording.
func NewRecorder(inner FileProbe) *Recorder {
	return &Recorder{
		inner: inner,
		seen:  make(map[string]bool),
	}
}

// Exists records the path and delegates.
func (r *Recorder) Exists(path string) bool {
	r.record(path)
	return r.inner.Exists(path)
}

// ReadBytes records the path and delegates.
func (r *Recorder) ReadBytes(path string) ([]byte, error) {
	r.record(path)
	return r.inner.ReadBytes(path)
}

// Paths returns a copy of the touched paths in first-touch order.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.touched))
	copy(out, r.touched)
	return out
}

func (r *Recorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen[path] {
		return
	}
	r.seen[path] = true
	r.touched = append(r.touched, path)
}
