// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/jute/internal/core/domain"
	"go.trai.ch/jute/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Status updates go to the writer given at construction and to the journal set by Persist.
type Recorder struct {
	journal *journal
	rec     *progrock.Recorder
	seq     atomic.Uint64
}

// New creates a Recorder that only writes once a journal is set with Persist.
func New() *Recorder {
	return NewRecorder(progrock.Discard{})
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	j := &journal{}
	return &Recorder{
		journal: j,
		rec:     progrock.NewRecorder(progrock.MultiWriter{w, j}),
	}
}

// Record starts recording a new vertex. Repeated names get distinct vertices.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	n := r.seq.Add(1)
	d := digest.FromString(name + "#" + strconv.FormatUint(n, 10))
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Persist replaces the journal file with a new one at path.
// Vertices recorded before the call are not written to it.
func (r *Recorder) Persist(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create journal directory"), "path", path)
	}
	w, err := progrock.CreateJournal(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create journal"), "path", path)
	}
	return r.journal.swap(w)
}

// Close completes the root group and closes every writer.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}

// journal serializes status updates from the stdout and stderr goroutines into one file.
type journal struct {
	mu sync.Mutex
	w  progrock.Writer
}

func (j *journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.w == nil {
		return nil
	}
	return j.w.WriteStatus(update)
}

func (j *journal) swap(w progrock.Writer) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	prev := j.w
	j.w = w
	if prev != nil {
		return prev.Close()
	}
	return nil
}

func (j *journal) Close() error {
	return j.swap(nil)
}
