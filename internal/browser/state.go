// Package browser owns the state shared between the directory poller
// and the view loop, and the poller that keeps it fresh.
//
// Exactly two parties touch a State: the view loop writes the target
// path and reads publications, the poller reads the target and writes
// publications. Each field has a single writer; the mutex only makes
// the pairs move together.
package browser

import (
	"context"
	"sync"

	"github.com/marcus/burrow/internal/listing"
)

// Publication is one completed scan. Seq increases by one per publish,
// so publication order is exactly scan-completion order.
type Publication struct {
	Snap listing.Snapshot
	Path string // directory the scan acknowledged; always Snap.Path
	Seq  uint64
}

// State is the rendezvous point between the poller and the view.
type State struct {
	mu     sync.Mutex
	target string           // view-owned: where the view wants to be
	snap   listing.Snapshot // poller-owned: latest scan result
	acked  string           // poller-owned: directory of that scan
	seq    uint64           // poller-owned: publish counter
	wake   chan struct{}    // closed and replaced on every publish
}

// NewState returns a State targeting start, with no scan published yet.
func NewState(start string) *State {
	return &State{target: start, wake: make(chan struct{})}
}

// Current returns the latest snapshot together with the target path in
// one critical section, so the caller never sees a torn pair.
func (s *State) Current() (listing.Snapshot, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.target
}

// SetTarget asks the poller to scan path. The switch takes effect on
// the poller's next cycle; until a scan of path is published, AckedPath
// still names the previous directory.
func (s *State) SetTarget(path string) {
	s.mu.Lock()
	s.target = path
	s.mu.Unlock()
}

// TargetPath returns the directory the view wants scanned.
func (s *State) TargetPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// AckedPath returns the directory of the most recent publication. The
// view has converged once AckedPath equals TargetPath.
func (s *State) AckedPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acked
}

// publish installs a completed scan. Snapshot, acknowledged path and
// sequence number change together, and anyone blocked in WaitScan
// wakes up.
func (s *State) publish(snap listing.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.acked = snap.Path
	s.seq++
	close(s.wake)
	s.wake = make(chan struct{})
	s.mu.Unlock()
}

// WaitScan blocks until a publication with Seq greater than after
// exists, then returns it. Intermediate publications are not queued;
// the caller always gets the newest one. Returns ctx.Err() if ctx ends
// first.
func (s *State) WaitScan(ctx context.Context, after uint64) (Publication, error) {
	for {
		s.mu.Lock()
		if s.seq > after {
			pub := Publication{Snap: s.snap, Path: s.acked, Seq: s.seq}
			s.mu.Unlock()
			return pub, nil
		}
		wake := s.wake
		s.mu.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return Publication{}, ctx.Err()
		}
	}
}
