package browser

import (
	"context"
	"log/slog"
	"time"

	"github.com/marcus/burrow/internal/listing"
)

// DefaultInterval is the poller's scan cadence.
const DefaultInterval = 100 * time.Millisecond

// Poller re-scans the target directory on a fixed cadence and publishes
// every result, changed or not. Skipping unchanged snapshots is the
// reader's business via Snapshot.Sig; the poller stays dumb.
type Poller struct {
	state    *State
	interval time.Duration
}

func NewPoller(st *State, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{state: st, interval: interval}
}

// Run scans once immediately, then once per tick until ctx is
// cancelled, and returns ctx.Err(). Each cycle reads the target in its
// own critical section, scans with no lock held, and publishes the
// result atomically. A target change landing mid-scan is picked up on
// the next tick.
func (p *Poller) Run(ctx context.Context) error {
	slog.Debug("poller started", "interval", p.interval)
	p.cycle()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Debug("poller stopped")
			return ctx.Err()
		case <-ticker.C:
			p.cycle()
		}
	}
}

func (p *Poller) cycle() {
	target := p.state.TargetPath()
	p.state.publish(listing.Scan(target))
}
