package browser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitFor blocks until the state publishes a scan of path, failing the
// test if that takes longer than two seconds.
func waitFor(t *testing.T, st *State, path string) Publication {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var last uint64
	for {
		pub, err := st.WaitScan(ctx, last)
		if err != nil {
			t.Fatalf("no scan of %q arrived: %v", path, err)
		}
		if pub.Path == path {
			return pub
		}
		last = pub.Seq
	}
}

func TestPollerConvergesOnTargetChange(t *testing.T) {
	tmp := t.TempDir()
	dirA := filepath.Join(tmp, "a")
	dirB := filepath.Join(tmp, "b")
	for _, d := range []string{dirA, dirB} {
		if err := os.Mkdir(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	_ = os.WriteFile(filepath.Join(dirA, "only.txt"), []byte("x"), 0644)
	_ = os.WriteFile(filepath.Join(dirB, "one.txt"), []byte("x"), 0644)
	_ = os.WriteFile(filepath.Join(dirB, "two.txt"), []byte("x"), 0644)

	st := NewState(dirA)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewPoller(st, 5*time.Millisecond).Run(ctx) }()

	pub := waitFor(t, st, dirA)
	if len(pub.Snap.Entries) != 1 {
		t.Errorf("scan of %q has %d entries, want 1", dirA, len(pub.Snap.Entries))
	}

	st.SetTarget(dirB)
	pub = waitFor(t, st, dirB)
	if len(pub.Snap.Entries) != 2 {
		t.Errorf("scan of %q has %d entries, want 2", dirB, len(pub.Snap.Entries))
	}
	if got := st.AckedPath(); got != dirB {
		t.Errorf("AckedPath() = %q, want %q after convergence", got, dirB)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}

func TestPollerPublishesEmptyForUnreadableTarget(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	st := NewState(missing)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go NewPoller(st, 5*time.Millisecond).Run(ctx)

	pub := waitFor(t, st, missing)
	if len(pub.Snap.Entries) != 0 {
		t.Errorf("scan of a missing dir has %d entries, want none", len(pub.Snap.Entries))
	}
}

func TestPollerPicksUpFilesystemChanges(t *testing.T) {
	tmp := t.TempDir()
	st := NewState(tmp)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go NewPoller(st, 5*time.Millisecond).Run(ctx)

	first := waitFor(t, st, tmp)
	if len(first.Snap.Entries) != 0 {
		t.Fatalf("empty dir scanned with %d entries", len(first.Snap.Entries))
	}

	_ = os.WriteFile(filepath.Join(tmp, "appeared.txt"), []byte("x"), 0644)

	deadline := time.Now().Add(2 * time.Second)
	last := first.Seq
	for {
		if time.Now().After(deadline) {
			t.Fatal("new file never showed up in a publication")
		}
		waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
		pub, err := st.WaitScan(waitCtx, last)
		waitCancel()
		if err != nil {
			t.Fatal(err)
		}
		last = pub.Seq
		if pub.Snap.IndexOf("appeared.txt") >= 0 {
			return
		}
	}
}
