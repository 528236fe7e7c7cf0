package browser

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/marcus/burrow/internal/listing"
)

func snapFor(path string, names ...string) listing.Snapshot {
	entries := make([]listing.Entry, len(names))
	for i, n := range names {
		entries[i] = listing.Entry{Name: n, Path: path + "/" + n, Kind: listing.KindFile}
	}
	return listing.Snapshot{Path: path, Entries: entries, Sig: uint64(len(names) + 1)}
}

func TestCurrentReturnsSnapshotAndTargetTogether(t *testing.T) {
	st := NewState("/start")

	snap, target := st.Current()
	if target != "/start" {
		t.Errorf("initial target = %q, want /start", target)
	}
	if len(snap.Entries) != 0 {
		t.Errorf("fresh state carries %d entries, want none", len(snap.Entries))
	}

	st.publish(snapFor("/start", "a", "b"))
	st.SetTarget("/elsewhere")

	snap, target = st.Current()
	if target != "/elsewhere" {
		t.Errorf("target = %q, want /elsewhere", target)
	}
	if snap.Path != "/start" || len(snap.Entries) != 2 {
		t.Errorf("snapshot = %q with %d entries, want the published scan", snap.Path, len(snap.Entries))
	}
	if got := st.AckedPath(); got != "/start" {
		t.Errorf("AckedPath() = %q, want /start until the new target is scanned", got)
	}
}

func TestWaitScanDeliversNewestPublication(t *testing.T) {
	st := NewState("/d")
	st.publish(snapFor("/d", "old"))
	st.publish(snapFor("/d", "new", "er"))

	pub, err := st.WaitScan(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if pub.Seq != 2 {
		t.Errorf("Seq = %d, want the newest publication (2)", pub.Seq)
	}
	if len(pub.Snap.Entries) != 2 {
		t.Errorf("got %d entries, want the newest snapshot's 2", len(pub.Snap.Entries))
	}
}

func TestWaitScanBlocksUntilPublish(t *testing.T) {
	st := NewState("/d")

	go func() {
		time.Sleep(10 * time.Millisecond)
		st.publish(snapFor("/d", "x"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	pub, err := st.WaitScan(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pub.Path != "/d" || pub.Seq != 1 {
		t.Errorf("got {Path:%q Seq:%d}, want {/d 1}", pub.Path, pub.Seq)
	}
}

func TestWaitScanHonorsContext(t *testing.T) {
	st := NewState("/d")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := st.WaitScan(ctx, 0)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}

func TestPublicationsNeverTear(t *testing.T) {
	st := NewState("/0")
	const rounds = 200

	go func() {
		for i := 1; i <= rounds; i++ {
			path := fmt.Sprintf("/%d", i)
			st.SetTarget(path)
			st.publish(snapFor(path, "child"))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var last uint64
	for last < rounds {
		pub, err := st.WaitScan(ctx, last)
		if err != nil {
			t.Fatal(err)
		}
		if pub.Seq <= last {
			t.Fatalf("sequence went backwards: %d after %d", pub.Seq, last)
		}
		if pub.Path != pub.Snap.Path {
			t.Fatalf("torn publication: path %q with snapshot of %q", pub.Path, pub.Snap.Path)
		}
		last = pub.Seq
	}
}
