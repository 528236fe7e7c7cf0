// Package listing models directory contents as immutable snapshots.
//
// A Snapshot is produced by one scan and replaced wholesale by the next;
// nothing ever patches an existing snapshot in place. Consumers compare
// Sig to decide whether anything actually changed between scans.
package listing

import "github.com/cespare/xxhash/v2"

// Kind classifies a directory entry. Classification follows symlinks:
// a symlink pointing at a directory is KindDir, one pointing at a
// regular file is KindFile. Broken symlinks, sockets, devices and
// anything else that is neither file nor directory are KindOther.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "other"
	}
}

// Entry is one immediate child of a scanned directory.
type Entry struct {
	Name string // base name as enumerated
	Path string // absolute path
	Kind Kind
}

// Snapshot is the complete listing of one directory at one point in time.
type Snapshot struct {
	Path    string  // directory that was scanned
	Entries []Entry // directories first, enumeration order within groups
	Sig     uint64  // content signature over names and kinds
}

// IndexOf returns the position of the entry named name, or -1.
func (s Snapshot) IndexOf(name string) int {
	for i, e := range s.Entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func signature(entries []Entry) uint64 {
	h := xxhash.New()
	for _, e := range entries {
		h.WriteString(e.Name)
		h.Write([]byte{0, byte(e.Kind)})
	}
	return h.Sum64()
}
