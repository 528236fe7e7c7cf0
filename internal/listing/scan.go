package listing

import (
	"os"
	"path/filepath"
	"sort"
)

// readDirRaw returns dir's children in raw enumeration order. os.ReadDir
// would sort them by name; the browser preserves what the filesystem
// yields. Swapped in tests to pin a specific order.
var readDirRaw = func(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

// Scan enumerates the immediate children of dir and returns them with
// directories stably partitioned before everything else. Within each
// group the filesystem's enumeration order is kept as-is; there is no
// secondary sort.
//
// Scan never fails: a directory that cannot be opened or read yields an
// empty snapshot, and an entry that cannot be classified degrades to
// KindOther.
func Scan(dir string) Snapshot {
	dirents, err := readDirRaw(dir)
	if err != nil && len(dirents) == 0 {
		return Snapshot{Path: dir, Sig: signature(nil)}
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		path := filepath.Join(dir, de.Name())
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: path,
			Kind: classify(path),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Kind == KindDir && entries[j].Kind != KindDir
	})

	return Snapshot{Path: dir, Entries: entries, Sig: signature(entries)}
}

// classify stats path, following symlinks. A stat failure means the
// entry exists in the listing but its target does not resolve (a broken
// symlink, typically), which lands in KindOther like any other
// non-file non-directory.
func classify(path string) Kind {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return KindOther
	case info.IsDir():
		return KindDir
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
