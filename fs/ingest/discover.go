package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/djherbis/times"
	"github.com/maruel/natural"
	"github.com/photocat/photocat/fs"
)

// File is a supported media file found under the root
type File struct {
	Path    string    // path on disk
	Rel     string    // path relative to the root, / separated
	Kind    fs.Kind   // from the extension
	Created time.Time // file system birth time, or modification time if unknown
}

// String returns the relative path, for logging
func (f File) String() string {
	return f.Rel
}

// Discover walks root and returns the supported media files in walk
// order. Entries in each directory are visited in natural order and
// hidden entries are skipped.
//
// It returns an error wrapping fs.ErrorRootNotReadable if root can't
// be read. Unreadable sub directories are logged and skipped.
func Discover(ctx context.Context, root string) ([]File, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fs.ErrorRootNotReadable, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", fs.ErrorRootNotReadable, root)
	}
	entries, err := readDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fs.ErrorRootNotReadable, err)
	}
	var files []File
	walk(root, "", entries, &files)
	fs.Debugf(root, "discovered %d media files", len(files))
	return files, nil
}

func walk(dir, rel string, entries []os.DirEntry, files *[]File) {
	for _, entry := range entries {
		name := entry.Name()
		p := filepath.Join(dir, name)
		r := name
		if rel != "" {
			r = rel + "/" + name
		}
		if entry.IsDir() {
			sub, err := readDir(p)
			if err != nil {
				fs.Errorf(r, "skipping unreadable directory: %v", err)
				continue
			}
			walk(p, r, sub, files)
			continue
		}
		kind := fs.KindOf(name)
		if kind == fs.KindUnknown {
			fs.Debugf(r, "skipping unsupported file")
			continue
		}
		info, err := entry.Info()
		if err != nil {
			fs.Errorf(r, "skipping file: %v", err)
			continue
		}
		*files = append(*files, File{
			Path:    p,
			Rel:     r,
			Kind:    kind,
			Created: created(info),
		})
	}
}

// readDir lists dir in natural order without hidden entries
func readDir(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	visible := entries[:0]
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), ".") {
			visible = append(visible, entry)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return natural.Less(visible[i].Name(), visible[j].Name())
	})
	return visible, nil
}

// created returns the birth time of the file if the platform records
// one
func created(info os.FileInfo) time.Time {
	ts := times.Get(info)
	if ts.HasBirthTime() {
		return ts.BirthTime()
	}
	return ts.ModTime()
}
