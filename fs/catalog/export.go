// Package catalog rebuilds the gallery catalog from the assets
// published in the store, and sorts and groups it by day.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/lib/errcount"
)

// Exporter lists every published asset in a folder
type Exporter struct {
	Lister   fs.Lister
	Folder   string
	PageSize int // 0 for the configured default
}

// Export lists each resource type in turn and returns the flattened
// records, images first.
//
// A resource type whose listing fails contributes no records. The
// records of the other types are still returned together with an
// error summarising the failures.
func (e *Exporter) Export(ctx context.Context) ([]Record, error) {
	pageSize := e.PageSize
	if pageSize <= 0 {
		pageSize = fs.GetConfig(ctx).ListPageSize
	}
	ec := errcount.New()
	records := []Record{}
	for _, rt := range fs.ResourceTypes {
		fs.Infof(rt, "listing folder %q", e.Folder)
		p := NewPager(e.Lister, fs.ListRequest{
			Type:     rt,
			Folder:   e.Folder,
			PageSize: pageSize,
		})
		assets, err := p.All(ctx)
		if err != nil {
			fs.Errorf(rt, "listing failed after %d calls: %v", p.Calls(), err)
			ec.Add(fmt.Errorf("%s: %w", rt, err))
			continue
		}
		fs.Infof(rt, "received %d results", len(assets))
		for _, a := range assets {
			records = append(records, Flatten(a, e.Folder))
		}
	}
	return records, ec.Err("export incomplete")
}

// WriteFile writes v as minimised JSON to path, replacing it
// atomically.
func WriteFile(path string, v interface{}) (err error) {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ReadRecords reads a flat catalog file
func ReadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records := []Record{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
