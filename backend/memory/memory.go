// Package memory provides an in memory asset store, used for dry runs
// and tests
package memory

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	// decoders for reading dimensions
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/photocat/photocat/fs"
)

// Store is an in memory asset store
type Store struct {
	// CloudName is used to build asset urls
	CloudName string

	// FailUpload, if set, is called before each upload and an error
	// it returns fails the upload
	FailUpload func(req *fs.UploadRequest) error

	// FailList makes listing the given resource type fail
	FailList map[fs.ResourceType]error

	mu        sync.Mutex
	order     []string // public ids in first upload order
	assets    map[string]*objectData
	version   int
	listCalls int
	uploads   int
}

// objectData is the stored form of an asset
type objectData struct {
	asset fs.Asset
	data  []byte
}

// Check interface
var _ fs.Store = (*Store)(nil)

// New makes an empty Store
func New() *Store {
	return &Store{
		CloudName: "memory",
		assets:    make(map[string]*objectData),
	}
}

// String converts this Store to a string
func (s *Store) String() string {
	return "memory store"
}

// resourceType is the listing partition of kind
func resourceType(kind fs.Kind) fs.ResourceType {
	if kind == fs.KindVideo {
		return fs.ResourceVideo
	}
	return fs.ResourceImage
}

// Upload stores req, replacing any asset with the same public id
func (s *Store) Upload(ctx context.Context, req *fs.UploadRequest) (*fs.UploadResult, error) {
	if s.FailUpload != nil {
		if err := s.FailUpload(req); err != nil {
			return nil, err
		}
	}
	publicID := req.Identity
	if folder := strings.Trim(req.Folder, "/"); folder != "" {
		publicID = path.Join(folder, req.Identity)
	}
	rt := resourceType(req.Kind)
	format := ""
	if req.Kind == fs.KindVideo {
		format = "mp4"
	}
	var width, height int
	if cfg, imageFormat, err := image.DecodeConfig(bytes.NewReader(req.Data)); err == nil {
		width, height = cfg.Width, cfg.Height
		format = imageFormat
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads++
	s.version++
	if _, found := s.assets[publicID]; !found {
		s.order = append(s.order, publicID)
	}
	bag := make(map[string]string, len(req.Context))
	for k, v := range req.Context {
		bag[k] = v
	}
	s.assets[publicID] = &objectData{
		data: append([]byte(nil), req.Data...),
		asset: fs.Asset{
			Identity:     publicID,
			URL:          fmt.Sprintf("memory://%s/%s/%s", s.CloudName, rt, publicID),
			ResourceType: rt,
			Width:        width,
			Height:       height,
			Format:       format,
			Version:      s.version,
			CreatedAt:    time.Now().UTC(),
			Context:      bag,
		},
	}
	fs.Debugf(s, "stored %q (%d bytes)", publicID, len(req.Data))
	return &fs.UploadResult{
		Identity:     publicID,
		ResourceType: rt,
		Width:        width,
		Height:       height,
		Format:       format,
		Version:      s.version,
	}, nil
}

// Put adds a ready made asset, for seeding listings in tests
func (s *Store) Put(a fs.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.assets[a.Identity]; !found {
		s.order = append(s.order, a.Identity)
	}
	s.assets[a.Identity] = &objectData{asset: a}
}

// List returns a page of assets of req.Type. The cursor is the index
// of the next asset to return.
func (s *Store) List(ctx context.Context, req fs.ListRequest) (*fs.ListPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if err := s.FailList[req.Type]; err != nil {
		return nil, err
	}
	start := 0
	if req.Cursor != "" {
		var err error
		start, err = strconv.Atoi(req.Cursor)
		if err != nil || start < 0 {
			return nil, &fs.ProviderError{Op: "list " + string(req.Type), Code: 400, Message: fmt.Sprintf("invalid cursor %q", req.Cursor)}
		}
	}
	var matching []fs.Asset
	prefix := ""
	if folder := strings.Trim(req.Folder, "/"); folder != "" {
		prefix = folder + "/"
	}
	for _, id := range s.order {
		a := s.assets[id].asset
		if a.ResourceType == req.Type && strings.HasPrefix(id, prefix) {
			matching = append(matching, a)
		}
	}
	if start > len(matching) {
		start = len(matching)
	}
	end := len(matching)
	if req.PageSize > 0 && start+req.PageSize < end {
		end = start + req.PageSize
	}
	page := &fs.ListPage{Assets: matching[start:end]}
	if end < len(matching) {
		page.NextCursor = strconv.Itoa(end)
	}
	return page, nil
}

// Len returns the number of stored assets
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.assets)
}

// Uploads returns the number of successful uploads
func (s *Store) Uploads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploads
}

// ListCalls returns the number of List calls made
func (s *Store) ListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

// Get returns the stored asset and its bytes
func (s *Store) Get(publicID string) (fs.Asset, []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	od, found := s.assets[publicID]
	if !found {
		return fs.Asset{}, nil, false
	}
	return od.asset, od.data, true
}
