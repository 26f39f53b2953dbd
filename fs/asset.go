package fs

import (
	"context"
	"path"
	"strings"
	"time"
)

// Kind is the type of a media file or remote asset
type Kind byte

// Kinds of media
const (
	KindUnknown   Kind = iota
	KindImage          // static raster image
	KindAnimation      // animated image, e.g. gif
	KindVideo
)

var kindToString = []string{
	KindUnknown:   "unknown",
	KindImage:     "image",
	KindAnimation: "animation",
	KindVideo:     "video",
}

// String turns a Kind into a string
func (k Kind) String() string {
	if int(k) >= len(kindToString) {
		return kindToString[KindUnknown]
	}
	return kindToString[k]
}

// IsMotion is true for kinds which are not decoded as still images
func (k Kind) IsMotion() bool {
	return k == KindAnimation || k == KindVideo
}

// mediaExts maps the supported lower case extensions to their kind
var mediaExts = map[string]Kind{
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".gif":  KindAnimation,
	".mov":  KindVideo,
	".mp4":  KindVideo,
}

// KindOf returns the kind of the file named p from its extension.
// KindUnknown means the file is not supported.
func KindOf(p string) Kind {
	return mediaExts[strings.ToLower(path.Ext(p))]
}

// ResourceType is the listing partition of the remote store.  The
// store can't return mixed resource types in a single listing.
type ResourceType string

// Resource types which are listed on export
const (
	ResourceImage ResourceType = "image"
	ResourceVideo ResourceType = "video"
)

// ResourceTypes is every resource type in listing order
var ResourceTypes = []ResourceType{ResourceImage, ResourceVideo}

// Context bag keys stored with each asset
const (
	ContextLocation      = "location"
	ContextDate          = "date"
	ContextCreated       = "created"
	ContextLat           = "lat"
	ContextLng           = "lng"
	ContextNeighbourhood = "neighbourhood"
	ContextCity          = "city"
	ContextCountry       = "country"
	ContextStreetName    = "streetName"
	ContextDominantColor = "dominantColor"
)

// UploadRequest describes one asset to publish
type UploadRequest struct {
	Data     []byte            // transformed media bytes
	Identity string            // stable public id, overwritten in place
	Folder   string            // destination folder in the store
	Context  map[string]string // context bag; values are always strings
	Kind     Kind              // selects kind specific upload options

	// MaxDimension bounds motion kinds server side, 0 for none
	MaxDimension int
}

// UploadResult is what the store reports about a published asset
type UploadResult struct {
	Identity     string
	ResourceType ResourceType
	Width        int
	Height       int
	Format       string
	Version      int
}

// ListRequest asks for one page of assets
type ListRequest struct {
	Type     ResourceType
	Folder   string
	Cursor   string // empty for the first page
	PageSize int
}

// Asset is a published asset as returned by a listing
type Asset struct {
	Identity     string // public id including any folder prefix
	URL          string // url template for the renderer
	ResourceType ResourceType
	Width        int
	Height       int
	Format       string
	Version      int
	CreatedAt    time.Time

	// Context is nil if the asset was never annotated
	Context map[string]string
}

// ListPage is one page of a listing
type ListPage struct {
	Assets     []Asset
	NextCursor string // empty when there are no more pages
}

// Uploader publishes assets to the remote store
type Uploader interface {
	// Upload publishes req, overwriting any asset with the same identity
	Upload(ctx context.Context, req *UploadRequest) (*UploadResult, error)
}

// Lister reads pages of published assets
type Lister interface {
	// List returns the page of assets starting at req.Cursor
	List(ctx context.Context, req ListRequest) (*ListPage, error)
}

// Store is the remote asset store
type Store interface {
	Uploader
	Lister
}
