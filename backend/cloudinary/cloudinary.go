// Package cloudinary publishes assets to the Cloudinary DAM
package cloudinary

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	SDKApi "github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/photocat/photocat/backend/cloudinary/api"
	"github.com/photocat/photocat/fs"
)

const (
	deliveryType = "upload"
	maxPageSize  = 500 // the most the admin API returns per page

	imageTransformation = "q_auto:best"
)

// Options defines the configuration for this backend
type Options struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPrefix string // API endpoint for environments outside the US
}

// Store is the Cloudinary asset store
type Store struct {
	opt Options
	cld *cloudinary.Cloudinary
}

// Check interface
var _ fs.Store = (*Store)(nil)

// New makes a Store using the credentials in ctx
func New(ctx context.Context) (*Store, error) {
	ci := fs.GetConfig(ctx)
	return NewWithOptions(Options{
		CloudName: ci.CloudName,
		APIKey:    ci.APIKey,
		APISecret: ci.APISecret,
	})
}

// NewWithOptions makes a Store from opt
func NewWithOptions(opt Options) (*Store, error) {
	cld, err := cloudinary.NewFromParams(opt.CloudName, opt.APIKey, opt.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloudinary client: %w", err)
	}
	if opt.UploadPrefix != "" {
		cld.Config.API.UploadPrefix = opt.UploadPrefix
	}
	return &Store{opt: opt, cld: cld}, nil
}

// String converts this Store to a string
func (s *Store) String() string {
	return fmt.Sprintf("Cloudinary cloud '%s'", s.opt.CloudName)
}

// uploadParams builds the SDK parameters for req
func uploadParams(req *fs.UploadRequest) uploader.UploadParams {
	params := uploader.UploadParams{
		PublicID: req.Identity,
		Folder:   req.Folder,
		// replace anything already published under this identity
		Overwrite:    SDKApi.Bool(true),
		ResourceType: "auto", // not "video" so gifs are accepted too
		Context:      SDKApi.CldAPIMap(req.Context),
	}
	switch {
	case req.Kind == fs.KindImage:
		params.Transformation = imageTransformation
	case req.Kind.IsMotion() && req.MaxDimension > 0:
		params.Transformation = fmt.Sprintf("c_limit,w_%d,h_%d", req.MaxDimension, req.MaxDimension)
	}
	return params
}

// Upload publishes req to Cloudinary
func (s *Store) Upload(ctx context.Context, req *fs.UploadRequest) (*fs.UploadResult, error) {
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(req.Data), uploadParams(req))
	if err != nil {
		return nil, &fs.ProviderError{Op: "upload", Message: err.Error()}
	}
	if res.Error.Message != "" {
		return nil, &fs.ProviderError{Op: "upload", Message: res.Error.Message}
	}
	return &fs.UploadResult{
		Identity:     res.PublicID,
		ResourceType: fs.ResourceType(res.ResourceType),
		Width:        res.Width,
		Height:       res.Height,
		Format:       res.Format,
		Version:      res.Version,
	}, nil
}

// prefix returns the public id prefix of assets in folder
func prefix(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return ""
	}
	return folder + "/"
}

// List returns one page of assets of req.Type
func (s *Store) List(ctx context.Context, req fs.ListRequest) (*fs.ListPage, error) {
	pageSize := req.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	params := admin.AssetsParams{
		AssetType:    SDKApi.AssetType(req.Type),
		DeliveryType: deliveryType,
		Prefix:       prefix(req.Folder),
		Context:      SDKApi.Bool(true),
		MaxResults:   pageSize,
		NextCursor:   req.Cursor,
	}
	res, err := s.cld.Admin.Assets(ctx, params)
	if err != nil {
		return nil, &fs.ProviderError{Op: "list " + string(req.Type), Message: err.Error()}
	}
	if res.Error.Message != "" {
		return nil, &fs.ProviderError{Op: "list " + string(req.Type), Message: res.Error.Message}
	}
	page := &fs.ListPage{NextCursor: res.NextCursor}
	for _, a := range res.Assets {
		custom, err := api.DecodeContext(a.Context)
		if err != nil {
			fs.Debugf(a.PublicID, "ignoring unreadable context: %v", err)
		}
		page.Assets = append(page.Assets, fs.Asset{
			Identity:     a.PublicID,
			URL:          URLTemplate(s.opt.CloudName, a.AssetType, a.Version, a.PublicID, a.Format),
			ResourceType: fs.ResourceType(a.AssetType),
			Width:        a.Width,
			Height:       a.Height,
			Format:       a.Format,
			Version:      a.Version,
			CreatedAt:    a.CreatedAt,
			Context:      custom,
		})
	}
	return page, nil
}

// URLTemplate returns the delivery url of an asset with a {{HEIGHT}}
// placeholder for the renderer to fill in
func URLTemplate(cloudName, resourceType string, version int, publicID, format string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/%s/upload/h_{{HEIGHT}}/v%d/%s.%s",
		cloudName, resourceType, version, publicID, format)
}
