package cloudinary

import (
	"testing"

	"github.com/photocat/photocat/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadParams(t *testing.T) {
	ctx := map[string]string{fs.ContextLocation: "Amsterdam"}
	p := uploadParams(&fs.UploadRequest{Identity: "abc", Folder: "trips", Context: ctx, Kind: fs.KindImage})
	assert.Equal(t, "abc", p.PublicID)
	assert.Equal(t, "trips", p.Folder)
	assert.Equal(t, "auto", p.ResourceType)
	require.NotNil(t, p.Overwrite)
	assert.True(t, *p.Overwrite)
	assert.Equal(t, "Amsterdam", p.Context[fs.ContextLocation])
	assert.Equal(t, imageTransformation, p.Transformation)

	p = uploadParams(&fs.UploadRequest{Identity: "v", Kind: fs.KindVideo, MaxDimension: 1024})
	assert.Equal(t, "c_limit,w_1024,h_1024", p.Transformation)

	p = uploadParams(&fs.UploadRequest{Identity: "g", Kind: fs.KindAnimation})
	assert.Equal(t, "", p.Transformation)
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "", prefix(""))
	assert.Equal(t, "trips/", prefix("trips"))
	assert.Equal(t, "trips/", prefix("/trips/"))
}

func TestURLTemplate(t *testing.T) {
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/h_{{HEIGHT}}/v1571218039/trips/abc.jpg",
		URLTemplate("demo", "image", 1571218039, "trips/abc", "jpg"))
}

func TestNewWithOptions(t *testing.T) {
	s, err := NewWithOptions(Options{CloudName: "demo", APIKey: "1234", APISecret: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Cloudinary cloud 'demo'", s.String())
}
