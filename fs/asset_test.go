package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Kind
	}{
		{"a/b/DSCF0310.jpg", KindImage},
		{"a/b/DSCF0310.JPG", KindImage},
		{"x.jpeg", KindImage},
		{"x.png", KindImage},
		{"x.gif", KindAnimation},
		{"x.MOV", KindVideo},
		{"x.mp4", KindVideo},
		{"x.heic", KindUnknown},
		{"notes.txt", KindUnknown},
		{"noext", KindUnknown},
	} {
		assert.Equal(t, test.want, KindOf(test.in), test.in)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "image", KindImage.String())
	assert.Equal(t, "animation", KindAnimation.String())
	assert.Equal(t, "video", KindVideo.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKindIsMotion(t *testing.T) {
	assert.False(t, KindImage.IsMotion())
	assert.True(t, KindAnimation.IsMotion())
	assert.True(t, KindVideo.IsMotion())
}
