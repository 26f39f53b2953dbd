package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/photocat/photocat/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"img10.jpg",
		"img2.JPG",
		"notes.txt",
		".hidden.jpg",
		".git/config.png",
		"25 March 2016/b.mov",
		"25 March 2016/a.gif",
		"Amsterdam, 18 February 2019/deeper/x.png",
	)
	files, err := Discover(context.Background(), root)
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rels = append(rels, f.Rel)
		assert.False(t, f.Created.IsZero())
		assert.Equal(t, filepath.Join(root, filepath.FromSlash(f.Rel)), f.Path)
	}
	assert.Equal(t, []string{
		"25 March 2016/a.gif",
		"25 March 2016/b.mov",
		"Amsterdam, 18 February 2019/deeper/x.png",
		"img2.JPG",
		"img10.jpg",
	}, rels)
	assert.Equal(t, fs.KindAnimation, files[0].Kind)
	assert.Equal(t, fs.KindVideo, files[1].Kind)
	assert.Equal(t, fs.KindImage, files[3].Kind)
}

func TestDiscoverNotDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file.jpg")
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	_, err := Discover(context.Background(), p)
	assert.ErrorIs(t, err, fs.ErrorRootNotReadable)
}

func TestErrorLogAppends(t *testing.T) {
	p := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(p, []byte("previous run\n"), 0o644))

	l := NewErrorLog(p)
	require.NoError(t, l.Record(Failure{File: "a.jpg", Stage: StagePublish, Err: os.ErrPermission}))
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	l = NewErrorLog(p)
	require.NoError(t, l.Record(Failure{File: "b.jpg", Stage: StageTransform}))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Regexp(t, `(?s)^previous run\n\{.*"file":"a.jpg".*\}\n\{.*"file":"b.jpg".*"msg":"unknown error".*\}\n$`, string(data))
}
