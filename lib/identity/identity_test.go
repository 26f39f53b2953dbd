package identity

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfStable(t *testing.T) {
	p := "Amsterdam, 18 February 2019/DSCF0310.jpg"
	first := Of(p)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Of(p))
	}
	assert.Len(t, first, Length)
	_, err := hex.DecodeString(first)
	require.NoError(t, err)
}

func TestOfDistinct(t *testing.T) {
	seen := make(map[string]string)
	for i := 0; i < 5000; i++ {
		p := fmt.Sprintf("folder %d/IMG_%04d.jpg", i%17, i)
		id := Of(p)
		if other, found := seen[id]; found {
			t.Fatalf("identity collision between %q and %q", p, other)
		}
		seen[id] = p
	}
}

func TestOfRel(t *testing.T) {
	assert.Equal(t, Of("a/b.jpg"), OfRel("a/b.jpg"))
	assert.Equal(t, Of("a/b.jpg"), OfRel("./a//b.jpg"))
	assert.NotEqual(t, OfRel("a/b.jpg"), OfRel("a/c.jpg"))
}
