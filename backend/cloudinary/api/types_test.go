package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContext(t *testing.T) {
	got, err := DecodeContext(map[string]interface{}{
		"custom": map[string]interface{}{"location": "Amsterdam", "lat": "52.3"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"location": "Amsterdam", "lat": "52.3"}, got)

	got, err = DecodeContext(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = DecodeContext(map[string]interface{}{})
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = DecodeContext(map[string]interface{}{"custom": 42})
	assert.Error(t, err)
}
