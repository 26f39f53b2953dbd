// Package api has type definitions for cloudinary
package api

import (
	"encoding/json"
)

// Context is the context field of an asset as returned by the admin
// API when listing with context=true
type Context struct {
	Custom map[string]string `json:"custom"`
}

// DecodeContext extracts the custom context bag from the context
// field of a listed asset, whatever type the SDK decoded it into.
//
// It returns nil if the asset was never annotated.
func DecodeContext(raw interface{}) (map[string]string, error) {
	if raw == nil {
		return nil, nil
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var c Context
	if err := json.Unmarshal(buf, &c); err != nil {
		return nil, err
	}
	return c.Custom, nil
}
