// Package identity derives the stable public id an asset is published
// under from the path of its source file.
//
// The id depends only on the path string, never on the file contents,
// so republishing an edited file overwrites the existing asset rather
// than creating a duplicate.
package identity

import (
	"encoding/hex"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// Length is the number of hex characters in an identity
const Length = 16

// Of returns the identity for the path p
func Of(p string) string {
	sum := blake3.Sum256([]byte(p))
	return hex.EncodeToString(sum[:Length/2])
}

// OfRel returns the identity for a path relative to the ingestion
// root, normalised to forward slashes so the same tree gives the same
// identities on every platform.
func OfRel(rel string) string {
	return Of(filepath.ToSlash(filepath.Clean(rel)))
}
