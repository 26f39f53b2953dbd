// Package all imports all the commands
package all

import (
	// Active commands
	_ "github.com/photocat/photocat/cmd"
	_ "github.com/photocat/photocat/cmd/export"
	_ "github.com/photocat/photocat/cmd/groupify"
	_ "github.com/photocat/photocat/cmd/upload"
	_ "github.com/photocat/photocat/cmd/version"
)
