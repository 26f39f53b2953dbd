// Publish a photo library to Cloudinary and build its gallery catalog
package main

import (
	"github.com/photocat/photocat/cmd"
	_ "github.com/photocat/photocat/cmd/all" // import all commands
)

func main() {
	cmd.Main()
}
