// Package public embeds the storefront's static assets so the binary ships
// self-contained.
package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var assets embed.FS

// StaticFS exposes the embedded assets rooted at the static directory, ready
// to be served under the /static/ mount.
func StaticFS() (fs.FS, error) {
	return fs.Sub(assets, "static")
}
