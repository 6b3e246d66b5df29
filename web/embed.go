// Package web provides the embedded treibstoff front-end payload.
// The bundle and stylesheet are shipped in source and pre-minified form and
// published by the host application under the treibstoff mount path.
package web

import (
	"embed"
	"io/fs"
)

// StaticFS embeds the web/static/ directory tree: treibstoff.bundle.js,
// treibstoff.css and their .min variants.
//
//go:embed static
var StaticFS embed.FS

// StaticDir is the directory inside StaticFS that backs the asset library.
const StaticDir = "static"

// Static returns StaticFS rooted at StaticDir.
func Static() fs.FS {
	sub, err := fs.Sub(StaticFS, StaticDir)
	if err != nil {
		return StaticFS
	}
	return sub
}
