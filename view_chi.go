//go:build !nochi

package treibstoff

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/conestack/treibstoff/resource"
)

const hostFramework = "chi"

// compressLevel is the gzip level used for scripts and stylesheets.
const compressLevel = 5

// newStaticView binds the library directory to a static view using chi's
// middleware for compression.
func newStaticView(lib *resource.Library) *StaticView {
	v := &StaticView{Subpath: lib.MountPath, Dir: lib.Dir}
	files := v.fileServer()
	compressed := chimw.Compress(compressLevel,
		"text/javascript",
		"application/javascript",
		"text/css",
	)(files)

	v.handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Content-Range counts identity bytes, so partial responses are
		// never compressed.
		if r.Header.Get("Range") != "" {
			files.ServeHTTP(w, r)
			return
		}
		compressed.ServeHTTP(w, r)
	})
	return v
}
