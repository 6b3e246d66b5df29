package treibstoff

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/conestack/treibstoff/resource"
)

// StaticView publishes a directory under a URL subpath. It serves files only;
// directory requests answer 404.
type StaticView struct {
	Subpath string
	Dir     fs.FS

	handler http.Handler
	etags   map[string]string
}

// Prefix returns the URL prefix the view answers under, e.g. "/treibstoff-static/".
func (v *StaticView) Prefix() string {
	return "/" + strings.Trim(v.Subpath, "/") + "/"
}

// ETag returns the entity tag served for file, or "" if none is known.
func (v *StaticView) ETag(file string) string {
	return v.etags[file]
}

// Has reports whether file is served by the view.
func (v *StaticView) Has(file string) bool {
	_, ok := v.etags[file]
	return ok
}

// ServeHTTP serves the file addressed by the request path below Prefix.
func (v *StaticView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v.handler.ServeHTTP(w, r)
}

// fileServer builds the framework-neutral part of the view: prefix stripping,
// ETags and cache headers.
func (v *StaticView) fileServer() http.Handler {
	v.etags = fingerprintDir(v.Dir)
	return http.StripPrefix(strings.TrimSuffix(v.Prefix(), "/"), http.HandlerFunc(v.serveFile))
}

func (v *StaticView) serveFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" || name == "." {
		http.NotFound(w, r)
		return
	}

	f, err := v.Dir.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("static view open failed", "file", name, "error", err)
		}
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		slog.Warn("static view file not seekable", "file", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	if ct, ok := contentTypes[path.Ext(name)]; ok {
		h.Set("Content-Type", ct)
	}
	if etag := v.etags[name]; etag != "" {
		h.Set("ETag", etag)
	}
	if isMinified(name) {
		h.Set("Cache-Control", "public, max-age=31536000, immutable")
	} else {
		h.Set("Cache-Control", "no-cache")
	}

	// Embedded files carry a zero mod time; ServeContent then skips Last-Modified.
	http.ServeContent(w, r, name, info.ModTime(), rs)
}

// fingerprintDir computes weak ETags for every regular file in dir. They are
// weak because the same tag covers the identity and gzip encodings. Files that
// cannot be hashed map to "" and are served without one.
func fingerprintDir(dir fs.FS) map[string]string {
	etags := make(map[string]string)
	err := fs.WalkDir(dir, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fp, err := resource.Fingerprint(dir, p)
		if err != nil {
			slog.Warn("asset fingerprint failed", "file", p, "error", err)
			etags[p] = ""
			return nil
		}
		etags[p] = `W/"` + fp + `"`
		return nil
	})
	if err != nil {
		slog.Warn("asset directory walk failed", "error", err)
	}
	return etags
}

// contentTypes pins the types of the bundled payload so they do not depend on
// the system mime tables.
var contentTypes = map[string]string{
	".js":  "text/javascript; charset=utf-8",
	".css": "text/css; charset=utf-8",
}

func isMinified(name string) bool {
	return strings.Contains(path.Base(name), ".min.")
}
