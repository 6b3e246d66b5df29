package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/conestack/treibstoff/internal/buildinfo"
	"github.com/conestack/treibstoff/resource"
)

// Assets groups the read-only endpoints describing the declared resources.
type Assets struct {
	registry     *resource.Registry
	minified     bool
	staticPrefix string // empty when no static view is mounted
}

// NewAssets creates the handler group. staticPrefix is the URL prefix of the
// mounted static view, or "" if none is available.
func NewAssets(reg *resource.Registry, minified bool, staticPrefix string) *Assets {
	return &Assets{registry: reg, minified: minified, staticPrefix: staticPrefix}
}

// ManifestResource describes one declared resource.
type ManifestResource struct {
	Name        string `json:"name" yaml:"name"`
	Kind        string `json:"kind" yaml:"kind"`
	Library     string `json:"library" yaml:"library"`
	DependsOn   string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	File        string `json:"file" yaml:"file"`
	URL         string `json:"url" yaml:"url"`
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

// Manifest is the document served at /manifest.json.
type Manifest struct {
	Package    buildinfo.Info     `json:"package" yaml:"package"`
	Minified   bool               `json:"minified" yaml:"minified"`
	StaticView string             `json:"static_view,omitempty" yaml:"static_view,omitempty"`
	Resources  []ManifestResource `json:"resources" yaml:"resources"`
}

// BuildManifest describes every resource in reg. A resource whose file cannot
// be fingerprinted is listed without a fingerprint.
func BuildManifest(reg *resource.Registry, minified bool, staticPrefix string) Manifest {
	m := Manifest{
		Package:    buildinfo.Get(),
		Minified:   minified,
		StaticView: staticPrefix,
		Resources:  []ManifestResource{},
	}

	for _, res := range reg.Resources() {
		file := res.File(minified)
		entry := ManifestResource{
			Name:      res.Name,
			Kind:      string(res.Kind),
			DependsOn: res.DependsOn,
			File:      file,
			URL:       res.URL(minified),
		}
		if res.Library != nil {
			entry.Library = res.Library.Name
			if res.Library.Dir != nil {
				fp, err := resource.Fingerprint(res.Library.Dir, file)
				if err != nil {
					slog.Warn("manifest fingerprint failed", "resource", res.Name, "error", err)
				}
				entry.Fingerprint = fp
			}
		}
		m.Resources = append(m.Resources, entry)
	}
	return m
}

// Manifest serves the resource manifest as JSON.
func (a *Assets) Manifest(w http.ResponseWriter, r *http.Request) {
	m := BuildManifest(a.registry, a.minified, a.staticPrefix)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	if err := json.NewEncoder(w).Encode(m); err != nil {
		slog.Error("encode manifest failed", "error", err)
	}
}

// Includes renders <script> and <link> tags for the resources of the library
// named in the "library" query parameter (all libraries when absent), in
// registration order. Dependencies are not pulled in.
func (a *Assets) Includes(w http.ResponseWriter, r *http.Request) {
	library := r.URL.Query().Get("library")

	var resources []*resource.Resource
	if library == "" {
		resources = a.registry.Resources()
	} else {
		if _, ok := a.registry.Library(library); !ok {
			http.Error(w, fmt.Sprintf("library %q not found", library), http.StatusNotFound)
			return
		}
		resources = a.registry.ResourcesOf(library)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(RenderIncludes(resources, a.minified)))
}

// RenderIncludes returns the HTML include tags for resources, stylesheets
// first so they load before scripts run.
func RenderIncludes(resources []*resource.Resource, minified bool) template.HTML {
	var styles, scripts strings.Builder
	for _, res := range resources {
		url := template.HTMLEscapeString(res.URL(minified))
		switch res.Kind {
		case resource.KindStyle:
			fmt.Fprintf(&styles, "<link rel=\"stylesheet\" type=\"text/css\" href=\"%s\" />\n", url)
		case resource.KindScript:
			fmt.Fprintf(&scripts, "<script type=\"text/javascript\" src=\"%s\"></script>\n", url)
		}
	}
	return template.HTML(styles.String() + scripts.String())
}

// Health returns a simple JSON health check response.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
