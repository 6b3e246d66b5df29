// Package resource holds the process-wide registry of static front-end
// resources. A Library describes a directory of files published under a mount
// path; a Resource is a single script or stylesheet inside a library that
// names the resource it depends on.
//
// The registry stores descriptors and guards name uniqueness. Dependency names
// are kept verbatim and are never resolved here; load-order resolution belongs
// to whatever renders the includes.
package resource

import (
	"io/fs"
	"path"
)

// Kind distinguishes scripts from stylesheets.
type Kind string

const (
	KindScript Kind = "script"
	KindStyle  Kind = "style"
)

// Library is a named group of resources backed by a directory.
type Library struct {
	Name      string // unique registry key
	MountPath string // URL subpath the directory is published under
	Dir       fs.FS  // backing directory
}

// NewLibrary returns a library descriptor.
func NewLibrary(name, mountPath string, dir fs.FS) *Library {
	return &Library{Name: name, MountPath: mountPath, Dir: dir}
}

// Resource is a single script or stylesheet belonging to a library.
type Resource struct {
	Name      string
	Kind      Kind
	Library   *Library
	DependsOn string // name of another resource, resolved externally
	Source    string // file path relative to the library directory
	Minified  string // optional pre-minified variant
}

// NewScript declares a JavaScript resource.
func NewScript(lib *Library, name, dependsOn, source, minified string) *Resource {
	return &Resource{
		Name:      name,
		Kind:      KindScript,
		Library:   lib,
		DependsOn: dependsOn,
		Source:    source,
		Minified:  minified,
	}
}

// NewStyle declares a stylesheet resource.
func NewStyle(lib *Library, name, dependsOn, source, minified string) *Resource {
	return &Resource{
		Name:      name,
		Kind:      KindStyle,
		Library:   lib,
		DependsOn: dependsOn,
		Source:    source,
		Minified:  minified,
	}
}

// File returns the file to publish. The minified variant is used only when
// requested and declared.
func (r *Resource) File(minified bool) string {
	if minified && r.Minified != "" {
		return r.Minified
	}
	return r.Source
}

// URL returns the absolute URL path of the published file.
func (r *Resource) URL(minified bool) string {
	mount := ""
	if r.Library != nil {
		mount = r.Library.MountPath
	}
	return path.Join("/", mount, r.File(minified))
}

// Files lists the source and, if declared, the minified file.
func (r *Resource) Files() []string {
	if r.Minified == "" {
		return []string{r.Source}
	}
	return []string{r.Source, r.Minified}
}

// equal reports whether two descriptors declare the same thing. Libraries are
// compared by name since their backing FS values are not comparable.
func (r *Resource) equal(o *Resource) bool {
	return r.Name == o.Name &&
		r.Kind == o.Kind &&
		libraryName(r.Library) == libraryName(o.Library) &&
		r.DependsOn == o.DependsOn &&
		r.Source == o.Source &&
		r.Minified == o.Minified
}

func (l *Library) equal(o *Library) bool {
	return l.Name == o.Name && l.MountPath == o.MountPath
}

func libraryName(l *Library) string {
	if l == nil {
		return ""
	}
	return l.Name
}
